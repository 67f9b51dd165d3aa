package service

import (
	"context"
	"errors"

	"github.com/blackroad-os/hub/internal/adapter"
	"github.com/blackroad-os/hub/internal/logger"
	"github.com/blackroad-os/hub/models"
)

// Degradation messages surfaced verbatim in the JSON payloads when an
// upstream token is absent.
const (
	msgCloudflareTokenMissing = "CLOUDFLARE_API_TOKEN not configured"
	msgVercelTokenMissing     = "VERCEL_TOKEN not configured"
)

// inventoryService is the concrete implementation of InventoryService.
// It turns adapter failures into degraded payloads so the platform endpoints
// always answer 200 with a well-formed body.
type inventoryService struct {
	cloudflare adapter.CloudflareClient
	vercel     adapter.VercelClient
	logger     *logger.Logger
}

// NewInventoryService constructs an InventoryService over the two upstream
// platform clients.
func NewInventoryService(cloudflare adapter.CloudflareClient, vercel adapter.VercelClient, logger *logger.Logger) InventoryService {
	return &inventoryService{
		cloudflare: cloudflare,
		vercel:     vercel,
		logger:     logger,
	}
}

// Workers lists the deployed Cloudflare Workers. On any upstream failure the
// list degrades to empty with the failure text in the Error field.
func (i *inventoryService) Workers(ctx context.Context) models.WorkerList {
	log := logger.FromContext(ctx)

	list, err := i.cloudflare.ListWorkers(ctx)
	if err != nil {
		log.Err(err).Msg("cloudflare workers listing degraded")
		return models.WorkerList{Workers: []models.Worker{}, Error: degradationMessage(err, msgCloudflareTokenMissing)}
	}

	return list
}

// Projects lists the Vercel projects, with the same degradation contract as
// Workers.
func (i *inventoryService) Projects(ctx context.Context) models.ProjectList {
	log := logger.FromContext(ctx)

	list, err := i.vercel.ListProjects(ctx)
	if err != nil {
		log.Err(err).Msg("vercel projects listing degraded")
		return models.ProjectList{Projects: []models.Project{}, Error: degradationMessage(err, msgVercelTokenMissing)}
	}

	return list
}

// Summary returns the fixed platform inventory counts.
func (i *inventoryService) Summary(_ context.Context) models.InventorySummary {
	return models.InventorySummary{
		Cloudflare: models.CloudflareSummary{Workers: 83, Pages: 0, Domains: 19},
		Vercel:     models.VercelSummary{Projects: 34, Deployments: "active"},
		Github:     models.GithubSummary{Organizations: 15, PrimaryOrg: "BlackRoad-OS"},
		Agents:     models.AgentsSummary{Total: 1000, Framework: "LangGraph + CrewAI"},
	}
}

// degradationMessage picks the payload text for a failed upstream call: the
// fixed not-configured message when the token is absent, the error text
// otherwise.
func degradationMessage(err error, tokenMissing string) string {
	if errors.Is(err, adapter.ErrTokenNotConfigured) {
		return tokenMissing
	}
	return err.Error()
}
