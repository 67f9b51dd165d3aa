package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackroad-os/hub/models"
)

func TestPlatformHealth(t *testing.T) {
	router := newTestHandler(t, nil, nil, nil).Init()

	rec := get(t, router, "/api/platform/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "operational", body.Status)
	assert.Equal(t, "test", body.Version)
	assert.NotEmpty(t, body.Timestamp)
}

func TestPlatformInventory(t *testing.T) {
	inventory := &mockInventoryService{
		summaryFn: func(_ context.Context) models.InventorySummary {
			return models.InventorySummary{
				Cloudflare: models.CloudflareSummary{Workers: 83, Pages: 0, Domains: 19},
				Vercel:     models.VercelSummary{Projects: 34, Deployments: "active"},
				Github:     models.GithubSummary{Organizations: 15, PrimaryOrg: "BlackRoad-OS"},
				Agents:     models.AgentsSummary{Total: 1000, Framework: "LangGraph + CrewAI"},
			}
		},
	}
	router := newTestHandler(t, nil, inventory, nil).Init()

	rec := get(t, router, "/api/platform/inventory")
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.InventorySummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 83, body.Cloudflare.Workers)
	assert.Equal(t, "BlackRoad-OS", body.Github.PrimaryOrg)
}

func TestPlatformWorkers_Success(t *testing.T) {
	inventory := &mockInventoryService{
		workersFn: func(_ context.Context) models.WorkerList {
			return models.WorkerList{
				Total:   1,
				Workers: []models.Worker{{Name: "hub", Created: "2025-01-01"}},
			}
		},
	}
	router := newTestHandler(t, nil, inventory, nil).Init()

	rec := get(t, router, "/api/platform/workers")
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.WorkerList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Total)
	require.Len(t, body.Workers, 1)
	assert.Equal(t, "hub", body.Workers[0].Name)
	assert.Empty(t, body.Error)
}

// Degradation contract: upstream failure is still a 200 with the error text
// in the payload and a non-null list.
func TestPlatformWorkers_Degraded(t *testing.T) {
	inventory := &mockInventoryService{
		workersFn: func(_ context.Context) models.WorkerList {
			return models.WorkerList{
				Workers: []models.Worker{},
				Error:   "CLOUDFLARE_API_TOKEN not configured",
			}
		},
	}
	router := newTestHandler(t, nil, inventory, nil).Init()

	rec := get(t, router, "/api/platform/workers")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"workers":[]`)
	assert.Contains(t, rec.Body.String(), "CLOUDFLARE_API_TOKEN not configured")
}

func TestPlatformVercel_Degraded(t *testing.T) {
	inventory := &mockInventoryService{
		projectsFn: func(_ context.Context) models.ProjectList {
			return models.ProjectList{
				Projects: []models.Project{},
				Error:    "VERCEL_TOKEN not configured",
			}
		},
	}
	router := newTestHandler(t, nil, inventory, nil).Init()

	rec := get(t, router, "/api/platform/vercel")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"projects":[]`)
	assert.Contains(t, rec.Body.String(), "VERCEL_TOKEN not configured")
}

func TestPlatformDashboard_Renders(t *testing.T) {
	router := newTestHandler(t, nil, nil, nil).Init()

	for _, target := range []string{"/platform", "/platform/"} {
		rec := get(t, router, target)
		require.Equal(t, http.StatusOK, rec.Code, target)
		assert.Contains(t, rec.Body.String(), "/api/platform/health", target)
	}
}
