// Package adapter holds the thin clients for the third-party inventory APIs
// the platform dashboard proxies. Each client reshapes the upstream response
// into the hub's compact JSON contract and reports failures as errors; the
// service layer decides how to degrade.
package adapter

import (
	"context"

	"github.com/blackroad-os/hub/models"
)

// CloudflareClient lists the deployed Worker scripts of one account.
type CloudflareClient interface {
	ListWorkers(ctx context.Context) (models.WorkerList, error)
}

// VercelClient lists the projects of one team.
type VercelClient interface {
	ListProjects(ctx context.Context) (models.ProjectList, error)
}
