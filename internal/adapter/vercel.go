package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/blackroad-os/hub/models"
	"github.com/go-resty/resty/v2"
)

const vercelBaseURL = "https://api.vercel.com"

// VercelConfig carries the credentials and timeout for the projects
// listing client.
type VercelConfig struct {
	BaseURL string
	Token   string
	TeamID  string
	Timeout time.Duration
}

type vercelClient struct {
	client *resty.Client
	token  string
	teamID string
}

type vercelProjectsResponse struct {
	Projects []struct {
		Name      string `json:"name"`
		Framework string `json:"framework"`
		UpdatedAt int64  `json:"updatedAt"`
	} `json:"projects"`
}

// NewVercelClient constructs a [VercelClient] talking to the Vercel v9 API.
func NewVercelClient(cfg VercelConfig) VercelClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = vercelBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &vercelClient{
		client: cli,
		token:  cfg.Token,
		teamID: cfg.TeamID,
	}
}

// ListProjects fetches the team's deployed projects and reshapes them to the
// hub's contract. A project without a framework is reported as "static" by
// the dashboard, not here.
func (v *vercelClient) ListProjects(ctx context.Context) (models.ProjectList, error) {
	if v.token == "" {
		return models.ProjectList{}, ErrTokenNotConfigured
	}

	req := v.client.R().
		SetContext(ctx).
		SetAuthToken(v.token)
	if v.teamID != "" {
		req.SetQueryParam("teamId", v.teamID)
	}

	resp, err := req.Get("/v9/projects")
	if err != nil {
		return models.ProjectList{}, fmt.Errorf("%w: %w", ErrUpstreamRequest, err)
	}
	if resp.IsError() {
		return models.ProjectList{}, fmt.Errorf("%w: status %d", ErrUpstreamResponse, resp.StatusCode())
	}

	var parsed vercelProjectsResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return models.ProjectList{}, fmt.Errorf("%w: decoding body: %w", ErrUpstreamResponse, err)
	}

	projects := make([]models.Project, 0, len(parsed.Projects))
	for _, p := range parsed.Projects {
		projects = append(projects, models.Project{
			Name:      p.Name,
			Framework: p.Framework,
			Updated:   p.UpdatedAt,
		})
	}

	return models.ProjectList{
		Total:    len(projects),
		Projects: projects,
	}, nil
}
