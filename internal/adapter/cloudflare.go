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

const cloudflareBaseURL = "https://api.cloudflare.com"

// CloudflareConfig carries the credentials and timeout for the Workers
// listing client.
type CloudflareConfig struct {
	BaseURL   string
	AccountID string
	APIToken  string
	Timeout   time.Duration
}

type cloudflareClient struct {
	client    *resty.Client
	accountID string
	apiToken  string
}

// cloudflare envelope: every API response carries success/errors around the
// result payload.
type cloudflareWorkersResponse struct {
	Success bool              `json:"success"`
	Errors  []cloudflareError `json:"errors"`
	Result  []struct {
		ID         string `json:"id"`
		ModifiedOn string `json:"modified_on"`
		CreatedOn  string `json:"created_on"`
	} `json:"result"`
}

type cloudflareError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewCloudflareClient constructs a [CloudflareClient] talking to the
// Cloudflare v4 API.
func NewCloudflareClient(cfg CloudflareConfig) CloudflareClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = cloudflareBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &cloudflareClient{
		client:    cli,
		accountID: cfg.AccountID,
		apiToken:  cfg.APIToken,
	}
}

// ListWorkers fetches the account's deployed Worker scripts and reshapes
// them to the hub's contract.
func (c *cloudflareClient) ListWorkers(ctx context.Context) (models.WorkerList, error) {
	if c.apiToken == "" {
		return models.WorkerList{}, ErrTokenNotConfigured
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(c.apiToken).
		Get(fmt.Sprintf("/client/v4/accounts/%s/workers/scripts", c.accountID))
	if err != nil {
		return models.WorkerList{}, fmt.Errorf("%w: %w", ErrUpstreamRequest, err)
	}
	if resp.IsError() {
		return models.WorkerList{}, fmt.Errorf("%w: status %d", ErrUpstreamResponse, resp.StatusCode())
	}

	var parsed cloudflareWorkersResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return models.WorkerList{}, fmt.Errorf("%w: decoding body: %w", ErrUpstreamResponse, err)
	}
	if !parsed.Success {
		return models.WorkerList{}, fmt.Errorf("%w: %s", ErrUpstreamResponse, joinCloudflareErrors(parsed.Errors))
	}

	workers := make([]models.Worker, 0, len(parsed.Result))
	for _, w := range parsed.Result {
		workers = append(workers, models.Worker{
			Name:     w.ID,
			Modified: w.ModifiedOn,
			Created:  w.CreatedOn,
		})
	}

	return models.WorkerList{
		Total:   len(workers),
		Workers: workers,
	}, nil
}

func joinCloudflareErrors(errs []cloudflareError) string {
	if len(errs) == 0 {
		return "unknown api error"
	}

	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, fmt.Sprintf("%d: %s", e.Code, e.Message))
	}

	return strings.Join(parts, "; ")
}
