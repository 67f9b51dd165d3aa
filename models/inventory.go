package models

// Worker is one deployed Cloudflare Worker script as reported by the
// Cloudflare API, reshaped to the hub's compact JSON contract.
type Worker struct {
	Name     string `json:"name"`
	Modified string `json:"modified"`
	Created  string `json:"created"`
}

// WorkerList is the /api/platform/workers response. Error carries the
// upstream failure text when the proxy degraded; Workers is never nil so
// clients always receive a list.
type WorkerList struct {
	Total   int      `json:"total"`
	Workers []Worker `json:"workers"`
	Error   string   `json:"error,omitempty"`
}

// Project is one Vercel project, reshaped to the hub's JSON contract.
type Project struct {
	Name      string `json:"name"`
	Framework string `json:"framework"`
	Updated   int64  `json:"updated"`
}

// ProjectList is the /api/platform/vercel response, with the same
// degradation contract as WorkerList.
type ProjectList struct {
	Total    int       `json:"total"`
	Projects []Project `json:"projects"`
	Error    string    `json:"error,omitempty"`
}

// InventorySummary is the static /api/platform/inventory response.
type InventorySummary struct {
	Cloudflare CloudflareSummary `json:"cloudflare"`
	Vercel     VercelSummary     `json:"vercel"`
	Github     GithubSummary     `json:"github"`
	Agents     AgentsSummary     `json:"agents"`
}

type CloudflareSummary struct {
	Workers int `json:"workers"`
	Pages   int `json:"pages"`
	Domains int `json:"domains"`
}

type VercelSummary struct {
	Projects    int    `json:"projects"`
	Deployments string `json:"deployments"`
}

type GithubSummary struct {
	Organizations int    `json:"organizations"`
	PrimaryOrg    string `json:"primaryOrg"`
}

type AgentsSummary struct {
	Total     int    `json:"total"`
	Framework string `json:"framework"`
}
