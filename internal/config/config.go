// Package config loads the hub's configuration from environment variables,
// command-line flags, and an optional JSON file, merged in that order.
package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the hub.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the session lifetime
	// and the reported version string.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Platform holds credentials for the third-party inventory APIs that
	// the platform dashboard proxies.
	Platform Platform `envPrefix:"PLATFORM_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string reported by /api/platform/health.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// SessionDuration is how long a login session stays valid after
	// creation. Fixed per session; expiry never slides. Defaults to 720h
	// (30 days).
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds outbound third-party API calls made while
	// serving a request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds connection settings for the relational datastore.
type Storage struct {
	// DSN is the PostgreSQL Data Source Name. When empty the hub falls
	// back to a local SQLite file (dev mode).
	// Env: STORAGE_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// SQLitePath is the SQLite file used when no DSN is configured.
	// Env: STORAGE_SQLITE_PATH
	SQLitePath string `env:"SQLITE_PATH"`
}

// Platform holds third-party API credentials for the inventory proxies.
// Missing tokens are not an error: the corresponding proxy endpoint
// degrades to an explanatory JSON payload instead.
type Platform struct {
	// CloudflareAccountID scopes the Workers listing API call.
	// Env: PLATFORM_CLOUDFLARE_ACCOUNT_ID
	CloudflareAccountID string `env:"CLOUDFLARE_ACCOUNT_ID"`

	// CloudflareAPIToken authenticates against the Cloudflare API.
	// Env: PLATFORM_CLOUDFLARE_API_TOKEN
	CloudflareAPIToken string `env:"CLOUDFLARE_API_TOKEN"`

	// VercelToken authenticates against the Vercel API.
	// Env: PLATFORM_VERCEL_TOKEN
	VercelToken string `env:"VERCEL_TOKEN"`

	// VercelTeamID scopes the Vercel projects listing.
	// Env: PLATFORM_VERCEL_TEAM_ID
	VercelTeamID string `env:"VERCEL_TEAM_ID"`
}

// GetStructuredConfig loads, merges, and validates the hub configuration
// from all available sources in the following priority order (first source
// wins for non-zero fields):
//  1. Environment variables (an optional .env file is loaded first)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotenv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
