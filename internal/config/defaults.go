package config

import "time"

const (
	defaultHTTPAddress    = ":8080"
	defaultRequestTimeout = 15 * time.Second
	defaultVersion        = "3.1.0"
	defaultSQLitePath     = "hub.db"

	// Sessions live 30 days from creation, matching the cookie Max-Age.
	defaultSessionDuration = 30 * 24 * time.Hour
)
