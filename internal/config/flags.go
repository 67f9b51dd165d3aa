package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-sqlite sqlite file path used when no DSN is set
//	-c/-config json file path with configs
//	-session-duration login session lifetime (e.g., "720h")
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-cf-account cloudflare account id
//	-cf-token cloudflare api token
//	-vercel-token vercel api token
//	-vercel-team vercel team id
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var sqlitePath string
	var jsonConfigPath string
	var sessionDuration time.Duration
	var requestTimeout time.Duration
	var cfAccount string
	var cfToken string
	var vercelToken string
	var vercelTeam string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&sqlitePath, "sqlite", "", "SQLite file path (dev fallback)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&sessionDuration, "session-duration", 0, "Session lifetime (e.g., 720h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 30s, 1m)")
	flag.StringVar(&cfAccount, "cf-account", "", "Cloudflare account id")
	flag.StringVar(&cfToken, "cf-token", "", "Cloudflare API token")
	flag.StringVar(&vercelToken, "vercel-token", "", "Vercel API token")
	flag.StringVar(&vercelTeam, "vercel-team", "", "Vercel team id")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SessionDuration: sessionDuration,
		},
		Storage: Storage{
			DSN:        databaseDSN,
			SQLitePath: sqlitePath,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Platform: Platform{
			CloudflareAccountID: cfAccount,
			CloudflareAPIToken:  cfToken,
			VercelToken:         vercelToken,
			VercelTeamID:        vercelTeam,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string so the
// merge step can fall through to other sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
