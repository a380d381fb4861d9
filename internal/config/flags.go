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
//	-a admin API address in format [host]:[port]
//	-d sqlite database path
//	-c/-config json file path with configs
//	-log-path daemon log file path
//	-sync-interval sweep period (e.g., "5m")
//	-sync-workers concurrent notes per sweep
//	-max-retries failed-attempt cutoff
//	-backoff-base first retry delay (e.g., "30s")
//	-backoff-cap retry delay ceiling (e.g., "1h")
//	-reset-delay eligibility delay after a manual retry reset
//	-strategy conflict strategy (last_write_wins, prefer_local, prefer_remote)
//	-cleanup-interval synced-orphan cleanup period
//	-provider-timeout outbound provider request timeout
//	-provider-login remote vault server login
//	-provider-password remote vault server password
func ParseFlags() *StructuredConfig {
	var adminAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var logPath string
	var syncInterval time.Duration
	var syncWorkers int
	var maxRetries int
	var backoffBase time.Duration
	var backoffCap time.Duration
	var resetDelay time.Duration
	var strategy string
	var cleanupInterval time.Duration
	var providerTimeout time.Duration
	var providerLogin string
	var providerPassword string

	flag.Var(&adminAddress, "a", "Admin API address host:port")
	flag.StringVar(&databaseDSN, "d", "", "SQLite database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&logPath, "log-path", "", "Daemon log file path")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Sweep period (e.g., 5m)")
	flag.IntVar(&syncWorkers, "sync-workers", 0, "Concurrent notes per sweep")
	flag.IntVar(&maxRetries, "max-retries", 0, "Failed-attempt cutoff")
	flag.DurationVar(&backoffBase, "backoff-base", 0, "First retry delay (e.g., 30s)")
	flag.DurationVar(&backoffCap, "backoff-cap", 0, "Retry delay ceiling (e.g., 1h)")
	flag.DurationVar(&resetDelay, "reset-delay", 0, "Eligibility delay after a manual retry reset")
	flag.StringVar(&strategy, "strategy", "", "Conflict strategy (last_write_wins, prefer_local, prefer_remote)")
	flag.DurationVar(&cleanupInterval, "cleanup-interval", 0, "Synced-orphan cleanup period")
	flag.DurationVar(&providerTimeout, "provider-timeout", 0, "Outbound provider request timeout")
	flag.StringVar(&providerLogin, "provider-login", "", "Remote vault server login")
	flag.StringVar(&providerPassword, "provider-password", "", "Remote vault server password")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogPath: logPath,
		},
		Storage: Storage{
			DSN: databaseDSN,
		},
		Provider: Provider{
			RequestTimeout: providerTimeout,
			Login:          providerLogin,
			Password:       providerPassword,
		},
		Sync: Sync{
			Interval:        syncInterval,
			Workers:         syncWorkers,
			MaxRetries:      maxRetries,
			BackoffBase:     backoffBase,
			BackoffCap:      backoffCap,
			ResetDelay:      resetDelay,
			Strategy:        strategy,
			CleanupInterval: cleanupInterval,
		},
		Admin: Admin{
			Address: adminAddress.String(),
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the default server address.
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

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
