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
//	-a local lookup daemon address in format [host]:[port]
//	-remote base URL of the remote threat-list service
//	-api-key API key for the remote service
//	-client-id client identifier reported to the remote service
//	-client-version client version reported to the remote service
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-max-diff-entries cap on entries per diff response (0 = unconstrained)
//	-max-database-entries cap on local database size (0 = unconstrained)
//	-retry-sync-attempts total diff call attempts (0 = default)
//	-retry-sync-delay fixed delay between diff attempts (0 = default)
//	-retry-verify-attempts total verification call attempts (0 = default)
//	-retry-verify-base-delay first verification retry delay (0 = default)
//	-retry-verify-max-delay cap on the verification retry delay (0 = default)
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var remoteAddress string
	var apiKey string
	var clientID string
	var clientVersion string
	var requestTimeout time.Duration
	var maxDiffEntries int
	var maxDatabaseEntries int
	var retrySyncAttempts uint64
	var retrySyncDelay time.Duration
	var retryVerifyAttempts uint64
	var retryVerifyBaseDelay time.Duration
	var retryVerifyMaxDelay time.Duration
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&remoteAddress, "remote", "", "Remote threat service base URL")
	flag.StringVar(&apiKey, "api-key", "", "Remote threat service API key")
	flag.StringVar(&clientID, "client-id", "", "Client identifier")
	flag.StringVar(&clientVersion, "client-version", "", "Client version")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.IntVar(&maxDiffEntries, "max-diff-entries", 0, "Max entries per diff response")
	flag.IntVar(&maxDatabaseEntries, "max-database-entries", 0, "Max local database entries")
	flag.Uint64Var(&retrySyncAttempts, "retry-sync-attempts", 0, "Total diff call attempts")
	flag.DurationVar(&retrySyncDelay, "retry-sync-delay", 0, "Delay between diff attempts (e.g., 30s)")
	flag.Uint64Var(&retryVerifyAttempts, "retry-verify-attempts", 0, "Total verification call attempts")
	flag.DurationVar(&retryVerifyBaseDelay, "retry-verify-base-delay", 0, "First verification retry delay (e.g., 1s)")
	flag.DurationVar(&retryVerifyMaxDelay, "retry-verify-max-delay", 0, "Cap on the verification retry delay (e.g., 32s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			APIKey:        apiKey,
			ClientID:      clientID,
			ClientVersion: clientVersion,
		},
		Adapter: Adapter{
			Address:        remoteAddress,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			Address: serverAddress.String(),
		},
		Sync: Sync{
			MaxDiffEntries:     maxDiffEntries,
			MaxDatabaseEntries: maxDatabaseEntries,
		},
		Retry: Retry{
			SyncAttempts:    retrySyncAttempts,
			SyncDelay:       retrySyncDelay,
			VerifyAttempts:  retryVerifyAttempts,
			VerifyBaseDelay: retryVerifyBaseDelay,
			VerifyMaxDelay:  retryVerifyMaxDelay,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
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
