package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-threat-cache/models"
)

// Defaults applied by the config views when a field was not provided by any
// source.
const (
	defaultRequestTimeout = 30 * time.Second
	defaultClientID       = "go-threat-cache"
	defaultClientVersion  = "0.0.0"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// ClientID identifies this client implementation to the remote service.
	ClientID string
	// ClientVersion is the version string reported alongside ClientID.
	ClientVersion string
}

// ClientAdapter holds network settings used by the outbound transport layer.
type ClientAdapter struct {
	// Address is the base URL of the remote threat-list service.
	Address string
	// APIKey authenticates every outbound request.
	APIKey string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientSync holds the sync size hints forwarded to the remote service.
type ClientSync struct {
	// MaxDiffEntries caps the number of entries in one diff response.
	MaxDiffEntries int
	// MaxDatabaseEntries caps the local database size.
	MaxDatabaseEntries int
}

// Constraints maps the sync hints to the wire-level constraint type.
func (s ClientSync) Constraints() models.SizeConstraints {
	return models.SizeConstraints{
		MaxDiffEntries:     s.MaxDiffEntries,
		MaxDatabaseEntries: s.MaxDatabaseEntries,
	}
}

// ClientConfig is the configuration view used by the interactive client.
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains remote transport settings.
	Adapter ClientAdapter
	// Sync contains threat-list synchronization hints.
	Sync ClientSync

	// Retry contains retry tuning for outbound calls. Zero fields fall
	// back to the built-in defaults when the policy is constructed.
	Retry Retry
}

// ServerConfig is the configuration view used by the local lookup daemon.
// It extends [ClientConfig] with the inbound HTTP settings.
type ServerConfig struct {
	ClientConfig

	// Server contains the local HTTP API settings.
	Server Server
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies defaults for the request timeout
// and client identification, and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

// GetServerConfig builds and validates the daemon config view from the merged
// structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		ClientConfig: *newClientConfig(cfg),
		Server:       cfg.Server,
	}
	if serverCfg.Server.RequestTimeout == 0 {
		serverCfg.Server.RequestTimeout = defaultRequestTimeout
	}

	return serverCfg, serverCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			ClientID:      cfg.App.ClientID,
			ClientVersion: cfg.App.ClientVersion,
		},
		Adapter: ClientAdapter{
			Address:        cfg.Adapter.Address,
			APIKey:         cfg.App.APIKey,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Sync: ClientSync{
			MaxDiffEntries:     cfg.Sync.MaxDiffEntries,
			MaxDatabaseEntries: cfg.Sync.MaxDatabaseEntries,
		},
		Retry: cfg.Retry,
	}

	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if clientCfg.App.ClientID == "" {
		clientCfg.App.ClientID = defaultClientID
	}
	if clientCfg.App.ClientVersion == "" {
		clientCfg.App.ClientVersion = defaultClientVersion
	}

	return clientCfg
}
