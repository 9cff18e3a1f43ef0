// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Local cache lifecycle policies accepted in Storage.Local.Lifecycle.
const (
	LifecycleClearOnStart = "clear-on-start"
	LifecyclePersist      = "persist"
)

const (
	defaultClientRequestTimeout = 10 * time.Second
	defaultClientPageSize       = 10
	maxClientPageSize           = 100
	defaultBreakerFailures      = 5
	defaultBreakerTimeout       = 30 * time.Second
	defaultRefreshInterval      = 30 * time.Second
	defaultLocalDSN             = "notes-cache.db"
	defaultLogMaxSizeMB         = 10
	defaultLogMaxBackups        = 3
)

// ClientAdapter holds the settings of one remote notes API client.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the remote API.
	HTTPAddress string
	// APIKey is sent in the x-api-key header when non-empty.
	APIKey string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// PageSize is the fixed page size used for every fetch.
	PageSize int
	// BreakerFailures is the consecutive failure count that opens the breaker.
	BreakerFailures uint32
	// BreakerTimeout is the open state duration of the breaker.
	BreakerTimeout time.Duration
}

// ClientStorage groups client local cache settings.
type ClientStorage struct {
	// DSN is the SQLite file holding the cache slot.
	DSN string
	// ClearOnStart wipes the cache slot when the client starts.
	ClearOnStart bool
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the current page is re-fetched.
	RefreshInterval time.Duration
}

// ClientLog contains the client log file settings.
type ClientLog struct {
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the remote API client settings.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// Log contains the log file settings.
	Log ClientLog

	lifecycle string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies defaults, and validates the
// resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:     cfg.Adapter.HTTPAddress,
			APIKey:          cfg.Adapter.APIKey,
			RequestTimeout:  cfg.Adapter.RequestTimeout,
			PageSize:        cfg.Adapter.PageSize,
			BreakerFailures: cfg.Adapter.BreakerFailures,
			BreakerTimeout:  cfg.Adapter.BreakerTimeout,
		},
		Storage: ClientStorage{DSN: cfg.Storage.Local.DSN},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
		Log: ClientLog{
			File:       cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
		},
		lifecycle: cfg.Storage.Local.Lifecycle,
	}

	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = defaultClientRequestTimeout
	}
	if clientCfg.Adapter.PageSize == 0 {
		clientCfg.Adapter.PageSize = defaultClientPageSize
	}
	if clientCfg.Adapter.BreakerFailures == 0 {
		clientCfg.Adapter.BreakerFailures = defaultBreakerFailures
	}
	if clientCfg.Adapter.BreakerTimeout == 0 {
		clientCfg.Adapter.BreakerTimeout = defaultBreakerTimeout
	}
	if clientCfg.Storage.DSN == "" {
		clientCfg.Storage.DSN = defaultLocalDSN
	}
	if clientCfg.lifecycle == "" {
		clientCfg.lifecycle = LifecycleClearOnStart
	}
	clientCfg.Storage.ClearOnStart = clientCfg.lifecycle == LifecycleClearOnStart
	if clientCfg.Workers.RefreshInterval == 0 {
		clientCfg.Workers.RefreshInterval = defaultRefreshInterval
	}
	if clientCfg.Log.MaxSizeMB == 0 {
		clientCfg.Log.MaxSizeMB = defaultLogMaxSizeMB
	}
	if clientCfg.Log.MaxBackups == 0 {
		clientCfg.Log.MaxBackups = defaultLogMaxBackups
	}

	return clientCfg
}
