// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Note storage backends accepted in Storage.Backend.
const (
	BackendMemory   = "memory"
	BackendDynamoDB = "dynamodb"
	BackendPostgres = "postgres"
)

const (
	defaultServerHTTPAddress    = "localhost:8080"
	defaultServerRequestTimeout = 30 * time.Second
	defaultCursorTTL            = 24 * time.Hour
)

// ServerApp holds the server application settings.
type ServerApp struct {
	Version      string
	APIKey       string
	CursorSecret string
	CursorTTL    time.Duration
}

// ServerStorage holds the note storage backend selection and its settings.
type ServerStorage struct {
	Backend     string
	SeedSamples bool
	DB          DB
	Dynamo      Dynamo
}

// ServerConfig is the notes API configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Server  Server
	Storage ServerStorage
}

// GetServerConfig builds and validates the server config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		App: ServerApp{
			Version:      cfg.App.Version,
			APIKey:       cfg.App.APIKey,
			CursorSecret: cfg.App.CursorSecret,
			CursorTTL:    cfg.App.CursorTTL,
		},
		Server: cfg.Server,
		Storage: ServerStorage{
			Backend:     cfg.Storage.Backend,
			SeedSamples: cfg.Storage.SeedSamples,
			DB:          cfg.Storage.DB,
			Dynamo:      cfg.Storage.Dynamo,
		},
	}

	if serverCfg.Server.HTTPAddress == "" {
		serverCfg.Server.HTTPAddress = defaultServerHTTPAddress
	}
	if serverCfg.Server.RequestTimeout == 0 {
		serverCfg.Server.RequestTimeout = defaultServerRequestTimeout
	}
	if serverCfg.App.CursorTTL == 0 {
		serverCfg.App.CursorTTL = defaultCursorTTL
	}
	if serverCfg.Storage.Backend == "" {
		serverCfg.Storage.Backend = BackendMemory
	}

	return serverCfg
}
