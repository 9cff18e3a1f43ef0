// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

func (cfg *ServerConfig) validate() error {
	if cfg.App.CursorSecret == "" {
		return fmt.Errorf("%w: cursor secret is required", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	switch cfg.Storage.Backend {
	case BackendMemory:
	case BackendDynamoDB:
		if cfg.Storage.Dynamo.TableName == "" || cfg.Storage.Dynamo.Region == "" {
			return fmt.Errorf("%w: dynamodb needs table and region", ErrInvalidStorageConfigs)
		}
	case BackendPostgres:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: postgres needs a dsn", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" {
		return ErrInvalidAdapterConfigs
	}
	if u, err := url.Parse(cfg.Adapter.HTTPAddress); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: remote address must be an absolute URL", ErrInvalidAdapterConfigs)
	}

	if cfg.Adapter.PageSize < 1 || cfg.Adapter.PageSize > maxClientPageSize {
		return fmt.Errorf("%w: page size must be within 1..%d", ErrInvalidAdapterConfigs, maxClientPageSize)
	}

	if cfg.lifecycle != LifecycleClearOnStart && cfg.lifecycle != LifecyclePersist {
		return fmt.Errorf("%w: unknown lifecycle %q", ErrInvalidStorageConfigs, cfg.lifecycle)
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
