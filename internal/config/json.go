// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files. Durations
// are written as strings ("30s", "1h").
type StructuredJSONConfig struct {
	App struct {
		Version      string   `json:"version"`
		APIKey       string   `json:"api_key"`
		CursorSecret string   `json:"cursor_secret"`
		CursorTTL    Duration `json:"cursor_ttl"`
	} `json:"app,omitempty"`

	Storage struct {
		Backend     string `json:"backend"`
		SeedSamples bool   `json:"seed_samples"`

		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Dynamo struct {
			TableName string `json:"table"`
			Region    string `json:"region"`
			Endpoint  string `json:"endpoint"`
		} `json:"dynamo,omitempty"`

		Local struct {
			DSN       string `json:"dsn"`
			Lifecycle string `json:"lifecycle"`
		} `json:"local,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress     string   `json:"http_address"`
		APIKey          string   `json:"api_key"`
		RequestTimeout  Duration `json:"request_timeout"`
		PageSize        int      `json:"page_size"`
		BreakerFailures uint32   `json:"breaker_failures"`
		BreakerTimeout  Duration `json:"breaker_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers,omitempty"`

	Log struct {
		File       string `json:"file"`
		MaxSizeMB  int    `json:"max_size_mb"`
		MaxBackups int    `json:"max_backups"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:      jsonCfg.App.Version,
			APIKey:       jsonCfg.App.APIKey,
			CursorSecret: jsonCfg.App.CursorSecret,
			CursorTTL:    time.Duration(jsonCfg.App.CursorTTL),
		},
		Storage: Storage{
			Backend:     jsonCfg.Storage.Backend,
			SeedSamples: jsonCfg.Storage.SeedSamples,
			DB:          DB{DSN: jsonCfg.Storage.DB.DSN},
			Dynamo: Dynamo{
				TableName: jsonCfg.Storage.Dynamo.TableName,
				Region:    jsonCfg.Storage.Dynamo.Region,
				Endpoint:  jsonCfg.Storage.Dynamo.Endpoint,
			},
			Local: Local{
				DSN:       jsonCfg.Storage.Local.DSN,
				Lifecycle: jsonCfg.Storage.Local.Lifecycle,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:     jsonCfg.Adapter.HTTPAddress,
			APIKey:          jsonCfg.Adapter.APIKey,
			RequestTimeout:  time.Duration(jsonCfg.Adapter.RequestTimeout),
			PageSize:        jsonCfg.Adapter.PageSize,
			BreakerFailures: jsonCfg.Adapter.BreakerFailures,
			BreakerTimeout:  time.Duration(jsonCfg.Adapter.BreakerTimeout),
		},
		Workers: Workers{RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval)},
		Log: Log{
			File:       jsonCfg.Log.File,
			MaxSizeMB:  jsonCfg.Log.MaxSizeMB,
			MaxBackups: jsonCfg.Log.MaxBackups,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
