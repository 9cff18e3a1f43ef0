// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"os"
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

// ParseFlags parses the process command line into a partial
// [StructuredConfig].
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health server address in format [host]:[port]
//	-backend note storage backend (memory, dynamodb, postgres)
//	-d database DSN
//	-dynamo-table DynamoDB table name
//	-local-dsn client SQLite cache file
//	-remote client remote API base URL
//	-api-key API key (server check and client header)
//	-cursor-secret cursor signing secret
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-page-size client page size
//	-refresh-interval client refresh interval
//	-log-file client log file
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("sentiment-notes", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var backend, databaseDSN, dynamoTable, localDSN string
	var remoteAddress, apiKey, cursorSecret string
	var jsonConfigPath, logFile string
	var requestTimeout, refreshInterval time.Duration
	var pageSize int

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc health server address host:port")
	fs.StringVar(&backend, "backend", "", "Note storage backend: memory, dynamodb or postgres")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&dynamoTable, "dynamo-table", "", "DynamoDB table name")
	fs.StringVar(&localDSN, "local-dsn", "", "Client SQLite cache file")
	fs.StringVar(&remoteAddress, "remote", "", "Remote notes API base URL")
	fs.StringVar(&apiKey, "api-key", "", "API key")
	fs.StringVar(&cursorSecret, "cursor-secret", "", "Cursor signing secret")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&pageSize, "page-size", 0, "Notes per page")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Refresh interval (e.g., 30s)")
	fs.StringVar(&logFile, "log-file", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			APIKey:       apiKey,
			CursorSecret: cursorSecret,
		},
		Storage: Storage{
			Backend: backend,
			DB:      DB{DSN: databaseDSN},
			Dynamo:  Dynamo{TableName: dynamoTable},
			Local:   Local{DSN: localDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			APIKey:         apiKey,
			RequestTimeout: requestTimeout,
			PageSize:       pageSize,
		},
		Workers:      Workers{RefreshInterval: refreshInterval},
		Log:          Log{File: logFile},
		JSONFilePath: jsonConfigPath,
	}, nil
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
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
