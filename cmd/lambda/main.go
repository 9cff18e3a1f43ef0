// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command lambda serves the notes HTTP API from AWS Lambda behind an API
// Gateway HTTP API. The router is the same one the standalone server uses.
package main

import (
	"context"

	"github.com/MKhiriev/sentiment-notes/internal/config"
	"github.com/MKhiriev/sentiment-notes/internal/handler/http"
	"github.com/MKhiriev/sentiment-notes/internal/logger"
	"github.com/MKhiriev/sentiment-notes/internal/service"
	"github.com/MKhiriev/sentiment-notes/internal/store"
	"github.com/MKhiriev/sentiment-notes/models"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var (
	chiLambda *chiadapter.ChiLambdaV2
	log       *logger.Logger
)

// init runs once per cold start.
func init() {
	log = logger.NewLogger("sentiment-notes-lambda")

	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, nil, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, cfg, buildInfo, nil, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	chiLambda = chiadapter.NewV2(http.NewHandler(services, cfg.App, nil, log).Init())
	log.Info().Msg("lambda cold start completed")
}

// Handler proxies one API Gateway request through the chi router.
func Handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	resp, err := chiLambda.ProxyWithContextV2(ctx, req)
	if err != nil {
		log.Err(err).
			Str("func", "Handler").
			Str("request_id", req.RequestContext.RequestID).
			Msg("error proxying request")
	}
	return resp, err
}

func main() {
	lambda.Start(Handler)
}
