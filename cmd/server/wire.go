//go:build wireinject

package main

import (
	"github.com/google/wire"

	"abled.ai/abled-api-gateway/app/domain"
	"abled.ai/abled-api-gateway/app/infrastructure"
	"abled.ai/abled-api-gateway/app/infrastructure/database"
	"abled.ai/abled-api-gateway/app/infrastructure/database/repository"
	"abled.ai/abled-api-gateway/app/interfaces/http"
	"abled.ai/abled-api-gateway/app/interfaces/http/routes"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		database.NewDB,
		repository.RepositoryProvider,
		infrastructure.InfrastructureProvider,
		domain.ServiceProvider,
		routes.RouteProvider,
		http.NewHttpServer,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
