package main

import (
	"context"

	"github.com/mileusna/crontab"

	"abled.ai/abled-api-gateway/app/domain/healthcheck"
	"abled.ai/abled-api-gateway/app/interfaces/http"
	"abled.ai/abled-api-gateway/app/utils/httpclients"
	"abled.ai/abled-api-gateway/app/utils/httpclients/catbox"
	"abled.ai/abled-api-gateway/app/utils/httpclients/gemini"
	"abled.ai/abled-api-gateway/config/environment_variables"
)

type Application struct {
	HttpServer         *http.HttpServer
	HealthcheckService *healthcheck.HealthcheckCrontabService
}

func (application *Application) Start() {
	if err := application.HttpServer.Run(); err != nil {
		panic(err)
	}
}

func init() {
	environment_variables.EnvironmentVariables.LoadFromEnv()
	httpclients.Init()
	gemini.Init()
	catbox.Init()
}

func main() {
	application, err := CreateApplication()
	if err != nil {
		panic(err)
	}
	cron := crontab.New()
	application.HealthcheckService.Start(context.Background(), cron)
	application.Start()
}
