package main

import (
	"rathh/config"
	"rathh/di"
	"rathh/shared/logger"
)

//go:generate go run github.com/swaggo/swag/cmd/swag init -g cmd/app/main.go -o docs

// @title Rathh Travel API
// @version 1.0
// @description Tour search and checkout backend for the Rathh travel site.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
