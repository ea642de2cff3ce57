package main

import (
	"fastfitbeat/internal/cli"

	// Import docs for Swagger
	_ "fastfitbeat/docs"
)

// @title FastFit Beat API
// @version 1.0.0
// @description Station catalog, playback analytics and stream relay service for the FastFit Beat radio player.
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a JWT token.

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
