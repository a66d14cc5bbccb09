package main

import (
	"github.com/joho/godotenv"
	"zavasearch/internal/cli"
)

func main() {
	// Endpoints and API keys are usually kept in a .env file next to the
	// product data, like the service dashboards suggest.
	_ = godotenv.Load()

	cli.Execute()
}
