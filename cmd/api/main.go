package main

import (
	_ "github.com/joho/godotenv/autoload"

	_ "github.com/havncube/billing-service/docs"
	"github.com/havncube/billing-service/internal/adapter/http/routes"
)

// @title           Havn Cube Billing & Estimation API
// @version         1.0
// @description     Estimate management for an interior-design business: line items, totals and printable PDF quotes, backed by DynamoDB.

// @contact.name   Havn Cube
// @contact.email  info@havncube.com

// @host localhost:8080

// @BasePath  /api

func main() {
	routes.Run()
}
