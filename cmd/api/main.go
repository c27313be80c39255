package main

import (
	_ "firex_service/docs"
	"firex_service/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Field Service API
// @version         1.0
// @description     Fire-extinguisher field-service requests (pickup, recharge, return) backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
