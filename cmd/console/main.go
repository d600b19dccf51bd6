package main

import (
	_ "taller_moto/docs"
	"taller_moto/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Workshop Console API
// @version         1.0
// @description     Admin console for a motorcycle repair shop (bikes, clients and work orders) backed by the workshop REST API.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /console

func main() {
	routes.Run()
}
