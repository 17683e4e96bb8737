package main

import (
	_ "sfg_core/docs"
	"sfg_core/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           SFG Core API
// @version         1.0
// @description     Field-service core API (price book, intakes, customers, jobs, estimates) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the API token.

func main() {
	routes.Run()
}
