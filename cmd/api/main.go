package main

import (
	_ "taller_api/docs"
	"taller_api/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Taller API
// @version         1.0
// @description     Repair shop backend (citas, reparaciones, refacciones, usuarios, dispositivos y pagos) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
