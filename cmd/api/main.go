package main

import (
	_ "parlamento/docs"
	"parlamento/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Parlamento API
// @version         1.0
// @description     CRUD API for parliament law entries, autonomous regions and data sources.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:4000

// @BasePath  /

func main() {
	routes.Run()
}
