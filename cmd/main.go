// cmd/main.go
package main

import (
	"worktrack-api/app"
)

// @title           Worktrack API
// @version         1.0
// @description     Role-based workload, employee and business travel tracking API.

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
