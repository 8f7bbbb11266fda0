package main

import "leasingcrm/internal/app"

// @title           CRM LLD Automobile API
// @version         1.0.0
// @description     Lead management backend for a vehicle leasing brokerage.
// @BasePath        /api
func main() {
	app.Run()
}
