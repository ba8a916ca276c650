package main

import "fingertrack/internal/app"

// @title           FingerTrack API
// @version         1.0
// @description     Multi-tenant attendance and registration backend.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
