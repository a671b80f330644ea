package main

import "brainhealth/internal/app"

// @title           BrainHealth API
// @version         1.0
// @description     Backend for patient/caregiver brain health tracking.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
