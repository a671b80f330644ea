package routes

import (
	"github.com/gin-gonic/gin"

	"brainhealth/internal/authz"
	"brainhealth/internal/handlers"
	"brainhealth/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	cognitiveHandler *handlers.CognitiveHandler,
	lifestyleHandler *handlers.LifestyleHandler,
	dashboardHandler *handlers.DashboardHandler,
	caregiverHandler *handlers.CaregiverHandler,
) *gin.Engine {

	// ---- public
	r.POST("/signup", userHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.POST("/refresh", authHandler.RefreshToken)

	// ---- protected
	r.Use(middleware.AuthMiddleware())

	// PROFILE
	r.GET("/me", userHandler.Me)
	r.PUT("/me/telegram", userHandler.UpdateTelegram)

	// COGNITIVE TEST
	test := r.Group("/cognitive-test")
	{
		test.GET("/questions", cognitiveHandler.Questions)
		test.POST("/submit", middleware.RequireRoles(authz.RolePatient), cognitiveHandler.Submit)
		test.GET("/history", middleware.RequireRoles(authz.RolePatient), cognitiveHandler.History)
	}

	// LIFESTYLE (только пациенты)
	lifestyle := r.Group("/lifestyle", middleware.RequireRoles(authz.RolePatient))
	{
		lifestyle.POST("/", lifestyleHandler.Create)
		lifestyle.GET("/", lifestyleHandler.List)
		lifestyle.PUT("/:id", lifestyleHandler.Update)
	}

	// DASHBOARD + RECOMMENDATIONS (только пациенты)
	r.GET("/dashboard", middleware.RequireRoles(authz.RolePatient), dashboardHandler.Get)
	r.GET("/dashboard/access-log", middleware.RequireRoles(authz.RolePatient), dashboardHandler.AccessLog)
	recs := r.Group("/recommendations", middleware.RequireRoles(authz.RolePatient))
	{
		recs.GET("/", dashboardHandler.ListRecommendations)
		recs.POST("/:id/complete", dashboardHandler.CompleteRecommendation)
	}

	// CAREGIVER (только опекуны)
	caregiver := r.Group("/caregiver", middleware.RequireRoles(authz.RoleCaregiver))
	{
		caregiver.POST("/request-access", caregiverHandler.RequestAccess)
		caregiver.POST("/verify-access", caregiverHandler.VerifyAccess)
		caregiver.GET("/patients", caregiverHandler.ListPatients)
		caregiver.GET("/patients/:id/dashboard", caregiverHandler.PatientDashboard)
		caregiver.GET("/patients/:id/report", caregiverHandler.PatientReport)
	}

	return r
}
