package routes

import (
	"time"

	"bookflow/handlers"
	"bookflow/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every route group onto the engine.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAppointmentRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.Health)
}

// RegisterAuthRoutes registers the credential endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/sign-in", hb.Auth.SignIn)
		api.POST("/sign-out", hb.Auth.SignOut)
		api.POST("/invites/accept", hb.Auth.AcceptInvite)
	}
}

// RegisterAdminRoutes registers the authenticated company-administration
// endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	api.Use(middleware.JWTAuthMiddleware(hb.Refresher))

	company := api.Group("/companies/:companyId")
	{
		company.GET("", hb.Admin.GetCompany)
		company.PUT("", hb.Admin.UpdateCompany)

		company.GET("/employees", hb.Admin.ListEmployees)
		company.POST("/employees", hb.Admin.CreateEmployee)
		company.PUT("/employees/:employeeId", hb.Admin.UpdateEmployee)
		company.DELETE("/employees/:employeeId", hb.Admin.DeleteEmployee)

		company.GET("/services", hb.Admin.ListServices)
		company.POST("/services", hb.Admin.CreateService)
		company.PUT("/services/:serviceId", hb.Admin.UpdateService)
		company.DELETE("/services/:serviceId", hb.Admin.DeleteService)

		company.GET("/service-groups", hb.Admin.ListServiceGroups)
		company.POST("/service-groups", hb.Admin.CreateServiceGroup)

		company.GET("/weekly-schedule", hb.Admin.GetWeeklySchedule)
		company.PUT("/weekly-schedule", hb.Admin.PutWeeklySchedule)
	}
}
