package routes

import (
	"bookflow/handlers"
	"bookflow/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAppointmentRoutes registers the public booking flow. Every step
// is a loader (GET) + action (POST) pair; only the entry tolerates a
// missing session cookie.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	flow := r.Group("/appointments")
	flow.Use(middleware.RateLimitMiddleware())

	flow.GET("", hb.Appointment.Entry)

	steps := flow.Group("")
	steps.Use(middleware.RequireAppointmentSession())
	{
		steps.GET("/contact", hb.Appointment.ContactPage)
		steps.POST("/contact", hb.Appointment.SubmitContact)

		steps.GET("/employee", hb.Appointment.EmployeePage)
		steps.POST("/employee", hb.Appointment.SelectEmployee)

		steps.GET("/select-services", hb.Appointment.ServicesPage)
		steps.POST("/select-services", hb.Appointment.SelectServices)

		steps.GET("/select-time", hb.Appointment.SelectTimePage)
		steps.POST("/select-time", hb.Appointment.SelectTime)

		steps.GET("/overview", hb.Appointment.OverviewPage)
		steps.POST("/overview", hb.Appointment.Confirm)

		steps.GET("/success", hb.Appointment.SuccessPage)
	}
}
