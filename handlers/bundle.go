package handlers

import "bookflow/utils"

// HandlerBundle carries the assembled handlers into route registration.
type HandlerBundle struct {
	Appointment *AppointmentHandler
	Auth        *AuthHandler
	Admin       *AdminHandler

	// Refresher backs the auth middleware on protected routes.
	Refresher *utils.Refresher
}
