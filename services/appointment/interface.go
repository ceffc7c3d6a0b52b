package appointment

import (
	"context"

	"bookflow/models"
)

// Overview is the summary the overview and success pages render, fanned
// out from the booking and identity services on every load.
type Overview struct {
	Session          *models.AppointmentSession `json:"session"`
	Contact          *models.Contact            `json:"contact,omitempty"`
	SelectedServices []models.Service           `json:"selectedServices"`
	ActiveStepIndex  int                        `json:"activeStepIndex"`
	State            string                     `json:"state"`
}

// FlowService drives the public booking flow. Every mutation is a single
// call to the booking API, guarded locally by the flow state machine;
// the API remains the source of truth for transition legality.
type FlowService interface {
	GetOrCreate(ctx context.Context, companyID string) (*models.AppointmentSession, error)
	Get(ctx context.Context, sessionID string) (*models.AppointmentSession, error)

	SubmitContact(ctx context.Context, sessionID string, in ContactInput) (*models.AppointmentSession, error)
	SelectProfile(ctx context.Context, sessionID, profileID string) error
	SelectServices(ctx context.Context, sessionID string, serviceIDs []int64) error
	SelectStartTime(ctx context.Context, sessionID, startTime string) error
	Confirm(ctx context.Context, sessionID string) (*models.AppointmentSession, error)

	Profiles(ctx context.Context, sessionID string) ([]models.Profile, error)
	ServiceCatalog(ctx context.Context, sessionID string) ([]models.GroupedServiceGroup, error)
	DaySchedule(ctx context.Context, sessionID, date string) (*models.Schedule, error)
	BuildOverview(ctx context.Context, sessionID string) (*Overview, error)
}

// ContactInput is the contact step's form payload. Only presence is
// validated here; everything domain-level happens upstream.
type ContactInput struct {
	GivenName    string `json:"givenName" form:"givenName" binding:"required"`
	FamilyName   string `json:"familyName" form:"familyName" binding:"required"`
	Email        string `json:"email" form:"email"`
	MobileNumber string `json:"mobileNumber" form:"mobileNumber"`
}
