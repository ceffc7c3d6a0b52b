package clients

import (
	"context"
	"fmt"
	"net/url"

	"bookflow/models"
)

// BookingClient talks to the booking service, which owns appointment
// sessions, service catalogs, schedules and all availability logic.
type BookingClient struct {
	http *HTTPClient
}

func NewBookingClient(baseURL string) *BookingClient {
	return &BookingClient{http: NewHTTPClient(baseURL)}
}

// Ping reports whether the booking service is reachable.
func (c *BookingClient) Ping(ctx context.Context) error {
	return c.http.Ping(ctx)
}

// ContactInput is the minimal contact payload submitted from the contact
// step. Domain-level validation happens upstream.
type ContactInput struct {
	GivenName    string `json:"givenName"`
	FamilyName   string `json:"familyName"`
	Email        string `json:"email,omitempty"`
	MobileNumber string `json:"mobileNumber,omitempty"`
}

func sessionPath(sessionID string, parts ...string) string {
	p := "/api/v1/sessions/" + url.PathEscape(sessionID)
	for _, part := range parts {
		p += "/" + part
	}
	return p
}

// GetOrCreateSession asks the booking service to mint a session bound to
// the given company. Only the flow entry uses this; every other call
// requires an existing session.
func (c *BookingClient) GetOrCreateSession(ctx context.Context, companyID string) (*models.AppointmentSession, error) {
	var session models.AppointmentSession
	body := map[string]string{"companyId": companyID}
	if err := c.http.Post(ctx, "/api/v1/sessions", body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *BookingClient) GetSession(ctx context.Context, sessionID string) (*models.AppointmentSession, error) {
	var session models.AppointmentSession
	if err := c.http.Get(ctx, sessionPath(sessionID), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *BookingClient) SubmitContact(ctx context.Context, sessionID string, in ContactInput) (*models.AppointmentSession, error) {
	var session models.AppointmentSession
	if err := c.http.Post(ctx, sessionPath(sessionID, "contact"), in, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *BookingClient) SelectProfile(ctx context.Context, sessionID, profileID string) error {
	body := map[string]string{"profileId": profileID}
	return c.http.Post(ctx, sessionPath(sessionID, "profile"), body, nil)
}

func (c *BookingClient) SelectServices(ctx context.Context, sessionID string, serviceIDs []int64) error {
	body := map[string][]int64{"serviceIds": serviceIDs}
	return c.http.Post(ctx, sessionPath(sessionID, "services"), body, nil)
}

func (c *BookingClient) SelectStartTime(ctx context.Context, sessionID, startTime string) error {
	body := map[string]string{"selectedStartTime": startTime}
	return c.http.Post(ctx, sessionPath(sessionID, "start-time"), body, nil)
}

// ConfirmSession submits the session for final booking. Double-booking and
// every other conflict is detected here, upstream, and surfaced verbatim.
func (c *BookingClient) ConfirmSession(ctx context.Context, sessionID string) (*models.AppointmentSession, error) {
	var session models.AppointmentSession
	if err := c.http.Post(ctx, sessionPath(sessionID, "confirm"), nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *BookingClient) ListProfiles(ctx context.Context, sessionID string) ([]models.Profile, error) {
	var profiles []models.Profile
	if err := c.http.Get(ctx, sessionPath(sessionID, "profiles"), &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (c *BookingClient) ListServiceGroups(ctx context.Context, sessionID string) ([]models.ServiceGroup, error) {
	var groups []models.ServiceGroup
	if err := c.http.Get(ctx, sessionPath(sessionID, "service-groups"), &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *BookingClient) ListServices(ctx context.Context, sessionID string) ([]models.Service, error) {
	var services []models.Service
	if err := c.http.Get(ctx, sessionPath(sessionID, "services"), &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *BookingClient) GetSchedule(ctx context.Context, sessionID, date string) (*models.Schedule, error) {
	var schedule models.Schedule
	path := sessionPath(sessionID, "schedules") + "?date=" + url.QueryEscape(date)
	if err := c.http.Get(ctx, path, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

// Admin surface: the booking service also owns the company catalog.

func companyPath(companyID string, parts ...string) string {
	p := "/api/v1/companies/" + url.PathEscape(companyID)
	for _, part := range parts {
		p += "/" + part
	}
	return p
}

func (c *BookingClient) ListCompanyServices(ctx context.Context, companyID string) ([]models.Service, error) {
	var services []models.Service
	if err := c.http.Get(ctx, companyPath(companyID, "services"), &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *BookingClient) CreateService(ctx context.Context, companyID string, svc models.Service) (*models.Service, error) {
	var created models.Service
	if err := c.http.Post(ctx, companyPath(companyID, "services"), svc, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *BookingClient) UpdateService(ctx context.Context, companyID string, serviceID int64, svc models.Service) (*models.Service, error) {
	var updated models.Service
	path := companyPath(companyID, "services", fmt.Sprintf("%d", serviceID))
	if err := c.http.Put(ctx, path, svc, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *BookingClient) DeleteService(ctx context.Context, companyID string, serviceID int64) error {
	return c.http.Delete(ctx, companyPath(companyID, "services", fmt.Sprintf("%d", serviceID)))
}

func (c *BookingClient) ListCompanyServiceGroups(ctx context.Context, companyID string) ([]models.ServiceGroup, error) {
	var groups []models.ServiceGroup
	if err := c.http.Get(ctx, companyPath(companyID, "service-groups"), &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *BookingClient) CreateServiceGroup(ctx context.Context, companyID string, group models.ServiceGroup) (*models.ServiceGroup, error) {
	var created models.ServiceGroup
	if err := c.http.Post(ctx, companyPath(companyID, "service-groups"), group, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *BookingClient) GetWeeklySchedule(ctx context.Context, companyID string) (map[string][]models.ScheduleTimeSlot, error) {
	var weekly map[string][]models.ScheduleTimeSlot
	if err := c.http.Get(ctx, companyPath(companyID, "weekly-schedule"), &weekly); err != nil {
		return nil, err
	}
	return weekly, nil
}

func (c *BookingClient) PutWeeklySchedule(ctx context.Context, companyID string, weekly map[string][]models.ScheduleTimeSlot) error {
	return c.http.Put(ctx, companyPath(companyID, "weekly-schedule"), weekly, nil)
}
