package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"bookflow/clients"
	"bookflow/config"
	"bookflow/middleware"
	"bookflow/models"
	"bookflow/services/appointment"
	"bookflow/utils"

	"github.com/gin-gonic/gin"
)

// fakeFlow records calls and returns canned results so handler tests never
// touch the booking or identity services.
type fakeFlow struct {
	session *models.AppointmentSession
	err     error

	gotServiceIDs []int64
	gotStartTime  string
	gotContact    appointment.ContactInput
}

func (f *fakeFlow) GetOrCreate(ctx context.Context, companyID string) (*models.AppointmentSession, error) {
	return f.session, f.err
}

func (f *fakeFlow) Get(ctx context.Context, sessionID string) (*models.AppointmentSession, error) {
	return f.session, f.err
}

func (f *fakeFlow) SubmitContact(ctx context.Context, sessionID string, in appointment.ContactInput) (*models.AppointmentSession, error) {
	f.gotContact = in
	return f.session, f.err
}

func (f *fakeFlow) SelectProfile(ctx context.Context, sessionID, profileID string) error {
	return f.err
}

func (f *fakeFlow) SelectServices(ctx context.Context, sessionID string, serviceIDs []int64) error {
	f.gotServiceIDs = serviceIDs
	return f.err
}

func (f *fakeFlow) SelectStartTime(ctx context.Context, sessionID, startTime string) error {
	f.gotStartTime = startTime
	return f.err
}

func (f *fakeFlow) Confirm(ctx context.Context, sessionID string) (*models.AppointmentSession, error) {
	return f.session, f.err
}

func (f *fakeFlow) Profiles(ctx context.Context, sessionID string) ([]models.Profile, error) {
	return nil, f.err
}

func (f *fakeFlow) ServiceCatalog(ctx context.Context, sessionID string) ([]models.GroupedServiceGroup, error) {
	return nil, f.err
}

func (f *fakeFlow) DaySchedule(ctx context.Context, sessionID, date string) (*models.Schedule, error) {
	return &models.Schedule{Date: date}, f.err
}

func (f *fakeFlow) BuildOverview(ctx context.Context, sessionID string) (*appointment.Overview, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &appointment.Overview{Session: f.session}, nil
}

func newFlowRouter(flow appointment.FlowService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAppointmentHandler(flow)

	r := gin.New()
	r.GET(PathEntry, h.Entry)
	steps := r.Group("/appointments", middleware.RequireAppointmentSession())
	{
		steps.POST("/contact", h.SubmitContact)
		steps.POST("/employee", h.SelectEmployee)
		steps.POST("/select-services", h.SelectServices)
		steps.GET("/select-time", h.SelectTimePage)
		steps.POST("/select-time", h.SelectTime)
		steps.POST("/overview", h.Confirm)
	}
	return r
}

func sessionCookie(sessionID string) *http.Cookie {
	return &http.Cookie{Name: middleware.SessionCookieName, Value: utils.SignValue(sessionID)}
}

func postForm(r *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStepRoutesRequireSessionCookie(t *testing.T) {
	config.AppConfig.CookieSecret = "test-secret"
	r := newFlowRouter(&fakeFlow{})

	w := postForm(r, "/appointments/select-time", url.Values{"startTime": {"2025-12-08T09:00:00"}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body["message"] != "Missing appointment session" {
		t.Errorf("message = %q", body["message"])
	}
}

func TestStepRoutesRejectTamperedCookie(t *testing.T) {
	config.AppConfig.CookieSecret = "test-secret"
	r := newFlowRouter(&fakeFlow{})

	ck := &http.Cookie{Name: middleware.SessionCookieName, Value: "sess-1.forged-signature"}
	w := postForm(r, "/appointments/select-time", url.Values{"startTime": {"2025-12-08T09:00:00"}}, ck)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestSubmitContactValidatesNames(t *testing.T) {
	config.AppConfig.CookieSecret = "test-secret"
	flow := &fakeFlow{}
	r := newFlowRouter(flow)

	w := postForm(r, "/appointments/contact", url.Values{"givenName": {"Ada"}}, sessionCookie("sess-1"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}

	var body struct {
		Message     string            `json:"message"`
		FieldErrors map[string]string `json:"fieldErrors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.FieldErrors["familyName"] != "familyName is required" {
		t.Errorf("fieldErrors = %v", body.FieldErrors)
	}
}

func TestSubmitContactRedirectsToEmployeeStep(t *testing.T) {
	config.AppConfig.CookieSecret = "test-secret"
	flow := &fakeFlow{session: &models.AppointmentSession{SessionID: "sess-1"}}
	r := newFlowRouter(flow)

	form := url.Values{"givenName": {"Ada"}, "familyName": {"Lovelace"}, "email": {"ada@example.com"}}
	w := postForm(r, "/appointments/contact", form, sessionCookie("sess-1"))
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusSeeOther, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != PathEmployee {
		t.Errorf("Location = %q, want %q", loc, PathEmployee)
	}
	if flow.gotContact.GivenName != "Ada" || flow.gotContact.FamilyName != "Lovelace" {
		t.Errorf("contact passed to flow = %+v", flow.gotContact)
	}
}

func TestSelectServicesRejectsEmptySelection(t *testing.T) {
	config.AppConfig.CookieSecret = "test-secret"
	r := newFlowRouter(&fakeFlow{})

	w := postForm(r, "/appointments/select-services", url.Values{"serviceIds": {""}}, sessionCookie("sess-1"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body["message"] != "At least one service is required" {
		t.Errorf("message = %q", body["message"])
	}
}

func TestSelectServicesForwardsParsedIDs(t *testing.T) {
	config.AppConfig.CookieSecret = "test-secret"
	flow := &fakeFlow{}
	r := newFlowRouter(flow)

	w := postForm(r, "/appointments/select-services", url.Values{"serviceIds": {"3,1,7"}}, sessionCookie("sess-1"))
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusSeeOther, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != PathSelectTime {
		t.Errorf("Location = %q, want %q", loc, PathSelectTime)
	}
	want := []int64{3, 1, 7}
	if len(flow.gotServiceIDs) != len(want) {
		t.Fatalf("service ids = %v, want %v", flow.gotServiceIDs, want)
	}
	for i, id := range want {
		if flow.gotServiceIDs[i] != id {
			t.Errorf("service ids = %v, want %v", flow.gotServiceIDs, want)
			break
		}
	}
}

func TestSelectTimeRedirectsWithChosenTime(t *testing.T) {
	config.AppConfig.CookieSecret = "test-secret"
	flow := &fakeFlow{}
	r := newFlowRouter(flow)

	w := postForm(r, "/appointments/select-time", url.Values{"startTime": {"2025-12-08T09:00:00"}}, sessionCookie("sess-1"))
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusSeeOther, w.Body.String())
	}
	want := PathSelectTime + "?time=" + url.QueryEscape("2025-12-08T09:00:00")
	if loc := w.Header().Get("Location"); loc != want {
		t.Errorf("Location = %q, want %q", loc, want)
	}
	if flow.gotStartTime != "2025-12-08T09:00:00" {
		t.Errorf("start time passed to flow = %q", flow.gotStartTime)
	}
}

func TestStepRoutesRedirectWhenSessionGone(t *testing.T) {
	config.AppConfig.CookieSecret = "test-secret"
	flow := &fakeFlow{err: &clients.APIError{Status: http.StatusNotFound, Message: "Session not found"}}
	r := newFlowRouter(flow)

	w := postForm(r, "/appointments/select-time", url.Values{"startTime": {"2025-12-08T09:00:00"}}, sessionCookie("sess-gone"))
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if loc := w.Header().Get("Location"); loc != PathEntry {
		t.Errorf("Location = %q, want %q", loc, PathEntry)
	}
}

func TestConfirmSurfacesSlotConflict(t *testing.T) {
	config.AppConfig.CookieSecret = "test-secret"
	flow := &fakeFlow{err: &clients.APIError{
		Status:  http.StatusConflict,
		Message: "Selected time is no longer available",
		Code:    "SLOT_TAKEN",
	}}
	r := newFlowRouter(flow)

	w := postForm(r, "/appointments/overview", nil, sessionCookie("sess-1"))
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusConflict)
	}
	var body clients.APIError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.Message != "Selected time is no longer available" || body.Code != "SLOT_TAKEN" {
		t.Errorf("body = %+v", body)
	}
}

func TestEntryRequiresCompanyIDWithoutSession(t *testing.T) {
	config.AppConfig.CookieSecret = "test-secret"
	r := newFlowRouter(&fakeFlow{})

	req := httptest.NewRequest(http.MethodGet, PathEntry, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestEntryMintsSessionAndSetsCookie(t *testing.T) {
	config.AppConfig.CookieSecret = "test-secret"
	flow := &fakeFlow{session: &models.AppointmentSession{SessionID: "sess-new", CompanyID: "comp-1"}}
	r := newFlowRouter(flow)

	req := httptest.NewRequest(http.MethodGet, PathEntry+"?companyId=comp-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var found bool
	for _, ck := range w.Result().Cookies() {
		if ck.Name != middleware.SessionCookieName {
			continue
		}
		found = true
		id, err := utils.VerifyValue(ck.Value)
		if err != nil {
			t.Fatalf("cookie did not verify: %v", err)
		}
		if id != "sess-new" {
			t.Errorf("cookie session id = %q", id)
		}
		if !ck.HttpOnly {
			t.Error("session cookie is not httpOnly")
		}
	}
	if !found {
		t.Fatal("no session cookie set")
	}
}
