package handlers

import (
	"net/http"
	"net/url"
	"time"

	"bookflow/middleware"
	"bookflow/services/appointment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Step route paths. Actions redirect to the fixed next step; the chosen
// value rides along as a query parameter so the next loader can reflect it
// without a second remote round trip.
const (
	PathEntry          = "/appointments"
	PathContact        = "/appointments/contact"
	PathEmployee       = "/appointments/employee"
	PathSelectServices = "/appointments/select-services"
	PathSelectTime     = "/appointments/select-time"
	PathOverview       = "/appointments/overview"
	PathSuccess        = "/appointments/success"
)

// AppointmentHandler serves the public booking flow: one loader (GET) and
// one action (POST) per step.
type AppointmentHandler struct {
	Flow appointment.FlowService
}

func NewAppointmentHandler(flow appointment.FlowService) *AppointmentHandler {
	return &AppointmentHandler{Flow: flow}
}

type sessionView struct {
	Session         any    `json:"session"`
	ActiveStepIndex int    `json:"activeStepIndex"`
	State           string `json:"state"`
}

// Entry is the only route tolerant of a missing session: with a valid
// cookie it resumes, otherwise it asks the booking API to mint a session
// for the given company and sets the cookie.
func (h *AppointmentHandler) Entry(c *gin.Context) {
	ctx := c.Request.Context()

	if id, ok := middleware.SessionIDFromRequest(c); ok {
		if sess, err := h.Flow.Get(ctx, id); err == nil {
			c.JSON(http.StatusOK, sessionView{
				Session:         sess,
				ActiveStepIndex: appointment.ActiveStepIndex(sess.Steps),
				State:           appointment.DeriveState(sess).String(),
			})
			return
		}
		// Stale cookie: fall through and mint a fresh session.
	}

	companyID := c.Query("companyId")
	if companyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "companyId is required"})
		return
	}

	sess, err := h.Flow.GetOrCreate(ctx, companyID)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetSessionCookie(c, sess.SessionID)
	getLogger(c).Info("booking session started",
		zap.String("sessionId", sess.SessionID),
		zap.String("companyId", companyID),
	)
	c.JSON(http.StatusOK, sessionView{
		Session:         sess,
		ActiveStepIndex: appointment.ActiveStepIndex(sess.Steps),
		State:           appointment.DeriveState(sess).String(),
	})
}

// ContactPage loads the session and, when a contact was already submitted,
// its details.
func (h *AppointmentHandler) ContactPage(c *gin.Context) {
	overview, err := h.Flow.BuildOverview(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		if sessionExpired(err) {
			c.Redirect(http.StatusSeeOther, PathEntry)
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// SubmitContact validates presence of the name fields only; everything
// else is the identity and booking services' business.
func (h *AppointmentHandler) SubmitContact(c *gin.Context) {
	var in appointment.ContactInput
	if err := c.ShouldBind(&in); err != nil {
		if fields := bindingFieldErrors(err); fields != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid contact details", "fieldErrors": fields})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid contact details"})
		return
	}

	if _, err := h.Flow.SubmitContact(c.Request.Context(), middleware.SessionID(c), in); err != nil {
		if sessionExpired(err) {
			c.Redirect(http.StatusSeeOther, PathEntry)
			return
		}
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, PathEmployee)
}

// EmployeePage loads the bookable profiles for the session's company.
func (h *AppointmentHandler) EmployeePage(c *gin.Context) {
	profiles, err := h.Flow.Profiles(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		if sessionExpired(err) {
			c.Redirect(http.StatusSeeOther, PathEntry)
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

func (h *AppointmentHandler) SelectEmployee(c *gin.Context) {
	var in struct {
		ProfileID string `json:"profileId" form:"profileId" binding:"required"`
	}
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "profileId is required"})
		return
	}

	if err := h.Flow.SelectProfile(c.Request.Context(), middleware.SessionID(c), in.ProfileID); err != nil {
		if sessionExpired(err) {
			c.Redirect(http.StatusSeeOther, PathEntry)
			return
		}
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, PathSelectServices)
}

// ServicesPage loads the grouped service catalog.
func (h *AppointmentHandler) ServicesPage(c *gin.Context) {
	catalog, err := h.Flow.ServiceCatalog(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		if sessionExpired(err) {
			c.Redirect(http.StatusSeeOther, PathEntry)
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"serviceGroups": catalog})
}

func (h *AppointmentHandler) SelectServices(c *gin.Context) {
	var in struct {
		ServiceIDs string `json:"serviceIds" form:"serviceIds"`
	}
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid service selection"})
		return
	}

	ids, err := appointment.ParseServiceIDs(in.ServiceIDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if len(ids) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "At least one service is required"})
		return
	}

	if err := h.Flow.SelectServices(c.Request.Context(), middleware.SessionID(c), ids); err != nil {
		if sessionExpired(err) {
			c.Redirect(http.StatusSeeOther, PathEntry)
			return
		}
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, PathSelectTime)
}

// SelectTimePage loads one day's slots, annotated against the wall clock.
// The date defaults to today; a previously chosen time echoes back from
// the query string.
func (h *AppointmentHandler) SelectTimePage(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "date must be YYYY-MM-DD"})
		return
	}

	schedule, err := h.Flow.DaySchedule(c.Request.Context(), middleware.SessionID(c), date)
	if err != nil {
		if sessionExpired(err) {
			c.Redirect(http.StatusSeeOther, PathEntry)
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":         schedule.Date,
		"timeSlots":    appointment.AnnotateSlots(schedule.TimeSlots, time.Now(), nil),
		"selectedTime": c.Query("time"),
	})
}

// SelectTime posts the chosen start time and redirects back to the
// select-time loader with the choice in the query string.
func (h *AppointmentHandler) SelectTime(c *gin.Context) {
	var in struct {
		StartTime string `json:"startTime" form:"startTime" binding:"required"`
	}
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "startTime is required"})
		return
	}

	if err := h.Flow.SelectStartTime(c.Request.Context(), middleware.SessionID(c), in.StartTime); err != nil {
		if sessionExpired(err) {
			c.Redirect(http.StatusSeeOther, PathEntry)
			return
		}
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, PathSelectTime+"?time="+url.QueryEscape(in.StartTime))
}

// OverviewPage fans out everything the summary needs.
func (h *AppointmentHandler) OverviewPage(c *gin.Context) {
	overview, err := h.Flow.BuildOverview(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		if sessionExpired(err) {
			c.Redirect(http.StatusSeeOther, PathEntry)
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// Confirm submits the session for final booking. A slot conflict found
// upstream comes back verbatim through respondError; no re-fetch of
// availability is attempted.
func (h *AppointmentHandler) Confirm(c *gin.Context) {
	sess, err := h.Flow.Confirm(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		if sessionExpired(err) {
			c.Redirect(http.StatusSeeOther, PathEntry)
			return
		}
		respondError(c, err)
		return
	}

	getLogger(c).Info("booking confirmed",
		zap.String("sessionId", sess.SessionID),
		zap.String("startTime", sess.SelectedStartTime),
	)
	c.Redirect(http.StatusSeeOther, PathSuccess)
}

// SuccessPage renders the confirmed session summary.
func (h *AppointmentHandler) SuccessPage(c *gin.Context) {
	overview, err := h.Flow.BuildOverview(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		if sessionExpired(err) {
			c.Redirect(http.StatusSeeOther, PathEntry)
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}
