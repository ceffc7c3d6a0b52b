package middleware

import (
	"net/http"

	"bookflow/config"
	"bookflow/utils"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the signed appointment-session cookie.
const SessionCookieName = "appointment_session"

const sessionIDKey = "appointmentSessionID"

// SetSessionCookie writes the signed session-id cookie. httpOnly, lax,
// 24h: the booking API expires the session server-side on the same
// horizon, so cookie expiry is the only local cleanup needed.
func SetSessionCookie(c *gin.Context, sessionID string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		SessionCookieName,
		utils.SignValue(sessionID),
		int(config.SessionCookieMaxAge.Seconds()),
		"/",
		"",
		config.AppConfig.SecureCookie,
		true,
	)
}

// SessionIDFromRequest extracts and verifies the session id. A missing,
// malformed or tampered cookie all read as "no session".
func SessionIDFromRequest(c *gin.Context) (string, bool) {
	signed, err := c.Cookie(SessionCookieName)
	if err != nil {
		return "", false
	}
	id, err := utils.VerifyValue(signed)
	if err != nil || id == "" {
		return "", false
	}
	return id, true
}

// RequireAppointmentSession guards every step past the flow entry. The
// entry route alone tolerates a missing session (it get-or-creates one);
// everywhere else the absence is a caller error, not a trigger to mint.
func RequireAppointmentSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := SessionIDFromRequest(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Missing appointment session"})
			return
		}
		c.Set(sessionIDKey, id)
		c.Next()
	}
}

// SessionID returns the verified session id set by RequireAppointmentSession.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
