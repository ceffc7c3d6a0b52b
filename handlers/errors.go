package handlers

import (
	"errors"
	"net/http"
	"strings"

	"bookflow/clients"
	"bookflow/services/appointment"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// respondError maps a service error onto the response. Normalized upstream
// errors keep their status and body (message, code, fieldErrors); flow
// guard violations are a 409; anything else hits the generic boundary.
func respondError(c *gin.Context, err error) {
	if apiErr, ok := clients.AsAPIError(err); ok {
		c.JSON(apiErr.Status, apiErr)
		return
	}

	var flowErr *appointment.FlowError
	if errors.As(err, &flowErr) {
		c.JSON(http.StatusConflict, gin.H{"message": flowErr.Error()})
		return
	}

	getLogger(c).Error("unexpected error", zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"message": "Upstream service unavailable"})
}

// sessionExpired reports whether an error from a session-scoped call means
// the remote session is gone (expired or unknown id). Step routes answer
// that with a redirect to the flow entry.
func sessionExpired(err error) bool {
	if apiErr, ok := clients.AsAPIError(err); ok {
		return apiErr.Status == http.StatusNotFound || apiErr.Status == http.StatusGone
	}
	return false
}

// bindingFieldErrors translates validator failures from gin's binding into
// a field→message map matching the upstream error shape, so forms render
// local and remote validation identically.
func bindingFieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if name != "" {
			name = strings.ToLower(name[:1]) + name[1:]
		}
		switch fe.Tag() {
		case "required":
			fields[name] = name + " is required"
		default:
			fields[name] = name + " is invalid"
		}
	}
	return fields
}
