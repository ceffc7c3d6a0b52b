package clients

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// APIError is the canonical form of every upstream error. The upstream
// services answer in several body shapes; NormalizeError maps each known
// shape onto this one, and unknown shapes onto a generic fallback.
type APIError struct {
	Status      int               `json:"-"`
	Code        string            `json:"code,omitempty"`
	Message     string            `json:"message"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream error (%d): %s", e.Status, e.Message)
}

// AsAPIError unwraps err into an *APIError if one is in the chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// rawError covers the union of upstream error body shapes:
//
//	{"message": "...", "code": "...", "errors": [{"field": "...", "message": "..."}]}
//	{"message": "...", "errors": {"field": ["...", "..."]}}
//	{"error": "..."}
//	{"detail": "..."}
type rawError struct {
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Detail  string          `json:"detail"`
	Code    string          `json:"code"`
	Errors  json.RawMessage `json:"errors"`
}

type rawFieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

const fallbackMessage = "The service returned an unexpected error"

// NormalizeError converts an upstream error response into an *APIError.
func NormalizeError(status int, body []byte) *APIError {
	out := &APIError{Status: status, Message: fallbackMessage}

	var raw rawError
	if err := json.Unmarshal(body, &raw); err != nil {
		// Some upstream proxies answer plain text.
		if msg := strings.TrimSpace(string(body)); msg != "" && utf8.ValidString(msg) && !strings.HasPrefix(msg, "<") {
			out.Message = msg
		}
		return out
	}

	switch {
	case raw.Message != "":
		out.Message = raw.Message
	case raw.Error != "":
		out.Message = raw.Error
	case raw.Detail != "":
		out.Message = raw.Detail
	}
	out.Code = raw.Code

	if len(raw.Errors) > 0 {
		out.FieldErrors = parseFieldErrors(raw.Errors)
	}
	return out
}

// parseFieldErrors accepts both field-error list and field→messages map
// shapes; the first message per field wins.
func parseFieldErrors(raw json.RawMessage) map[string]string {
	var list []rawFieldError
	if err := json.Unmarshal(raw, &list); err == nil {
		fields := make(map[string]string, len(list))
		for _, fe := range list {
			if fe.Field == "" {
				continue
			}
			if _, seen := fields[fe.Field]; !seen {
				fields[fe.Field] = fe.Message
			}
		}
		if len(fields) > 0 {
			return fields
		}
		return nil
	}

	var byField map[string][]string
	if err := json.Unmarshal(raw, &byField); err == nil {
		fields := make(map[string]string, len(byField))
		for field, msgs := range byField {
			if len(msgs) > 0 {
				fields[field] = msgs[0]
			}
		}
		if len(fields) > 0 {
			return fields
		}
	}
	return nil
}
