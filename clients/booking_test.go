package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBookingClientGetOrCreateSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/sessions" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if body["companyId"] != "co-1" {
			t.Errorf("companyId = %q, want co-1", body["companyId"])
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sessionId":"sess-1","companyId":"co-1","steps":[{"id":"contact","order":1,"name":"Contact","isComplete":false}]}`))
	}))
	defer srv.Close()

	client := NewBookingClient(srv.URL)
	sess, err := client.GetOrCreateSession(context.Background(), "co-1")
	if err != nil {
		t.Fatalf("GetOrCreateSession() error = %v", err)
	}
	if sess.SessionID != "sess-1" || sess.CompanyID != "co-1" {
		t.Errorf("unexpected session: %+v", sess)
	}
	if len(sess.Steps) != 1 || sess.Steps[0].Name != "Contact" {
		t.Errorf("unexpected steps: %+v", sess.Steps)
	}
}

func TestBookingClientSelectStartTimePayload(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/sessions/sess-1/start-time" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewBookingClient(srv.URL)
	if err := client.SelectStartTime(context.Background(), "sess-1", "2025-12-08T09:00:00"); err != nil {
		t.Fatalf("SelectStartTime() error = %v", err)
	}
	if got["selectedStartTime"] != "2025-12-08T09:00:00" {
		t.Errorf("selectedStartTime = %q", got["selectedStartTime"])
	}
}

func TestBookingClientNormalizesUpstreamErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"Slot already booked","errors":[{"field":"startTime","message":"No longer available"}]}`))
	}))
	defer srv.Close()

	client := NewBookingClient(srv.URL)
	_, err := client.ConfirmSession(context.Background(), "sess-1")
	if err == nil {
		t.Fatal("expected error")
	}

	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Status != http.StatusConflict {
		t.Errorf("Status = %d, want 409", apiErr.Status)
	}
	if apiErr.Message != "Slot already booked" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.FieldErrors["startTime"] != "No longer available" {
		t.Errorf("FieldErrors = %v", apiErr.FieldErrors)
	}
}

func TestBookingClientSessionMiss(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Session not found"}`))
	}))
	defer srv.Close()

	client := NewBookingClient(srv.URL)
	_, err := client.GetSession(context.Background(), "gone")
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Errorf("Status = %d, want 404", apiErr.Status)
	}
}
