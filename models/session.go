package models

// Step is one stage of the booking flow as reported by the booking API.
// Steps come back totally ordered by Order; completion is decided remotely.
type Step struct {
	ID         string `json:"id"`
	Order      int    `json:"order"`
	Name       string `json:"name"`
	IsComplete bool   `json:"isComplete"`
}

// SessionStatusConfirmed is the booking API's terminal session status.
const SessionStatusConfirmed = "confirmed"

// AppointmentSession is the remote-owned, in-progress booking state. The
// gateway holds a transient copy for the duration of a single request and
// never mutates it locally; every change goes through the booking API.
type AppointmentSession struct {
	SessionID         string  `json:"sessionId"`
	CompanyID         string  `json:"companyId"`
	Status            string  `json:"status,omitempty"`
	ContactID         string  `json:"contactId,omitempty"`
	SelectedProfileID string  `json:"selectedProfileId,omitempty"`
	SelectedServices  []int64 `json:"selectedServices,omitempty"`
	SelectedStartTime string  `json:"selectedStartTime,omitempty"`
	Steps             []Step  `json:"steps"`
}
