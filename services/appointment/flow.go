package appointment

import (
	"fmt"

	"bookflow/models"
)

// State names the stages of the booking flow. Every action derives the
// session's state and checks the transition guard before calling the
// booking API, so illegal jumps fail fast locally. The booking API stays
// the source of truth.
type State int

const (
	StateCreated State = iota
	StateContactCollected
	StateProfileSelected
	StateServicesSelected
	StateTimeSelected
	StateConfirmed
)

var stateNames = map[State]string{
	StateCreated:          "created",
	StateContactCollected: "contact_collected",
	StateProfileSelected:  "profile_selected",
	StateServicesSelected: "services_selected",
	StateTimeSelected:     "time_selected",
	StateConfirmed:        "confirmed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Operation is a state-advancing call against the booking API.
type Operation string

const (
	OpSubmitContact   Operation = "submit-contact"
	OpSelectProfile   Operation = "select-profile"
	OpSelectServices  Operation = "select-services"
	OpSelectStartTime Operation = "select-start-time"
	OpConfirm         Operation = "confirm"
)

// guards maps each operation to the state the session must have reached.
var guards = map[Operation]State{
	OpSubmitContact:   StateCreated,
	OpSelectProfile:   StateContactCollected,
	OpSelectServices:  StateProfileSelected,
	OpSelectStartTime: StateServicesSelected,
	OpConfirm:         StateTimeSelected,
}

// DeriveState computes the session's flow state from its fields. The
// remote session is append-only through the flow, so presence of a field
// means the corresponding step was passed. Confirmation is read from the
// session's explicit status only: step completion is a presentation
// concern owned by the booking API, and a session whose steps are all
// complete may still be awaiting its confirm call.
func DeriveState(sess *models.AppointmentSession) State {
	switch {
	case sess.Status == models.SessionStatusConfirmed:
		return StateConfirmed
	case sess.SelectedStartTime != "":
		return StateTimeSelected
	case len(sess.SelectedServices) > 0:
		return StateServicesSelected
	case sess.SelectedProfileID != "":
		return StateProfileSelected
	case sess.ContactID != "":
		return StateContactCollected
	default:
		return StateCreated
	}
}

// FlowError reports an operation attempted before its prerequisite state.
type FlowError struct {
	Op       Operation
	Required State
	Current  State
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s requires the session to have reached %s, but it is at %s", e.Op, e.Required, e.Current)
}

// Guard returns a *FlowError when the session has not reached the state
// required by op. A confirmed session accepts no further operations.
func Guard(sess *models.AppointmentSession, op Operation) error {
	current := DeriveState(sess)
	if current == StateConfirmed {
		return &FlowError{Op: op, Required: guards[op], Current: current}
	}
	required, ok := guards[op]
	if !ok {
		return fmt.Errorf("unknown flow operation: %s", op)
	}
	if current < required {
		return &FlowError{Op: op, Required: required, Current: current}
	}
	return nil
}
