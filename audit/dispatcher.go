package audit

import "bookflow/utils"

// Event is one booking-flow milestone worth keeping.
type Event struct {
	SessionID string
	CompanyID string
	Action    string
	Metadata  map[string]any
}

// Flow milestone actions.
const (
	ActionSessionCreated   = "session_created"
	ActionContactSubmitted = "contact_submitted"
	ActionProfileSelected  = "profile_selected"
	ActionServicesSelected = "services_selected"
	ActionTimeSelected     = "time_selected"
	ActionSessionConfirmed = "session_confirmed"
)

// Dispatcher decouples audit persistence from request handling through a
// buffered channel. When the buffer is full the event is dropped; auditing
// must never block or fail a booking request.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(ev); err != nil {
			utils.GetLogger().Sugar().Warnf("audit: failed to persist event: %v", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		utils.GetLogger().Sugar().Warn("audit: queue full, dropping event")
	}
}
