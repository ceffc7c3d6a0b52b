package models

// Service is a bookable offering in a company's catalog.
type Service struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price,omitempty"`
	ServiceGroupID  int64   `json:"serviceGroupId"`
}

// ServiceGroup is a flat catalog group; services reference it by
// ServiceGroupID.
type ServiceGroup struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GroupedService is a Service embedded under its group, with the foreign
// key stripped.
type GroupedService struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price,omitempty"`
}

// GroupedServiceGroup is the in-memory join of a group with its services,
// recomputed on every load and never persisted.
type GroupedServiceGroup struct {
	ID       int64            `json:"id"`
	Name     string           `json:"name"`
	Services []GroupedService `json:"services"`
}
