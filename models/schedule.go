package models

import "time"

// ScheduleTimeSlot is a bookable window within a day. Start and end are
// full timestamps in the company's timezone.
type ScheduleTimeSlot struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// Schedule is a read-only projection of one day's remote availability.
// Slot legality is the booking API's business; the gateway only filters
// out slots already in the past before rendering.
type Schedule struct {
	Date      string             `json:"date"` // YYYY-MM-DD
	TimeSlots []ScheduleTimeSlot `json:"timeSlots"`
}

// Profile is a bookable employee of a company.
type Profile struct {
	ID         string `json:"id"`
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
	JobTitle   string `json:"jobTitle,omitempty"`
	AvatarURL  string `json:"avatarUrl,omitempty"`
}
