package entities

import "time"

// ExtinguisherType identifies the extinguishing agent of the unit to service.

type ExtinguisherType string

const (
	ExtinguisherTypeABC ExtinguisherType = "ABC"
	ExtinguisherTypeCO2 ExtinguisherType = "CO2"
	ExtinguisherTypeH2O ExtinguisherType = "H2O"
	ExtinguisherTypeK   ExtinguisherType = "K"
)

// ExtinguisherCondition is the declared condition of the unit at intake.

type ExtinguisherCondition string

const (
	ExtinguisherConditionOperative  ExtinguisherCondition = "OPERATIVE"
	ExtinguisherConditionDischarged ExtinguisherCondition = "DISCHARGED"
	ExtinguisherConditionExpired    ExtinguisherCondition = "EXPIRED"
)

// TimeSlot is the visit window the requester booked.

type TimeSlot string

const (
	TimeSlotMorning   TimeSlot = "MORNING"
	TimeSlotAfternoon TimeSlot = "AFTERNOON"
)

// ParseExtinguisherType validates a wire token against the closed type set.
func ParseExtinguisherType(token string) (ExtinguisherType, bool) {
	switch ExtinguisherType(token) {
	case ExtinguisherTypeABC, ExtinguisherTypeCO2, ExtinguisherTypeH2O, ExtinguisherTypeK:
		return ExtinguisherType(token), true
	}
	return "", false
}

// ParseExtinguisherCondition validates a wire token against the closed condition set.
func ParseExtinguisherCondition(token string) (ExtinguisherCondition, bool) {
	switch ExtinguisherCondition(token) {
	case ExtinguisherConditionOperative, ExtinguisherConditionDischarged, ExtinguisherConditionExpired:
		return ExtinguisherCondition(token), true
	}
	return "", false
}

// ParseTimeSlot validates a wire token against the closed slot set.
func ParseTimeSlot(token string) (TimeSlot, bool) {
	switch TimeSlot(token) {
	case TimeSlotMorning, TimeSlotAfternoon:
		return TimeSlot(token), true
	}
	return "", false
}

// TimelineEntry is one immutable audit record of a status change.
//
// Entries are only ever appended; existing entries are never edited or
// removed, so the timeline doubles as the full status history of a request.

type TimelineEntry struct {
	Timestamp time.Time     `json:"timestamp"`
	Status    RequestStatus `json:"status"`
	Actor     string        `json:"actor"`
}

// ServiceRequest is the field-service request aggregate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (business_id-index): business_id
//   - GSI2 (requester_email-index): requester_email
//   - GSI3 (status-index): status
//
// Identity:
//   - ID is the opaque storage key (assigned once at creation).
//   - BusinessID is the human-facing unique identifier (e.g. "SR-<token>"),
//     also assigned once and never changed.
//
// Concurrency:
//   - Version backs the optimistic write condition used by the repository; a
//     save against a stale version is rejected instead of dropping a
//     concurrent timeline append.

type ServiceRequest struct {
	ID         string `json:"id"`
	BusinessID string `json:"business_id"`

	RequesterID    string `json:"requester_id"`
	RequesterEmail string `json:"requester_email"`

	ExtinguisherType      ExtinguisherType      `json:"extinguisher_type"`
	ExtinguisherCondition ExtinguisherCondition `json:"extinguisher_condition"`
	ScheduledDate         string                `json:"scheduled_date"` // YYYY-MM-DD
	TimeSlot              TimeSlot              `json:"time_slot"`

	Address string `json:"address"`
	Phone   string `json:"phone"`
	Notes   string `json:"notes,omitempty"`

	Status   RequestStatus   `json:"status"`
	Timeline []TimelineEntry `json:"timeline"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppendTimeline moves the request to status and records the audit entry for
// it as a single in-memory mutation. The caller persists both together.
func (sr *ServiceRequest) AppendTimeline(status RequestStatus, actor string, at time.Time) {
	sr.Status = status
	sr.UpdatedAt = at
	sr.Timeline = append(sr.Timeline, TimelineEntry{
		Timestamp: at,
		Status:    status,
		Actor:     actor,
	})
}

// LastTimelineEntry returns the most recent audit entry. The timeline is
// never empty on a persisted request; the zero entry is returned for a
// not-yet-initialized one.
func (sr *ServiceRequest) LastTimelineEntry() TimelineEntry {
	if len(sr.Timeline) == 0 {
		return TimelineEntry{}
	}
	return sr.Timeline[len(sr.Timeline)-1]
}
