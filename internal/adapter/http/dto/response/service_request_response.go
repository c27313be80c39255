package response

import (
	"time"

	"firex_service/internal/domain/entities"
)

type TimelineEntryResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
	Actor     string    `json:"actor"`
}

type ServiceRequestResponse struct {
	ID                    string                  `json:"id"`
	BusinessID            string                  `json:"business_id"`
	RequestID             string                  `json:"request_id"`
	RequesterID           string                  `json:"requester_id"`
	RequesterEmail        string                  `json:"requester_email"`
	ExtinguisherType      string                  `json:"extinguisher_type"`
	ExtinguisherCondition string                  `json:"extinguisher_condition"`
	ScheduledDate         string                  `json:"scheduled_date"`
	TimeSlot              string                  `json:"time_slot"`
	Address               string                  `json:"address"`
	Phone                 string                  `json:"phone"`
	Notes                 string                  `json:"notes,omitempty"`
	Status                string                  `json:"status"`
	Timeline              []TimelineEntryResponse `json:"timeline"`
	Version               int64                   `json:"version"`
	CreatedAt             time.Time               `json:"created_at"`
	UpdatedAt             time.Time               `json:"updated_at"`
}

func FromServiceRequest(sr entities.ServiceRequest) ServiceRequestResponse {
	timeline := make([]TimelineEntryResponse, 0, len(sr.Timeline))
	for _, e := range sr.Timeline {
		timeline = append(timeline, TimelineEntryResponse{
			Timestamp: e.Timestamp,
			Status:    string(e.Status),
			Actor:     e.Actor,
		})
	}
	return ServiceRequestResponse{
		ID:                    sr.ID,
		BusinessID:            sr.BusinessID,
		RequestID:             sr.BusinessID,
		RequesterID:           sr.RequesterID,
		RequesterEmail:        sr.RequesterEmail,
		ExtinguisherType:      string(sr.ExtinguisherType),
		ExtinguisherCondition: string(sr.ExtinguisherCondition),
		ScheduledDate:         sr.ScheduledDate,
		TimeSlot:              string(sr.TimeSlot),
		Address:               sr.Address,
		Phone:                 sr.Phone,
		Notes:                 sr.Notes,
		Status:                string(sr.Status),
		Timeline:              timeline,
		Version:               sr.Version,
		CreatedAt:             sr.CreatedAt,
		UpdatedAt:             sr.UpdatedAt,
	}
}

func FromServiceRequests(requests []entities.ServiceRequest) []ServiceRequestResponse {
	out := make([]ServiceRequestResponse, 0, len(requests))
	for _, sr := range requests {
		out = append(out, FromServiceRequest(sr))
	}
	return out
}
