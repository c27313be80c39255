package request

import "firex_service/internal/usecase"

// CreateServiceRequestRequest is the intake payload for a new field-service
// request. Requester identity travels in headers, not in the body.
type CreateServiceRequestRequest struct {
	ExtinguisherType      string `json:"extinguisher_type" binding:"required"`
	ExtinguisherCondition string `json:"extinguisher_condition" binding:"required"`
	ScheduledDate         string `json:"scheduled_date" binding:"required"`
	TimeSlot              string `json:"time_slot" binding:"required"`
	Address               string `json:"address" binding:"required"`
	Phone                 string `json:"phone" binding:"required"`
	Notes                 string `json:"notes"`
}

func (r CreateServiceRequestRequest) ToDraft() usecase.ServiceRequestDraft {
	return usecase.ServiceRequestDraft{
		ExtinguisherType:      r.ExtinguisherType,
		ExtinguisherCondition: r.ExtinguisherCondition,
		ScheduledDate:         r.ScheduledDate,
		TimeSlot:              r.TimeSlot,
		Address:               r.Address,
		Phone:                 r.Phone,
		Notes:                 r.Notes,
	}
}

// UpdateStatusRequest carries the requested lifecycle status token.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
