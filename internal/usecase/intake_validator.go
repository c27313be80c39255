package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"firex_service/internal/domain/entities"
	"firex_service/internal/usecase/interfaces"
)

const scheduledDateLayout = "2006-01-02"

// Colombian mobile: 10 digits starting with 3.
var phonePattern = regexp.MustCompile(`^3\d{9}$`)

// ServiceRequestDraft is the unvalidated creation input supplied by a caller.
// All fields arrive as wire strings; the validator normalizes and types them.

type ServiceRequestDraft struct {
	ExtinguisherType      string
	ExtinguisherCondition string
	ScheduledDate         string
	TimeSlot              string
	Address               string
	Phone                 string
	Notes                 string
}

// validatedIntake is the normalized outcome of a successful validation pass.

type validatedIntake struct {
	ExtinguisherType      entities.ExtinguisherType
	ExtinguisherCondition entities.ExtinguisherCondition
	ScheduledDate         string
	TimeSlot              entities.TimeSlot
	Address               string
	Phone                 string
	Notes                 string
}

// IntakeValidator validates and normalizes a creation draft.
//
// The duplicate-booking check is best effort: it queries current PENDING
// requests for the requester and compares dates, which cannot close the
// check-then-insert window between two concurrent creations. The hard
// guarantee belongs to the storage schema.

type IntakeValidator struct {
	repo interfaces.IServiceRequestRepository
	now  func() time.Time
}

func NewIntakeValidator(repo interfaces.IServiceRequestRepository) *IntakeValidator {
	return &IntakeValidator{repo: repo, now: time.Now}
}

func (v *IntakeValidator) Validate(ctx context.Context, requesterEmail string, draft ServiceRequestDraft) (validatedIntake, error) {
	scheduledDate := strings.TrimSpace(draft.ScheduledDate)
	phone := strings.TrimSpace(draft.Phone)

	date, err := time.Parse(scheduledDateLayout, scheduledDate)
	if err != nil {
		return validatedIntake{}, newValidationError("scheduled_date", "invalid date format %q; use YYYY-MM-DD", scheduledDate)
	}
	today := dateOnly(v.now())
	if date.Before(today) {
		return validatedIntake{}, newValidationError("scheduled_date", "date cannot be in the past: got %s, today is %s",
			scheduledDate, today.Format(scheduledDateLayout))
	}
	if maxDate := today.AddDate(0, 3, 0); date.After(maxDate) {
		return validatedIntake{}, newValidationError("scheduled_date", "date cannot be more than 3 months ahead; latest allowed is %s",
			maxDate.Format(scheduledDateLayout))
	}

	if !phonePattern.MatchString(phone) {
		return validatedIntake{}, newValidationError("phone", "must be a 10-digit mobile number starting with 3, e.g. 3001234567")
	}

	extType, ok := entities.ParseExtinguisherType(strings.TrimSpace(draft.ExtinguisherType))
	if !ok {
		return validatedIntake{}, newValidationError("extinguisher_type", "unknown type %q; valid values: ABC, CO2, H2O, K", draft.ExtinguisherType)
	}
	condition, ok := entities.ParseExtinguisherCondition(strings.TrimSpace(draft.ExtinguisherCondition))
	if !ok {
		return validatedIntake{}, newValidationError("extinguisher_condition", "unknown condition %q; valid values: OPERATIVE, DISCHARGED, EXPIRED", draft.ExtinguisherCondition)
	}
	slot, ok := entities.ParseTimeSlot(strings.TrimSpace(draft.TimeSlot))
	if !ok {
		return validatedIntake{}, newValidationError("time_slot", "unknown time slot %q; valid values: MORNING, AFTERNOON", draft.TimeSlot)
	}

	address := strings.TrimSpace(draft.Address)
	if address == "" {
		return validatedIntake{}, newValidationError("address", "address is required")
	}

	if err := v.checkDuplicateBooking(ctx, requesterEmail, scheduledDate); err != nil {
		return validatedIntake{}, err
	}

	return validatedIntake{
		ExtinguisherType:      extType,
		ExtinguisherCondition: condition,
		ScheduledDate:         scheduledDate,
		TimeSlot:              slot,
		Address:               address,
		Phone:                 phone,
		Notes:                 strings.TrimSpace(draft.Notes),
	}, nil
}

func (v *IntakeValidator) checkDuplicateBooking(ctx context.Context, requesterEmail, scheduledDate string) error {
	pending, err := v.repo.ListByRequesterAndStatus(ctx, requesterEmail, entities.RequestStatusPending)
	if err != nil {
		return err
	}
	for _, sr := range pending {
		if sr.ScheduledDate == scheduledDate {
			return newValidationError("scheduled_date",
				"a PENDING request already exists for %s; wait for it to be processed or pick another date", scheduledDate)
		}
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
