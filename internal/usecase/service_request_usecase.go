package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"firex_service/internal/domain/entities"
	"firex_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IServiceRequestUseCase exposes the request lifecycle operations: intake,
// status progression and deletion. Read projections live in
// IServiceRequestQueryUseCase.

type IServiceRequestUseCase interface {
	Create(ctx context.Context, requesterID, requesterEmail string, draft ServiceRequestDraft) (entities.ServiceRequest, error)
	UpdateStatus(ctx context.Context, id, actor, statusToken string) (entities.ServiceRequest, error)
	Delete(ctx context.Context, id string) error
}

// ServiceRequestUseCase orchestrates intake validation, identifier
// assignment, the lifecycle state machine and the audit timeline. Every
// mutation is all-or-nothing: either the new status and its timeline entry
// are persisted together or nothing changes.

type ServiceRequestUseCase struct {
	repo      interfaces.IServiceRequestRepository
	idgen     interfaces.IRequestIDGenerator
	validator *IntakeValidator
	log       *zap.Logger
	now       func() time.Time
}

var _ IServiceRequestUseCase = (*ServiceRequestUseCase)(nil)

func NewServiceRequestUseCase(repo interfaces.IServiceRequestRepository, idgen interfaces.IRequestIDGenerator, log *zap.Logger) *ServiceRequestUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ServiceRequestUseCase{
		repo:      repo,
		idgen:     idgen,
		validator: NewIntakeValidator(repo),
		log:       log,
		now:       time.Now,
	}
}

func (u *ServiceRequestUseCase) Create(ctx context.Context, requesterID, requesterEmail string, draft ServiceRequestDraft) (entities.ServiceRequest, error) {
	requesterID = strings.TrimSpace(requesterID)
	requesterEmail = strings.TrimSpace(requesterEmail)
	if requesterID == "" {
		return entities.ServiceRequest{}, ErrInvalidRequesterID
	}
	if requesterEmail == "" {
		return entities.ServiceRequest{}, ErrInvalidRequesterEmail
	}

	intake, err := u.validator.Validate(ctx, requesterEmail, draft)
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	businessID, err := u.mintBusinessID(ctx)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	now := u.now().UTC()

	sr := entities.ServiceRequest{
		ID:                    uuid.NewString(),
		BusinessID:            businessID,
		RequesterID:           requesterID,
		RequesterEmail:        requesterEmail,
		ExtinguisherType:      intake.ExtinguisherType,
		ExtinguisherCondition: intake.ExtinguisherCondition,
		ScheduledDate:         intake.ScheduledDate,
		TimeSlot:              intake.TimeSlot,
		Address:               intake.Address,
		Phone:                 intake.Phone,
		Notes:                 intake.Notes,
		Status:                entities.RequestStatusPending,
		Timeline: []entities.TimelineEntry{{
			Timestamp: now,
			Status:    entities.RequestStatusPending,
			Actor:     requesterEmail,
		}},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.repo.Create(ctx, sr)
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	u.log.Info("service request created",
		zap.String("component", "service_request"),
		zap.String("business_id", created.BusinessID),
		zap.String("requester_email", created.RequesterEmail),
		zap.String("scheduled_date", created.ScheduledDate),
	)
	return created, nil
}

// mintBusinessID generates a new public identifier and verifies it is not
// already taken. ULIDs make a collision all but impossible; the check guards
// against a misconfigured generator rather than probability.
func (u *ServiceRequestUseCase) mintBusinessID(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 3; attempt++ {
		businessID := u.idgen.NewRequestID()
		exists, err := u.repo.ExistsByBusinessID(ctx, businessID)
		if err != nil {
			return "", err
		}
		if !exists {
			return businessID, nil
		}
	}
	return "", errors.New("could not mint a unique request identifier")
}

func (u *ServiceRequestUseCase) UpdateStatus(ctx context.Context, id, actor, statusToken string) (entities.ServiceRequest, error) {
	id = strings.TrimSpace(id)
	actor = strings.TrimSpace(actor)
	if id == "" {
		return entities.ServiceRequest{}, ErrInvalidRequestID
	}
	if actor == "" {
		return entities.ServiceRequest{}, ErrInvalidActor
	}

	sr, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if sr.ID == "" {
		return entities.ServiceRequest{}, newRequestNotFoundError("id", id)
	}

	newStatus, ok := entities.ParseRequestStatus(statusToken)
	if !ok {
		return entities.ServiceRequest{}, newValidationError("status",
			"unknown status %q; valid values: PENDING, COLLECTED, RECHARGING, READY, DELIVERED, DONE", statusToken)
	}

	if terr := entities.ValidateTransition(sr.Status, newStatus); terr != nil {
		terr.RequestID = sr.BusinessID
		return entities.ServiceRequest{}, terr
	}

	// Server clock can step backwards between writes; the timeline must not.
	at := u.now().UTC()
	if last := sr.LastTimelineEntry(); at.Before(last.Timestamp) {
		at = last.Timestamp
	}

	expectedVersion := sr.Version
	sr.AppendTimeline(newStatus, actor, at)

	updated, err := u.repo.Update(ctx, sr, expectedVersion)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.ServiceRequest{}, &ConflictError{RequestID: sr.BusinessID}
		}
		return entities.ServiceRequest{}, err
	}

	u.log.Info("service request status updated",
		zap.String("component", "service_request"),
		zap.String("business_id", updated.BusinessID),
		zap.String("status", string(updated.Status)),
		zap.String("actor", actor),
	)
	return updated, nil
}

func (u *ServiceRequestUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidRequestID
	}

	sr, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sr.ID == "" {
		return newRequestNotFoundError("id", id)
	}

	if sr.Status != entities.RequestStatusPending && sr.Status != entities.RequestStatusDone {
		return newValidationError("status",
			"only PENDING or DONE requests can be deleted; current status: %s", sr.Status)
	}

	if err := u.repo.Delete(ctx, sr.ID); err != nil {
		return err
	}

	u.log.Info("service request deleted",
		zap.String("component", "service_request"),
		zap.String("business_id", sr.BusinessID),
	)
	return nil
}
