package usecase

import (
	"context"
	"strings"

	"firex_service/internal/domain/entities"
	"firex_service/internal/usecase/interfaces"
)

// IServiceRequestQueryUseCase exposes read-only projections over stored
// service requests. No validation beyond handle checks, no mutation.

type IServiceRequestQueryUseCase interface {
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	GetByBusinessID(ctx context.Context, businessID string) (entities.ServiceRequest, error)
	ListByRequester(ctx context.Context, email string) ([]entities.ServiceRequest, error)
	ListAll(ctx context.Context) ([]entities.ServiceRequest, error)
	ListByStatus(ctx context.Context, statusToken string) ([]entities.ServiceRequest, error)
	CountByStatus(ctx context.Context, statusToken string) (int64, error)
	Stats(ctx context.Context) (map[string]int64, error)
}

type ServiceRequestQueryUseCase struct {
	repo interfaces.IServiceRequestRepository
}

var _ IServiceRequestQueryUseCase = (*ServiceRequestQueryUseCase)(nil)

func NewServiceRequestQueryUseCase(repo interfaces.IServiceRequestRepository) *ServiceRequestQueryUseCase {
	return &ServiceRequestQueryUseCase{repo: repo}
}

func (u *ServiceRequestQueryUseCase) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceRequest{}, ErrInvalidRequestID
	}

	sr, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if sr.ID == "" {
		return entities.ServiceRequest{}, newRequestNotFoundError("id", id)
	}
	return sr, nil
}

func (u *ServiceRequestQueryUseCase) GetByBusinessID(ctx context.Context, businessID string) (entities.ServiceRequest, error) {
	businessID = strings.TrimSpace(businessID)
	if businessID == "" {
		return entities.ServiceRequest{}, ErrInvalidBusinessID
	}

	sr, err := u.repo.GetByBusinessID(ctx, businessID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if sr.ID == "" {
		return entities.ServiceRequest{}, newRequestNotFoundError("business_id", businessID)
	}
	return sr, nil
}

func (u *ServiceRequestQueryUseCase) ListByRequester(ctx context.Context, email string) ([]entities.ServiceRequest, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrInvalidRequesterEmail
	}
	return u.repo.ListByRequester(ctx, email)
}

func (u *ServiceRequestQueryUseCase) ListAll(ctx context.Context) ([]entities.ServiceRequest, error) {
	return u.repo.ListAll(ctx)
}

func (u *ServiceRequestQueryUseCase) ListByStatus(ctx context.Context, statusToken string) ([]entities.ServiceRequest, error) {
	status, ok := entities.ParseRequestStatus(statusToken)
	if !ok {
		return nil, newValidationError("status",
			"unknown status %q; valid values: PENDING, COLLECTED, RECHARGING, READY, DELIVERED, DONE", statusToken)
	}
	return u.repo.ListByStatus(ctx, status)
}

func (u *ServiceRequestQueryUseCase) CountByStatus(ctx context.Context, statusToken string) (int64, error) {
	status, ok := entities.ParseRequestStatus(statusToken)
	if !ok {
		return 0, newValidationError("status",
			"unknown status %q; valid values: PENDING, COLLECTED, RECHARGING, READY, DELIVERED, DONE", statusToken)
	}
	return u.repo.CountByStatus(ctx, status)
}

// Stats returns the number of requests per lifecycle status.
func (u *ServiceRequestQueryUseCase) Stats(ctx context.Context) (map[string]int64, error) {
	stats := make(map[string]int64, len(entities.AllRequestStatuses()))
	for _, status := range entities.AllRequestStatuses() {
		n, err := u.repo.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		stats[string(status)] = n
	}
	return stats, nil
}
