package interfaces

import (
	"context"
	"errors"

	"firex_service/internal/domain/entities"
)

// ErrVersionConflict is returned by Update when the stored entity changed
// since it was loaded. Callers retry the whole read-modify-write.
var ErrVersionConflict = errors.New("service request version conflict")

// IServiceRequestRepository abstracts DynamoDB persistence for ServiceRequest.
//
// Conventions (shared with the rest of the persistence layer):
//   - Lookups return the zero-value entity (ID == "") when nothing matches;
//     absence is not an error at this layer.
//   - Create fails if the storage id already exists.
//   - Update writes the full aggregate (status + timeline together) guarded
//     by expectedVersion; a stale version yields ErrVersionConflict.
//
// Ordering contracts:
//   - ListByRequester: most recently created first.
//   - ListByStatus: oldest created first (operator FIFO triage).
type IServiceRequestRepository interface {
	Create(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	GetByBusinessID(ctx context.Context, businessID string) (entities.ServiceRequest, error)
	ExistsByBusinessID(ctx context.Context, businessID string) (bool, error)
	Update(ctx context.Context, sr entities.ServiceRequest, expectedVersion int64) (entities.ServiceRequest, error)
	Delete(ctx context.Context, id string) error
	ListByRequester(ctx context.Context, email string) ([]entities.ServiceRequest, error)
	ListByRequesterAndStatus(ctx context.Context, email string, status entities.RequestStatus) ([]entities.ServiceRequest, error)
	ListByStatus(ctx context.Context, status entities.RequestStatus) ([]entities.ServiceRequest, error)
	ListAll(ctx context.Context) ([]entities.ServiceRequest, error)
	CountByStatus(ctx context.Context, status entities.RequestStatus) (int64, error)
}
