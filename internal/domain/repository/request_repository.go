package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uav-siberia/leads-api/internal/domain/entity"
	"github.com/uav-siberia/leads-api/internal/domain/enum"
	"github.com/uav-siberia/leads-api/pkg/pagination"
)

// RequestRepository defines the interface for customer-request data operations
type RequestRepository interface {
	Create(ctx context.Context, request *entity.CustomerRequest) error
	CreateBatch(ctx context.Context, requests []entity.CustomerRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CustomerRequest, error)
	Update(ctx context.Context, request *entity.CustomerRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns requests filtered by optional search text and status,
	// newest first, with page-based pagination.
	List(ctx context.Context, params *pagination.PaginationParams, search string, status enum.RequestStatus) ([]entity.CustomerRequest, int64, error)
	// ListAll returns the whole working set in creation order (CSV export).
	ListAll(ctx context.Context) ([]entity.CustomerRequest, error)
	// ListByStatus returns every request currently in the given status
	// (the expiry sweep's candidate set).
	ListByStatus(ctx context.Context, status enum.RequestStatus) ([]entity.CustomerRequest, error)
	// UpdateStatus sets only the status column, leaving every other
	// field untouched.
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.RequestStatus) error
	// TouchLastUpdated sets only the last_updated column.
	TouchLastUpdated(ctx context.Context, id uuid.UUID, at time.Time) error
}

// MessageRepository defines the interface for message data operations
type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	// ListByRequest returns the conversation for one request, ordered by time.
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]entity.Message, error)
}
