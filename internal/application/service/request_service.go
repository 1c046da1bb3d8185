package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/uav-siberia/leads-api/internal/domain/entity"
	"github.com/uav-siberia/leads-api/internal/domain/enum"
	"github.com/uav-siberia/leads-api/internal/domain/repository"
	"github.com/uav-siberia/leads-api/pkg/apperror"
	"github.com/uav-siberia/leads-api/pkg/leadcsv"
	"github.com/uav-siberia/leads-api/pkg/pagination"
)

// RequestService handles customer-request operations: CRUD, CSV
// import/export and the stale-request expiry sweep.
type RequestService struct {
	requestRepo repository.RequestRepository
	expiryTTL   time.Duration
}

// NewRequestService creates a new request service
func NewRequestService(requestRepo repository.RequestRepository, expiryTTL time.Duration) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		expiryTTL:   expiryTTL,
	}
}

// ImportCSV parses CSV text and stores every well-formed record.
// Malformed lines are dropped, never errors: an import of dirty data
// yields the clean subset.
func (s *RequestService) ImportCSV(ctx context.Context, csvText string) ([]entity.CustomerRequest, error) {
	requests := leadcsv.Parse(csvText)
	if len(requests) == 0 {
		return []entity.CustomerRequest{}, nil
	}

	if err := s.requestRepo.CreateBatch(ctx, requests); err != nil {
		return nil, err
	}

	return requests, nil
}

// ExportCSV serializes the whole working set back to the interchange
// format, in creation order.
func (s *RequestService) ExportCSV(ctx context.Context) (string, error) {
	requests, err := s.requestRepo.ListAll(ctx)
	if err != nil {
		return "", err
	}
	return leadcsv.Serialize(requests), nil
}

// CreateRequestInput represents the create request input
type CreateRequestInput struct {
	FullName    string
	PhoneNumber string
	Email       string
	Products    []string
	Comments    string
}

// CreateRequest creates a single request entered through the admin UI.
func (s *RequestService) CreateRequest(ctx context.Context, input *CreateRequestInput) (*entity.CustomerRequest, error) {
	now := time.Now()
	request := &entity.CustomerRequest{
		ID:          uuid.New(),
		FullName:    input.FullName,
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
		Products:    input.Products,
		Timestamp:   now.Format("2006-01-02 15:04:05"),
		Status:      enum.RequestStatusNew,
		Comments:    input.Comments,
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	return request, nil
}

// GetRequest retrieves a request by ID
func (s *RequestService) GetRequest(ctx context.Context, id uuid.UUID) (*entity.CustomerRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperror.NewNotFoundError("Request")
	}
	return request, nil
}

// ListRequests lists requests with optional search text and status filter.
func (s *RequestService) ListRequests(ctx context.Context, params *pagination.PaginationParams, search string, status enum.RequestStatus) (*pagination.PaginatedResult[entity.CustomerRequest], error) {
	if status != "" && !status.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown status: " + status.String())
	}

	requests, total, err := s.requestRepo.List(ctx, params, search, status)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(requests, pag), nil
}

// UpdateRequestInput represents the update request input
type UpdateRequestInput struct {
	ID          uuid.UUID
	FullName    *string
	PhoneNumber *string
	Email       *string
	Products    []string
	Status      *enum.RequestStatus
	Comments    *string
}

// UpdateRequest updates a request. Every edit refreshes LastUpdated so
// the expiry rule measures from the latest touch.
func (s *RequestService) UpdateRequest(ctx context.Context, input *UpdateRequestInput) (*entity.CustomerRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperror.NewNotFoundError("Request")
	}

	if input.FullName != nil {
		request.FullName = *input.FullName
	}
	if input.PhoneNumber != nil {
		request.PhoneNumber = *input.PhoneNumber
	}
	if input.Email != nil {
		request.Email = *input.Email
	}
	if input.Products != nil {
		request.Products = input.Products
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, apperror.NewBadRequestError("Unknown status: " + input.Status.String())
		}
		request.Status = *input.Status
	}
	if input.Comments != nil {
		request.Comments = *input.Comments
	}

	request.Touch(time.Now())

	if err := s.requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	return request, nil
}

// DeleteRequest deletes a request
func (s *RequestService) DeleteRequest(ctx context.Context, id uuid.UUID) error {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if request == nil {
		return apperror.NewNotFoundError("Request")
	}

	return s.requestRepo.Delete(ctx, id)
}

// ApplyExpiry marks requests stuck in the initial status longer than
// the TTL as expired. Only the status column changes; the sweep is
// idempotent and returns the number of requests it transitioned.
func (s *RequestService) ApplyExpiry(ctx context.Context, now time.Time) (int, error) {
	candidates, err := s.requestRepo.ListByStatus(ctx, enum.RequestStatusNew)
	if err != nil {
		return 0, err
	}

	expired := 0
	for i := range candidates {
		if now.Sub(candidates[i].ReferenceTime()) <= s.expiryTTL {
			continue
		}
		if err := s.requestRepo.UpdateStatus(ctx, candidates[i].ID, enum.RequestStatusExpired); err != nil {
			return expired, err
		}
		expired++
	}

	return expired, nil
}

// StartExpirySweeper runs the expiry sweep on a fixed interval until
// the context is cancelled. Call it in a goroutine at startup.
func (s *RequestService) StartExpirySweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.ApplyExpiry(ctx, time.Now())
			if err != nil {
				log.Printf("Expiry sweep failed: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("Expiry sweep: %d request(s) marked expired", n)
			}
		}
	}
}
