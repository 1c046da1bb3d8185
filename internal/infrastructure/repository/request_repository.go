package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/uav-siberia/leads-api/internal/domain/entity"
	"github.com/uav-siberia/leads-api/internal/domain/enum"
	domainRepo "github.com/uav-siberia/leads-api/internal/domain/repository"
	"github.com/uav-siberia/leads-api/pkg/pagination"
	"gorm.io/gorm"
)

type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a new customer-request repository
func NewRequestRepository(db *gorm.DB) domainRepo.RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, request *entity.CustomerRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *requestRepository) CreateBatch(ctx context.Context, requests []entity.CustomerRequest) error {
	if len(requests) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&requests).Error
}

func (r *requestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CustomerRequest, error) {
	var request entity.CustomerRequest
	err := r.db.WithContext(ctx).Preload("Messages").First(&request, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &request, err
}

func (r *requestRepository) Update(ctx context.Context, request *entity.CustomerRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

func (r *requestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.CustomerRequest{}, "id = ?", id).Error
}

func (r *requestRepository) List(ctx context.Context, params *pagination.PaginationParams, search string, status enum.RequestStatus) ([]entity.CustomerRequest, int64, error) {
	var requests []entity.CustomerRequest
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.CustomerRequest{})

	if search != "" {
		query = query.Where("full_name ILIKE ? OR email ILIKE ? OR phone_number ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&requests).Error

	return requests, total, err
}

func (r *requestRepository) ListAll(ctx context.Context) ([]entity.CustomerRequest, error) {
	var requests []entity.CustomerRequest
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&requests).Error
	return requests, err
}

func (r *requestRepository) ListByStatus(ctx context.Context, status enum.RequestStatus) ([]entity.CustomerRequest, error) {
	var requests []entity.CustomerRequest
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Find(&requests).Error
	return requests, err
}

func (r *requestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.RequestStatus) error {
	return r.db.WithContext(ctx).
		Model(&entity.CustomerRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *requestRepository) TouchLastUpdated(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&entity.CustomerRequest{}).
		Where("id = ?", id).
		Update("last_updated", at).Error
}
