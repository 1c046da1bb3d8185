package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uav-siberia/leads-api/internal/domain/entity"
	"github.com/uav-siberia/leads-api/internal/domain/enum"
	"github.com/uav-siberia/leads-api/pkg/pagination"
)

// fakeRequestRepo is an in-memory RequestRepository for service tests.
type fakeRequestRepo struct {
	requests map[uuid.UUID]*entity.CustomerRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[uuid.UUID]*entity.CustomerRequest)}
}

func (f *fakeRequestRepo) Create(ctx context.Context, request *entity.CustomerRequest) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	cp := *request
	f.requests[request.ID] = &cp
	return nil
}

func (f *fakeRequestRepo) CreateBatch(ctx context.Context, requests []entity.CustomerRequest) error {
	for i := range requests {
		if err := f.Create(ctx, &requests[i]); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.CustomerRequest, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRequestRepo) Update(ctx context.Context, request *entity.CustomerRequest) error {
	cp := *request
	f.requests[request.ID] = &cp
	return nil
}

func (f *fakeRequestRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.requests, id)
	return nil
}

func (f *fakeRequestRepo) List(ctx context.Context, params *pagination.PaginationParams, search string, status enum.RequestStatus) ([]entity.CustomerRequest, int64, error) {
	all, _ := f.ListAll(ctx)
	out := make([]entity.CustomerRequest, 0, len(all))
	for _, r := range all {
		if status != "" && r.Status != status {
			continue
		}
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRequestRepo) ListAll(ctx context.Context) ([]entity.CustomerRequest, error) {
	out := make([]entity.CustomerRequest, 0, len(f.requests))
	for _, r := range f.requests {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRequestRepo) ListByStatus(ctx context.Context, status enum.RequestStatus) ([]entity.CustomerRequest, error) {
	out := []entity.CustomerRequest{}
	for _, r := range f.requests {
		if r.Status == status {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.RequestStatus) error {
	if r, ok := f.requests[id]; ok {
		r.Status = status
	}
	return nil
}

func (f *fakeRequestRepo) TouchLastUpdated(ctx context.Context, id uuid.UUID, at time.Time) error {
	if r, ok := f.requests[id]; ok {
		r.LastUpdated = &at
	}
	return nil
}

func seedRequest(repo *fakeRequestRepo, status enum.RequestStatus, lastUpdated time.Time) uuid.UUID {
	id := uuid.New()
	lu := lastUpdated
	repo.requests[id] = &entity.CustomerRequest{
		ID:          id,
		FullName:    "Иванов Иван",
		Status:      status,
		LastUpdated: &lu,
	}
	return id
}

func TestApplyExpiryMarksStaleNewRequests(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRequestService(repo, time.Hour)

	now := time.Now()
	staleID := seedRequest(repo, enum.RequestStatusNew, now.Add(-61*time.Minute))
	freshID := seedRequest(repo, enum.RequestStatusNew, now.Add(-59*time.Minute))

	n, err := svc.ApplyExpiry(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, enum.RequestStatusExpired, repo.requests[staleID].Status)
	assert.Equal(t, enum.RequestStatusNew, repo.requests[freshID].Status)
}

func TestApplyExpiryIgnoresWorkedRequests(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRequestService(repo, time.Hour)

	now := time.Now()
	inProgressID := seedRequest(repo, enum.RequestStatusInProgress, now.Add(-3*time.Hour))
	closedID := seedRequest(repo, enum.RequestStatusClosed, now.Add(-3*time.Hour))

	n, err := svc.ApplyExpiry(context.Background(), now)

	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, enum.RequestStatusInProgress, repo.requests[inProgressID].Status)
	assert.Equal(t, enum.RequestStatusClosed, repo.requests[closedID].Status)
}

func TestApplyExpiryIsIdempotent(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRequestService(repo, time.Hour)

	now := time.Now()
	seedRequest(repo, enum.RequestStatusNew, now.Add(-2*time.Hour))

	first, err := svc.ApplyExpiry(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	second, err := svc.ApplyExpiry(context.Background(), now)
	require.NoError(t, err)
	assert.Zero(t, second)
}

func TestApplyExpiryFallsBackToFillTimestamp(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRequestService(repo, time.Hour)

	now := time.Now()
	id := uuid.New()
	repo.requests[id] = &entity.CustomerRequest{
		ID:        id,
		FullName:  "Иванов Иван",
		Status:    enum.RequestStatusNew,
		Timestamp: now.Add(-2 * time.Hour).Format("2006-01-02 15:04:05"),
	}

	n, err := svc.ApplyExpiry(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, enum.RequestStatusExpired, repo.requests[id].Status)
}

func TestImportCSVStoresOnlyWellFormedRecords(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRequestService(repo, time.Hour)

	csv := "ФИО,Номер,Почта,Список товаров,Время заполнения заявки,Статус,Комментарии\n" +
		"Иванов Иван,79001234567,ivanov@example.com,miniSIGMA,2024-01-20 10:00:00,Новая,\n" +
		",79009999999,noname@example.com,miniSIGMA,2024-01-20 10:00:00,Новая,"

	imported, err := svc.ImportCSV(context.Background(), csv)

	require.NoError(t, err)
	require.Len(t, imported, 1)
	assert.Equal(t, "Иванов Иван", imported[0].FullName)
	assert.Len(t, repo.requests, 1)
}

func TestUpdateRequestTouchesLastUpdated(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRequestService(repo, time.Hour)

	created, err := svc.CreateRequest(context.Background(), &CreateRequestInput{
		FullName: "Иванов Иван",
		Products: []string{"miniSIGMA"},
	})
	require.NoError(t, err)

	status := enum.RequestStatusInProgress
	updated, err := svc.UpdateRequest(context.Background(), &UpdateRequestInput{
		ID:     created.ID,
		Status: &status,
	})

	require.NoError(t, err)
	assert.Equal(t, enum.RequestStatusInProgress, updated.Status)
	require.NotNil(t, updated.LastUpdated)
	assert.WithinDuration(t, time.Now(), *updated.LastUpdated, 5*time.Second)
}

func TestUpdateRequestRejectsUnknownStatus(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRequestService(repo, time.Hour)

	created, err := svc.CreateRequest(context.Background(), &CreateRequestInput{FullName: "Иванов Иван"})
	require.NoError(t, err)

	bogus := enum.RequestStatus("Неизвестно")
	_, err = svc.UpdateRequest(context.Background(), &UpdateRequestInput{
		ID:     created.ID,
		Status: &bogus,
	})

	assert.Error(t, err)
}

func TestDeleteRequestUnknownID(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRequestService(repo, time.Hour)

	err := svc.DeleteRequest(context.Background(), uuid.New())

	assert.Error(t, err)
}
