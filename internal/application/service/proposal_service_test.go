package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uav-siberia/leads-api/internal/domain/entity"
	"github.com/uav-siberia/leads-api/internal/domain/enum"
)

// fakeProductRepo resolves names against a fixed catalog.
type fakeProductRepo struct {
	catalog []entity.Product
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	for _, p := range f.catalog {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) List(ctx context.Context, category enum.ProductCategory) ([]entity.Product, error) {
	if category == "" {
		return f.catalog, nil
	}
	out := []entity.Product{}
	for _, p := range f.catalog {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) GetByNames(ctx context.Context, names []string) ([]entity.Product, error) {
	out := []entity.Product{}
	for _, name := range names {
		for _, p := range f.catalog {
			if p.Name == name {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.catalog)), nil
}

type fakeMailer struct {
	enabled bool
	sentTo  []string
	bodies  []string
}

func (f *fakeMailer) Enabled() bool { return f.enabled }

func (f *fakeMailer) SendProposal(toEmail, htmlContent string) error {
	f.sentTo = append(f.sentTo, toEmail)
	f.bodies = append(f.bodies, htmlContent)
	return nil
}

func proposalFixture() (*fakeRequestRepo, *fakeProductRepo, uuid.UUID) {
	requestRepo := newFakeRequestRepo()
	productRepo := &fakeProductRepo{catalog: []entity.Product{
		{ID: uuid.New(), Name: "miniSIGMA", Category: enum.CategoryUAV, Price: 2450000},
		{ID: uuid.New(), Name: "Автопилот АП-05", Category: enum.CategoryAvionics, Price: 320000},
	}}

	id := uuid.New()
	requestRepo.requests[id] = &entity.CustomerRequest{
		ID:       id,
		FullName: "Иванов Иван",
		Email:    "ivanov@example.com",
		Products: []string{"miniSIGMA", "Автопилот АП-05"},
		Status:   enum.RequestStatusInProgress,
		Comments: "Запрос цены",
	}

	return requestRepo, productRepo, id
}

func TestBuildProposalTotalsCatalogPrices(t *testing.T) {
	requestRepo, productRepo, id := proposalFixture()
	svc := NewProposalService(requestRepo, productRepo, nil)

	proposal, err := svc.BuildProposal(context.Background(), id, nil, "Скидка 5% при предоплате")

	require.NoError(t, err)
	assert.Equal(t, "Иванов Иван", proposal.CustomerName)
	require.Len(t, proposal.Products, 2)
	assert.Equal(t, int64(2770000), proposal.TotalPrice)
	assert.Equal(t, "Скидка 5% при предоплате", proposal.Comment)
}

func TestBuildProposalWithExplicitSelection(t *testing.T) {
	requestRepo, productRepo, id := proposalFixture()
	svc := NewProposalService(requestRepo, productRepo, nil)

	proposal, err := svc.BuildProposal(context.Background(), id, []string{"Автопилот АП-05"}, "")

	require.NoError(t, err)
	require.Len(t, proposal.Products, 1)
	assert.Equal(t, "Автопилот АП-05", proposal.Products[0].Name)
	assert.Equal(t, int64(320000), proposal.TotalPrice)
}

func TestSendProposalUsesSelectedProducts(t *testing.T) {
	requestRepo, productRepo, id := proposalFixture()
	mailer := &fakeMailer{enabled: true}
	svc := NewProposalService(requestRepo, productRepo, mailer)

	proposal, err := svc.SendProposal(context.Background(), id, []string{"miniSIGMA"}, "")

	require.NoError(t, err)
	require.Len(t, proposal.Products, 1)
	assert.Equal(t, int64(2450000), proposal.TotalPrice)
	require.Len(t, mailer.bodies, 1)
	assert.NotContains(t, mailer.bodies[0], "Автопилот АП-05")
}

func TestBuildProposalSkipsUnknownProducts(t *testing.T) {
	requestRepo, productRepo, id := proposalFixture()
	requestRepo.requests[id].Products = []string{"miniSIGMA", "Снятый с производства"}
	svc := NewProposalService(requestRepo, productRepo, nil)

	proposal, err := svc.BuildProposal(context.Background(), id, nil, "")

	require.NoError(t, err)
	require.Len(t, proposal.Products, 1)
	assert.Equal(t, "miniSIGMA", proposal.Products[0].Name)
	assert.Equal(t, int64(2450000), proposal.TotalPrice)
}

func TestBuildProposalNoCatalogMatches(t *testing.T) {
	requestRepo, productRepo, id := proposalFixture()
	requestRepo.requests[id].Products = []string{"Неизвестный товар"}
	svc := NewProposalService(requestRepo, productRepo, nil)

	_, err := svc.BuildProposal(context.Background(), id, nil, "")

	assert.Error(t, err)
}

func TestSendProposalRecordsTheSend(t *testing.T) {
	requestRepo, productRepo, id := proposalFixture()
	mailer := &fakeMailer{enabled: true}
	svc := NewProposalService(requestRepo, productRepo, mailer)

	_, err := svc.SendProposal(context.Background(), id, nil, "")
	require.NoError(t, err)

	stored := requestRepo.requests[id]
	assert.Equal(t, enum.RequestStatusProposalSent, stored.Status)
	assert.True(t, strings.HasPrefix(stored.Comments, "Запрос цены\nОтправлено КП: "))
	require.NotNil(t, stored.LastUpdated)

	require.Len(t, mailer.sentTo, 1)
	assert.Equal(t, "ivanov@example.com", mailer.sentTo[0])
	assert.Contains(t, mailer.bodies[0], "miniSIGMA")
}

func TestSendProposalWithoutMailerStillUpdatesStatus(t *testing.T) {
	requestRepo, productRepo, id := proposalFixture()
	svc := NewProposalService(requestRepo, productRepo, &fakeMailer{enabled: false})

	_, err := svc.SendProposal(context.Background(), id, nil, "")
	require.NoError(t, err)

	assert.Equal(t, enum.RequestStatusProposalSent, requestRepo.requests[id].Status)
}

func TestRenderProposalHTML(t *testing.T) {
	requestRepo, productRepo, id := proposalFixture()
	svc := NewProposalService(requestRepo, productRepo, nil)

	proposal, err := svc.BuildProposal(context.Background(), id, nil, "")
	require.NoError(t, err)

	html, err := RenderProposalHTML(proposal)

	require.NoError(t, err)
	assert.Contains(t, html, "Иванов Иван")
	assert.Contains(t, html, "miniSIGMA")
	assert.Contains(t, html, "2 450 000")
	assert.Contains(t, html, "2 770 000")
}
