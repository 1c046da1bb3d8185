package service

import (
	"bytes"
	"context"
	"html/template"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/uav-siberia/leads-api/internal/domain/entity"
	"github.com/uav-siberia/leads-api/internal/domain/enum"
	"github.com/uav-siberia/leads-api/internal/domain/repository"
	"github.com/uav-siberia/leads-api/pkg/apperror"
)

// ProposalMailer delivers a rendered proposal to the customer.
type ProposalMailer interface {
	Enabled() bool
	SendProposal(toEmail, htmlContent string) error
}

// ProposalService builds commercial proposals from a request's product
// list and the catalog. Proposals are derived documents, never stored.
type ProposalService struct {
	requestRepo repository.RequestRepository
	productRepo repository.ProductRepository
	mailer      ProposalMailer
}

// NewProposalService creates a new proposal service
func NewProposalService(requestRepo repository.RequestRepository, productRepo repository.ProductRepository, mailer ProposalMailer) *ProposalService {
	return &ProposalService{
		requestRepo: requestRepo,
		productRepo: productRepo,
		mailer:      mailer,
	}
}

// BuildProposal assembles a proposal for the request. The manager can
// pass an explicit product selection; an empty selection means the
// lead's stored product list. Names resolve against the catalog at
// current prices; names that no longer exist are skipped.
func (s *ProposalService) BuildProposal(ctx context.Context, requestID uuid.UUID, productNames []string, comment string) (*entity.CommercialProposal, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperror.NewNotFoundError("Request")
	}

	if len(productNames) == 0 {
		productNames = request.Products
	}

	products, err := s.productRepo.GetByNames(ctx, productNames)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, apperror.NewBadRequestError("No selected products present in the catalog")
	}

	var total int64
	for _, p := range products {
		total += p.Price
	}

	return &entity.CommercialProposal{
		RequestID:    request.ID,
		CustomerName: request.FullName,
		Products:     products,
		TotalPrice:   total,
		Date:         time.Now(),
		Comment:      comment,
	}, nil
}

// SendProposal builds the proposal, emails it when delivery is
// configured and the request carries an address, then records the send:
// status moves to "Отправлено КП" and the send time is appended to the
// request's comments.
func (s *ProposalService) SendProposal(ctx context.Context, requestID uuid.UUID, productNames []string, comment string) (*entity.CommercialProposal, error) {
	proposal, err := s.BuildProposal(ctx, requestID, productNames, comment)
	if err != nil {
		return nil, err
	}

	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperror.NewNotFoundError("Request")
	}

	if s.mailer != nil && s.mailer.Enabled() && request.Email != "" {
		html, err := RenderProposalHTML(proposal)
		if err != nil {
			return nil, err
		}
		// Delivery failure does not roll back the status change; the
		// manager sees the send mark and can retry from their mail client.
		if err := s.mailer.SendProposal(request.Email, html); err != nil {
			log.Printf("Proposal email to %s failed: %v", request.Email, err)
		}
	}

	now := time.Now()
	request.Status = enum.RequestStatusProposalSent
	sentMark := "Отправлено КП: " + now.Format("2006-01-02 15:04:05")
	if request.Comments == "" {
		request.Comments = sentMark
	} else {
		request.Comments = request.Comments + "\n" + sentMark
	}
	request.Touch(now)

	if err := s.requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	return proposal, nil
}

// RenderProposalHTML renders the proposal document for email delivery.
func RenderProposalHTML(proposal *entity.CommercialProposal) (string, error) {
	tmpl, err := template.New("proposal").Funcs(template.FuncMap{
		"rubles": formatRubles,
	}).Parse(proposalTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, proposal); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func formatRubles(v int64) string {
	// Group digits by thousands with spaces, the Russian convention.
	s := []byte{}
	n := v
	if n == 0 {
		return "0"
	}
	digits := 0
	for n > 0 {
		if digits > 0 && digits%3 == 0 {
			s = append([]byte{' '}, s...)
		}
		s = append([]byte{byte('0' + n%10)}, s...)
		n /= 10
		digits++
	}
	return string(s)
}

const proposalTemplate = `
<!DOCTYPE html>
<html lang="ru">
<head>
    <meta charset="UTF-8">
    <title>Коммерческое предложение</title>
</head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="max-width: 640px; margin: 0 auto; background-color: #ffffff; border-collapse: collapse;">
        <tr>
            <td style="background-color: #1a2b4a; padding: 24px 32px;">
                <h1 style="color: #ffffff; margin: 0; font-size: 22px;">Коммерческое предложение</h1>
                <p style="color: #9db2d4; margin: 8px 0 0 0; font-size: 14px;">от {{.Date.Format "02.01.2006"}}</p>
            </td>
        </tr>
        <tr>
            <td style="padding: 24px 32px;">
                <p style="color: #2d3748; font-size: 15px; margin: 0 0 16px 0;">Уважаемый(ая) {{.CustomerName}},</p>
                <p style="color: #2d3748; font-size: 15px; margin: 0 0 20px 0;">
                    Благодарим за обращение. Направляем предложение по запрошенному оборудованию:
                </p>
                <table style="width: 100%; border-collapse: collapse; margin: 0 0 20px 0;">
                    <tr>
                        <th style="text-align: left; padding: 8px; border-bottom: 2px solid #e2e8f0; font-size: 14px; color: #4a5568;">Наименование</th>
                        <th style="text-align: left; padding: 8px; border-bottom: 2px solid #e2e8f0; font-size: 14px; color: #4a5568;">Категория</th>
                        <th style="text-align: right; padding: 8px; border-bottom: 2px solid #e2e8f0; font-size: 14px; color: #4a5568;">Цена, руб.</th>
                    </tr>
                    {{range .Products}}
                    <tr>
                        <td style="padding: 8px; border-bottom: 1px solid #e2e8f0; font-size: 14px;">{{.Name}}</td>
                        <td style="padding: 8px; border-bottom: 1px solid #e2e8f0; font-size: 14px;">{{.Category}}</td>
                        <td style="padding: 8px; border-bottom: 1px solid #e2e8f0; font-size: 14px; text-align: right;">{{rubles .Price}}</td>
                    </tr>
                    {{end}}
                    <tr>
                        <td colspan="2" style="padding: 12px 8px; font-size: 15px; font-weight: bold;">Итого</td>
                        <td style="padding: 12px 8px; font-size: 15px; font-weight: bold; text-align: right;">{{rubles .TotalPrice}}</td>
                    </tr>
                </table>
                {{if .Comment}}
                <p style="color: #4a5568; font-size: 14px; margin: 0 0 16px 0;">{{.Comment}}</p>
                {{end}}
                <p style="color: #718096; font-size: 13px; margin: 0;">
                    Предложение действительно в течение 30 календарных дней. Цены указаны без учета доставки.
                </p>
            </td>
        </tr>
    </table>
</body>
</html>
`
