package service

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/uav-siberia/leads-api/internal/domain/entity"
	"github.com/uav-siberia/leads-api/internal/domain/enum"
	"github.com/uav-siberia/leads-api/internal/domain/repository"
)

// ContactService turns public contact-form submissions into leads and
// optionally forwards them to an external endpoint (CRM webhook,
// notification bot).
type ContactService struct {
	requestRepo repository.RequestRepository
	forwardURL  string
	httpClient  *http.Client
}

// NewContactService creates a new contact service
func NewContactService(requestRepo repository.RequestRepository, forwardURL string) *ContactService {
	return &ContactService{
		requestRepo: requestRepo,
		forwardURL:  forwardURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

// ContactInput represents a contact-form submission
type ContactInput struct {
	Name     string   `json:"name"`
	Phone    string   `json:"phone"`
	Email    string   `json:"email"`
	Message  string   `json:"message"`
	Products []string `json:"products"`
}

// SubmitContact stores the submission as a new lead. Forwarding is
// best effort: a dead webhook never loses the lead.
func (s *ContactService) SubmitContact(ctx context.Context, input *ContactInput) (*entity.CustomerRequest, error) {
	now := time.Now()
	request := &entity.CustomerRequest{
		ID:          uuid.New(),
		FullName:    input.Name,
		PhoneNumber: input.Phone,
		Email:       input.Email,
		Products:    input.Products,
		Timestamp:   now.Format("2006-01-02 15:04:05"),
		Status:      enum.RequestStatusNew,
		Comments:    input.Message,
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	if s.forwardURL != "" {
		s.forward(ctx, input)
	}

	return request, nil
}

func (s *ContactService) forward(ctx context.Context, input *ContactInput) {
	payload, err := json.Marshal(input)
	if err != nil {
		log.Printf("Contact forward: encoding failed: %v", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.forwardURL, bytes.NewBuffer(payload))
	if err != nil {
		log.Printf("Contact forward: building request failed: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("Contact forward to %s failed: %v", s.forwardURL, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("Contact forward to %s returned status %d", s.forwardURL, resp.StatusCode)
	}
}
