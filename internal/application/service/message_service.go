package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uav-siberia/leads-api/internal/domain/entity"
	"github.com/uav-siberia/leads-api/internal/domain/repository"
	"github.com/uav-siberia/leads-api/pkg/apperror"
)

// MessageService handles the per-request conversation log.
type MessageService struct {
	messageRepo repository.MessageRepository
	requestRepo repository.RequestRepository
}

// NewMessageService creates a new message service
func NewMessageService(messageRepo repository.MessageRepository, requestRepo repository.RequestRepository) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		requestRepo: requestRepo,
	}
}

// AddMessageInput represents the add message input
type AddMessageInput struct {
	RequestID     uuid.UUID
	Content       string
	IsFromManager bool
}

// AddMessage appends a message to a request's conversation and touches
// the request, so active correspondence keeps the lead from expiring.
func (s *MessageService) AddMessage(ctx context.Context, input *AddMessageInput) (*entity.Message, error) {
	request, err := s.requestRepo.GetByID(ctx, input.RequestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperror.NewNotFoundError("Request")
	}

	message := &entity.Message{
		ID:            uuid.New(),
		RequestID:     input.RequestID,
		Content:       input.Content,
		IsFromManager: input.IsFromManager,
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	if err := s.requestRepo.TouchLastUpdated(ctx, input.RequestID, time.Now()); err != nil {
		return nil, err
	}

	return message, nil
}

// ListMessages returns the conversation for one request in time order.
func (s *MessageService) ListMessages(ctx context.Context, requestID uuid.UUID) ([]entity.Message, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperror.NewNotFoundError("Request")
	}

	return s.messageRepo.ListByRequest(ctx, requestID)
}
