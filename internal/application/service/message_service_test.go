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
)

// fakeMessageRepo is an in-memory MessageRepository for service tests.
type fakeMessageRepo struct {
	messages []entity.Message
}

func (f *fakeMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	f.messages = append(f.messages, *message)
	return nil
}

func (f *fakeMessageRepo) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]entity.Message, error) {
	out := []entity.Message{}
	for _, m := range f.messages {
		if m.RequestID == requestID {
			out = append(out, m)
		}
	}
	return out, nil
}

func TestAddMessageTouchesParentRequest(t *testing.T) {
	requestRepo := newFakeRequestRepo()
	messageRepo := &fakeMessageRepo{}
	svc := NewMessageService(messageRepo, requestRepo)

	id := uuid.New()
	requestRepo.requests[id] = &entity.CustomerRequest{
		ID:       id,
		FullName: "Иванов Иван",
		Status:   enum.RequestStatusInProgress,
	}

	message, err := svc.AddMessage(context.Background(), &AddMessageInput{
		RequestID:     id,
		Content:       "Уточните сроки поставки",
		IsFromManager: true,
	})

	require.NoError(t, err)
	assert.Equal(t, id, message.RequestID)
	require.Len(t, messageRepo.messages, 1)

	// Active correspondence keeps the lead out of the expiry sweep.
	stored := requestRepo.requests[id]
	require.NotNil(t, stored.LastUpdated)
	assert.WithinDuration(t, time.Now(), *stored.LastUpdated, 5*time.Second)
}

func TestAddMessageUnknownRequest(t *testing.T) {
	svc := NewMessageService(&fakeMessageRepo{}, newFakeRequestRepo())

	_, err := svc.AddMessage(context.Background(), &AddMessageInput{
		RequestID: uuid.New(),
		Content:   "Сообщение в никуда",
	})

	assert.Error(t, err)
}

func TestListMessagesReturnsConversation(t *testing.T) {
	requestRepo := newFakeRequestRepo()
	messageRepo := &fakeMessageRepo{}
	svc := NewMessageService(messageRepo, requestRepo)

	id := uuid.New()
	requestRepo.requests[id] = &entity.CustomerRequest{ID: id, FullName: "Иванов Иван"}

	_, err := svc.AddMessage(context.Background(), &AddMessageInput{RequestID: id, Content: "Здравствуйте", IsFromManager: true})
	require.NoError(t, err)
	_, err = svc.AddMessage(context.Background(), &AddMessageInput{RequestID: id, Content: "Добрый день"})
	require.NoError(t, err)

	messages, err := svc.ListMessages(context.Background(), id)

	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "Здравствуйте", messages[0].Content)
	assert.False(t, messages[1].IsFromManager)
}
