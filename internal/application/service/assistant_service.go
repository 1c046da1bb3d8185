package service

import (
	"context"
	"log"
	"net/http"

	"github.com/uav-siberia/leads-api/internal/ai"
	"github.com/uav-siberia/leads-api/pkg/apperror"
)

// Classifier runs one need-classification round trip.
type Classifier interface {
	Classify(ctx context.Context, userInput string) (ai.Response, error)
}

// AssistantService fronts the AI consultant: free text in, selected
// catalog tags and a customer-facing reply out.
type AssistantService struct {
	classifier Classifier
}

// NewAssistantService creates a new assistant service
func NewAssistantService(classifier Classifier) *AssistantService {
	return &AssistantService{classifier: classifier}
}

// Classify maps a customer's free-text need description to taxonomy
// tags. A model reply without markers is not an error: it degrades to
// an empty tag list and the fallback message.
func (s *AssistantService) Classify(ctx context.Context, userInput string) (*ai.Response, error) {
	if userInput == "" {
		return nil, apperror.NewBadRequestError("Input text is required")
	}

	resp, err := s.classifier.Classify(ctx, userInput)
	if err != nil {
		// The upstream detail stays in the server log; the public
		// endpoint only learns that classification is unavailable.
		log.Printf("Classification failed: %v", err)
		return nil, apperror.NewAppError(http.StatusBadGateway, "Classification service is unavailable")
	}

	return &resp, nil
}
