package service

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uav-siberia/leads-api/internal/ai"
	"github.com/uav-siberia/leads-api/pkg/apperror"
)

// fakeClassifier returns a canned response or error.
type fakeClassifier struct {
	resp ai.Response
	err  error
}

func (f *fakeClassifier) Classify(ctx context.Context, userInput string) (ai.Response, error) {
	return f.resp, f.err
}

func TestClassifyReturnsParsedResponse(t *testing.T) {
	svc := NewAssistantService(&fakeClassifier{resp: ai.Response{
		SearchParamIDs: []string{"monitoring", "agriculture"},
		Message:        "Рекомендуем miniSIGMA.",
	}})

	result, err := svc.Classify(context.Background(), "Нужен БПЛА для мониторинга посевов")

	require.NoError(t, err)
	assert.Equal(t, []string{"monitoring", "agriculture"}, result.SearchParamIDs)
	assert.Equal(t, "Рекомендуем miniSIGMA.", result.Message)
}

func TestClassifyRejectsEmptyInput(t *testing.T) {
	svc := NewAssistantService(&fakeClassifier{})

	_, err := svc.Classify(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestClassifyMapsRemoteFailureToBadGateway(t *testing.T) {
	upstream := fmt.Errorf("unexpected status 429, body: upstream-internal-details")
	svc := NewAssistantService(&fakeClassifier{err: upstream})

	_, err := svc.Classify(context.Background(), "Нужен БПЛА")

	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusBadGateway, appErr.Code)
	assert.NotContains(t, appErr.Message, "upstream-internal-details")
}
