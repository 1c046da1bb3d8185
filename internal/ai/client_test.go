package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStubServer(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var payload struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
			MaxTokens   int     `json:"max_tokens"`
			Temperature float64 `json:"temperature"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "gpt-4o", payload.Model)
		assert.Equal(t, 500, payload.MaxTokens)
		assert.InDelta(t, 0.45, payload.Temperature, 0.001)
		require.Len(t, payload.Messages, 2)
		assert.Equal(t, "system", payload.Messages[0].Role)
		assert.Equal(t, SystemPrompt, payload.Messages[0].Content)
		assert.Equal(t, "user", payload.Messages[1].Role)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": reply}},
			},
		})
	}))
}

func testConfig(endpoint string) Config {
	return Config{
		Endpoint:    endpoint,
		APIKey:      "test-key",
		Model:       "gpt-4o",
		MaxTokens:   500,
		Temperature: 0.45,
	}
}

func TestClientClassify(t *testing.T) {
	srv := newStubServer(t, "searchParamIDs: [\"тип_бпла\", \"задача_аэрофотосъемка\"]\nОтвет пользователю: Вам подойдет БПЛА самолетного типа.")
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	resp, err := client.Classify(context.Background(), "Нужен дрон для съемки полей")

	require.NoError(t, err)
	assert.Equal(t, []string{"тип_бпла", "задача_аэрофотосъемка"}, resp.SearchParamIDs)
	assert.Equal(t, "Вам подойдет БПЛА самолетного типа.", resp.Message)
}

func TestClientCompleteErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "rate limit"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, err := client.Complete(context.Background(), "запрос")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestClientCompleteNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, err := client.Complete(context.Background(), "запрос")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
