package reasoning

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/aqualab-backend/config"
)

type capturedRequest struct {
	Model          string `json:"model"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func completionServer(t *testing.T, content string, status int, captured *capturedRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		if captured != nil {
			_ = json.NewDecoder(r.Body).Decode(captured)
		}
		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":{"message":"upstream exploded","type":"server_error"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": "stop",
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(baseURL string, timeout time.Duration) *OpenAIClient {
	return NewOpenAIClient(config.ReasoningConfig{
		APIKey:  "sk-test",
		Model:   "gpt-4o-mini",
		BaseURL: baseURL + "/v1",
		Timeout: timeout,
	})
}

func TestOpenAIClient_Complete(t *testing.T) {
	t.Run("structured request asks for a json object", func(t *testing.T) {
		var got capturedRequest
		srv := completionServer(t, `{"summary":"ok","solution":""}`, http.StatusOK, &got)

		out, err := newTestClient(srv.URL, time.Second).Complete(context.Background(), "sys", "user prompt", true)
		require.NoError(t, err)
		assert.Equal(t, `{"summary":"ok","solution":""}`, out)

		assert.Equal(t, "gpt-4o-mini", got.Model)
		require.NotNil(t, got.ResponseFormat)
		assert.Equal(t, "json_object", got.ResponseFormat.Type)
		require.Len(t, got.Messages, 2)
		assert.Equal(t, "system", got.Messages[0].Role)
		assert.Equal(t, "sys", got.Messages[0].Content)
		assert.Equal(t, "user prompt", got.Messages[1].Content)
	})

	t.Run("plain request has no response format", func(t *testing.T) {
		var got capturedRequest
		srv := completionServer(t, "Sample 3 is closest.", http.StatusOK, &got)

		out, err := newTestClient(srv.URL, time.Second).Complete(context.Background(), "sys", "p", false)
		require.NoError(t, err)
		assert.Equal(t, "Sample 3 is closest.", out)
		assert.Nil(t, got.ResponseFormat)
	})

	t.Run("api error is service unavailable", func(t *testing.T) {
		srv := completionServer(t, "", http.StatusInternalServerError, nil)

		_, err := newTestClient(srv.URL, time.Second).Complete(context.Background(), "sys", "p", false)
		assert.ErrorIs(t, err, ErrServiceUnavailable)
	})

	t.Run("empty content is malformed", func(t *testing.T) {
		srv := completionServer(t, "   ", http.StatusOK, nil)

		_, err := newTestClient(srv.URL, time.Second).Complete(context.Background(), "sys", "p", false)
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("timeout is service unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer srv.Close()

		start := time.Now()
		_, err := newTestClient(srv.URL, 50*time.Millisecond).Complete(context.Background(), "sys", "p", false)
		assert.ErrorIs(t, err, ErrServiceUnavailable)
		assert.Less(t, time.Since(start), time.Second)
	})
}

type stubCompleter struct {
	out string
	err error
}

func (s stubCompleter) Complete(context.Context, string, string, bool) (string, error) {
	return s.out, s.err
}

func TestInstrument(t *testing.T) {
	ok := Instrument(stubCompleter{out: "x"}, "test_op")
	failing := Instrument(stubCompleter{err: errors.New("boom")}, "test_op")

	before := testutil.ToFloat64(callsTotal.WithLabelValues("test_op", "success"))
	beforeErr := testutil.ToFloat64(callsTotal.WithLabelValues("test_op", "error"))

	out, err := ok.Complete(context.Background(), "", "", false)
	require.NoError(t, err)
	assert.Equal(t, "x", out)

	_, err = failing.Complete(context.Background(), "", "", false)
	assert.EqualError(t, err, "boom")

	assert.Equal(t, before+1, testutil.ToFloat64(callsTotal.WithLabelValues("test_op", "success")))
	assert.Equal(t, beforeErr+1, testutil.ToFloat64(callsTotal.WithLabelValues("test_op", "error")))
}
