package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dshills/stemtutor/internal/knowledge"
	"github.com/dshills/stemtutor/internal/tutor"
	"github.com/dshills/stemtutor/pkg/types"
)

// testHandler builds the full router over a degraded knowledge base, so
// only the Newton short-circuit can answer. That is enough to exercise
// every endpoint without an embedding provider.
func testHandler(t *testing.T) (http.Handler, *knowledge.Base) {
	t.Helper()
	kb := knowledge.NewDefault(nil)
	tut := tutor.New(kb, nil, tutor.WithLogger(zap.NewNop()))
	return New(tut, kb, zap.NewNop()).Handler(), kb
}

func postChat(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleChat(t *testing.T) {
	handler, _ := testHandler(t)

	rec := postChat(t, handler, `{"message":"What is Newton's second law?"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, knowledge.ShortCircuitConfidence, resp.Confidence)
	assert.Equal(t, types.SourceLocalKB, resp.Source)
	assert.Equal(t, "newtons_second_law", resp.TopicID)
	assert.Contains(t, resp.AnswerText, "F = ma")
}

func TestHandleChat_ShortQuestionIsNormalResponse(t *testing.T) {
	handler, _ := testHandler(t)

	rec := postChat(t, handler, `{"message":"hi"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, tutor.ValidationMessage, resp.AnswerText)
	assert.Zero(t, resp.Confidence)
}

func TestHandleChat_BadRequests(t *testing.T) {
	handler, _ := testHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{not json`},
		{"missing message", `{}`},
		{"empty message", `{"message":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postChat(t, handler, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var errResp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.NotEmpty(t, errResp.Error)
		})
	}
}

func TestHandleHistory(t *testing.T) {
	handler, _ := testHandler(t)

	postChat(t, handler, `{"message":"What is Newton's first law?"}`)
	postChat(t, handler, `{"message":"What is Newton's third law?"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		History []string `json:"history"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{
		"What is Newton's first law?",
		"What is Newton's third law?",
	}, resp.History)
}

func TestHandleTopics(t *testing.T) {
	handler, kb := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/topics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Topics []TopicInfo `json:"topics"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Topics, len(kb.Entries()))
	assert.Equal(t, "physics", resp.Topics[0].Subject)
}

func TestHealthEndpoints(t *testing.T) {
	handler, _ := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Degraded (no embedder) still counts as ready.
	req = httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "degraded")
}

func TestNotFound(t *testing.T) {
	handler, _ := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
}

func TestRequestIDHeader(t *testing.T) {
	handler, _ := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	// A caller-supplied ID is echoed back.
	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "caller-id")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "caller-id", rec.Header().Get("X-Request-ID"))
}
