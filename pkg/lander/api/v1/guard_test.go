package api_v1_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nais/lander/pkg/lander/api/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	body := map[string]string{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

var ok = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func TestRequireJSON(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		status      int
	}{
		{name: "plain json", contentType: "application/json", body: "{}", status: http.StatusNoContent},
		{name: "json with charset", contentType: "application/json; charset=utf-8", body: "{}", status: http.StatusNoContent},
		{name: "empty body", contentType: "", body: "", status: http.StatusNoContent},
		{name: "text", contentType: "text/plain", body: "{}", status: http.StatusUnsupportedMediaType},
		{name: "missing header", contentType: "", body: "{}", status: http.StatusUnsupportedMediaType},
		{name: "malformed header", contentType: "application/", body: "{}", status: http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/deploy", strings.NewReader(tt.body))
			if tt.contentType != "" {
				r.Header.Set("Content-Type", tt.contentType)
			}
			rec := httptest.NewRecorder()
			api_v1.RequireJSON(ok).ServeHTTP(rec, r)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusUnsupportedMediaType {
				body := decodeBody(t, rec)
				assert.Equal(t, "validation-failed", body["error"])
				assert.Equal(t, "Content-Type must be application/json", body["message"])
			}
		})
	}
}

func TestRecoverer(t *testing.T) {
	handler := api_v1.Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("template exploded")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/preview", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	body := decodeBody(t, rec)
	assert.Equal(t, "Internal server error", body["error"])
	assert.NotEmpty(t, body["message"])
	assert.NotContains(t, rec.Body.String(), "template exploded")
}

func TestRecovererAbortHandler(t *testing.T) {
	handler := api_v1.Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestDeadline(t *testing.T) {
	var deadline time.Time
	var hasDeadline bool
	handler := api_v1.Deadline(time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deadline, hasDeadline = r.Context().Deadline()
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	before := time.Now()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/deploy", nil))

	require.True(t, hasDeadline)
	assert.WithinDuration(t, before.Add(time.Minute), deadline, 5*time.Second)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
