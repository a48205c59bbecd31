package middlewarectx

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payloadRequest(t *testing.T, method, contentType, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var got map[string]any
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = Payload(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(method, "/users/registration/", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	rr := httptest.NewRecorder()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	JSONPayload(log)(next).ServeHTTP(rr, req)
	return rr, got
}

func TestJSONPayload_OK(t *testing.T) {
	rr, got := payloadRequest(t, http.MethodPost, "application/json",
		`{"login":"user_1","is_active":true}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, got)
	assert.Equal(t, "user_1", got["login"])
	assert.Equal(t, true, got["is_active"])
}

func TestJSONPayload_CharsetParameterAccepted(t *testing.T) {
	rr, got := payloadRequest(t, http.MethodPost, "application/json; charset=utf-8",
		`{"login":"user_1"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "user_1", got["login"])
}

func TestJSONPayload_WrongContentType(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
	}{
		{name: "plain text", contentType: "text/plain"},
		{name: "form", contentType: "application/x-www-form-urlencoded"},
		{name: "missing", contentType: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, _ := payloadRequest(t, http.MethodPost, tt.contentType, `{"login":"user_1"}`)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.JSONEq(t, `{"message":"Wrong request data type."}`, rr.Body.String())
		})
	}
}

func TestJSONPayload_EmptyPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty object", body: `{}`},
		{name: "empty body", body: ``},
		{name: "malformed json", body: `{"login":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, _ := payloadRequest(t, http.MethodPost, "application/json", tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.JSONEq(t, `{"message":"Empty payload."}`, rr.Body.String())
		})
	}
}

func TestJSONPayload_ReadMethodsPassThrough(t *testing.T) {
	rr, got := payloadRequest(t, http.MethodGet, "", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, got)
}
