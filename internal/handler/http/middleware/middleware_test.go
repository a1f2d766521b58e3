package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employees/all", nil))

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_KeepsCallerID(t *testing.T) {
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/payroll", nil)
	req.Header.Set(RequestIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(RequestIDHeader))
}

func TestBodyLimit(t *testing.T) {
	var readErr error
	h := BodyLimit(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/leave/request", strings.NewReader(`{"reason":"too long"}`)))
	assert.Error(t, readErr)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/leave/request", strings.NewReader(`{}`)))
	assert.NoError(t, readErr)
}

func TestIdentify_PassesThroughWithAndWithoutToken(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("secret"), nil)
	_, token, err := ja.Encode(map[string]interface{}{"sub": "5", "type": "access", "role": "HR"})
	require.NoError(t, err)

	called := 0
	h := jwtauth.Verifier(ja)(Identify(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called++
	})))

	withToken := httptest.NewRequest(http.MethodGet, "/employees/all", nil)
	withToken.Header.Set("Authorization", "Bearer "+token)
	h.ServeHTTP(httptest.NewRecorder(), withToken)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/employees/all", nil))

	garbage := httptest.NewRequest(http.MethodGet, "/employees/all", nil)
	garbage.Header.Set("Authorization", "Bearer not-a-token")
	h.ServeHTTP(httptest.NewRecorder(), garbage)

	assert.Equal(t, 3, called)
}
