package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClaims struct{ service string }

func (c testClaims) GetService() string { return c.service }

type testValidator map[string]string

func (v testValidator) ValidateToken(token string) (ServiceGetter, error) {
	if service, ok := v[token]; ok {
		return testClaims{service: service}, nil
	}
	return nil, errors.New("invalid token")
}

func protected(t *testing.T) (http.Handler, *string) {
	t.Helper()
	var seen string
	h := AuthMiddleware(testValidator{"good-token": "backend"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		service, err := GetService(r)
		require.NoError(t, err)
		seen = service
		w.WriteHeader(http.StatusNoContent)
	}))
	return h, &seen
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	for _, header := range []string{"Bearer good-token", "bearer good-token", "BEARER   good-token"} {
		h, seen := protected(t)
		req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code, header)
		assert.Equal(t, "backend", *seen)
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	tests := map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic good-token",
		"no token":       "Bearer",
		"extra parts":    "Bearer good-token extra",
		"unknown token":  "Bearer forged",
	}
	for name, header := range tests {
		t.Run(name, func(t *testing.T) {
			h, seen := protected(t)
			req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Empty(t, *seen)
		})
	}
}

func TestGetService_Missing(t *testing.T) {
	_, err := GetService(httptest.NewRequest(http.MethodGet, "/", nil))
	require.Error(t, err)
}
