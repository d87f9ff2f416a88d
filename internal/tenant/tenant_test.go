package tenant_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgoodwin/quoteforge/internal/tenant"
)

func TestMiddleware_ValidHeader(t *testing.T) {
	companyID := uuid.New()

	var got uuid.UUID
	var ok bool

	handler := tenant.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = tenant.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(tenant.Header, companyID.String())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, ok)
	assert.Equal(t, companyID, got)
}

func TestMiddleware_MissingHeader(t *testing.T) {
	called := false

	handler := tenant.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestMiddleware_MalformedHeader(t *testing.T) {
	handler := tenant.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(tenant.Header, "not-a-uuid")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
