// Package tenant resolves the acting company for a request. Contractor
// authentication happens upstream; this layer trusts the principal
// header the proxy sets and makes the company id available on the
// request context.
package tenant

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Header carries the authenticated company id, set by the upstream
// auth proxy.
const Header = "X-Company-ID"

type contextKey struct{}

// FromContext returns the company id resolved by Middleware. The
// second return is false on requests that did not pass through it.
func FromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(contextKey{}).(uuid.UUID)
	return id, ok
}

// WithCompany returns a context carrying the company id. Exposed for
// handler tests.
func WithCompany(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// Middleware rejects requests without a valid company header and
// stores the parsed id on the context for the handlers downstream.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.Header.Get(Header))
		if err != nil {
			http.Error(w, "missing or invalid company", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithCompany(r.Context(), id)))
	})
}

// CompanyID is a convenience for handlers: it resolves the company id
// or writes a 401 and reports false.
func CompanyID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := FromContext(r.Context())
	if !ok {
		http.Error(w, "missing or invalid company", http.StatusUnauthorized)
	}

	return id, ok
}
