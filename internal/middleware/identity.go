package middleware

import (
	"context"
	"net/http"
	"slices"
	"strings"
	"time"
)

const (
	// UserIDHeader carries the authenticated caller, set by the gateway in
	// front of this service.
	UserIDHeader = "X-User-ID"
	// TimezoneHeader optionally carries the caller's IANA timezone.
	TimezoneHeader = "X-Timezone"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	locationKey
)

// NewIdentityHandler returns a middleware that requires X-User-ID and stores
// it, together with the caller's timezone, in the request context. Requests
// without a user are rejected with 401. An unknown X-Timezone is rejected
// with 400; a missing one falls back to defaultLoc. Requests whose path is
// one of publicPaths pass through untouched.
func NewIdentityHandler(defaultLoc *time.Location, publicPaths ...string) func(http.Handler) http.Handler {
	if defaultLoc == nil {
		defaultLoc = time.UTC
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if slices.Contains(publicPaths, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			userID := strings.TrimSpace(r.Header.Get(UserIDHeader))
			if userID == "" {
				WriteError(w, http.StatusUnauthorized, "unauthenticated", UserIDHeader+" header is required")
				return
			}

			loc := defaultLoc
			if tz := strings.TrimSpace(r.Header.Get(TimezoneHeader)); tz != "" {
				l, err := time.LoadLocation(tz)
				if err != nil {
					WriteError(w, http.StatusBadRequest, "bad_request", "unknown timezone "+tz)
					return
				}
				loc = l
			}

			ctx := WithUserID(r.Context(), userID)
			ctx = WithLocation(ctx, loc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserID returns the caller stored by NewIdentityHandler, or "" if none.
func UserID(ctx context.Context) string {
	s, _ := ctx.Value(userIDKey).(string)
	return s
}

// WithLocation returns a copy of ctx carrying the caller's timezone.
func WithLocation(ctx context.Context, loc *time.Location) context.Context {
	return context.WithValue(ctx, locationKey, loc)
}

// Location returns the caller's timezone, or UTC if none was stored.
func Location(ctx context.Context) *time.Location {
	if loc, ok := ctx.Value(locationKey).(*time.Location); ok && loc != nil {
		return loc
	}
	return time.UTC
}
