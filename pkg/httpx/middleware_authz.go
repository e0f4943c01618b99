package httpx

import (
	"net/http"
	"strings"
)

// RequireAnyScope passes requests whose token carries at least one of the
// listed scopes.
func RequireAnyScope(required ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, s := range scopesFromCtx(r.Context()) {
				for _, want := range required {
					if s == want {
						next.ServeHTTP(w, r)
						return
					}
				}
			}
			writeScopeError(w, required...)
		})
	}
}

// RequireAllScopes passes requests whose token carries every listed scope.
func RequireAllScopes(required ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			have := make(map[string]struct{})
			for _, s := range scopesFromCtx(r.Context()) {
				have[s] = struct{}{}
			}
			for _, want := range required {
				if _, ok := have[want]; !ok {
					writeScopeError(w, required...)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeScopeError(w http.ResponseWriter, required ...string) {
	w.Header().Set("WWW-Authenticate",
		`Bearer error="insufficient_scope", scope="`+strings.Join(required, " ")+`"`)
	WriteFailure(w, http.StatusForbidden, CodeInsufficientScope, "Insufficient scope", nil)
}
