// Package httpx holds the HTTP plumbing shared by the vidcat server and its
// SDK: middleware chaining, bearer authentication, scope checks, rate limits
// and the JSON response envelope.
package httpx

import "net/http"

type Middleware func(http.Handler) http.Handler

// Chain wraps h so that the first middleware listed runs first.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
