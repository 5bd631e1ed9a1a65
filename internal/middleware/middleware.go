package middleware

import "net/http"

// Middleware decorates a handler with a cross-cutting concern.
type Middleware func(http.Handler) http.Handler

// Wrap layers mws around h, last one outermost: Wrap(h, a, b) serves a
// request through b first and h last.
func Wrap(h http.Handler, mws ...Middleware) http.Handler {
	for _, mw := range mws {
		h = mw(h)
	}
	return h
}
