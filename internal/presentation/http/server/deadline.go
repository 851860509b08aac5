package server

import (
	"context"
	"net/http"
	"time"
)

type responseControllerKey struct{}

// WithResponseController exposes the connection's response controller to
// handlers further down the chain. Routers like gin wrap the ResponseWriter
// without unwrapping, so the controller is captured here instead.
func WithResponseController(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), responseControllerKey{}, http.NewResponseController(w))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClearWriteDeadline lifts the server write timeout for a long-lived
// response such as an event stream.
func ClearWriteDeadline(r *http.Request) error {
	rc, ok := r.Context().Value(responseControllerKey{}).(*http.ResponseController)
	if !ok {
		return http.ErrNotSupported
	}
	return rc.SetWriteDeadline(time.Time{})
}
