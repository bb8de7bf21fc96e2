package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout cancela o context da request após timeoutSec segundos.
// Handlers que respeitam ctx (queries, geração de PDF) abortam junto.
// Com timeoutSec <= 0 o middleware vira no-op.
func Timeout(timeoutSec int) func(http.Handler) http.Handler {
	if timeoutSec <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	d := time.Duration(timeoutSec) * time.Second
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
