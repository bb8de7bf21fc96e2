package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"runtime/debug"
)

// Recover converte panics em 500 com corpo JSON estável.
// O stack completo vai para o log do servidor; a resposta só carrega o request_id.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				rid := r.Header.Get("X-Request-ID")
				log.Printf("[panic] request_id=%s method=%s path=%s err=%v\n%s", rid, r.Method, r.URL.Path, rec, debug.Stack())
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error":      "internal",
					"request_id": rid,
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
