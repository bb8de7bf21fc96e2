package middleware

import (
	"net/http"

	"github.com/termosaude/backend/internal/auth"
)

// OptionalAuth lê o Bearer token se presente, mas nunca bloqueia a request.
// Token válido injeta claims no context; ausente ou inválido segue anônimo.
// Usado no endpoint público de verificação de termos, que enriquece a
// resposta quando quem consulta é um profissional logado.
func OptionalAuth(secret []byte, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if raw := bearerToken(r); raw != "" {
			if claims, err := auth.ParseJWT(secret, raw); err == nil && claims != nil {
				r = r.WithContext(auth.WithClaims(r.Context(), claims))
			}
		}
		next.ServeHTTP(w, r)
	})
}
