package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/f5tci/diarios-api/internal/auth"
)

type contextKey string

const ContextKeyIdentity contextKey = "identity"

// Auth resolve a identidade da requisição através da cadeia fornecida e
// injeta o resultado no contexto. Sem credenciais válidas nada a jusante
// é executado.
func Auth(chain auth.Chain) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ident, err := chain.Resolve(r.Context(), r.Header)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "AUTH", "Token ausente ou inválido.")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyIdentity, ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity recupera a identidade resolvida do contexto.
func GetIdentity(ctx context.Context) *auth.Identity {
	val, _ := ctx.Value(ContextKeyIdentity).(*auth.Identity)
	return val
}

// GetUsername recupera o username da identidade resolvida.
func GetUsername(ctx context.Context) string {
	if ident := GetIdentity(ctx); ident != nil {
		return ident.Username
	}
	return ""
}

// GetRole recupera o papel da identidade resolvida.
func GetRole(ctx context.Context) string {
	if ident := GetIdentity(ctx); ident != nil {
		return ident.Role
	}
	return ""
}

// RequireAdmin garante papel de administrador.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident := GetIdentity(r.Context())
		if ident == nil || !ident.IsAdmin() {
			writeError(w, http.StatusForbidden, "FORBIDDEN", "acesso restrito a administradores")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"data": nil,
		"error": map[string]any{
			"code":    code,
			"message": message,
		},
	})
}
