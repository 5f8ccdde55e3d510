package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/f5tci/diarios-api/internal/auth"
)

func TestAuthSemCredenciaisBloqueia(t *testing.T) {
	manager := auth.NewJWTManager("segredo-de-teste-com-32-caracteres!", time.Hour)
	chain := auth.Chain{auth.NewBearerResolver(manager)}

	invoked := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		invoked = true
	})

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rec := httptest.NewRecorder()
	Auth(chain)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status esperado %d, obtido %d", http.StatusUnauthorized, rec.Code)
	}
	if invoked {
		t.Fatal("handler executado sem credenciais")
	}
}

func TestAuthTokenMalformadoBloqueia(t *testing.T) {
	manager := auth.NewJWTManager("segredo-de-teste-com-32-caracteres!", time.Hour)
	chain := auth.Chain{auth.NewBearerResolver(manager)}

	invoked := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		invoked = true
	})

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Authorization", "Bearer nao-e-um-token")
	rec := httptest.NewRecorder()
	Auth(chain)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status esperado %d, obtido %d", http.StatusUnauthorized, rec.Code)
	}
	if invoked {
		t.Fatal("handler executado com token inválido")
	}
}

func TestAuthInjetaIdentidade(t *testing.T) {
	manager := auth.NewJWTManager("segredo-de-teste-com-32-caracteres!", time.Hour)
	chain := auth.Chain{auth.NewBearerResolver(manager)}

	token, err := manager.Generate("alice", auth.RoleAdmin)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	var got *auth.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetIdentity(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	Auth(chain)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status esperado %d, obtido %d", http.StatusOK, rec.Code)
	}
	if got == nil || got.Username != "alice" || got.Role != auth.RoleAdmin || got.Channel != auth.ChannelBearer {
		t.Fatalf("identidade inesperada: %+v", got)
	}
}

func TestRequireAdmin(t *testing.T) {
	cases := []struct {
		nome   string
		ident  *auth.Identity
		status int
	}{
		{"admin passa", &auth.Identity{Username: "chefe", Role: auth.RoleAdmin}, http.StatusOK},
		{"user bloqueado", &auth.Identity{Username: "alice", Role: auth.RoleDefault}, http.StatusForbidden},
		{"sem identidade bloqueado", nil, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.nome, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.ident != nil {
				req = req.WithContext(context.WithValue(req.Context(), ContextKeyIdentity, tc.ident))
			}
			rec := httptest.NewRecorder()
			RequireAdmin(next).ServeHTTP(rec, req)

			if rec.Code != tc.status {
				t.Fatalf("status esperado %d, obtido %d", tc.status, rec.Code)
			}
		})
	}
}
