package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	httpmiddleware "github.com/f5tci/diarios-api/internal/http/middleware"
	"github.com/f5tci/diarios-api/internal/repo"
	"github.com/f5tci/diarios-api/internal/usuario"
	"github.com/f5tci/diarios-api/internal/util"
)

// Register cria uma conta com papel de utilizador comum.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	u, err := h.usuarios.Register(r.Context(), payload.Username, payload.Password)
	if err != nil {
		h.handleAuthError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"username": u.Username,
		"role":     u.RoleOuDefault(),
	})
}

// Login autentica por username e senha e emite o token de acesso.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
		return
	}

	if strings.TrimSpace(payload.Username) == "" || strings.TrimSpace(payload.Password) == "" {
		writeError(w, http.StatusBadRequest, "VALIDATION", "username e password são obrigatórios", nil)
		return
	}

	u, err := h.usuarios.Authenticate(r.Context(), payload.Username, payload.Password)
	if err != nil {
		h.handleAuthError(w, err)
		return
	}

	token, err := h.jwt.Generate(u.Username, u.RoleOuDefault())
	if err != nil {
		log.Error().Err(err).Msg("falha ao emitir token")
		writeError(w, http.StatusInternalServerError, "INTERNAL", "erro interno", nil)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": token,
		"token_type":   "Bearer",
		"user": map[string]string{
			"username": u.Username,
			"role":     u.RoleOuDefault(),
		},
	})
}

// Refresh valida o token apresentado e emite um novo com prazo renovado.
// Não há estado de sessão no servidor, a renovação é pura reemissão.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		writeError(w, http.StatusUnauthorized, "AUTH", "Token ausente ou inválido.", nil)
		return
	}

	token, claims, err := h.jwt.Refresh(parts[1])
	if err != nil {
		writeError(w, http.StatusUnauthorized, "AUTH", "Token ausente ou inválido.", nil)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": token,
		"token_type":   "Bearer",
		"user": map[string]string{
			"username": claims.Subject,
			"role":     claims.Role,
		},
	})
}

// Me devolve a identidade resolvida da requisição.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ident := httpmiddleware.GetIdentity(r.Context())
	if ident == nil {
		writeError(w, http.StatusUnauthorized, "AUTH", "Não autorizado", nil)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"username": ident.Username,
		"role":     ident.Role,
	})
}

func (h *Handler) handleAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usuario.ErrCredenciaisInvalidas):
		writeError(w, http.StatusUnauthorized, "AUTH", "credenciais inválidas", nil)
	case errors.Is(err, repo.ErrConflict):
		writeError(w, http.StatusConflict, "CONFLICT", "Utilizador já existe.", nil)
	case util.IsValidation(err):
		writeError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
	default:
		log.Error().Err(err).Msg("erro na autenticação")
		writeError(w, http.StatusInternalServerError, "INTERNAL", "erro interno", nil)
	}
}
