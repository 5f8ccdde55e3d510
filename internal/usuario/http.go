package usuario

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/f5tci/diarios-api/internal/repo"
	"github.com/f5tci/diarios-api/internal/util"
)

// Handler expõe a gestão de contas do backoffice.
type Handler struct {
	service *Service
}

// NewHandler cria o handler de utilizadores.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Mount regista as rotas de utilizadores no router.
func Mount(r chi.Router, handler *Handler) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/", handler.handleCreate)
		r.Get("/", handler.handleList)
		r.Get("/{id}", handler.handleGet)
		r.Patch("/{id}", handler.handleUpdate)
		r.Delete("/{id}", handler.handleDelete)
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var input CreateInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido")
		return
	}

	u, err := h.service.Create(r.Context(), input)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.service.List(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, usuarios)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	u, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch Patch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido")
		return
	}

	u, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Utilizador eliminado com sucesso."})
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repo.ErrInvalidID):
		writeError(w, http.StatusBadRequest, "VALIDATION", "ID inválido.")
	case errors.Is(err, repo.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Utilizador não encontrado.")
	case errors.Is(err, repo.ErrConflict):
		writeError(w, http.StatusConflict, "CONFLICT", "Utilizador já existe.")
	case util.IsValidation(err):
		writeError(w, http.StatusBadRequest, "VALIDATION", err.Error())
	default:
		log.Error().Err(err).Msg("erro no módulo de utilizadores")
		writeError(w, http.StatusInternalServerError, "INTERNAL", "erro interno")
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"data": data, "error": nil})
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
