package preset

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	httpmiddleware "github.com/f5tci/diarios-api/internal/http/middleware"
	"github.com/f5tci/diarios-api/internal/repo"
	"github.com/f5tci/diarios-api/internal/util"
)

// Handler expõe a gestão de presets do utilizador autenticado.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Mount regista as rotas de presets.
func Mount(r chi.Router, handler *Handler) {
	r.Route("/presets", func(r chi.Router) {
		r.Post("/", handler.handleCreate)
		r.Get("/", handler.handleList)
		r.Get("/{id}", handler.handleGet)
		r.Patch("/{id}", handler.handleUpdate)
		r.Delete("/{id}", handler.handleDelete)
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	username := httpmiddleware.GetUsername(r.Context())

	var input CreateInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido")
		return
	}

	p, err := h.service.Create(r.Context(), username, input)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	presets, err := h.service.List(r.Context(), httpmiddleware.GetUsername(r.Context()))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, presets)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Get(r.Context(), chi.URLParam(r, "id"), httpmiddleware.GetUsername(r.Context()))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch Patch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido")
		return
	}

	p, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), httpmiddleware.GetUsername(r.Context()), patch)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id"), httpmiddleware.GetUsername(r.Context())); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Preset eliminado com sucesso!"})
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
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Preset não encontrado.")
	case errors.Is(err, ErrSemPermissao):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "Sem permissão para alterar este preset.")
	case util.IsValidation(err):
		writeError(w, http.StatusBadRequest, "VALIDATION", err.Error())
	default:
		log.Error().Err(err).Msg("erro no módulo de presets")
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
