package projeto

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/f5tci/diarios-api/internal/repo"
	"github.com/f5tci/diarios-api/internal/util"
)

// Handler expõe a gestão de projetos.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Mount regista as rotas de projetos, incluindo a recomputação de horas.
func Mount(r chi.Router, handler *Handler) {
	r.Route("/projects", func(r chi.Router) {
		r.Post("/", handler.handleCreate)
		r.Get("/", handler.handleList)
		r.Get("/{id}", handler.handleGet)
		r.Patch("/{id}", handler.handleUpdate)
		r.Delete("/{id}", handler.handleDelete)
		r.Put("/update_hours/{id}", handler.handleRecalcular)
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var input CreateInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido")
		return
	}

	p, err := h.service.Create(r.Context(), input)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	projetos, err := h.service.List(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projetos)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
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

	p, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Projeto eliminado com sucesso!"})
}

func (h *Handler) handleRecalcular(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Recalcular(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
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
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Projeto não encontrado.")
	case errors.Is(err, repo.ErrConflict):
		writeError(w, http.StatusConflict, "CONFLICT", "Já existe um projeto com este cliente, contrato e descrição.")
	case util.IsValidation(err):
		writeError(w, http.StatusBadRequest, "VALIDATION", err.Error())
	default:
		log.Error().Err(err).Msg("erro no módulo de projetos")
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
