package agenda

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/f5tci/diarios-api/internal/repo"
	"github.com/f5tci/diarios-api/internal/util"
)

// Repositorio é o contrato de persistência de que o handler depende.
type Repositorio interface {
	Insert(ctx context.Context, e Evento) (*Evento, error)
	List(ctx context.Context) ([]Evento, error)
	Get(ctx context.Context, id string) (*Evento, error)
	Update(ctx context.Context, id string, set bson.M) (*Evento, error)
	Delete(ctx context.Context, id string) error
}

// Handler expõe o CRUD das marcações de agenda.
type Handler struct {
	repo Repositorio
}

// NewHandler cria o handler da agenda.
func NewHandler(repo Repositorio) *Handler {
	return &Handler{repo: repo}
}

// Mount regista as rotas da agenda.
func Mount(r chi.Router, handler *Handler) {
	r.Route("/agenda", func(r chi.Router) {
		r.Post("/", handler.handleCreate)
		r.Get("/", handler.handleList)
		r.Get("/{id}", handler.handleGet)
		r.Patch("/{id}", handler.handleUpdate)
		r.Delete("/{id}", handler.handleDelete)
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var e Evento
	if err := decodeJSON(r, &e); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido")
		return
	}
	for field, value := range map[string]string{
		"utilizador":  e.Utilizador,
		"data":        e.Data,
		"hora_inicio": e.HoraInicio,
		"hora_fim":    e.HoraFim,
	} {
		if err := util.RequireString(value, field); err != nil {
			handleDomainError(w, err)
			return
		}
	}

	created, err := h.repo.Insert(r.Context(), e)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	eventos, err := h.repo.List(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eventos)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	e, err := h.repo.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch Patch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido")
		return
	}

	e, err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), patch.toSet())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Marcação eliminada com sucesso!"})
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
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Marcação não encontrada.")
	case util.IsValidation(err):
		writeError(w, http.StatusBadRequest, "VALIDATION", err.Error())
	default:
		log.Error().Err(err).Msg("erro no módulo de agenda")
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
