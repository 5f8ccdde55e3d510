package tarefa

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/f5tci/diarios-api/internal/auth"
	httpmiddleware "github.com/f5tci/diarios-api/internal/http/middleware"
	"github.com/f5tci/diarios-api/internal/repo"
	"github.com/f5tci/diarios-api/internal/util"
)

// Handler expõe o registo e consulta de tarefas.
type Handler struct {
	service *Service
}

// NewHandler cria o handler de tarefas.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Mount regista as rotas das tarefas. Criação e listagem aceitam ambos os
// canais de autenticação; edição, remoção e relatório exigem bearer.
func Mount(r chi.Router, handler *Handler) {
	r.Route("/tasks", func(r chi.Router) {
		r.Post("/", handler.handleCreate)
		r.Get("/", handler.handleList)
		r.Get("/atividade", handler.handleAtividadeMensal)
		r.Get("/{id}", handler.handleGet)
		r.Patch("/{id}", handler.handleUpdate)
		r.Delete("/{id}", handler.handleDelete)
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ident := httpmiddleware.GetIdentity(r.Context())
	if ident == nil {
		writeError(w, http.StatusUnauthorized, "AUTH", "Não autorizado")
		return
	}

	var input CreateInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido")
		return
	}

	t, err := h.service.Create(r.Context(), ident.Username, input)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ident := httpmiddleware.GetIdentity(r.Context())
	if ident == nil {
		writeError(w, http.StatusUnauthorized, "AUTH", "Não autorizado")
		return
	}

	filtro, err := filtroFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", err.Error())
		return
	}

	tarefas, err := h.service.List(r.Context(), ident, filtro)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tarefas)
}

func (h *Handler) handleAtividadeMensal(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireBearer(w, r)
	if !ok {
		return
	}
	if !ident.IsAdmin() {
		writeError(w, http.StatusForbidden, "FORBIDDEN", "Acesso negado: apenas administradores podem ver todas as atividades.")
		return
	}

	mes, err := strconv.Atoi(r.URL.Query().Get("mes"))
	if err != nil || mes < 1 || mes > 12 {
		writeError(w, http.StatusBadRequest, "VALIDATION", "mês inválido")
		return
	}

	linhas, err := h.service.AtividadeMensal(r.Context(), time.Month(mes))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, linhas)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ident := httpmiddleware.GetIdentity(r.Context())
	if ident == nil {
		writeError(w, http.StatusUnauthorized, "AUTH", "Não autorizado")
		return
	}

	t, err := h.service.Get(r.Context(), chi.URLParam(r, "id"), ident)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireBearer(w, r)
	if !ok {
		return
	}

	var patch Patch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido")
		return
	}

	t, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), ident.Username, patch)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireBearer(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id"), ident.Username); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Tarefa eliminada com sucesso!"})
}

// requireBearer rejeita o canal de serviço nas operações em que a chave
// pré-partilhada não é reconhecida.
func requireBearer(w http.ResponseWriter, r *http.Request) (*auth.Identity, bool) {
	ident := httpmiddleware.GetIdentity(r.Context())
	if ident == nil || ident.Channel != auth.ChannelBearer {
		writeError(w, http.StatusUnauthorized, "AUTH", "Token ausente ou inválido.")
		return nil, false
	}
	return ident, true
}

func filtroFromQuery(r *http.Request) (Filtro, error) {
	q := r.URL.Query()

	filtro := Filtro{
		Descricao:       q.Get("descricao"),
		Cliente:         q.Get("cliente"),
		Parceiro:        q.Get("parceiro"),
		Produto:         q.Get("produto"),
		Contrato:        q.Get("contrato"),
		Atividade:       q.Get("atividade"),
		Data:            q.Get("data"),
		TempoViagem:     q.Get("tempo_viagem"),
		TempoAtividade:  q.Get("tempo_atividade"),
		TempoFaturado:   q.Get("tempo_faturado"),
		Faturavel:       q.Get("faturavel"),
		ViagemFaturavel: q.Get("viagem_faturavel"),
		Local:           q.Get("local"),
	}

	if raw := q.Get("distancia_viagem"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Filtro{}, errors.New("distancia_viagem inválida")
		}
		filtro.DistanciaViagem = &value
	}
	if raw := q.Get("valor_euro"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Filtro{}, errors.New("valor_euro inválido")
		}
		filtro.ValorEuro = &value
	}

	return filtro, nil
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
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Tarefa não encontrada.")
	case errors.Is(err, ErrSemPermissao):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "Sem permissão para alterar esta tarefa.")
	case util.IsValidation(err):
		writeError(w, http.StatusBadRequest, "VALIDATION", err.Error())
	default:
		log.Error().Err(err).Msg("erro no módulo de tarefas")
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
