package catalogo

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
	InsertCliente(ctx context.Context, c Cliente) (*Cliente, error)
	ListClientes(ctx context.Context) ([]Cliente, error)
	GetCliente(ctx context.Context, id string) (*Cliente, error)
	UpdateCliente(ctx context.Context, id string, set bson.M) (*Cliente, error)
	DeleteCliente(ctx context.Context, id string) error

	InsertContrato(ctx context.Context, c Contrato) (*Contrato, error)
	ListContratos(ctx context.Context) ([]Contrato, error)
	GetContrato(ctx context.Context, id string) (*Contrato, error)
	UpdateContrato(ctx context.Context, id string, set bson.M) (*Contrato, error)
	DeleteContrato(ctx context.Context, id string) error

	InsertProduto(ctx context.Context, p Produto) (*Produto, error)
	ListProdutos(ctx context.Context) ([]Produto, error)
	GetProduto(ctx context.Context, id string) (*Produto, error)
	UpdateProduto(ctx context.Context, id string, set bson.M) (*Produto, error)
	DeleteProduto(ctx context.Context, id string) error

	InsertAtividade(ctx context.Context, a Atividade) (*Atividade, error)
	ListAtividades(ctx context.Context) ([]Atividade, error)
	GetAtividade(ctx context.Context, id string) (*Atividade, error)
	UpdateAtividade(ctx context.Context, id string, set bson.M) (*Atividade, error)
	DeleteAtividade(ctx context.Context, id string) error

	InsertParceiro(ctx context.Context, p Parceiro) (*Parceiro, error)
	ListParceiros(ctx context.Context) ([]Parceiro, error)
	GetParceiro(ctx context.Context, id string) (*Parceiro, error)
	UpdateParceiro(ctx context.Context, id string, set bson.M) (*Parceiro, error)
	DeleteParceiro(ctx context.Context, id string) error
}

// Handler expõe o CRUD dos recursos de catálogo.
type Handler struct {
	repo Repositorio
}

// NewHandler cria o handler do catálogo.
func NewHandler(repo Repositorio) *Handler {
	return &Handler{repo: repo}
}

// Mount regista as rotas dos cinco recursos.
func Mount(r chi.Router, handler *Handler) {
	r.Route("/clients", func(r chi.Router) {
		r.Post("/", handler.handleCreateCliente)
		r.Get("/", handler.handleListClientes)
		r.Get("/{id}", handler.handleGetCliente)
		r.Patch("/{id}", handler.handleUpdateCliente)
		r.Delete("/{id}", handler.handleDeleteCliente)
	})
	r.Route("/contracts", func(r chi.Router) {
		r.Post("/", handler.handleCreateContrato)
		r.Get("/", handler.handleListContratos)
		r.Get("/{id}", handler.handleGetContrato)
		r.Patch("/{id}", handler.handleUpdateContrato)
		r.Delete("/{id}", handler.handleDeleteContrato)
	})
	r.Route("/products", func(r chi.Router) {
		r.Post("/", handler.handleCreateProduto)
		r.Get("/", handler.handleListProdutos)
		r.Get("/{id}", handler.handleGetProduto)
		r.Patch("/{id}", handler.handleUpdateProduto)
		r.Delete("/{id}", handler.handleDeleteProduto)
	})
	r.Route("/activities", func(r chi.Router) {
		r.Post("/", handler.handleCreateAtividade)
		r.Get("/", handler.handleListAtividades)
		r.Get("/{id}", handler.handleGetAtividade)
		r.Patch("/{id}", handler.handleUpdateAtividade)
		r.Delete("/{id}", handler.handleDeleteAtividade)
	})
	r.Route("/partners", func(r chi.Router) {
		r.Post("/", handler.handleCreateParceiro)
		r.Get("/", handler.handleListParceiros)
		r.Get("/{id}", handler.handleGetParceiro)
		r.Patch("/{id}", handler.handleUpdateParceiro)
		r.Delete("/{id}", handler.handleDeleteParceiro)
	})
}

// --- Clientes ---

func (h *Handler) handleCreateCliente(w http.ResponseWriter, r *http.Request) {
	var c Cliente
	if err := decodeJSON(r, &c); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido")
		return
	}
	if err := util.RequireString(c.Nome, "nome"); err != nil {
		handleDomainError(w, err)
		return
	}

	created, err := h.repo.InsertCliente(r.Context(), c)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleListClientes(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.repo.ListClientes(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clientes)
}

func (h *Handler) handleGetCliente(w http.ResponseWriter, r *http.Request) {
	c, err := h.repo.GetCliente(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleUpdateCliente(w http.ResponseWriter, r *http.Request) {
	var patch ClientePatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido")
		return
	}

	c, err := h.repo.UpdateCliente(r.Context(), chi.URLParam(r, "id"), patch.toSet())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleDeleteCliente(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.DeleteCliente(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Cliente eliminado com sucesso!"})
}

// --- Contratos ---

func (h *Handler) handleCreateContrato(w http.ResponseWriter, r *http.Request) {
	var c Contrato
	if err := decodeJSON(r, &c); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido")
		return
	}
	for field, value := range map[string]string{
		"contrato":    c.Contrato,
		"estado":      c.Estado,
		"empresa":     c.Empresa,
		"cliente":     c.Cliente,
		"data_inicio": c.DataInicio,
		"data_fim":    c.DataFim,
	} {
		if err := util.RequireString(value, field); err != nil {
			handleDomainError(w, err)
			return
		}
	}

	created, err := h.repo.InsertContrato(r.Context(), c)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleListContratos(w http.ResponseWriter, r *http.Request) {
	contratos, err := h.repo.ListContratos(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contratos)
}

func (h *Handler) handleGetContrato(w http.ResponseWriter, r *http.Request) {
	c, err := h.repo.GetContrato(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleUpdateContrato(w http.ResponseWriter, r *http.Request) {
	var patch ContratoPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido")
		return
	}

	c, err := h.repo.UpdateContrato(r.Context(), chi.URLParam(r, "id"), patch.toSet())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleDeleteContrato(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.DeleteContrato(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Contrato eliminado com sucesso!"})
}

// --- Produtos ---

func (h *Handler) handleCreateProduto(w http.ResponseWriter, r *http.Request) {
	var p Produto
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido")
		return
	}
	if err := util.RequireString(p.Produto, "produto"); err != nil {
		handleDomainError(w, err)
		return
	}

	created, err := h.repo.InsertProduto(r.Context(), p)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleListProdutos(w http.ResponseWriter, r *http.Request) {
	produtos, err := h.repo.ListProdutos(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, produtos)
}

func (h *Handler) handleGetProduto(w http.ResponseWriter, r *http.Request) {
	p, err := h.repo.GetProduto(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleUpdateProduto(w http.ResponseWriter, r *http.Request) {
	var patch ProdutoPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido")
		return
	}

	p, err := h.repo.UpdateProduto(r.Context(), chi.URLParam(r, "id"), patch.toSet())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleDeleteProduto(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.DeleteProduto(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Produto eliminado com sucesso!"})
}

// --- Atividades ---

func (h *Handler) handleCreateAtividade(w http.ResponseWriter, r *http.Request) {
	var a Atividade
	if err := decodeJSON(r, &a); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido")
		return
	}
	if err := util.RequireString(a.Atividade, "atividade"); err != nil {
		handleDomainError(w, err)
		return
	}

	created, err := h.repo.InsertAtividade(r.Context(), a)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleListAtividades(w http.ResponseWriter, r *http.Request) {
	atividades, err := h.repo.ListAtividades(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, atividades)
}

func (h *Handler) handleGetAtividade(w http.ResponseWriter, r *http.Request) {
	a, err := h.repo.GetAtividade(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *Handler) handleUpdateAtividade(w http.ResponseWriter, r *http.Request) {
	var patch AtividadePatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido")
		return
	}

	a, err := h.repo.UpdateAtividade(r.Context(), chi.URLParam(r, "id"), patch.toSet())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *Handler) handleDeleteAtividade(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.DeleteAtividade(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Atividade eliminada com sucesso!"})
}

// --- Parceiros ---

func (h *Handler) handleCreateParceiro(w http.ResponseWriter, r *http.Request) {
	var p Parceiro
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido")
		return
	}

	created, err := h.repo.InsertParceiro(r.Context(), p)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleListParceiros(w http.ResponseWriter, r *http.Request) {
	parceiros, err := h.repo.ListParceiros(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, parceiros)
}

func (h *Handler) handleGetParceiro(w http.ResponseWriter, r *http.Request) {
	p, err := h.repo.GetParceiro(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleUpdateParceiro(w http.ResponseWriter, r *http.Request) {
	var patch ParceiroPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido")
		return
	}

	p, err := h.repo.UpdateParceiro(r.Context(), chi.URLParam(r, "id"), patch.toSet())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleDeleteParceiro(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.DeleteParceiro(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Parceiro eliminado com sucesso!"})
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
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Registo não encontrado.")
	case util.IsValidation(err):
		writeError(w, http.StatusBadRequest, "VALIDATION", err.Error())
	default:
		log.Error().Err(err).Msg("erro no módulo de catálogo")
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
