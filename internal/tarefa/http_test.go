package tarefa

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/f5tci/diarios-api/internal/auth"
	httpmiddleware "github.com/f5tci/diarios-api/internal/http/middleware"
)

func newTestRouter(repoStub *stubTarefaRepo, ident *auth.Identity) http.Handler {
	handler := NewHandler(NewService(repoStub))

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := context.WithValue(req.Context(), httpmiddleware.ContextKeyIdentity, ident)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	Mount(r, handler)
	return r
}

func TestAtividadeMensalExigeAdmin(t *testing.T) {
	ident := &auth.Identity{Username: "alice", Role: auth.RoleDefault, Channel: auth.ChannelBearer}
	router := newTestRouter(newStubTarefaRepo(), ident)

	req := httptest.NewRequest(http.MethodGet, "/tasks/atividade?mes=3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status esperado %d, obtido %d", http.StatusForbidden, rec.Code)
	}
}

func TestAtividadeMensalAdmin(t *testing.T) {
	repoStub := newStubTarefaRepo()
	repoStub.todas = []Tarefa{
		{Username: "bob", Cliente: "ACME", Contrato: "CT-01", Data: "2026-03-10", TempoAtividade: "01:00"},
	}
	ident := &auth.Identity{Username: "chefe", Role: auth.RoleAdmin, Channel: auth.ChannelBearer}
	router := newTestRouter(repoStub, ident)

	req := httptest.NewRequest(http.MethodGet, "/tasks/atividade?mes=3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status esperado %d, obtido %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "\"tempo_atividade\":\"01:00\"") {
		t.Fatalf("resposta sem a linha esperada: %s", rec.Body.String())
	}
}

func TestAtividadeMensalMesInvalido(t *testing.T) {
	ident := &auth.Identity{Username: "chefe", Role: auth.RoleAdmin, Channel: auth.ChannelBearer}
	router := newTestRouter(newStubTarefaRepo(), ident)

	for _, mes := range []string{"", "0", "13", "abc"} {
		req := httptest.NewRequest(http.MethodGet, "/tasks/atividade?mes="+mes, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("mes=%q: status esperado %d, obtido %d", mes, http.StatusBadRequest, rec.Code)
		}
	}
}

func TestPatchRejeitaCanalServico(t *testing.T) {
	ident := &auth.Identity{Username: "copilot", Role: auth.RoleDefault, Channel: auth.ChannelService}
	router := newTestRouter(newStubTarefaRepo(), ident)

	req := httptest.NewRequest(http.MethodPatch, "/tasks/652f8a1b9d3e4c0012345678", strings.NewReader(`{"descricao":"x"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status esperado %d, obtido %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestDeleteRejeitaCanalServico(t *testing.T) {
	ident := &auth.Identity{Username: "copilot", Role: auth.RoleDefault, Channel: auth.ChannelService}
	router := newTestRouter(newStubTarefaRepo(), ident)

	req := httptest.NewRequest(http.MethodDelete, "/tasks/652f8a1b9d3e4c0012345678", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status esperado %d, obtido %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestCreateCarimbaDonoDaIdentidade(t *testing.T) {
	repoStub := newStubTarefaRepo()
	ident := &auth.Identity{Username: "alice", Role: auth.RoleDefault, Channel: auth.ChannelBearer}
	router := newTestRouter(repoStub, ident)

	req := httptest.NewRequest(http.MethodPost, "/tasks/", strings.NewReader(`{"descricao":"reunião"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status esperado %d, obtido %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "\"username\":\"alice\"") {
		t.Fatalf("tarefa sem dono carimbado: %s", rec.Body.String())
	}
}

func TestCreateCorpoDesconhecidoRejeitado(t *testing.T) {
	ident := &auth.Identity{Username: "alice", Role: auth.RoleDefault, Channel: auth.ChannelBearer}
	router := newTestRouter(newStubTarefaRepo(), ident)

	req := httptest.NewRequest(http.MethodPost, "/tasks/", strings.NewReader(`{"username":"mallory"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status esperado %d, obtido %d", http.StatusBadRequest, rec.Code)
	}
}
