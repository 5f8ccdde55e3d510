package preset

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/f5tci/diarios-api/internal/repo"
	"github.com/f5tci/diarios-api/internal/util"
)

type stubPresetRepo struct {
	porID   map[string]*Preset
	deleted []string
}

func newStubPresetRepo() *stubPresetRepo {
	return &stubPresetRepo{porID: make(map[string]*Preset)}
}

func (s *stubPresetRepo) Insert(_ context.Context, p Preset) (*Preset, error) {
	p.ID = primitive.NewObjectID()
	s.porID[p.ID.Hex()] = &p
	return &p, nil
}

func (s *stubPresetRepo) ListByUsername(_ context.Context, username string) ([]Preset, error) {
	out := []Preset{}
	for _, p := range s.porID {
		if p.Username == username {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *stubPresetRepo) Get(_ context.Context, id string) (*Preset, error) {
	p, ok := s.porID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return p, nil
}

func (s *stubPresetRepo) Update(_ context.Context, id string, set bson.M) (*Preset, error) {
	p, ok := s.porID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	if v, ok := set["nome"].(string); ok {
		p.Nome = v
	}
	return p, nil
}

func (s *stubPresetRepo) Delete(_ context.Context, id string) error {
	if _, ok := s.porID[id]; !ok {
		return repo.ErrNotFound
	}
	delete(s.porID, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func TestCreateCarimbaDono(t *testing.T) {
	service := NewService(newStubPresetRepo())

	p, err := service.Create(context.Background(), "alice", CreateInput{Nome: "reunião semanal"})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if p.Username != "alice" {
		t.Fatalf("username esperado alice, obtido %q", p.Username)
	}
}

func TestCreateNomeObrigatorio(t *testing.T) {
	service := NewService(newStubPresetRepo())

	_, err := service.Create(context.Background(), "alice", CreateInput{})
	if !util.IsValidation(err) {
		t.Fatalf("esperado erro de validação, obtido %v", err)
	}
}

func TestListSoDoProprio(t *testing.T) {
	repoStub := newStubPresetRepo()
	service := NewService(repoStub)

	if _, err := service.Create(context.Background(), "alice", CreateInput{Nome: "a"}); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if _, err := service.Create(context.Background(), "bob", CreateInput{Nome: "b"}); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	presets, err := service.List(context.Background(), "alice")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(presets) != 1 || presets[0].Username != "alice" {
		t.Fatalf("esperado só o preset de alice, obtido %+v", presets)
	}
}

func TestGetSoDoProprio(t *testing.T) {
	repoStub := newStubPresetRepo()
	service := NewService(repoStub)

	criado, err := service.Create(context.Background(), "alice", CreateInput{Nome: "reunião semanal"})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	obtido, err := service.Get(context.Background(), criado.ID.Hex(), "alice")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if obtido.Nome != "reunião semanal" {
		t.Fatalf("preset devolvido não corresponde ao criado: %+v", obtido)
	}

	if _, err := service.Get(context.Background(), criado.ID.Hex(), "bob"); !errors.Is(err, ErrSemPermissao) {
		t.Fatalf("esperado ErrSemPermissao, obtido %v", err)
	}
}

func TestUpdateNaoDonoSemPermissao(t *testing.T) {
	repoStub := newStubPresetRepo()
	service := NewService(repoStub)

	criado, err := service.Create(context.Background(), "alice", CreateInput{Nome: "a"})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	novo := "alterado"
	_, err = service.Update(context.Background(), criado.ID.Hex(), "bob", Patch{Nome: &novo})
	if !errors.Is(err, ErrSemPermissao) {
		t.Fatalf("esperado ErrSemPermissao, obtido %v", err)
	}
}

func TestDeleteNaoDonoSemPermissao(t *testing.T) {
	repoStub := newStubPresetRepo()
	service := NewService(repoStub)

	criado, err := service.Create(context.Background(), "alice", CreateInput{Nome: "a"})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if err := service.Delete(context.Background(), criado.ID.Hex(), "bob"); !errors.Is(err, ErrSemPermissao) {
		t.Fatalf("esperado ErrSemPermissao, obtido %v", err)
	}
	if len(repoStub.deleted) != 0 {
		t.Fatal("preset removido apesar da falta de permissão")
	}
}
