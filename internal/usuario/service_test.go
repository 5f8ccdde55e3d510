package usuario

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/f5tci/diarios-api/internal/repo"
	"github.com/f5tci/diarios-api/internal/util"
)

type stubUsuarioRepo struct {
	porUsername map[string]*Usuario
	porEmail    map[string]*Usuario
	inserted    *Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{
		porUsername: make(map[string]*Usuario),
		porEmail:    make(map[string]*Usuario),
	}
}

func (s *stubUsuarioRepo) Insert(_ context.Context, u Usuario) (*Usuario, error) {
	u.ID = primitive.NewObjectID()
	s.inserted = &u
	s.porUsername[u.Username] = &u
	return &u, nil
}

func (s *stubUsuarioRepo) List(_ context.Context) ([]Usuario, error) { return nil, nil }

func (s *stubUsuarioRepo) Get(_ context.Context, _ string) (*Usuario, error) {
	return nil, repo.ErrNotFound
}

func (s *stubUsuarioRepo) Update(_ context.Context, _ string, _ bson.M) (*Usuario, error) {
	return nil, repo.ErrNotFound
}

func (s *stubUsuarioRepo) Delete(_ context.Context, _ string) error { return repo.ErrNotFound }

func (s *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*Usuario, error) {
	u, ok := s.porUsername[username]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return u, nil
}

func (s *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*Usuario, error) {
	u, ok := s.porEmail[email]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return u, nil
}

func TestRegisterCriaContaComHash(t *testing.T) {
	repoStub := newStubUsuarioRepo()
	service := NewService(repoStub)

	u, err := service.Register(context.Background(), "alice", "senha-segura")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if u.Role != "user" {
		t.Fatalf("role esperada user, obtida %q", u.Role)
	}
	if repoStub.inserted.PasswordHash == "" || repoStub.inserted.PasswordHash == "senha-segura" {
		t.Fatal("senha persistida em claro ou ausente")
	}
}

func TestRegisterUsernameDuplicado(t *testing.T) {
	repoStub := newStubUsuarioRepo()
	repoStub.porUsername["alice"] = &Usuario{Username: "alice"}
	service := NewService(repoStub)

	_, err := service.Register(context.Background(), "alice", "senha-segura")
	if !errors.Is(err, repo.ErrConflict) {
		t.Fatalf("esperado ErrConflict, obtido %v", err)
	}
}

func TestRegisterSenhaCurta(t *testing.T) {
	service := NewService(newStubUsuarioRepo())

	_, err := service.Register(context.Background(), "alice", "curta")
	if !util.IsValidation(err) {
		t.Fatalf("esperado erro de validação, obtido %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	repoStub := newStubUsuarioRepo()
	service := NewService(repoStub)

	if _, err := service.Register(context.Background(), "alice", "senha-segura"); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if _, err := service.Authenticate(context.Background(), "alice", "senha-segura"); err != nil {
		t.Fatalf("credenciais corretas rejeitadas: %v", err)
	}

	if _, err := service.Authenticate(context.Background(), "alice", "senha-errada"); !errors.Is(err, ErrCredenciaisInvalidas) {
		t.Fatalf("esperado ErrCredenciaisInvalidas, obtido %v", err)
	}

	if _, err := service.Authenticate(context.Background(), "bob", "senha-segura"); !errors.Is(err, ErrCredenciaisInvalidas) {
		t.Fatalf("esperado ErrCredenciaisInvalidas, obtido %v", err)
	}
}

func TestDisplayNameByEmail(t *testing.T) {
	repoStub := newStubUsuarioRepo()
	repoStub.porEmail["ana@example.com"] = &Usuario{Nome: "Ana Silva", Username: "ana"}
	service := NewService(repoStub)

	nome, err := service.DisplayNameByEmail(context.Background(), "ana@example.com")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if nome != "Ana Silva" {
		t.Fatalf("nome esperado Ana Silva, obtido %q", nome)
	}

	if _, err := service.DisplayNameByEmail(context.Background(), "ninguem@example.com"); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("esperado ErrNotFound, obtido %v", err)
	}
}

func TestCreateRoleDefault(t *testing.T) {
	repoStub := newStubUsuarioRepo()
	service := NewService(repoStub)

	u, err := service.Create(context.Background(), CreateInput{Username: "bob"})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if u.Role != "user" {
		t.Fatalf("role esperada user, obtida %q", u.Role)
	}
}
