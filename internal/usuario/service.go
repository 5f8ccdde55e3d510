package usuario

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/f5tci/diarios-api/internal/auth"
	"github.com/f5tci/diarios-api/internal/repo"
	"github.com/f5tci/diarios-api/internal/util"
)

// Repositorio é o contrato de persistência de que o serviço depende.
type Repositorio interface {
	Insert(ctx context.Context, u Usuario) (*Usuario, error)
	List(ctx context.Context) ([]Usuario, error)
	Get(ctx context.Context, id string) (*Usuario, error)
	Update(ctx context.Context, id string, set bson.M) (*Usuario, error)
	Delete(ctx context.Context, id string) error
	FindByUsername(ctx context.Context, username string) (*Usuario, error)
	FindByEmail(ctx context.Context, email string) (*Usuario, error)
}

// Service reúne as regras de contas: registo, autenticação e gestão.
type Service struct {
	repo Repositorio
}

// NewService cria o serviço de utilizadores.
func NewService(repo Repositorio) *Service {
	return &Service{repo: repo}
}

// Register cria a conta de auto-registo. Username duplicado é conflito.
func (s *Service) Register(ctx context.Context, username, password string) (*Usuario, error) {
	username = strings.TrimSpace(username)
	if err := util.RequireString(username, "username"); err != nil {
		return nil, err
	}
	if err := util.ValidatePassword(password); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, repo.ErrConflict
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return s.repo.Insert(ctx, Usuario{Username: username, PasswordHash: hash, Role: "user"})
}

// Authenticate valida as credenciais e devolve a conta.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*Usuario, error) {
	u, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCredenciaisInvalidas
		}
		return nil, err
	}

	ok, err := auth.VerifyPassword(password, u.PasswordHash)
	if err != nil || !ok {
		return nil, ErrCredenciaisInvalidas
	}
	return u, nil
}

// DisplayNameByEmail implementa o diretório consultado pelo canal de
// serviço: devolve o nome de exibição da conta com aquele email.
func (s *Service) DisplayNameByEmail(ctx context.Context, email string) (string, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return u.Nome, nil
}

// Create cria uma conta a partir do backoffice.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Usuario, error) {
	input.Username = strings.TrimSpace(input.Username)
	if err := util.RequireString(input.Username, "username"); err != nil {
		return nil, err
	}
	if input.Email != "" {
		if err := util.ValidateEmail(input.Email); err != nil {
			return nil, err
		}
	}

	if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
		return nil, repo.ErrConflict
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	u := Usuario{
		Nome:        input.Nome,
		Username:    input.Username,
		Email:       input.Email,
		EmpresaBase: input.EmpresaBase,
		Chave:       input.Chave,
		Role:        input.Role,
	}
	if u.Role == "" {
		u.Role = "user"
	}
	if input.Password != "" {
		hash, err := auth.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}

	return s.repo.Insert(ctx, u)
}

// List devolve todas as contas.
func (s *Service) List(ctx context.Context) ([]Usuario, error) {
	return s.repo.List(ctx)
}

// Get devolve uma conta.
func (s *Service) Get(ctx context.Context, id string) (*Usuario, error) {
	return s.repo.Get(ctx, id)
}

// Update aplica o patch parcial. Senha nova é sempre persistida como hash.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (*Usuario, error) {
	set := bson.M{}
	if patch.Nome != nil {
		set["nome"] = *patch.Nome
	}
	if patch.Username != nil {
		username := strings.TrimSpace(*patch.Username)
		if err := util.RequireString(username, "username"); err != nil {
			return nil, err
		}
		set["username"] = username
	}
	if patch.Email != nil {
		if *patch.Email != "" {
			if err := util.ValidateEmail(*patch.Email); err != nil {
				return nil, err
			}
		}
		set["email"] = *patch.Email
	}
	if patch.EmpresaBase != nil {
		set["empresa_base"] = *patch.EmpresaBase
	}
	if patch.Chave != nil {
		set["chave"] = *patch.Chave
	}
	if patch.Role != nil {
		set["role"] = *patch.Role
	}
	if patch.Password != nil {
		if err := util.ValidatePassword(*patch.Password); err != nil {
			return nil, err
		}
		hash, err := auth.HashPassword(*patch.Password)
		if err != nil {
			return nil, err
		}
		set["password"] = hash
	}

	return s.repo.Update(ctx, id, set)
}

// Delete remove a conta. Referências por username noutras coleções ficam
// órfãs, sem cascata.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
