package preset

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/f5tci/diarios-api/internal/util"
)

// Repositorio é o contrato de persistência de que o serviço depende.
type Repositorio interface {
	Insert(ctx context.Context, p Preset) (*Preset, error)
	ListByUsername(ctx context.Context, username string) ([]Preset, error)
	Get(ctx context.Context, id string) (*Preset, error)
	Update(ctx context.Context, id string, set bson.M) (*Preset, error)
	Delete(ctx context.Context, id string) error
}

// Service garante que cada utilizador só vê e altera os próprios presets.
type Service struct {
	repo Repositorio
}

func NewService(repo Repositorio) *Service {
	return &Service{repo: repo}
}

// Create regista o preset em nome da identidade atuante.
func (s *Service) Create(ctx context.Context, username string, input CreateInput) (*Preset, error) {
	if err := util.RequireString(input.Nome, "nome"); err != nil {
		return nil, err
	}

	p := Preset{
		Nome:            input.Nome,
		Username:        username,
		Descricao:       input.Descricao,
		Cliente:         input.Cliente,
		Parceiro:        input.Parceiro,
		Produto:         input.Produto,
		Contrato:        input.Contrato,
		Atividade:       input.Atividade,
		TempoViagem:     input.TempoViagem,
		TempoAtividade:  input.TempoAtividade,
		TempoFaturado:   input.TempoFaturado,
		Faturavel:       input.Faturavel,
		ViagemFaturavel: input.ViagemFaturavel,
		Local:           input.Local,
		DistanciaViagem: input.DistanciaViagem,
		ValorEuro:       input.ValorEuro,
	}

	return s.repo.Insert(ctx, p)
}

// List devolve apenas os presets do próprio utilizador.
func (s *Service) List(ctx context.Context, username string) ([]Preset, error) {
	return s.repo.ListByUsername(ctx, username)
}

// Get devolve o preset se pertencer ao utilizador.
func (s *Service) Get(ctx context.Context, id, username string) (*Preset, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Username != username {
		return nil, ErrSemPermissao
	}
	return p, nil
}

// Update aplica o patch se o preset pertencer ao utilizador.
func (s *Service) Update(ctx context.Context, id, username string, patch Patch) (*Preset, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Username != username {
		return nil, ErrSemPermissao
	}

	set := patch.toSet()
	if len(set) == 0 {
		return p, nil
	}
	return s.repo.Update(ctx, id, set)
}

// Delete remove o preset se pertencer ao utilizador.
func (s *Service) Delete(ctx context.Context, id, username string) error {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if p.Username != username {
		return ErrSemPermissao
	}
	return s.repo.Delete(ctx, id)
}
