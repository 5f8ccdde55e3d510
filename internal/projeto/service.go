package projeto

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/f5tci/diarios-api/internal/repo"
	"github.com/f5tci/diarios-api/internal/util"
)

// Repositorio é o contrato de persistência de que o serviço depende.
type Repositorio interface {
	Insert(ctx context.Context, p Projeto) (*Projeto, error)
	List(ctx context.Context) ([]Projeto, error)
	Get(ctx context.Context, id string) (*Projeto, error)
	FindByTriple(ctx context.Context, cliente, contrato, descricao string) (*Projeto, error)
	Update(ctx context.Context, id string, set bson.M) (*Projeto, error)
	Delete(ctx context.Context, id string) error
}

// FonteTarefas fornece as durações faturadas de um par cliente/contrato.
type FonteTarefas interface {
	TemposFaturados(ctx context.Context, cliente, contrato string) ([]string, error)
}

// Service mantém a coerência entre projetos e as horas registadas nas tarefas.
type Service struct {
	repo    Repositorio
	tarefas FonteTarefas
}

func NewService(repo Repositorio, tarefas FonteTarefas) *Service {
	return &Service{repo: repo, tarefas: tarefas}
}

// Create regista o projeto já com as horas gastas calculadas a partir das
// tarefas existentes. A combinação cliente, contrato e descrição é única.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Projeto, error) {
	if err := util.RequireString(input.Cliente, "cliente"); err != nil {
		return nil, err
	}
	if err := util.RequireString(input.Contrato, "contrato"); err != nil {
		return nil, err
	}
	if err := util.RequireString(input.Descricao, "descricao"); err != nil {
		return nil, err
	}

	existente, err := s.repo.FindByTriple(ctx, input.Cliente, input.Contrato, input.Descricao)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, repo.ErrConflict
	}

	gastas, err := s.horasGastas(ctx, input.Cliente, input.Contrato)
	if err != nil {
		return nil, err
	}

	p := Projeto{
		Cliente:          input.Cliente,
		Contrato:         input.Contrato,
		Descricao:        input.Descricao,
		HorasContratadas: input.HorasContratadas,
		HorasGastas:      gastas,
	}
	return s.repo.Insert(ctx, p)
}

func (s *Service) List(ctx context.Context) ([]Projeto, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Projeto, error) {
	return s.repo.Get(ctx, id)
}

// Update aplica o patch. A unicidade do triplo cliente, contrato e
// descrição vale também na edição; se o cliente ou o contrato mudarem,
// as horas gastas são recalculadas contra o novo par.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (*Projeto, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	set := patch.toSet()
	if len(set) == 0 {
		return p, nil
	}

	cliente := p.Cliente
	if patch.Cliente != nil {
		cliente = *patch.Cliente
	}
	contrato := p.Contrato
	if patch.Contrato != nil {
		contrato = *patch.Contrato
	}
	descricao := p.Descricao
	if patch.Descricao != nil {
		descricao = *patch.Descricao
	}

	if cliente != p.Cliente || contrato != p.Contrato || descricao != p.Descricao {
		existente, err := s.repo.FindByTriple(ctx, cliente, contrato, descricao)
		if err != nil {
			return nil, err
		}
		if existente != nil && existente.ID != p.ID {
			return nil, repo.ErrConflict
		}
	}

	if patch.Cliente != nil || patch.Contrato != nil {
		gastas, err := s.horasGastas(ctx, cliente, contrato)
		if err != nil {
			return nil, err
		}
		set["horas_gastas"] = gastas
	}

	return s.repo.Update(ctx, id, set)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Recalcular refaz a soma das horas gastas do projeto a partir das tarefas
// atuais e persiste o resultado.
func (s *Service) Recalcular(ctx context.Context, id string) (*Projeto, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	gastas, err := s.horasGastas(ctx, p.Cliente, p.Contrato)
	if err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, bson.M{"horas_gastas": gastas})
}

func (s *Service) horasGastas(ctx context.Context, cliente, contrato string) (float64, error) {
	tempos, err := s.tarefas.TemposFaturados(ctx, cliente, contrato)
	if err != nil {
		return 0, err
	}
	return somarHoras(tempos), nil
}
