package tarefa

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/f5tci/diarios-api/internal/auth"
)

// Formatos de data aceites nos registos históricos.
var dateLayouts = []string{"2006-01-02", "02/01/2006", "2006/01/02"}

// Repositorio é o contrato de persistência de que o serviço depende.
type Repositorio interface {
	Insert(ctx context.Context, t Tarefa) (*Tarefa, error)
	List(ctx context.Context, filtro Filtro, owner string) ([]Tarefa, error)
	ListAll(ctx context.Context) ([]Tarefa, error)
	Get(ctx context.Context, id string) (*Tarefa, error)
	Update(ctx context.Context, id string, set bson.M) (*Tarefa, error)
	Delete(ctx context.Context, id string) error
}

// Service reúne as regras das tarefas: atribuição de dono, scoping por
// canal e o relatório mensal de atividade.
type Service struct {
	repo Repositorio
}

// NewService cria o serviço de tarefas.
func NewService(repo Repositorio) *Service {
	return &Service{repo: repo}
}

// Create regista a tarefa em nome da identidade atuante.
func (s *Service) Create(ctx context.Context, username string, input CreateInput) (*Tarefa, error) {
	t := Tarefa{
		Username:        username,
		Descricao:       input.Descricao,
		Cliente:         input.Cliente,
		Parceiro:        input.Parceiro,
		Produto:         input.Produto,
		Contrato:        input.Contrato,
		Atividade:       input.Atividade,
		Data:            input.Data,
		DistanciaViagem: input.DistanciaViagem,
		TempoViagem:     defaultString(input.TempoViagem, TempoZero),
		TempoAtividade:  defaultString(input.TempoAtividade, TempoZero),
		TempoFaturado:   defaultString(input.TempoFaturado, TempoZero),
		Faturavel:       defaultString(input.Faturavel, NaoFaturavel),
		ViagemFaturavel: defaultString(input.ViagemFaturavel, NaoFaturavel),
		Local:           defaultString(input.Local, LocalDefault),
		ValorEuro:       input.ValorEuro,
	}

	return s.repo.Insert(ctx, t)
}

// List devolve as tarefas visíveis para a identidade: o canal de serviço
// vê todas, o canal bearer só as do próprio utilizador.
func (s *Service) List(ctx context.Context, ident *auth.Identity, filtro Filtro) ([]Tarefa, error) {
	owner := ident.Username
	if ident.Channel == auth.ChannelService {
		owner = ""
	}
	return s.repo.List(ctx, filtro, owner)
}

// Get devolve a tarefa se for visível para a identidade: o canal de
// serviço acede a qualquer registo, o bearer só aos próprios.
func (s *Service) Get(ctx context.Context, id string, ident *auth.Identity) (*Tarefa, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if ident.Channel != auth.ChannelService && t.Username != ident.Username {
		return nil, ErrSemPermissao
	}
	return t, nil
}

// Update aplica o patch se a tarefa pertencer ao utilizador.
func (s *Service) Update(ctx context.Context, id, username string, patch Patch) (*Tarefa, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Username != username {
		return nil, ErrSemPermissao
	}

	return s.repo.Update(ctx, id, patch.toSet())
}

// Delete remove a tarefa se pertencer ao utilizador.
func (s *Service) Delete(ctx context.Context, id, username string) error {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if t.Username != username {
		return ErrSemPermissao
	}

	return s.repo.Delete(ctx, id)
}

// AtividadeMensal devolve as tarefas de todos os utilizadores cujo campo
// data cai no mês indicado, ordenadas por utilizador e data. Registos com
// data ausente ou em formato desconhecido são ignorados.
func (s *Service) AtividadeMensal(ctx context.Context, mes time.Month) ([]LinhaAtividade, error) {
	tarefas, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	linhas := []LinhaAtividade{}
	for _, t := range tarefas {
		dia, ok := parseData(t.Data)
		if !ok || dia.Month() != mes {
			continue
		}
		linhas = append(linhas, LinhaAtividade{
			Username:       t.Username,
			Cliente:        t.Cliente,
			Contrato:       t.Contrato,
			Data:           dia.Format("2006-01-02"),
			TempoAtividade: t.TempoAtividade,
		})
	}

	sort.Slice(linhas, func(i, j int) bool {
		if linhas[i].Username != linhas[j].Username {
			return linhas[i].Username < linhas[j].Username
		}
		return linhas[i].Data < linhas[j].Data
	})

	return linhas, nil
}

func parseData(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if dia, err := time.Parse(layout, value); err == nil {
			return dia, true
		}
	}
	return time.Time{}, false
}

func defaultString(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
