package tarefa

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/f5tci/diarios-api/internal/repo"
)

// A listagem é limitada e ordenada por data decrescente, como o frontend
// e as integrações esperam.
const listLimit = 200

// Repository provê acesso à coleção tasks.
type Repository struct {
	col *mongo.Collection
}

// NewRepository cria instância do repositório.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{col: db.Collection(repo.ColTasks)}
}

// Insert persiste a tarefa e devolve-a com o id atribuído.
func (r *Repository) Insert(ctx context.Context, t Tarefa) (*Tarefa, error) {
	oid, err := repo.InsertOne(ctx, r.col, t)
	if err != nil {
		return nil, err
	}
	t.ID = oid
	return &t, nil
}

// List devolve as tarefas do filtro, opcionalmente restritas a um dono.
func (r *Repository) List(ctx context.Context, filtro Filtro, owner string) ([]Tarefa, error) {
	query := filterToQuery(filtro)
	if owner != "" {
		query["username"] = owner
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "data", Value: -1}}).
		SetLimit(listLimit)

	return repo.FindAll[Tarefa](ctx, r.col, query, opts)
}

// ListAll devolve todas as tarefas, sem filtro nem limite. Usado pelo
// relatório mensal, que filtra por data já em memória.
func (r *Repository) ListAll(ctx context.Context) ([]Tarefa, error) {
	return repo.FindAll[Tarefa](ctx, r.col, nil)
}

// Get devolve a tarefa pelo identificador externo.
func (r *Repository) Get(ctx context.Context, id string) (*Tarefa, error) {
	return repo.FindByID[Tarefa](ctx, r.col, id)
}

// Update aplica o merge e devolve o documento resultante.
func (r *Repository) Update(ctx context.Context, id string, set bson.M) (*Tarefa, error) {
	if err := repo.UpdateByID(ctx, r.col, id, set); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// Delete remove a tarefa.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return repo.DeleteByID(ctx, r.col, id)
}

// TemposFaturados devolve o campo tempo_faturado de todas as tarefas do
// par cliente/contrato, casado por igualdade exata. Tarefas sem o campo
// aparecem como string vazia.
func (r *Repository) TemposFaturados(ctx context.Context, cliente, contrato string) ([]string, error) {
	type duracao struct {
		TempoFaturado string `bson:"tempo_faturado"`
	}

	docs, err := repo.FindAll[duracao](ctx, r.col, bson.M{"cliente": cliente, "contrato": contrato})
	if err != nil {
		return nil, err
	}

	tempos := make([]string, 0, len(docs))
	for _, d := range docs {
		tempos = append(tempos, d.TempoFaturado)
	}
	return tempos, nil
}

func filterToQuery(filtro Filtro) bson.M {
	query := bson.M{}

	strs := map[string]string{
		"descricao":        filtro.Descricao,
		"cliente":          filtro.Cliente,
		"parceiro":         filtro.Parceiro,
		"produto":          filtro.Produto,
		"contrato":         filtro.Contrato,
		"atividade":        filtro.Atividade,
		"data":             filtro.Data,
		"tempo_viagem":     filtro.TempoViagem,
		"tempo_atividade":  filtro.TempoAtividade,
		"tempo_faturado":   filtro.TempoFaturado,
		"faturavel":        filtro.Faturavel,
		"viagem_faturavel": filtro.ViagemFaturavel,
		"local":            filtro.Local,
	}
	for field, value := range strs {
		if value != "" {
			query[field] = repo.RegexContains(value)
		}
	}

	if filtro.DistanciaViagem != nil {
		query["distancia_viagem"] = *filtro.DistanciaViagem
	}
	if filtro.ValorEuro != nil {
		query["valor_euro"] = *filtro.ValorEuro
	}

	return query
}
