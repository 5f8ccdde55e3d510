package projeto

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/f5tci/diarios-api/internal/repo"
)

// Repository persiste projetos na coleção dedicada.
type Repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{col: db.Collection(repo.ColProjects)}
}

func (r *Repository) Insert(ctx context.Context, p Projeto) (*Projeto, error) {
	id, err := repo.InsertOne(ctx, r.col, p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return &p, nil
}

func (r *Repository) List(ctx context.Context) ([]Projeto, error) {
	return repo.FindAll[Projeto](ctx, r.col, bson.M{})
}

func (r *Repository) Get(ctx context.Context, id string) (*Projeto, error) {
	return repo.FindByID[Projeto](ctx, r.col, id)
}

// FindByTriple localiza o projeto com a mesma combinação cliente, contrato
// e descrição, usada como chave natural de unicidade.
func (r *Repository) FindByTriple(ctx context.Context, cliente, contrato, descricao string) (*Projeto, error) {
	p, err := repo.FindOne[Projeto](ctx, r.col, bson.M{
		"cliente":   cliente,
		"contrato":  contrato,
		"descricao": descricao,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *Repository) Update(ctx context.Context, id string, set bson.M) (*Projeto, error) {
	if err := repo.UpdateByID(ctx, r.col, id, set); err != nil {
		return nil, err
	}
	return repo.FindByID[Projeto](ctx, r.col, id)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return repo.DeleteByID(ctx, r.col, id)
}
