package agenda

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/f5tci/diarios-api/internal/repo"
)

// Repository provê acesso à coleção agenda.
type Repository struct {
	col *mongo.Collection
}

// NewRepository cria instância do repositório.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{col: db.Collection(repo.ColAgenda)}
}

// Insert persiste a marcação e devolve-a com o id atribuído.
func (r *Repository) Insert(ctx context.Context, e Evento) (*Evento, error) {
	oid, err := repo.InsertOne(ctx, r.col, e)
	if err != nil {
		return nil, err
	}
	e.ID = oid
	return &e, nil
}

// List devolve todas as marcações.
func (r *Repository) List(ctx context.Context) ([]Evento, error) {
	return repo.FindAll[Evento](ctx, r.col, nil)
}

// Get devolve a marcação pelo identificador externo.
func (r *Repository) Get(ctx context.Context, id string) (*Evento, error) {
	return repo.FindByID[Evento](ctx, r.col, id)
}

// Update aplica o merge e devolve o documento resultante.
func (r *Repository) Update(ctx context.Context, id string, set bson.M) (*Evento, error) {
	if err := repo.UpdateByID(ctx, r.col, id, set); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// Delete remove a marcação.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return repo.DeleteByID(ctx, r.col, id)
}
