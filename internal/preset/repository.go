package preset

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/f5tci/diarios-api/internal/repo"
)

// Repository persiste presets na coleção dedicada.
type Repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{col: db.Collection(repo.ColPresets)}
}

func (r *Repository) Insert(ctx context.Context, p Preset) (*Preset, error) {
	id, err := repo.InsertOne(ctx, r.col, p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return &p, nil
}

func (r *Repository) ListByUsername(ctx context.Context, username string) ([]Preset, error) {
	return repo.FindAll[Preset](ctx, r.col, bson.M{"username": username})
}

func (r *Repository) Get(ctx context.Context, id string) (*Preset, error) {
	return repo.FindByID[Preset](ctx, r.col, id)
}

func (r *Repository) Update(ctx context.Context, id string, set bson.M) (*Preset, error) {
	if err := repo.UpdateByID(ctx, r.col, id, set); err != nil {
		return nil, err
	}
	return repo.FindByID[Preset](ctx, r.col, id)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return repo.DeleteByID(ctx, r.col, id)
}
