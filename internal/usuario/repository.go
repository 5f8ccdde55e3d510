package usuario

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/f5tci/diarios-api/internal/repo"
)

// Repository provê acesso à coleção users.
type Repository struct {
	col *mongo.Collection
}

// NewRepository cria instância do repositório.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{col: db.Collection(repo.ColUsers)}
}

// Insert persiste a conta e devolve-a com o id atribuído.
func (r *Repository) Insert(ctx context.Context, u Usuario) (*Usuario, error) {
	oid, err := repo.InsertOne(ctx, r.col, u)
	if err != nil {
		return nil, err
	}
	u.ID = oid
	return &u, nil
}

// List devolve todas as contas.
func (r *Repository) List(ctx context.Context) ([]Usuario, error) {
	return repo.FindAll[Usuario](ctx, r.col, nil)
}

// Get devolve a conta pelo identificador externo.
func (r *Repository) Get(ctx context.Context, id string) (*Usuario, error) {
	return repo.FindByID[Usuario](ctx, r.col, id)
}

// Update aplica o merge e devolve o documento resultante.
func (r *Repository) Update(ctx context.Context, id string, set bson.M) (*Usuario, error) {
	if err := repo.UpdateByID(ctx, r.col, id, set); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// Delete remove a conta.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return repo.DeleteByID(ctx, r.col, id)
}

// FindByUsername devolve a conta com aquele username ou repo.ErrNotFound.
func (r *Repository) FindByUsername(ctx context.Context, username string) (*Usuario, error) {
	return repo.FindOne[Usuario](ctx, r.col, bson.M{"username": username})
}

// FindByEmail devolve a conta com aquele email ou repo.ErrNotFound.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*Usuario, error) {
	return repo.FindOne[Usuario](ctx, r.col, bson.M{"email": email})
}
