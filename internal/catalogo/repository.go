package catalogo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/f5tci/diarios-api/internal/repo"
)

// Repository provê acesso às coleções do catálogo.
type Repository struct {
	clientes   *mongo.Collection
	contratos  *mongo.Collection
	produtos   *mongo.Collection
	atividades *mongo.Collection
	parceiros  *mongo.Collection
}

// NewRepository cria instância do repositório.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		clientes:   db.Collection(repo.ColClients),
		contratos:  db.Collection(repo.ColContracts),
		produtos:   db.Collection(repo.ColProducts),
		atividades: db.Collection(repo.ColActivities),
		parceiros:  db.Collection(repo.ColPartners),
	}
}

func (r *Repository) InsertCliente(ctx context.Context, c Cliente) (*Cliente, error) {
	oid, err := repo.InsertOne(ctx, r.clientes, c)
	if err != nil {
		return nil, err
	}
	c.ID = oid
	return &c, nil
}

func (r *Repository) ListClientes(ctx context.Context) ([]Cliente, error) {
	return repo.FindAll[Cliente](ctx, r.clientes, nil)
}

func (r *Repository) GetCliente(ctx context.Context, id string) (*Cliente, error) {
	return repo.FindByID[Cliente](ctx, r.clientes, id)
}

func (r *Repository) UpdateCliente(ctx context.Context, id string, set bson.M) (*Cliente, error) {
	if err := repo.UpdateByID(ctx, r.clientes, id, set); err != nil {
		return nil, err
	}
	return r.GetCliente(ctx, id)
}

func (r *Repository) DeleteCliente(ctx context.Context, id string) error {
	return repo.DeleteByID(ctx, r.clientes, id)
}

func (r *Repository) InsertContrato(ctx context.Context, c Contrato) (*Contrato, error) {
	oid, err := repo.InsertOne(ctx, r.contratos, c)
	if err != nil {
		return nil, err
	}
	c.ID = oid
	return &c, nil
}

func (r *Repository) ListContratos(ctx context.Context) ([]Contrato, error) {
	return repo.FindAll[Contrato](ctx, r.contratos, nil)
}

func (r *Repository) GetContrato(ctx context.Context, id string) (*Contrato, error) {
	return repo.FindByID[Contrato](ctx, r.contratos, id)
}

func (r *Repository) UpdateContrato(ctx context.Context, id string, set bson.M) (*Contrato, error) {
	if err := repo.UpdateByID(ctx, r.contratos, id, set); err != nil {
		return nil, err
	}
	return r.GetContrato(ctx, id)
}

func (r *Repository) DeleteContrato(ctx context.Context, id string) error {
	return repo.DeleteByID(ctx, r.contratos, id)
}

func (r *Repository) InsertProduto(ctx context.Context, p Produto) (*Produto, error) {
	oid, err := repo.InsertOne(ctx, r.produtos, p)
	if err != nil {
		return nil, err
	}
	p.ID = oid
	return &p, nil
}

func (r *Repository) ListProdutos(ctx context.Context) ([]Produto, error) {
	return repo.FindAll[Produto](ctx, r.produtos, nil)
}

func (r *Repository) GetProduto(ctx context.Context, id string) (*Produto, error) {
	return repo.FindByID[Produto](ctx, r.produtos, id)
}

func (r *Repository) UpdateProduto(ctx context.Context, id string, set bson.M) (*Produto, error) {
	if err := repo.UpdateByID(ctx, r.produtos, id, set); err != nil {
		return nil, err
	}
	return r.GetProduto(ctx, id)
}

func (r *Repository) DeleteProduto(ctx context.Context, id string) error {
	return repo.DeleteByID(ctx, r.produtos, id)
}

func (r *Repository) InsertAtividade(ctx context.Context, a Atividade) (*Atividade, error) {
	oid, err := repo.InsertOne(ctx, r.atividades, a)
	if err != nil {
		return nil, err
	}
	a.ID = oid
	return &a, nil
}

func (r *Repository) ListAtividades(ctx context.Context) ([]Atividade, error) {
	return repo.FindAll[Atividade](ctx, r.atividades, nil)
}

func (r *Repository) GetAtividade(ctx context.Context, id string) (*Atividade, error) {
	return repo.FindByID[Atividade](ctx, r.atividades, id)
}

func (r *Repository) UpdateAtividade(ctx context.Context, id string, set bson.M) (*Atividade, error) {
	if err := repo.UpdateByID(ctx, r.atividades, id, set); err != nil {
		return nil, err
	}
	return r.GetAtividade(ctx, id)
}

func (r *Repository) DeleteAtividade(ctx context.Context, id string) error {
	return repo.DeleteByID(ctx, r.atividades, id)
}

func (r *Repository) InsertParceiro(ctx context.Context, p Parceiro) (*Parceiro, error) {
	oid, err := repo.InsertOne(ctx, r.parceiros, p)
	if err != nil {
		return nil, err
	}
	p.ID = oid
	return &p, nil
}

func (r *Repository) ListParceiros(ctx context.Context) ([]Parceiro, error) {
	return repo.FindAll[Parceiro](ctx, r.parceiros, nil)
}

func (r *Repository) GetParceiro(ctx context.Context, id string) (*Parceiro, error) {
	return repo.FindByID[Parceiro](ctx, r.parceiros, id)
}

func (r *Repository) UpdateParceiro(ctx context.Context, id string, set bson.M) (*Parceiro, error) {
	if err := repo.UpdateByID(ctx, r.parceiros, id, set); err != nil {
		return nil, err
	}
	return r.GetParceiro(ctx, id)
}

func (r *Repository) DeleteParceiro(ctx context.Context, id string) error {
	return repo.DeleteByID(ctx, r.parceiros, id)
}
