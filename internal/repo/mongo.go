package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Nomes das coleções, uma por tipo de entidade.
const (
	ColUsers      = "users"
	ColClients    = "clients"
	ColContracts  = "contracts"
	ColProducts   = "products"
	ColPartners   = "partners"
	ColActivities = "activities"
	ColProjects   = "projects"
	ColPresets    = "presets"
	ColTasks      = "tasks"
	ColAgenda     = "agenda"
)

const connectTimeout = 10 * time.Second

// Connect abre a ligação ao MongoDB e devolve o handle da base de dados.
// Falha cedo (ping) em vez de deixar o primeiro pedido descobrir o problema.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return client.Database(dbName), nil
}

// Disconnect encerra a ligação subjacente à base de dados.
func Disconnect(ctx context.Context, db *mongo.Database) error {
	return db.Client().Disconnect(ctx)
}
