package repo

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const queryTimeout = 5 * time.Second

// ParseID converte um identificador externo no ObjectID interno.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// InsertOne insere o documento e devolve o identificador atribuído.
func InsertOne(ctx context.Context, col *mongo.Collection, doc any) (primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := col.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("id gerado com tipo inesperado")
	}
	return oid, nil
}

// FindAll devolve todos os documentos que satisfazem o filtro.
func FindAll[T any](ctx context.Context, col *mongo.Collection, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if filter == nil {
		filter = bson.M{}
	}

	cur, err := col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindOne devolve o primeiro documento do filtro ou ErrNotFound.
func FindOne[T any](ctx context.Context, col *mongo.Collection, filter bson.M) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var doc T
	if err := col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// FindByID resolve o identificador externo e devolve o documento.
func FindByID[T any](ctx context.Context, col *mongo.Collection, id string) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	return FindOne[T](ctx, col, bson.M{"_id": oid})
}

// UpdateByID aplica um merge ($set) dos campos indicados sobre o documento.
// Campos ausentes do set ficam intocados.
func UpdateByID(ctx context.Context, col *mongo.Collection, id string, set bson.M) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	if len(set) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByID remove o documento ou devolve ErrNotFound.
func DeleteByID(ctx context.Context, col *mongo.Collection, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// RegexContains monta um filtro de substring case-insensitive para campos
// de texto, com o padrão escapado para não interpretar metacaracteres.
func RegexContains(value string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}
}
