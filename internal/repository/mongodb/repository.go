package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tcn-coffee/fieldbook/internal/domain/models"
	"github.com/tcn-coffee/fieldbook/internal/repository/recordstore"
)

// Repository implements recordstore.Store on MongoDB, one Mongo collection
// per managed record collection.
type Repository struct {
	client *mongo.Client
	dbName string
}

// New connects to MongoDB and verifies the connection with a ping.
func New(ctx context.Context, uri string, dbName string) (*Repository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Repository{client: client, dbName: dbName}, nil
}

// ListAll returns every document of a collection in natural order, with the
// Mongo _id exposed as a hex string under "id".
func (r *Repository) ListAll(ctx context.Context, collection models.Collection) ([]models.Record, error) {
	if err := recordstore.ValidateCollection(collection); err != nil {
		return nil, err
	}

	coll := r.client.Database(r.dbName).Collection(string(collection))
	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var records []models.Record
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode document from %s: %w", collection, err)
		}
		records = append(records, normalizeID(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", collection, err)
	}

	return records, nil
}

// Create inserts one document and returns it with the assigned identity.
// Identity fields in the input are dropped; Mongo assigns a fresh _id.
func (r *Repository) Create(ctx context.Context, collection models.Collection, fields models.Record) (models.Record, error) {
	if err := recordstore.ValidateCollection(collection); err != nil {
		return nil, err
	}

	doc := bson.M{}
	for k, v := range fields {
		if k == "id" || k == "_id" {
			continue
		}
		doc[k] = v
	}

	coll := r.client.Database(r.dbName).Collection(string(collection))
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert into %s: %w", collection, err)
	}

	stored := models.Record{}
	for k, v := range doc {
		stored[k] = v
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		stored["id"] = oid.Hex()
	}

	return stored, nil
}

// Close closes the MongoDB connection.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func normalizeID(doc bson.M) models.Record {
	record := models.Record{}
	for k, v := range doc {
		if k == "_id" {
			if oid, ok := v.(primitive.ObjectID); ok {
				record["id"] = oid.Hex()
			} else {
				record["id"] = fmt.Sprintf("%v", v)
			}
			continue
		}
		record[k] = v
	}
	return record
}
