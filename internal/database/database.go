package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"seya-store/internal/models"
)

const (
	connectTimeout = 10 * time.Second
	readTimeout    = 3 * time.Second
	writeTimeout   = 5 * time.Second
	queryTimeout   = 10 * time.Second
)

var ErrNotFound = errors.New("document not found")

// Connect abre el cliente de MongoDB y verifica la conexión con un ping
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// Gateway es el único acceso a las colecciones. Se crea una vez al arrancar
// y se comparte en solo lectura entre peticiones.
type Gateway struct {
	db  *mongo.Database
	now func() time.Time
}

func NewGateway(db *mongo.Database) *Gateway {
	return &Gateway{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// CollectionName devuelve el nombre físico de la colección de una entidad
func CollectionName(e models.Entity) string {
	return strings.ToLower(e.EntityName())
}

func (g *Gateway) Name() string {
	return g.db.Name()
}

func (g *Gateway) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()
	return g.db.Client().Ping(ctx, readpref.Primary())
}

func (g *Gateway) ListCollectionNames(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()
	return g.db.ListCollectionNames(ctx, bson.D{})
}

// CreateDocument serializa el registro, añade las marcas de tiempo y lo inserta
func (g *Gateway) CreateDocument(ctx context.Context, collection string, record interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	raw, err := bson.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", collection, err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("encode %s document: %w", collection, err)
	}
	now := g.now()
	doc["created_at"] = now
	doc["updated_at"] = now

	if _, err := g.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert into %s: %w", collection, err)
	}
	return nil
}

// GetDocuments devuelve un cursor perezoso; orden y límite los decide quien llama.
// El cursor vive más que esta llamada, por eso no se aplica timeout aquí.
func (g *Gateway) GetDocuments(ctx context.Context, collection string, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	if filter == nil {
		filter = bson.M{}
	}
	return g.db.Collection(collection).Find(ctx, filter, opts...)
}

// FindAll drena GetDocuments con el timeout de consultas
func (g *Gateway) FindAll(ctx context.Context, collection string, filter interface{}, opts ...*options.FindOptions) ([]bson.M, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := g.GetDocuments(ctx, collection, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	docs := make([]bson.M, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s documents: %w", collection, err)
	}
	return docs, nil
}

func (g *Gateway) FindDocument(ctx context.Context, collection string, filter interface{}) (bson.M, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	var doc bson.M
	err := g.db.Collection(collection).FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find one in %s: %w", collection, err)
	}
	return doc, nil
}

func (g *Gateway) CountDocuments(ctx context.Context, collection string, filter interface{}) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	if filter == nil {
		filter = bson.M{}
	}
	n, err := g.db.Collection(collection).CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}
