package repository

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"seya-store/internal/database"
	"seya-store/internal/models"
)

// ProductFilter son los filtros opcionales del listado público
type ProductFilter struct {
	Category string
	Query    string
}

type ProductRepository struct {
	gw         *database.Gateway
	collection string
}

func NewProductRepository(gw *database.Gateway) *ProductRepository {
	return &ProductRepository{
		gw:         gw,
		collection: database.CollectionName(models.Product{}),
	}
}

// List devuelve productos activos, como mucho limit
func (r *ProductRepository) List(ctx context.Context, f ProductFilter, limit int64) ([]bson.M, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return r.gw.FindAll(ctx, r.collection, productFilter(f), opts)
}

// FindByID obtiene un producto por ID
func (r *ProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	return r.gw.FindDocument(ctx, r.collection, bson.M{"_id": id})
}

// Count cuenta todos los productos, activos o no
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	return r.gw.CountDocuments(ctx, r.collection, bson.M{})
}

// Create inserta un producto ya validado
func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	return r.gw.CreateDocument(ctx, r.collection, p)
}

// productFilter construye el filtro; q es texto literal, no una expresión regular
func productFilter(f ProductFilter) bson.M {
	filter := bson.M{"active": true}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Query != "" {
		filter["title"] = bson.M{"$regex": regexp.QuoteMeta(f.Query), "$options": "i"}
	}
	return filter
}
