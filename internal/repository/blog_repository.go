package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"seya-store/internal/database"
	"seya-store/internal/models"
)

type BlogRepository struct {
	gw         *database.Gateway
	collection string
}

func NewBlogRepository(gw *database.Gateway) *BlogRepository {
	return &BlogRepository{
		gw:         gw,
		collection: database.CollectionName(models.BlogPost{}),
	}
}

// ListPublished devuelve las entradas publicadas, de la más reciente a la más antigua.
// El ObjectID crece con la inserción, así que ordenar por _id basta.
func (r *BlogRepository) ListPublished(ctx context.Context, category string, limit int64) ([]bson.M, error) {
	filter := bson.M{"published": true}
	if category != "" {
		filter["category"] = category
	}
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return r.gw.FindAll(ctx, r.collection, filter, opts)
}

func (r *BlogRepository) Create(ctx context.Context, post *models.BlogPost) error {
	return r.gw.CreateDocument(ctx, r.collection, post)
}
