package repository

import (
	"context"

	"seya-store/internal/database"
	"seya-store/internal/models"
)

type MessageRepository struct {
	gw         *database.Gateway
	collection string
}

func NewMessageRepository(gw *database.Gateway) *MessageRepository {
	return &MessageRepository{
		gw:         gw,
		collection: database.CollectionName(models.Message{}),
	}
}

func (r *MessageRepository) Create(ctx context.Context, m *models.Message) error {
	return r.gw.CreateDocument(ctx, r.collection, m)
}
