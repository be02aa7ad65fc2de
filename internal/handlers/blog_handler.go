package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"seya-store/internal/bsonutil"
)

const blogListLimit = 50

type BlogStore interface {
	ListPublished(ctx context.Context, category string, limit int64) ([]bson.M, error)
}

type BlogHandler struct {
	store BlogStore
}

func NewBlogHandler(store BlogStore) *BlogHandler {
	return &BlogHandler{store: store}
}

// ListPosts lista las entradas publicadas, las más recientes primero
// GET /api/blog?category=
func (h *BlogHandler) ListPosts(c *gin.Context) {
	if h.store == nil {
		databaseNotConfigured(c)
		return
	}

	posts, err := h.store.ListPublished(c.Request.Context(), c.Query("category"), blogListLimit)
	if err != nil {
		serverError(c, err, "could not fetch blog posts")
		return
	}

	c.JSON(http.StatusOK, bsonutil.ToExternalAll(posts))
}
