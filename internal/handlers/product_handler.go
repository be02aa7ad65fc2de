package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"seya-store/internal/bsonutil"
	"seya-store/internal/database"
	"seya-store/internal/metrics"
	"seya-store/internal/models"
	"seya-store/internal/repository"
)

const productListLimit = 100

// ProductStore es lo que el handler necesita del repositorio de productos
type ProductStore interface {
	List(ctx context.Context, f repository.ProductFilter, limit int64) ([]bson.M, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, p *models.Product) error
}

type ProductHandler struct {
	store ProductStore
}

// NewProductHandler acepta un store nil cuando no hay base de datos
func NewProductHandler(store ProductStore) *ProductHandler {
	return &ProductHandler{store: store}
}

// ListProducts lista productos activos con filtros opcionales
// GET /api/products?category=&q=
func (h *ProductHandler) ListProducts(c *gin.Context) {
	if h.store == nil {
		databaseNotConfigured(c)
		return
	}

	filter := repository.ProductFilter{
		Category: c.Query("category"),
		Query:    c.Query("q"),
	}
	products, err := h.store.List(c.Request.Context(), filter, productListLimit)
	if err != nil {
		serverError(c, err, "could not fetch products")
		return
	}

	c.JSON(http.StatusOK, bsonutil.ToExternalAll(products))
}

// GetProduct obtiene un producto por ID
// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	if h.store == nil {
		databaseNotConfigured(c)
		return
	}

	objID, err := bsonutil.ObjectID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid ID")
		return
	}

	product, err := h.store.FindByID(c.Request.Context(), objID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Product not found")
			return
		}
		serverError(c, err, "error fetching product")
		return
	}

	c.JSON(http.StatusOK, bsonutil.ToExternal(product))
}

// Seed inserta los productos de demostración si la colección está vacía
// POST /api/seed
func (h *ProductHandler) Seed(c *gin.Context) {
	if h.store == nil {
		databaseNotConfigured(c)
		return
	}
	ctx := c.Request.Context()

	count, err := h.store.Count(ctx)
	if err != nil {
		serverError(c, err, "could not count products")
		return
	}
	if count > 0 {
		c.JSON(http.StatusOK, gin.H{"inserted": 0, "message": "Products already exist"})
		return
	}

	products, err := repository.DemoProducts()
	if err != nil {
		serverError(c, err, "invalid demo products")
		return
	}

	inserted := 0
	for _, p := range products {
		if err := h.store.Create(ctx, p); err != nil {
			metrics.RecordSeed(inserted)
			serverError(c, err, "could not insert demo products")
			return
		}
		inserted++
	}
	metrics.RecordSeed(inserted)

	c.JSON(http.StatusOK, gin.H{"inserted": inserted})
}
