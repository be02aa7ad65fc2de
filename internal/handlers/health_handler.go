package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

const diagnosticErrorLength = 80

// DatabaseInfo es lo que el diagnóstico consulta de la base de datos
type DatabaseInfo interface {
	Name() string
	Ping(ctx context.Context) error
	ListCollectionNames(ctx context.Context) ([]string, error)
}

type HealthHandler struct {
	appName        string
	databaseURLSet bool
	db             DatabaseInfo
}

func NewHealthHandler(appName string, databaseURLSet bool, db DatabaseInfo) *HealthHandler {
	return &HealthHandler{appName: appName, databaseURLSet: databaseURLSet, db: db}
}

// Root GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"name": h.appName, "status": "ok"})
}

// Diagnostics GET /test. Nunca falla: cada comprobación se protege por separado
// y su error se informa en su propio campo.
func (h *HealthHandler) Diagnostics(c *gin.Context) {
	resp := gin.H{
		"backend":       "✅ Running",
		"database":      "❌ Not Available",
		"database_url":  "❌ Not Set",
		"database_name": "❌ Not Set",
		"collections":   []string{},
	}
	if h.databaseURLSet {
		resp["database_url"] = "✅ Set"
	}
	if h.db == nil {
		c.JSON(http.StatusOK, resp)
		return
	}
	ctx := c.Request.Context()

	// conexión
	if err := h.db.Ping(ctx); err != nil {
		resp["database"] = "⚠️ Error: " + truncate(err.Error(), diagnosticErrorLength)
	} else {
		resp["database"] = "✅ Connected"
	}

	// nombre
	if name := h.db.Name(); name != "" {
		resp["database_name"] = name
	} else {
		resp["database_name"] = "Unknown"
	}

	// colecciones
	names, err := h.db.ListCollectionNames(ctx)
	if err != nil {
		resp["collections_error"] = "⚠️ Error: " + truncate(err.Error(), diagnosticErrorLength)
	} else if names != nil {
		resp["collections"] = names
	}

	c.JSON(http.StatusOK, resp)
}
