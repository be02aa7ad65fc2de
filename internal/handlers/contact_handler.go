package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"seya-store/internal/models"
)

type MessageStore interface {
	Create(ctx context.Context, m *models.Message) error
}

// ContactRequest no lleva reglas de binding: las aplica models.NewMessage
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ContactHandler struct {
	store MessageStore
}

func NewContactHandler(store MessageStore) *ContactHandler {
	return &ContactHandler{store: store}
}

// Submit guarda un mensaje del formulario de contacto
// POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	msg, err := models.NewMessage(models.MessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Source:  models.SourceContact,
	})
	if err != nil {
		validationError(c, err)
		return
	}

	if h.store == nil {
		databaseNotConfigured(c)
		return
	}
	if err := h.store.Create(c.Request.Context(), msg); err != nil {
		log.Error().Err(err).Msg("could not store contact message")
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
