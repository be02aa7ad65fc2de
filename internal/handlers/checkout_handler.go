package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"seya-store/internal/metrics"
	"seya-store/internal/payment"
)

type CheckoutCreator interface {
	Configured() bool
	CreateSession(ctx context.Context, co payment.Checkout) (*payment.Session, error)
}

type CheckoutHandler struct {
	payments CheckoutCreator
}

func NewCheckoutHandler(payments CheckoutCreator) *CheckoutHandler {
	return &CheckoutHandler{payments: payments}
}

// CreateSession crea una sesión de Stripe Checkout para el carrito.
// Sin clave de Stripe responde 400 antes de leer el cuerpo.
// POST /api/checkout
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	if h.payments == nil || !h.payments.Configured() {
		metrics.RecordCheckout("not_configured")
		respondError(c, http.StatusBadRequest, "Stripe not configured")
		return
	}

	var req payment.Checkout
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	session, err := h.payments.CreateSession(c.Request.Context(), req)
	if err != nil {
		metrics.RecordCheckout("failed")
		log.Error().Err(err).Int("items", len(req.Items)).Msg("checkout session failed")
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	metrics.RecordCheckout("created")
	c.JSON(http.StatusOK, session)
}
