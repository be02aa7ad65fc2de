// Package payment crea sesiones de pago de Stripe Checkout a partir de un carrito.
//
// No hay reintentos ni clave de idempotencia, y una sesión pagada no genera
// ningún pedido: el adaptador solo devuelve el id y la URL de la sesión.
package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"

	"seya-store/internal/models"
)

var (
	ErrNotConfigured = errors.New("stripe not configured")
	ErrMissingPrice  = errors.New("cart item without unit price")
)

var hundred = decimal.NewFromInt(100)

// CartItem es una línea del carrito; UnitPrice va en unidades mayores (EUR, USD)
type CartItem struct {
	ProductID string  `json:"product_id" binding:"required"`
	Title     string  `json:"title" binding:"required"`
	Quantity  int64   `json:"quantity" binding:"required,gte=1"`
	UnitPrice *float64 `json:"unit_price" binding:"required,gte=0"`
	Image     string  `json:"image,omitempty"`
}

type Checkout struct {
	Items      []CartItem `json:"items" binding:"required,min=1,dive"`
	Currency   string     `json:"currency"`
	SuccessURL string     `json:"success_url" binding:"required"`
	CancelURL  string     `json:"cancel_url" binding:"required"`
}

// Session es lo que devuelve Stripe al crear la sesión
type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// SessionCreator es la parte del cliente de Stripe que usamos
type SessionCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type Gateway struct {
	sessions SessionCreator
}

// NewGateway crea el adaptador; sin secreto queda sin configurar
func NewGateway(secret string) *Gateway {
	if secret == "" {
		return &Gateway{}
	}
	return &Gateway{
		sessions: &session.Client{B: stripe.GetBackend(stripe.APIBackend), Key: secret},
	}
}

func NewGatewayWithCreator(sessions SessionCreator) *Gateway {
	return &Gateway{sessions: sessions}
}

func (g *Gateway) Configured() bool {
	return g != nil && g.sessions != nil
}

// CreateSession crea una sesión de pago único con las líneas del carrito
func (g *Gateway) CreateSession(ctx context.Context, co Checkout) (*Session, error) {
	if !g.Configured() {
		return nil, ErrNotConfigured
	}

	items, err := LineItems(co)
	if err != nil {
		return nil, err
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  items,
		SuccessURL: stripe.String(co.SuccessURL),
		CancelURL:  stripe.String(co.CancelURL),
	}
	params.Context = ctx

	s, err := g.sessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return &Session{ID: s.ID, URL: s.URL}, nil
}

// LineItems traduce el carrito al formato de Stripe; sin moneda se usa EUR
func LineItems(co Checkout) ([]*stripe.CheckoutSessionLineItemParams, error) {
	currency := co.Currency
	if currency == "" {
		currency = models.CurrencyEUR
	}

	items := make([]*stripe.CheckoutSessionLineItemParams, 0, len(co.Items))
	for i, it := range co.Items {
		if it.UnitPrice == nil {
			return nil, fmt.Errorf("item %d: %w", i, ErrMissingPrice)
		}
		product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(it.Title),
		}
		if it.Image != "" {
			product.Images = stripe.StringSlice([]string{it.Image})
		}
		items = append(items, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(currency),
				ProductData: product,
				UnitAmount:  stripe.Int64(MinorUnits(*it.UnitPrice)),
			},
			Quantity: stripe.Int64(it.Quantity),
		})
	}
	return items, nil
}

// MinorUnits pasa de unidades mayores a céntimos con redondeo bancario
func MinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(hundred).RoundBank(0).IntPart()
}
