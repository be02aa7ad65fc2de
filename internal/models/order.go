package models

const (
	CurrencyEUR = "eur"
	CurrencyUSD = "usd"
)

var Currencies = []string{CurrencyEUR, CurrencyUSD}

// Estados de un pedido. Ningún flujo actual los hace avanzar.
const (
	OrderPending  = "pending"
	OrderPaid     = "paid"
	OrderFailed   = "failed"
	OrderRefunded = "refunded"
)

var OrderStatuses = []string{OrderPending, OrderPaid, OrderFailed, OrderRefunded}

// OrderItem es una línea de pedido; title es una copia del título del producto
type OrderItem struct {
	ProductID string                 `json:"product_id" bson:"product_id"`
	Title     string                 `json:"title" bson:"title"`
	Quantity  int                    `json:"quantity" bson:"quantity"`
	UnitPrice float64                `json:"unit_price" bson:"unit_price"`
	Variant   map[string]interface{} `json:"variant" bson:"variant"`
}

type OrderItemInput struct {
	ProductID string                 `json:"product_id"`
	Title     string                 `json:"title"`
	Quantity  *int                   `json:"quantity"`
	UnitPrice *float64               `json:"unit_price"`
	Variant   map[string]interface{} `json:"variant,omitempty"`
}

func NewOrderItem(in OrderItemInput) (*OrderItem, error) {
	c := &checker{}
	c.required("product_id", in.ProductID)
	c.required("title", in.Title)

	quantity := 0
	if in.Quantity == nil {
		c.add("quantity", "required", "")
	} else {
		quantity = *in.Quantity
		c.gte("quantity", float64(quantity), "1")
	}
	unitPrice := c.requiredNumber("unit_price", in.UnitPrice)
	if in.UnitPrice != nil {
		c.gte("unit_price", unitPrice, "0")
	}

	if err := c.err(); err != nil {
		return nil, err
	}
	return &OrderItem{
		ProductID: in.ProductID,
		Title:     in.Title,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Variant:   in.Variant,
	}, nil
}

// Order representa un pedido
type Order struct {
	UserEmail       *string     `json:"user_email" bson:"user_email"`
	Items           []OrderItem `json:"items" bson:"items"`
	Currency        string      `json:"currency" bson:"currency"`
	Subtotal        float64     `json:"subtotal" bson:"subtotal"`
	Total           float64     `json:"total" bson:"total"`
	Status          string      `json:"status" bson:"status"`
	StripeSessionID *string     `json:"stripe_session_id" bson:"stripe_session_id"`
}

func (Order) EntityName() string { return "Order" }

type OrderInput struct {
	UserEmail       *string          `json:"user_email,omitempty"`
	Items           []OrderItemInput `json:"items"`
	Currency        string           `json:"currency,omitempty"`
	Subtotal        *float64         `json:"subtotal"`
	Total           *float64         `json:"total"`
	Status          string           `json:"status,omitempty"`
	StripeSessionID *string          `json:"stripe_session_id,omitempty"`
}

func NewOrder(in OrderInput) (*Order, error) {
	c := &checker{}
	if in.UserEmail != nil {
		c.email("user_email", *in.UserEmail)
	}
	if len(in.Items) == 0 {
		c.add("items", "min", "1")
	}
	items := make([]OrderItem, 0, len(in.Items))
	for i, ii := range in.Items {
		item, err := NewOrderItem(ii)
		if err != nil {
			c.nested(indexed("items", i), err)
			continue
		}
		items = append(items, *item)
	}

	currency := stringOr(in.Currency, CurrencyEUR)
	c.oneOf("currency", currency, Currencies)
	subtotal := c.requiredNumber("subtotal", in.Subtotal)
	if in.Subtotal != nil {
		c.gte("subtotal", subtotal, "0")
	}
	total := c.requiredNumber("total", in.Total)
	if in.Total != nil {
		c.gte("total", total, "0")
	}
	status := stringOr(in.Status, OrderPending)
	c.oneOf("status", status, OrderStatuses)

	if err := c.err(); err != nil {
		return nil, err
	}
	return &Order{
		UserEmail:       in.UserEmail,
		Items:           items,
		Currency:        currency,
		Subtotal:        subtotal,
		Total:           total,
		Status:          status,
		StripeSessionID: in.StripeSessionID,
	}, nil
}
