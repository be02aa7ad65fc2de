package models

const (
	PromoPercentage = "percentage"
	PromoFixed      = "fixed"
)

var PromoTypes = []string{PromoPercentage, PromoFixed}

// PromoCode queda declarado para el futuro panel de administración
type PromoCode struct {
	Code   string  `json:"code" bson:"code"`
	Type   string  `json:"type" bson:"type"`
	Value  float64 `json:"value" bson:"value"`
	Active bool    `json:"active" bson:"active"`
}

func (PromoCode) EntityName() string { return "PromoCode" }

type PromoCodeInput struct {
	Code   string   `json:"code"`
	Type   string   `json:"type,omitempty"`
	Value  *float64 `json:"value"`
	Active *bool    `json:"active,omitempty"`
}

func NewPromoCode(in PromoCodeInput) (*PromoCode, error) {
	c := &checker{}
	c.required("code", in.Code)
	kind := stringOr(in.Type, PromoPercentage)
	c.oneOf("type", kind, PromoTypes)
	value := c.requiredNumber("value", in.Value)
	if in.Value != nil {
		c.gt("value", value, "0")
	}

	if err := c.err(); err != nil {
		return nil, err
	}
	return &PromoCode{
		Code:   in.Code,
		Type:   kind,
		Value:  value,
		Active: boolOr(in.Active, true),
	}, nil
}
