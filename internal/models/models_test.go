package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNewProduct_Defaults(t *testing.T) {
	p, err := NewProduct(ProductInput{
		Title:    "SEYA Hoodie Noir",
		Price:    ptr(89.0),
		Category: CategoryHoodies,
	})

	require.NoError(t, err)
	assert.True(t, p.Active)
	assert.Equal(t, []string{}, p.Images)
	assert.Equal(t, []string{}, p.Tags)
	assert.Empty(t, p.Variants)
	assert.Nil(t, p.Description)
}

func TestNewProduct_CollectsAllErrors(t *testing.T) {
	_, err := NewProduct(ProductInput{
		Price:    ptr(-1.0),
		Category: "Shoes",
		Variants: []VariantInput{{Stock: ptr(-3)}},
	})

	var ve ValidationErrors
	require.True(t, errors.As(err, &ve))
	assert.True(t, ve.Has("title"))
	assert.True(t, ve.Has("price"))
	assert.True(t, ve.Has("category"))
	assert.True(t, ve.Has("variants[0].sku"))
	assert.True(t, ve.Has("variants[0].stock"))
	assert.Contains(t, err.Error(), "category must be one of: Hoodies Tees Pantalons Accessoires")
	assert.Contains(t, err.Error(), "variants[0].stock must be greater than or equal to 0")
}

func TestNewProduct_MissingPrice(t *testing.T) {
	_, err := NewProduct(ProductInput{Title: "Tee", Category: CategoryTees})

	var ve ValidationErrors
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve, 1)
	assert.Equal(t, FieldError{Field: "price", Tag: "required", Message: "price is required"}, ve[0])
}

func TestNewProduct_InactiveIsKept(t *testing.T) {
	p, err := NewProduct(ProductInput{Title: "Cap", Price: ptr(0.0), Category: CategoryAccessoires, Active: ptr(false)})

	require.NoError(t, err)
	assert.False(t, p.Active)
	assert.Equal(t, 0.0, p.Price)
}

func TestNewVariant(t *testing.T) {
	v, err := NewVariant(VariantInput{SKU: "HD-BLK-S", Size: ptr("S")})
	require.NoError(t, err)
	assert.Equal(t, 0, v.Stock)
	assert.Nil(t, v.Price)

	_, err = NewVariant(VariantInput{SKU: "HD-BLK-S", Price: ptr(-5.0)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "price must be greater than or equal to 0")
}

func TestNewMessage(t *testing.T) {
	m, err := NewMessage(MessageInput{
		Name:    "Ana",
		Email:   "ana@example.com",
		Subject: "Hola",
		Message: "Una pregunta",
	})
	require.NoError(t, err)
	assert.Equal(t, SourceContact, m.Source)

	_, err = NewMessage(MessageInput{Name: "Ana", Email: "not-an-email", Subject: "x", Message: "y"})
	var ve ValidationErrors
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "email", ve[0].Field)
	assert.Equal(t, "email", ve[0].Tag)

	_, err = NewMessage(MessageInput{Name: "Ana", Email: "ana@example.com", Subject: "x", Message: "y", Source: "sms"})
	assert.Error(t, err)
}

func TestNewUser(t *testing.T) {
	u, err := NewUser(UserInput{Name: "Ana", Email: "ana@example.com", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Equal(t, RoleCustomer, u.Role)
	assert.True(t, u.IsActive)

	_, err = NewUser(UserInput{Name: "Ana", Email: "ana@example.com", PasswordHash: "hash", Role: "root"})
	assert.Error(t, err)

	_, err = NewUser(UserInput{Name: "Ana", PasswordHash: "hash"})
	var ve ValidationErrors
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "required", ve[0].Tag)
}

func TestNewOrder(t *testing.T) {
	o, err := NewOrder(OrderInput{
		Items: []OrderItemInput{{
			ProductID: "665f1c2e8b3e4a0012345678",
			Title:     "SEYA Tee Crème",
			Quantity:  ptr(2),
			UnitPrice: ptr(39.0),
		}},
		Subtotal: ptr(78.0),
		Total:    ptr(78.0),
	})
	require.NoError(t, err)
	assert.Equal(t, CurrencyEUR, o.Currency)
	assert.Equal(t, OrderPending, o.Status)

	_, err = NewOrder(OrderInput{Subtotal: ptr(0.0), Total: ptr(0.0), Currency: "gbp"})
	var ve ValidationErrors
	require.True(t, errors.As(err, &ve))
	assert.True(t, ve.Has("items"))
	assert.True(t, ve.Has("currency"))

	_, err = NewOrder(OrderInput{
		Items:    []OrderItemInput{{ProductID: "x", Title: "t", Quantity: ptr(0), UnitPrice: ptr(1.0)}},
		Subtotal: ptr(1.0),
		Total:    ptr(1.0),
	})
	require.True(t, errors.As(err, &ve))
	assert.True(t, ve.Has("items[0].quantity"))
}

func TestNewBlogPost(t *testing.T) {
	b, err := NewBlogPost(BlogPostInput{Title: "Drop 01", Slug: "drop-01", Content: "..."})
	require.NoError(t, err)
	assert.Equal(t, BlogDrops, b.Category)
	assert.True(t, b.Published)

	_, err = NewBlogPost(BlogPostInput{Title: "Drop 01", Slug: "drop-01", Content: "...", Category: "news"})
	assert.Error(t, err)
}

func TestNewPromoCode(t *testing.T) {
	p, err := NewPromoCode(PromoCodeInput{Code: "WELCOME10", Value: ptr(10.0)})
	require.NoError(t, err)
	assert.Equal(t, PromoPercentage, p.Type)
	assert.True(t, p.Active)

	_, err = NewPromoCode(PromoCodeInput{Code: "ZERO", Value: ptr(0.0)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "value must be greater than 0")
}

func TestEntityNames(t *testing.T) {
	names := []string{}
	for _, e := range []Entity{User{}, Product{}, Order{}, BlogPost{}, Message{}, PromoCode{}} {
		names = append(names, e.EntityName())
	}
	assert.Equal(t, []string{"User", "Product", "Order", "BlogPost", "Message", "PromoCode"}, names)
}
