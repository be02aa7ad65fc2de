package models

// Categorías públicas del catálogo
const (
	CategoryHoodies     = "Hoodies"
	CategoryTees        = "Tees"
	CategoryPantalons   = "Pantalons"
	CategoryAccessoires = "Accessoires"
)

var ProductCategories = []string{CategoryHoodies, CategoryTees, CategoryPantalons, CategoryAccessoires}

// Variant representa una variante (talla, color) embebida en un producto
type Variant struct {
	SKU   string   `json:"sku" bson:"sku"`
	Size  *string  `json:"size" bson:"size"`
	Color *string  `json:"color" bson:"color"`
	Stock int      `json:"stock" bson:"stock"`
	Price *float64 `json:"price" bson:"price"`
}

type VariantInput struct {
	SKU   string   `json:"sku"`
	Size  *string  `json:"size,omitempty"`
	Color *string  `json:"color,omitempty"`
	Stock *int     `json:"stock,omitempty"`
	Price *float64 `json:"price,omitempty"`
}

// NewVariant valida una variante; stock vale 0 si no se indica
func NewVariant(in VariantInput) (*Variant, error) {
	c := &checker{}
	c.required("sku", in.SKU)

	stock := 0
	if in.Stock != nil {
		stock = *in.Stock
	}
	c.gte("stock", float64(stock), "0")
	if in.Price != nil {
		c.gte("price", *in.Price, "0")
	}

	if err := c.err(); err != nil {
		return nil, err
	}
	return &Variant{
		SKU:   in.SKU,
		Size:  in.Size,
		Color: in.Color,
		Stock: stock,
		Price: in.Price,
	}, nil
}

// Product representa un producto del catálogo
type Product struct {
	Title       string    `json:"title" bson:"title"`
	Description *string   `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"`
	Category    string    `json:"category" bson:"category"`
	Images      []string  `json:"images" bson:"images"`
	Tags        []string  `json:"tags" bson:"tags"`
	Variants    []Variant `json:"variants" bson:"variants"`
	Active      bool      `json:"active" bson:"active"`
}

func (Product) EntityName() string { return "Product" }

type ProductInput struct {
	Title       string         `json:"title"`
	Description *string        `json:"description,omitempty"`
	Price       *float64       `json:"price"`
	Category    string         `json:"category"`
	Images      []string       `json:"images,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Variants    []VariantInput `json:"variants,omitempty"`
	Active      *bool          `json:"active,omitempty"`
}

// NewProduct construye un producto validado aplicando los valores por defecto
func NewProduct(in ProductInput) (*Product, error) {
	c := &checker{}
	c.required("title", in.Title)
	price := c.requiredNumber("price", in.Price)
	if in.Price != nil {
		c.gte("price", price, "0")
	}
	c.oneOf("category", in.Category, ProductCategories)

	variants := make([]Variant, 0, len(in.Variants))
	for i, vi := range in.Variants {
		v, err := NewVariant(vi)
		if err != nil {
			c.nested(indexed("variants", i), err)
			continue
		}
		variants = append(variants, *v)
	}

	if err := c.err(); err != nil {
		return nil, err
	}
	return &Product{
		Title:       in.Title,
		Description: in.Description,
		Price:       price,
		Category:    in.Category,
		Images:      nonNil(in.Images),
		Tags:        nonNil(in.Tags),
		Variants:    variants,
		Active:      boolOr(in.Active, true),
	}, nil
}
