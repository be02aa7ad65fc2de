package repository

import "seya-store/internal/models"

func ptr[T any](v T) *T { return &v }

var demoProducts = []models.ProductInput{
	{
		Title:       "SEYA Hoodie Noir",
		Description: ptr("Hoodie premium en coton épais."),
		Price:       ptr(89.0),
		Category:    models.CategoryHoodies,
		Images:      []string{"https://images.unsplash.com/photo-1520975922203-b8ad5b1cfdf4"},
		Tags:        []string{"nouveau", "best"},
		Variants: []models.VariantInput{
			{SKU: "HD-BLK-S", Size: ptr("S"), Stock: ptr(10)},
			{SKU: "HD-BLK-M", Size: ptr("M"), Stock: ptr(15)},
		},
		Active: ptr(true),
	},
	{
		Title:       "SEYA Tee Crème",
		Description: ptr("T-shirt oversize crème."),
		Price:       ptr(39.0),
		Category:    models.CategoryTees,
		Images:      []string{"https://images.unsplash.com/photo-1512436991641-6745cdb1723f"},
		Tags:        []string{"drop"},
		Variants:    []models.VariantInput{{SKU: "TS-CRM-M", Size: ptr("M"), Stock: ptr(25)}},
		Active:      ptr(true),
	},
	{
		Title:       "SEYA Cargo Bleu",
		Description: ptr("Cargo bleu électrique."),
		Price:       ptr(109.0),
		Category:    models.CategoryPantalons,
		Images:      []string{"https://images.unsplash.com/photo-1520975853989-5c2f5cb4831d"},
		Tags:        []string{"limited"},
		Variants:    []models.VariantInput{{SKU: "CRG-BLU-32", Size: ptr("32"), Stock: ptr(8)}},
		Active:      ptr(true),
	},
}

// DemoProducts construye los tres productos de demostración
func DemoProducts() ([]*models.Product, error) {
	products := make([]*models.Product, 0, len(demoProducts))
	for _, in := range demoProducts {
		p, err := models.NewProduct(in)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
