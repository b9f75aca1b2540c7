package models

import "time"

// DefaultColors is the palette offered when a product declares none of its own.
var DefaultColors = []string{"black", "white", "blue", "red", "green"}

// Product is the application-side catalog entry. Field names here are the
// canonical camelCase ones the storefront speaks; the storage adapters rename
// them to their column conventions through the mapping package.
type Product struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	Price               float64   `json:"price"`
	Category            string    `json:"category"`
	Stock               int       `json:"stock"`
	ImageURL            string    `json:"imageUrl"`
	Discount            int       `json:"discount"`
	Featured            bool      `json:"featured"`
	DescriptionImages   []string  `json:"descriptionImages"`
	SpecificationImages []string  `json:"specificationImages"`
	DeliveryImages      []string  `json:"deliveryImages"`
	AllowCustomization  bool      `json:"allowCustomization"`
	Colors              []string  `json:"colors"`
	CreatedAt           time.Time `json:"createdAt"`
}

// ColorsOrDefault returns the product's palette, falling back to
// DefaultColors when the product declares none.
func (p Product) ColorsOrDefault() []string {
	if len(p.Colors) == 0 {
		return DefaultColors
	}
	return p.Colors
}

// ProductInput is the request body for create and update. Pointer fields
// distinguish "absent" from a legitimate zero, so a price of 0 or stock of 0
// still binds while a missing required field fails with 400.
type ProductInput struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name" binding:"required"`
	Description         string   `json:"description"`
	Price               *float64 `json:"price" binding:"required"`
	Category            string   `json:"category" binding:"required"`
	Stock               *int     `json:"stock" binding:"required"`
	ImageURL            string   `json:"imageUrl"`
	Discount            *int     `json:"discount"`
	Featured            *bool    `json:"featured"`
	DescriptionImages   []string `json:"descriptionImages"`
	SpecificationImages []string `json:"specificationImages"`
	DeliveryImages      []string `json:"deliveryImages"`
	AllowCustomization  *bool    `json:"allowCustomization"`
	Colors              []string `json:"colors"`
}

// Product materializes the input into a Product, applying zero defaults for
// the optional fields.
func (in ProductInput) Product() Product {
	p := Product{
		ID:                  in.ID,
		Name:                in.Name,
		Description:         in.Description,
		Category:            in.Category,
		ImageURL:            in.ImageURL,
		DescriptionImages:   in.DescriptionImages,
		SpecificationImages: in.SpecificationImages,
		DeliveryImages:      in.DeliveryImages,
		Colors:              in.Colors,
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.Discount != nil {
		p.Discount = *in.Discount
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	if in.AllowCustomization != nil {
		p.AllowCustomization = *in.AllowCustomization
	}
	return p
}
