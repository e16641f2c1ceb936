package models

// Product is an item sold by the cooperative store. BuyPrice times Stock is
// the product's contribution to total assets.
type Product struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`    // sale price per unit
	BuyPrice      int64  `json:"buyPrice"` // unit cost (HPP)
	Stock         int64  `json:"stock"`
	Category      string `json:"category"`
	Image         string `json:"image,omitempty"`
	Description   string `json:"description,omitempty"`
	SKU           string `json:"sku,omitempty"`
	SupplierPhone string `json:"supplierPhone,omitempty"`
}

// ProductInput is used for creating/updating products.
type ProductInput struct {
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	BuyPrice      int64  `json:"buyPrice"`
	Stock         int64  `json:"stock"`
	Category      string `json:"category"`
	Image         string `json:"image"`
	Description   string `json:"description"`
	SKU           string `json:"sku"`
	SupplierPhone string `json:"supplierPhone"`
}

func (p *ProductInput) Validate() string {
	if p.Name == "" {
		return "name is required"
	}
	if p.Price < 0 || p.BuyPrice < 0 {
		return "price and buyPrice must not be negative"
	}
	if p.Stock < 0 {
		return "stock must not be negative"
	}
	return ""
}
