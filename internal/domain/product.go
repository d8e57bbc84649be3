package domain

import "github.com/shopspring/decimal"

type Product struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	CategoryID   int64           `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
}

// ProductPatch carries a partial update; nil fields are left untouched.
type ProductPatch struct {
	Name       *string
	SKU        *string
	Price      *decimal.Decimal
	Stock      *int
	CategoryID *int64
}

func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.SKU == nil && p.Price == nil && p.Stock == nil && p.CategoryID == nil
}

type ProductRepository interface {
	CreateProduct(product *Product) (*Product, error)
	GetProductByID(id int64) (*Product, error)
	ListProducts() ([]Product, error)
	ListProductsByCategory(categoryID int64) ([]Product, error)
	UpdateProduct(id int64, patch ProductPatch) (*Product, error)
	DeleteProduct(id int64) error
	SKUExists(sku string) (bool, error)
	ExistsByCategory(categoryID int64) (bool, error)
}

type ProductUseCase interface {
	CreateProduct(product *Product) (*Product, error)
	GetProductByID(id int64) (*Product, error)
	ListProducts(categoryID int64) ([]Product, error)
	PatchProduct(id int64, patch ProductPatch) (*Product, error)
	DeleteProduct(id int64) error
}
