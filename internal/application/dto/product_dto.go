package dto

import "github.com/shopspring/decimal"

// CreateProductDTO cuerpo de POST /products.
type CreateProductDTO struct {
	Name           string `json:"name"`
	BrandID        string `json:"brandId"`
	VolumeMl       int    `json:"volume_ml"`
	ProductionDate string `json:"production_date"`
	ExpirationDate string `json:"expiration_date"`
	Description    string `json:"description"`
}

// CreateProductHistoryDTO cuerpo de POST /products/{id}/history.
// El productId va en la ruta, no en el cuerpo.
type CreateProductHistoryDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	UpdatedBy   string `json:"updatedBy,omitempty"`
}

// CreateProductSaleDTO cuerpo de POST /products/{id}/sales.
type CreateProductSaleDTO struct {
	StoreID            string          `json:"storeId"`
	PredecessorStoreID string          `json:"predecessorStoreId,omitempty"`
	Quantity           int             `json:"quantity"`
	CostPrice          decimal.Decimal `json:"costPrice"`
}
