package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductSale evento de venta/traspaso de un producto hacia una tienda,
// opcionalmente encadenado desde una tienda predecesora (procedencia).
// El API serializa costPrice como string decimal en la creación y como
// número en la vista agregada; decimal.Decimal acepta ambas formas.
type ProductSale struct {
	ID                 string          `json:"id"`
	ProductID          string          `json:"productId"`
	StoreID            string          `json:"storeId"`
	PredecessorStoreID string          `json:"predecessorStoreId,omitempty"`
	Quantity           int             `json:"quantity"`
	CostPrice          decimal.Decimal `json:"costPrice"`
	CreatedAt          time.Time       `json:"createdAt"`
}
