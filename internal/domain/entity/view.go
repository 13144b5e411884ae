package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductView agregado de lectura que compone el servidor para la página
// pública de detalle: producto + marca + ventas (con tienda y predecesora)
// + historial. Es la forma canónica de GET /products/sale/{saleId}.
// Nótese que aquí el volumen viaja como volume_ml (snake_case), a
// diferencia del Product individual; el contrato remoto es así.
type ProductView struct {
	ID             string        `json:"id"`
	BrandID        string        `json:"brandId"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	VolumeMl       int           `json:"volume_ml"`
	QRCodeURL      string        `json:"qrcode_url"`
	ProductionDate string        `json:"production_date"`
	ExpirationDate string        `json:"expiration_date"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
	Sales          []SaleDetail  `json:"sales"`
	Histories      []ViewHistory `json:"histories"`
	Brand          ViewBrand     `json:"brand"`
}

// SaleDetail venta dentro del agregado, con las tiendas ya resueltas.
type SaleDetail struct {
	ID                 string          `json:"id"`
	ProductID          string          `json:"productId"`
	Description        string          `json:"description,omitempty"`
	StoreID            string          `json:"storeId"`
	PredecessorStoreID string          `json:"predecessorStoreId,omitempty"`
	Quantity           int             `json:"quantity"`
	CostPrice          decimal.Decimal `json:"costPrice"`
	SaleDate           time.Time       `json:"saleDate"`
	Store              ViewStore       `json:"store"`
	PredecessorStore   *ViewStore      `json:"predecessorStore,omitempty"`
}

// ViewStore tienda embebida en una venta del agregado.
type ViewStore struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ViewHistory entrada de historial embebida en el agregado.
type ViewHistory struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UpdatedBy   string    `json:"updatedBy,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ViewBrand marca embebida en el agregado.
type ViewBrand struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Website     string    `json:"website,omitempty"`
	LogoURL     string    `json:"logoUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
