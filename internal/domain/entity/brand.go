package entity

import "time"

// Brand marca propietaria de uno o más productos embotellados.
// Los tags JSON replican el contrato del API remoto tal cual (camelCase).
type Brand struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Website     string    `json:"website,omitempty"`
	LogoURL     string    `json:"logoUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BrandSummary forma reducida que devuelve GET /brands (para poblar selects).
type BrandSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
