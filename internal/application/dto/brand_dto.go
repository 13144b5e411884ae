// Package dto define los cuerpos de petición que el adaptador envía al API
// remoto. Los tags JSON son el contrato del servicio y no se normalizan:
// algunos campos van en camelCase y otros en snake_case.
package dto

// CreateBrandDTO cuerpo de POST /brands.
type CreateBrandDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website,omitempty"`
	LogoURL     string `json:"logoUrl,omitempty"`
}
