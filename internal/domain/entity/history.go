package entity

import "time"

// ProductHistory entrada del historial de un producto. Registro de solo
// anexado: nunca se modifica ni elimina una entrada existente.
type ProductHistory struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UpdatedBy   string    `json:"updatedBy,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
