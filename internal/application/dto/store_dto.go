package dto

// CreateStoreDTO cuerpo de POST /stores.
type CreateStoreDTO struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}
