package form

import (
	"strings"

	"github.com/jhoicas/drinktrace-web/internal/application/dto"
)

// StoreInput valores crudos del formulario de tienda.
type StoreInput struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// ValidateStore reglas de tienda: solo el nombre es obligatorio; dirección
// y teléfono son libres; el email, si viene, debe ser válido.
func ValidateStore(in StoreInput) (dto.CreateStoreDTO, FieldErrors) {
	errs := FieldErrors{}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs["name"] = "El nombre de la tienda es obligatorio"
	}
	email := strings.TrimSpace(in.Email)
	if email != "" && !validEmail(email) {
		errs["email"] = "Email inválido"
	}

	if len(errs) > 0 {
		return dto.CreateStoreDTO{}, errs
	}
	return dto.CreateStoreDTO{
		Name:    name,
		Address: strings.TrimSpace(in.Address),
		Phone:   strings.TrimSpace(in.Phone),
		Email:   email,
	}, nil
}
