package form

import (
	"strings"

	"github.com/jhoicas/drinktrace-web/internal/application/dto"
)

// BrandInput valores crudos del formulario de marca.
type BrandInput struct {
	Name        string
	Description string
	Website     string
	LogoURL     string
}

// ValidateBrand aplica las reglas de marca: nombre mínimo 2 caracteres,
// descripción mínimo 10, website/logo opcionales pero con URL absoluta si
// vienen. Cadena vacía en los opcionales cuenta como ausente.
func ValidateBrand(in BrandInput) (dto.CreateBrandDTO, FieldErrors) {
	errs := FieldErrors{}

	name := strings.TrimSpace(in.Name)
	if len(name) < 2 {
		errs["name"] = "El nombre de la marca es obligatorio (mínimo 2 caracteres)"
	}
	description := strings.TrimSpace(in.Description)
	if len(description) < 10 {
		errs["description"] = "La descripción es obligatoria (mínimo 10 caracteres)"
	}
	website := strings.TrimSpace(in.Website)
	if website != "" && !validAbsoluteURL(website) {
		errs["website"] = "Debe ser una URL válida"
	}
	logoURL := strings.TrimSpace(in.LogoURL)
	if logoURL != "" && !validAbsoluteURL(logoURL) {
		errs["logo_url"] = "Debe ser una URL válida"
	}

	if len(errs) > 0 {
		return dto.CreateBrandDTO{}, errs
	}
	return dto.CreateBrandDTO{
		Name:        name,
		Description: description,
		Website:     website,
		LogoURL:     logoURL,
	}, nil
}
