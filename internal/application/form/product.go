package form

import (
	"strconv"
	"strings"

	"github.com/jhoicas/drinktrace-web/internal/application/dto"
)

// ProductInput valores crudos del formulario de producto. Todos llegan como
// string; la conversión numérica es parte de la validación.
type ProductInput struct {
	BrandID        string
	Name           string
	Description    string
	VolumeMl       string
	ProductionDate string
	ExpirationDate string
}

// ValidateProduct reglas de producto: brand_id con formato UUID (la
// existencia la verifica el API), nombre no vacío, descripción mínimo 10,
// volume_ml entero positivo y ambas fechas parseables. No se exige orden
// entre producción y vencimiento: el contrato vigente acepta un vencimiento
// anterior a la producción.
func ValidateProduct(in ProductInput) (dto.CreateProductDTO, FieldErrors) {
	errs := FieldErrors{}

	brandID := strings.TrimSpace(in.BrandID)
	if !validUUID(brandID) {
		errs["brand_id"] = "Debe ser un identificador de marca válido"
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs["name"] = "El nombre del producto es obligatorio"
	}
	description := strings.TrimSpace(in.Description)
	if len(description) < 10 {
		errs["description"] = "La descripción es obligatoria (mínimo 10 caracteres)"
	}

	volume, err := strconv.Atoi(strings.TrimSpace(in.VolumeMl))
	if err != nil || volume <= 0 {
		errs["volume_ml"] = "El volumen debe ser un entero positivo"
	}

	production := strings.TrimSpace(in.ProductionDate)
	if !validDate(production) {
		errs["production_date"] = "Debe ser una fecha válida"
	}
	expiration := strings.TrimSpace(in.ExpirationDate)
	if !validDate(expiration) {
		errs["expiration_date"] = "Debe ser una fecha válida"
	}

	if len(errs) > 0 {
		return dto.CreateProductDTO{}, errs
	}
	return dto.CreateProductDTO{
		Name:           name,
		BrandID:        brandID,
		VolumeMl:       volume,
		ProductionDate: production,
		ExpirationDate: expiration,
		Description:    description,
	}, nil
}
