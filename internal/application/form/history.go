package form

import (
	"strings"

	"github.com/jhoicas/drinktrace-web/internal/application/dto"
)

// HistoryInput valores crudos del formulario de historial. ProductID se
// precarga desde la ruta y viaja en un campo oculto no editable.
type HistoryInput struct {
	ProductID   string
	Title       string
	Description string
	UpdatedBy   string
}

// ValidateHistory reglas de historial: product_id con formato UUID, título
// no vacío, descripción mínimo 10 y updated_by opcional pero email válido
// si viene.
func ValidateHistory(in HistoryInput) (dto.CreateProductHistoryDTO, FieldErrors) {
	errs := FieldErrors{}

	if !validUUID(strings.TrimSpace(in.ProductID)) {
		errs["product_id"] = "Identificador de producto inválido"
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		errs["title"] = "El título es obligatorio"
	}
	description := strings.TrimSpace(in.Description)
	if len(description) < 10 {
		errs["description"] = "La descripción es muy corta (mínimo 10 caracteres)"
	}
	updatedBy := strings.TrimSpace(in.UpdatedBy)
	if updatedBy != "" && !validEmail(updatedBy) {
		errs["updated_by"] = "Debe ser un email válido"
	}

	if len(errs) > 0 {
		return dto.CreateProductHistoryDTO{}, errs
	}
	return dto.CreateProductHistoryDTO{
		Title:       title,
		Description: description,
		UpdatedBy:   updatedBy,
	}, nil
}
