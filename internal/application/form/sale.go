package form

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/drinktrace-web/internal/application/dto"
)

// SaleInput valores crudos del formulario de venta/traspaso.
type SaleInput struct {
	StoreID            string
	PredecessorStoreID string
	Quantity           string
	CostPrice          string
}

// minCostPrice precio de costo mínimo aceptado.
var minCostPrice = decimal.NewFromFloat(0.01)

// ValidateSale reglas de venta: tienda obligatoria, predecesora opcional,
// cantidad entera >= 1 y precio de costo decimal > 0. El mapeo snake_case
// del formulario al camelCase del API ocurre aquí, en un solo lugar.
func ValidateSale(in SaleInput) (dto.CreateProductSaleDTO, FieldErrors) {
	errs := FieldErrors{}

	storeID := strings.TrimSpace(in.StoreID)
	if storeID == "" {
		errs["store_id"] = "La tienda es obligatoria"
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(in.Quantity))
	if err != nil || quantity < 1 {
		errs["quantity"] = "La cantidad debe ser al menos 1"
	}

	costPrice, err := decimal.NewFromString(strings.TrimSpace(in.CostPrice))
	if err != nil || costPrice.LessThan(minCostPrice) {
		errs["cost_price"] = "El precio de costo debe ser mayor que 0"
	}

	if len(errs) > 0 {
		return dto.CreateProductSaleDTO{}, errs
	}
	return dto.CreateProductSaleDTO{
		StoreID:            storeID,
		PredecessorStoreID: strings.TrimSpace(in.PredecessorStoreID),
		Quantity:           quantity,
		CostPrice:          costPrice,
	}, nil
}
