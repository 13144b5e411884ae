package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/drinktrace-web/internal/application/form"
)

const (
	brandUUID   = "0f8fad5b-d9cb-469f-a165-70867728950e"
	productUUID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
)

// ──────────────────────────────────────────────────────────────────────────────
// Marca
// ──────────────────────────────────────────────────────────────────────────────

func validBrandInput() form.BrandInput {
	return form.BrandInput{
		Name:        "Star Lager",
		Description: "Fundada en 1949, una de las cerveceras más antiguas del país.",
	}
}

func TestValidateBrand_EntradaValida(t *testing.T) {
	out, errs := form.ValidateBrand(validBrandInput())
	require.Nil(t, errs)
	assert.Equal(t, "Star Lager", out.Name)
	assert.Empty(t, out.Website, "website vacío se trata como ausente")
	assert.Empty(t, out.LogoURL)
}

func TestValidateBrand_NombreMuyCorto(t *testing.T) {
	in := validBrandInput()
	in.Name = "S"
	_, errs := form.ValidateBrand(in)
	require.NotNil(t, errs)
	assert.True(t, errs.Has("name"), "nombre de 1 carácter debe fallar en el campo name")
	assert.False(t, errs.Has("description"))
}

func TestValidateBrand_DescripcionMuyCorta(t *testing.T) {
	in := validBrandInput()
	in.Description = "corta"
	_, errs := form.ValidateBrand(in)
	require.NotNil(t, errs)
	assert.True(t, errs.Has("description"))
}

func TestValidateBrand_URLs(t *testing.T) {
	cases := []struct {
		name    string
		website string
		ok      bool
	}{
		{"url absoluta válida", "https://starbeer.com", true},
		{"url vacía cuenta como ausente", "", true},
		{"sin esquema", "starbeer.com", false},
		{"basura", "::::", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validBrandInput()
			in.Website = tc.website
			out, errs := form.ValidateBrand(in)
			if tc.ok {
				require.Nil(t, errs)
				assert.Equal(t, tc.website, out.Website)
			} else {
				require.NotNil(t, errs)
				assert.True(t, errs.Has("website"))
			}
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Producto
// ──────────────────────────────────────────────────────────────────────────────

func validProductInput() form.ProductInput {
	return form.ProductInput{
		BrandID:        brandUUID,
		Name:           "Star Lager 500ml",
		Description:    "Cerveza lager clásica de sabor fresco.",
		VolumeMl:       "500",
		ProductionDate: "2025-01-15",
		ExpirationDate: "2026-01-15",
	}
}

func TestValidateProduct_EntradaValida(t *testing.T) {
	out, errs := form.ValidateProduct(validProductInput())
	require.Nil(t, errs)
	assert.Equal(t, brandUUID, out.BrandID)
	assert.Equal(t, 500, out.VolumeMl)
	assert.Equal(t, "2025-01-15", out.ProductionDate)
}

func TestValidateProduct_VolumenInvalido(t *testing.T) {
	cases := []struct {
		name   string
		volume string
	}{
		{"cero", "0"},
		{"negativo", "-10"},
		{"no entero", "33.5"},
		{"no numérico", "mucho"},
		{"vacío", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validProductInput()
			in.VolumeMl = tc.volume
			_, errs := form.ValidateProduct(in)
			require.NotNil(t, errs)
			assert.True(t, errs.Has("volume_ml"))
		})
	}
}

func TestValidateProduct_BrandIDConFormatoInvalido(t *testing.T) {
	in := validProductInput()
	in.BrandID = "no-es-un-uuid"
	_, errs := form.ValidateProduct(in)
	require.NotNil(t, errs)
	assert.True(t, errs.Has("brand_id"))
}

func TestValidateProduct_FechaInvalida(t *testing.T) {
	in := validProductInput()
	in.ExpirationDate = "15/01/2026"
	_, errs := form.ValidateProduct(in)
	require.NotNil(t, errs)
	assert.True(t, errs.Has("expiration_date"))
}

// El contrato vigente NO exige orden entre producción y vencimiento: un
// vencimiento anterior a la producción se acepta. Este test documenta el
// comportamiento actual, no el deseado.
func TestValidateProduct_VencimientoAnteriorAProduccionSeAcepta(t *testing.T) {
	in := validProductInput()
	in.ProductionDate = "2026-01-15"
	in.ExpirationDate = "2025-01-15"
	_, errs := form.ValidateProduct(in)
	assert.Nil(t, errs, "no hay regla de orden entre fechas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tienda
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateStore_SoloNombreEsSuficiente(t *testing.T) {
	out, errs := form.ValidateStore(form.StoreInput{Name: "Depósito Central"})
	require.Nil(t, errs)
	assert.Equal(t, "Depósito Central", out.Name)
	assert.Empty(t, out.Address)
	assert.Empty(t, out.Phone)
	assert.Empty(t, out.Email)
}

func TestValidateStore_NombreVacioFalla(t *testing.T) {
	_, errs := form.ValidateStore(form.StoreInput{Name: "   "})
	require.NotNil(t, errs)
	assert.True(t, errs.Has("name"))
}

func TestValidateStore_EmailInvalido(t *testing.T) {
	_, errs := form.ValidateStore(form.StoreInput{Name: "Depósito", Email: "no-es-email"})
	require.NotNil(t, errs)
	assert.True(t, errs.Has("email"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Historial
// ──────────────────────────────────────────────────────────────────────────────

func validHistoryInput() form.HistoryInput {
	return form.HistoryInput{
		ProductID:   productUUID,
		Title:       "Cambio de empaque",
		Description: "Se actualizó la etiqueta frontal de la botella.",
	}
}

func TestValidateHistory_EntradaValida(t *testing.T) {
	out, errs := form.ValidateHistory(validHistoryInput())
	require.Nil(t, errs)
	assert.Equal(t, "Cambio de empaque", out.Title)
	assert.Empty(t, out.UpdatedBy)
}

func TestValidateHistory_UpdatedByOpcional(t *testing.T) {
	in := validHistoryInput()
	in.UpdatedBy = "admin@brand.com"
	out, errs := form.ValidateHistory(in)
	require.Nil(t, errs)
	assert.Equal(t, "admin@brand.com", out.UpdatedBy)

	in.UpdatedBy = "no es email"
	_, errs = form.ValidateHistory(in)
	require.NotNil(t, errs)
	assert.True(t, errs.Has("updated_by"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Venta
// ──────────────────────────────────────────────────────────────────────────────

func validSaleInput() form.SaleInput {
	return form.SaleInput{
		StoreID:   "store-1",
		Quantity:  "100",
		CostPrice: "2500.50",
	}
}

func TestValidateSale_EntradaValida(t *testing.T) {
	out, errs := form.ValidateSale(validSaleInput())
	require.Nil(t, errs)
	assert.Equal(t, 100, out.Quantity)
	assert.Equal(t, "2500.5", out.CostPrice.String())
	assert.Empty(t, out.PredecessorStoreID, "la predecesora es opcional")
}

func TestValidateSale_CantidadYPrecio(t *testing.T) {
	cases := []struct {
		name      string
		quantity  string
		costPrice string
		badField  string
	}{
		{"cantidad cero", "0", "10.00", "quantity"},
		{"cantidad vacía", "", "10.00", "quantity"},
		{"precio cero", "5", "0", "cost_price"},
		{"precio negativo", "5", "-1.50", "cost_price"},
		{"precio no numérico", "5", "caro", "cost_price"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validSaleInput()
			in.Quantity = tc.quantity
			in.CostPrice = tc.costPrice
			_, errs := form.ValidateSale(in)
			require.NotNil(t, errs)
			assert.True(t, errs.Has(tc.badField))
		})
	}
}

func TestValidateSale_TiendaObligatoria(t *testing.T) {
	in := validSaleInput()
	in.StoreID = ""
	_, errs := form.ValidateSale(in)
	require.NotNil(t, errs)
	assert.True(t, errs.Has("store_id"))
}

// FieldErrors implementa error con mensajes en orden estable.
func TestFieldErrors_MensajeEstable(t *testing.T) {
	fe := form.FieldErrors{"b": "dos", "a": "uno"}
	assert.Equal(t, "a: uno; b: dos", fe.Error())
}
