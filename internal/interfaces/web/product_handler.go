package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/drinktrace-web/internal/application/form"
	"github.com/jhoicas/drinktrace-web/internal/application/usecase"
	"github.com/jhoicas/drinktrace-web/internal/domain"
	"github.com/jhoicas/drinktrace-web/internal/infrastructure/pdf"
	"github.com/jhoicas/drinktrace-web/internal/infrastructure/qr"
)

// mensaje genérico para fallos de lectura; el detalle queda en el log.
const readFailureMessage = "No se pudieron cargar los datos. Intente de nuevo más tarde."

// ProductHandler páginas de producto: listado, creación, detalle público,
// historial, ventas, QR y etiqueta imprimible.
type ProductHandler struct {
	products *usecase.ProductUseCase
	brands   *usecase.BrandUseCase
	stores   *usecase.StoreUseCase
	labels   *pdf.LabelGenerator
	// publicBaseURL raíz pública de esta aplicación; con ella se compone
	// la URL que codifican el QR y la etiqueta.
	publicBaseURL string
}

// NewProductHandler construye el handler.
func NewProductHandler(products *usecase.ProductUseCase, brands *usecase.BrandUseCase, stores *usecase.StoreUseCase, labels *pdf.LabelGenerator, publicBaseURL string) *ProductHandler {
	return &ProductHandler{
		products:      products,
		brands:        brands,
		stores:        stores,
		labels:        labels,
		publicBaseURL: publicBaseURL,
	}
}

// pageURL URL pública de la página de detalle de un producto.
func (h *ProductHandler) pageURL(productID string) string {
	return h.publicBaseURL + "/products/" + productID
}

func renderError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).Render("error", fiber.Map{
		"Title":   "Error",
		"Message": message,
	})
}

// List GET / y GET /products — listado completo, sin paginación ni filtros.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.products.List(c.UserContext())
	if err != nil {
		return renderError(c, fiber.StatusBadGateway, readFailureMessage)
	}
	return c.Render("products_index", fiber.Map{
		"Title":    "Productos",
		"Flash":    popFlash(c),
		"Products": products,
	})
}

// NewForm GET /products/new — formulario con el select de marcas poblado.
func (h *ProductHandler) NewForm(c *fiber.Ctx) error {
	brands, err := h.brands.List(c.UserContext())
	if err != nil {
		return renderError(c, fiber.StatusBadGateway, readFailureMessage)
	}
	return c.Render("product_new", fiber.Map{
		"Title":  "Crear producto",
		"Flash":  popFlash(c),
		"Brands": brands,
		"Values": form.ProductInput{},
		"Errors": form.FieldErrors{},
		"Token":  uuid.NewString(),
	})
}

// Create POST /products/new.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	token := c.FormValue("form_token")
	in := form.ProductInput{
		BrandID:        c.FormValue("brand_id"),
		Name:           c.FormValue("name"),
		Description:    c.FormValue("description"),
		VolumeMl:       c.FormValue("volume_ml"),
		ProductionDate: c.FormValue("production_date"),
		ExpirationDate: c.FormValue("expiration_date"),
	}

	rec := &flashRecorder{}
	_, fieldErrs, err := h.products.Create(c.UserContext(), token, in, rec)

	rerender := func(status int, flash *Flash) error {
		brands, brandsErr := h.brands.List(c.UserContext())
		if brandsErr != nil {
			return renderError(c, fiber.StatusBadGateway, readFailureMessage)
		}
		return c.Status(status).Render("product_new", fiber.Map{
			"Title":  "Crear producto",
			"Flash":  flash,
			"Brands": brands,
			"Values": in,
			"Errors": fieldErrs,
			"Token":  token,
		})
	}
	switch {
	case fieldErrs != nil:
		return rerender(fiber.StatusUnprocessableEntity, nil)
	case errors.Is(err, domain.ErrSubmissionInFlight):
		return rerender(fiber.StatusConflict, &Flash{Kind: "error", Message: "Ya hay un envío en curso para este formulario"})
	case err != nil:
		return rerender(fiber.StatusBadGateway, rec.flash)
	}

	setFlash(c, rec.flash)
	return c.Redirect("/products/new", fiber.StatusSeeOther)
}

// Detail GET /products/:productId — vista pública agregada con QR.
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	productID := c.Params("productId")
	view, err := h.products.View(c.UserContext(), productID)
	switch {
	case errors.Is(err, domain.ErrMissingParam):
		return renderError(c, fiber.StatusBadRequest, "Falta el identificador del producto")
	case err != nil:
		return renderError(c, fiber.StatusBadGateway, readFailureMessage)
	}
	return c.Render("product_detail", fiber.Map{
		"Title":   view.Name,
		"Flash":   popFlash(c),
		"View":    view,
		"PageURL": h.pageURL(productID),
		"QRPath":  "/products/" + productID + "/qrcode.png",
	})
}

// HistoryForm GET /products/:productId/history — formulario de historial
// con el product_id precargado e inmutable.
func (h *ProductHandler) HistoryForm(c *fiber.Ctx) error {
	productID := c.Params("productId")
	if productID == "" {
		return renderError(c, fiber.StatusBadRequest, "Falta el identificador del producto")
	}
	return c.Render("history_new", fiber.Map{
		"Title":     "Agregar historial",
		"Flash":     popFlash(c),
		"ProductID": productID,
		"Values":    form.HistoryInput{},
		"Errors":    form.FieldErrors{},
		"Token":     uuid.NewString(),
	})
}

// AddHistory POST /products/:productId/history. Al reiniciar, el
// product_id se conserva (viene de la ruta, no del usuario).
func (h *ProductHandler) AddHistory(c *fiber.Ctx) error {
	productID := c.Params("productId")
	token := c.FormValue("form_token")
	in := form.HistoryInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		UpdatedBy:   c.FormValue("updated_by"),
	}

	rec := &flashRecorder{}
	_, fieldErrs, err := h.products.AddHistory(c.UserContext(), token, productID, in, rec)

	rerender := func(status int, flash *Flash) error {
		return c.Status(status).Render("history_new", fiber.Map{
			"Title":     "Agregar historial",
			"Flash":     flash,
			"ProductID": productID,
			"Values":    in,
			"Errors":    fieldErrs,
			"Token":     token,
		})
	}
	switch {
	case fieldErrs != nil:
		return rerender(fiber.StatusUnprocessableEntity, nil)
	case errors.Is(err, domain.ErrSubmissionInFlight):
		return rerender(fiber.StatusConflict, &Flash{Kind: "error", Message: "Ya hay un envío en curso para este formulario"})
	case err != nil:
		return rerender(fiber.StatusBadGateway, rec.flash)
	}

	setFlash(c, rec.flash)
	return c.Redirect("/products/"+productID+"/history", fiber.StatusSeeOther)
}

// SaleForm GET /products/:productId/sales — formulario de venta con los
// selects de tienda y predecesora poblados.
func (h *ProductHandler) SaleForm(c *fiber.Ctx) error {
	productID := c.Params("productId")
	if productID == "" {
		return renderError(c, fiber.StatusBadRequest, "Falta el identificador del producto")
	}
	stores, err := h.stores.List(c.UserContext())
	if err != nil {
		return renderError(c, fiber.StatusBadGateway, readFailureMessage)
	}
	return c.Render("sale_new", fiber.Map{
		"Title":     "Registrar venta",
		"Flash":     popFlash(c),
		"ProductID": productID,
		"Stores":    stores,
		"Values":    form.SaleInput{},
		"Errors":    form.FieldErrors{},
		"Token":     uuid.NewString(),
	})
}

// RecordSale POST /products/:productId/sales.
func (h *ProductHandler) RecordSale(c *fiber.Ctx) error {
	productID := c.Params("productId")
	token := c.FormValue("form_token")
	in := form.SaleInput{
		StoreID:            c.FormValue("store_id"),
		PredecessorStoreID: c.FormValue("predecessor_store_id"),
		Quantity:           c.FormValue("quantity"),
		CostPrice:          c.FormValue("cost_price"),
	}

	rec := &flashRecorder{}
	_, fieldErrs, err := h.products.RecordSale(c.UserContext(), token, productID, in, rec)

	rerender := func(status int, flash *Flash) error {
		stores, storesErr := h.stores.List(c.UserContext())
		if storesErr != nil {
			return renderError(c, fiber.StatusBadGateway, readFailureMessage)
		}
		return c.Status(status).Render("sale_new", fiber.Map{
			"Title":     "Registrar venta",
			"Flash":     flash,
			"ProductID": productID,
			"Stores":    stores,
			"Values":    in,
			"Errors":    fieldErrs,
			"Token":     token,
		})
	}
	switch {
	case fieldErrs != nil:
		return rerender(fiber.StatusUnprocessableEntity, nil)
	case errors.Is(err, domain.ErrSubmissionInFlight):
		return rerender(fiber.StatusConflict, &Flash{Kind: "error", Message: "Ya hay un envío en curso para este formulario"})
	case err != nil:
		return rerender(fiber.StatusBadGateway, rec.flash)
	}

	setFlash(c, rec.flash)
	return c.Redirect("/products/"+productID+"/sales", fiber.StatusSeeOther)
}

// QRCode GET /products/:productId/qrcode.png — QR de la URL pública de la
// página de detalle, para incrustar en ella y en etiquetas.
func (h *ProductHandler) QRCode(c *fiber.Ctx) error {
	productID := c.Params("productId")
	data, err := qr.EncodePNG(h.pageURL(productID), qr.DefaultSize)
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(data)
}

// Label GET /products/:productId/label.pdf — etiqueta imprimible con QR.
func (h *ProductHandler) Label(c *fiber.Ctx) error {
	productID := c.Params("productId")
	product, err := h.products.Get(c.UserContext(), productID)
	if err != nil {
		return renderError(c, fiber.StatusBadGateway, readFailureMessage)
	}
	data, err := h.labels.GenerateProductLabel(product, h.pageURL(productID))
	if err != nil {
		return renderError(c, fiber.StatusInternalServerError, "No se pudo generar la etiqueta")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="etiqueta-`+productID+`.pdf"`)
	return c.Send(data)
}
