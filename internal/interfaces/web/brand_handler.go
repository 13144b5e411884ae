package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/drinktrace-web/internal/application/form"
	"github.com/jhoicas/drinktrace-web/internal/application/usecase"
	"github.com/jhoicas/drinktrace-web/internal/domain"
)

// BrandHandler páginas de marca: formulario de creación.
type BrandHandler struct {
	uc *usecase.BrandUseCase
}

// NewBrandHandler construye el handler.
func NewBrandHandler(uc *usecase.BrandUseCase) *BrandHandler {
	return &BrandHandler{uc: uc}
}

// NewForm GET /brands/new — formulario vacío.
func (h *BrandHandler) NewForm(c *fiber.Ctx) error {
	return c.Render("brand_new", fiber.Map{
		"Title":  "Crear marca",
		"Flash":  popFlash(c),
		"Values": form.BrandInput{},
		"Errors": form.FieldErrors{},
		"Token":  uuid.NewString(),
	})
}

// Create POST /brands/new — valida y envía. Con errores de campo se
// re-renderiza conservando los valores; el éxito redirige al formulario
// vacío (reset) con la notificación pendiente.
func (h *BrandHandler) Create(c *fiber.Ctx) error {
	token := c.FormValue("form_token")
	in := form.BrandInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Website:     c.FormValue("website"),
		LogoURL:     c.FormValue("logo_url"),
	}

	rec := &flashRecorder{}
	_, fieldErrs, err := h.uc.Create(c.UserContext(), token, in, rec)

	rerender := func(status int, flash *Flash) error {
		return c.Status(status).Render("brand_new", fiber.Map{
			"Title":  "Crear marca",
			"Flash":  flash,
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
	return c.Redirect("/brands/new", fiber.StatusSeeOther)
}
