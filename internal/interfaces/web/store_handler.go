package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/drinktrace-web/internal/application/form"
	"github.com/jhoicas/drinktrace-web/internal/application/usecase"
	"github.com/jhoicas/drinktrace-web/internal/domain"
)

// StoreHandler páginas de tienda: formulario de creación.
type StoreHandler struct {
	uc *usecase.StoreUseCase
}

// NewStoreHandler construye el handler.
func NewStoreHandler(uc *usecase.StoreUseCase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// NewForm GET /store/new — formulario vacío.
func (h *StoreHandler) NewForm(c *fiber.Ctx) error {
	return c.Render("store_new", fiber.Map{
		"Title":  "Crear tienda",
		"Flash":  popFlash(c),
		"Values": form.StoreInput{},
		"Errors": form.FieldErrors{},
		"Token":  uuid.NewString(),
	})
}

// Create POST /store/new.
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	token := c.FormValue("form_token")
	in := form.StoreInput{
		Name:    c.FormValue("name"),
		Address: c.FormValue("address"),
		Phone:   c.FormValue("phone"),
		Email:   c.FormValue("email"),
	}

	rec := &flashRecorder{}
	_, fieldErrs, err := h.uc.Create(c.UserContext(), token, in, rec)

	rerender := func(status int, flash *Flash) error {
		return c.Status(status).Render("store_new", fiber.Map{
			"Title":  "Crear tienda",
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
	return c.Redirect("/store/new", fiber.StatusSeeOther)
}
