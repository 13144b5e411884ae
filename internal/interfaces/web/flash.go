package web

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Flash notificación de un solo uso (el equivalente del toast): sobrevive
// exactamente a la redirección post-envío y se descarta al mostrarse.
type Flash struct {
	Kind    string // success | error
	Message string
}

const flashCookie = "dt_flash"

// flashRecorder implementa usecase.Notifier capturando la notificación de
// la petición en curso. El handler decide luego si la persiste como cookie
// (redirección) o la muestra inline (re-render del formulario).
type flashRecorder struct {
	flash *Flash
}

func (r *flashRecorder) Success(message string) {
	r.flash = &Flash{Kind: "success", Message: message}
}

func (r *flashRecorder) Failure(message string) {
	r.flash = &Flash{Kind: "error", Message: message}
}

// setFlash persiste la notificación para la siguiente petición.
func setFlash(c *fiber.Ctx, f *Flash) {
	if f == nil {
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    f.Kind + "|" + url.QueryEscape(f.Message),
		Path:     "/",
		HTTPOnly: true,
		Expires:  time.Now().Add(time.Minute),
	})
}

// popFlash lee y descarta la notificación pendiente, si la hay.
func popFlash(c *fiber.Ctx) *Flash {
	raw := c.Cookies(flashCookie)
	if raw == "" {
		return nil
	}
	c.Cookie(&fiber.Cookie{
		Name:    flashCookie,
		Value:   "",
		Path:    "/",
		Expires: time.Now().Add(-time.Hour),
	})
	kind, encoded, ok := strings.Cut(raw, "|")
	if !ok {
		return nil
	}
	message, err := url.QueryUnescape(encoded)
	if err != nil {
		return nil
	}
	return &Flash{Kind: kind, Message: message}
}
