// Package form implementa la validación declarativa de los formularios de
// creación. Cada validador es una función pura y síncrona: recibe los
// valores crudos del formulario (snake_case, tal como los envía el HTML) y
// devuelve o bien el DTO normalizado listo para el adaptador, o bien un
// mapa de errores por campo. Nunca ambos, nunca un panic.
package form

import (
	"net/mail"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FieldErrors errores de validación indexados por nombre de campo.
type FieldErrors map[string]string

// Error implementa error; concatena los mensajes en orden estable.
func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validación fallida"
	}
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+fe[f])
	}
	return strings.Join(parts, "; ")
}

// Has indica si el campo tiene error.
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// Formatos de fecha aceptados en los formularios: el input type=date envía
// YYYY-MM-DD; se tolera también RFC3339 completo.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

func validDate(s string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// validAbsoluteURL exige esquema y host; "ejemplo.com" a secas no pasa.
func validAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// validEmail exige una dirección simple, sin nombre para mostrar.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// validUUID valida solo el formato del identificador; la existencia del
// recurso referenciado la decide el API remoto.
func validUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
