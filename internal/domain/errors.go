package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrMissingParam       = errors.New("parámetro de ruta requerido")
	ErrUpstream           = errors.New("fallo del servicio remoto")
	ErrSubmissionInFlight = errors.New("envío ya en curso para este formulario")
)
