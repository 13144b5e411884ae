// Package qr genera el código QR que la página de detalle incrusta como
// imagen: codifica la URL pública de la propia página para el enlace
// físico en la etiqueta de la botella.
package qr

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	bqr "github.com/boombuler/barcode/qr"
)

// DefaultSize lado en píxeles del PNG cuando el llamador no indica uno.
const DefaultSize = 240

// EncodePNG codifica content como QR (corrección de errores media) y lo
// escala a un PNG cuadrado de size píxeles.
func EncodePNG(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, fmt.Errorf("qr: contenido vacío")
	}
	if size <= 0 {
		size = DefaultSize
	}
	code, err := bqr.Encode(content, bqr.M, bqr.Auto)
	if err != nil {
		return nil, fmt.Errorf("qr: codificar contenido: %w", err)
	}
	scaled, err := barcode.Scale(code, size, size)
	if err != nil {
		return nil, fmt.Errorf("qr: escalar a %dpx: %w", size, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("qr: serializar png: %w", err)
	}
	return buf.Bytes(), nil
}
