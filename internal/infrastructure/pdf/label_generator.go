// Package pdf genera la etiqueta imprimible de un producto: los datos de
// botella más el código QR que enlaza a la página pública de detalle.
//
// Layout de la etiqueta (media carta apaisada):
//
//	┌───────────────────────────────────────────────┐
//	│  NOMBRE DEL PRODUCTO            ┌─────────┐   │
//	│  Marca                          │   QR    │   │
//	│  ───────────────────────────    │         │   │
//	│  Volumen | Producción | Vence   └─────────┘   │
//	│  Escanee el código para ver la procedencia    │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/drinktrace-web/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 20, Green: 60, Blue: 120}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// LabelGenerator genera la etiqueta PDF de un producto usando Maroto v2.
type LabelGenerator struct{}

// NewLabelGenerator construye el generador.
func NewLabelGenerator() *LabelGenerator { return &LabelGenerator{} }

// GenerateProductLabel genera el PDF de la etiqueta. pageURL es la URL
// pública de la página de detalle, que el QR codifica para el escaneo
// desde la etiqueta física.
func (g *LabelGenerator) GenerateProductLabel(product *entity.Product, pageURL string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Etiqueta de producto", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(product, pageURL))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(datesRow(product))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiqueta: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre y marca (izq), QR de la página de detalle (der).
func headerRow(product *entity.Product, pageURL string) core.Row {
	return row.New(42).Add(
		col.New(8).Add(
			text.New(product.Name, props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 4,
			}),
			text.New(product.Brand.Name, props.Text{
				Size: 11, Top: 14, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Volumen: %d ml", product.VolumeMl), props.Text{
				Size: 10, Top: 24,
			}),
		),
		col.New(4).Add(
			code.NewQr(pageURL, props.Rect{
				Center:  true,
				Percent: 95,
			}),
		),
	)
}

// datesRow: fechas de producción y vencimiento.
func datesRow(product *entity.Product) core.Row {
	return row.New(14).Add(
		col.New(6).Add(
			text.New("Producción: "+nonEmpty(product.ProductionDate, "—"), props.Text{
				Size: 9, Top: 3, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("Vence: "+nonEmpty(product.ExpirationDate, "—"), props.Text{
				Size: 9, Top: 3, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

// footerRow: leyenda de escaneo.
func footerRow() core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("Escanee el código QR para consultar la procedencia y el historial del producto.", props.Text{
				Size: 8, Top: 2, Align: align.Center, Color: colorGray,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
