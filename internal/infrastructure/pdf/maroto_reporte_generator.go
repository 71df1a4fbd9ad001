// Package pdf implementa la generación del reporte de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de corte              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: totales por estado de caducidad                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Stock | Precio | Caducidad | Días | Edo. │
//	│  (una sección por grupo: caducados, por caducar, vigentes)  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/jhoicas/fruteria-api/internal/application/dto"
	"github.com/jhoicas/fruteria-api/internal/application/reportes"
	"github.com/jhoicas/fruteria-api/pkg/fechas"
	"github.com/jhoicas/fruteria-api/pkg/formato"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 27, Green: 94, Blue: 32}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlerta  = &props.Color{Red: 183, Green: 28, Blue: 28}
	colorAviso   = &props.Color{Red: 230, Green: 126, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReporteGenerator implementa reportes.InventarioPDFGenerator usando
// Maroto v2.
type MarotoReporteGenerator struct{}

// NewMarotoReporteGenerator construye el generador.
func NewMarotoReporteGenerator() *MarotoReporteGenerator { return &MarotoReporteGenerator{} }

var _ reportes.InventarioPDFGenerator = (*MarotoReporteGenerator)(nil)

// GenerarInventarioPDF genera el PDF del inventario y devuelve sus bytes.
func (g *MarotoReporteGenerator) GenerarInventarioPDF(
	_ context.Context,
	hoy fechas.Fecha,
	caducidad *dto.CaducidadResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(hoy))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(resumenRow(caducidad))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	secciones := []struct {
		titulo string
		color  *props.Color
		items  []dto.CaducidadItemDTO
	}{
		{"PRODUCTOS CADUCADOS", colorAlerta, caducidad.Caducados},
		{"PRODUCTOS POR CADUCAR", colorAviso, caducidad.PorCaducar},
		{"PRODUCTOS VIGENTES", colorPrimary, caducidad.Vigentes},
	}
	for _, s := range secciones {
		if len(s.items) == 0 {
			continue
		}
		m.AddRows(seccionTituloRow(s.titulo, s.color))
		m.AddRows(tablaHeaderRow())
		for _, r := range tablaItemRows(s.items) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(2))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte (izq) y fecha de corte (der).
func headerRow(hoy fechas.Fecha) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Frutería: control de stock y caducidad", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Fecha de corte", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorGray, Top: 2,
			}),
			text.New(hoy.Formatear(), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
		),
	)
}

// resumenRow: conteo de productos por estado.
func resumenRow(caducidad *dto.CaducidadResponse) core.Row {
	cuenta := func(label string, n int, color *props.Color) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(fmt.Sprintf("%d", n), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: color, Top: 6,
			}),
		)
	}
	return row.New(14).Add(
		cuenta("Vigentes", len(caducidad.Vigentes), colorPrimary),
		cuenta("Por caducar", len(caducidad.PorCaducar), colorAviso),
		cuenta("Caducados", len(caducidad.Caducados), colorAlerta),
	)
}

// seccionTituloRow: título de cada grupo de caducidad.
func seccionTituloRow(titulo string, color *props.Color) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(titulo, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: color, Top: 2,
		}),
	))
}

// tablaHeaderRow: cabecera de la tabla de productos.
func tablaHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorGray, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Producto", 4, align.Left),
		h("Stock", 2, align.Right),
		h("Precio", 2, align.Right),
		h("Caducidad", 2, align.Center),
		h("Días", 1, align.Center),
		h("Prov.", 1, align.Left),
	)
}

// tablaItemRows: una fila por producto.
func tablaItemRows(items []dto.CaducidadItemDTO) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		p := it.Producto
		result = append(result, row.New(6).Add(
			col.New(4).Add(text.New(
				fmt.Sprintf("%s (%s)", p.Nombre, p.Categoria),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				formato.Cantidad(p.Stock, p.Unidad),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				formato.Moneda(p.Precio),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				p.FechaCaducidad.Formatear(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.DiasRestantes),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				p.Proveedor,
				props.Text{Size: 7, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}
