// Package pdf genera la versión imprimible de la lista de compras: los ítems
// en estado COMPRAS con la cantidad sugerida de pedido, para repartir en papel
// al responsable de compras.
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

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

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/reports"
)

var _ reports.PurchaseNeedsPDFGenerator = (*MarotoPurchaseNeedsGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPurchaseNeedsGenerator implementa reports.PurchaseNeedsPDFGenerator
// usando Maroto v2.
type MarotoPurchaseNeedsGenerator struct{}

// NewMarotoPurchaseNeedsGenerator construye el generador.
func NewMarotoPurchaseNeedsGenerator() *MarotoPurchaseNeedsGenerator {
	return &MarotoPurchaseNeedsGenerator{}
}

// GeneratePurchaseNeedsPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPurchaseNeedsGenerator) GeneratePurchaseNeedsPDF(
	_ context.Context,
	rows []dto.PurchaseNeedDTO,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Lista de compras", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt, len(rows)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(rows) {
		m.AddRows(r)
	}
	if len(rows) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("No hay ítems pendientes de compra.", props.Text{
				Size: 9, Align: align.Center, Top: 3, Color: colorGray,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título + fecha de generación y total de ítems.
func headerRow(generatedAt time.Time, total int) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("LISTA DE COMPRAS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Ítems por debajo del umbral mínimo", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Fecha: "+generatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Ítems: %d", total), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de ítems.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Ítem", 5, align.Left),
		h("Unidad", 2, align.Center),
		h("Stock", 1, align.Right),
		h("Mínimo", 2, align.Right),
		h("A pedir", 2, align.Right),
	)
}

// tableRows: una fila por ítem pendiente de compra.
func tableRows(rows []dto.PurchaseNeedDTO) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, p := range rows {
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(p.MeasurementUnit, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(strconv.Itoa(p.CurrentQuantity), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(strconv.Itoa(p.MinThreshold), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(strconv.Itoa(p.NeededQuantity), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1,
			})),
		))
	}
	return result
}
