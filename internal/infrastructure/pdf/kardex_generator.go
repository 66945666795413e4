// Package pdf implementa la generación del kardex (libro de movimientos por
// artículo) como documento PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Kardex + SKU + Nombre del artículo                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Origen | Destino | Cant | Saldo      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: total de asientos + fecha de generación               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
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

	"github.com/souhailwaf/wareho/internal/application/reports"
	"github.com/souhailwaf/wareho/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 30, Green: 60, Blue: 90}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoKardexGenerator implementa reports.KardexPDFGenerator usando Maroto v2.
type MarotoKardexGenerator struct{}

// NewMarotoKardexGenerator construye el generador.
func NewMarotoKardexGenerator() *MarotoKardexGenerator { return &MarotoKardexGenerator{} }

// GenerateKardexPDF genera el PDF del kardex y devuelve sus bytes.
func (g *MarotoKardexGenerator) GenerateKardexPDF(_ context.Context, item *entity.Item, rows []reports.KardexRow) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Kardex "+item.SKU, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(item))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(detailRow(r))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(len(rows)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar kardex PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(item *entity.Item) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("Kardex de inventario", props.Text{Size: 14, Style: fontstyle.Bold, Color: colorPrimary}),
			text.New(item.Name, props.Text{Size: 10, Top: 6, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("SKU: "+item.SKU, props.Text{Size: 10, Align: align.Right, Style: fontstyle.Bold}),
			text.New("UM: "+item.UnitMeasure, props.Text{Size: 9, Top: 5, Align: align.Right, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Size: 8, Style: fontstyle.Bold, Color: colorPrimary}
	return row.New(6).Add(
		col.New(2).Add(text.New("Fecha", header)),
		col.New(2).Add(text.New("Tipo", header)),
		col.New(2).Add(text.New("Origen", header)),
		col.New(2).Add(text.New("Destino", header)),
		col.New(2).Add(text.New("Cantidad", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right, Color: colorPrimary})),
		col.New(2).Add(text.New("Saldo", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right, Color: colorPrimary})),
	)
}

func detailRow(r reports.KardexRow) core.Row {
	mv := r.Movement
	cell := props.Text{Size: 8}
	num := props.Text{Size: 8, Align: align.Right}
	return row.New(5).Add(
		col.New(2).Add(text.New(mv.Date.Format("2006-01-02 15:04"), cell)),
		col.New(2).Add(text.New(mv.Type, cell)),
		col.New(2).Add(text.New(shortID(mv.FromLocationID), cell)),
		col.New(2).Add(text.New(shortID(mv.ToLocationID), cell)),
		col.New(2).Add(text.New(mv.Quantity.String(), num)),
		col.New(2).Add(text.New(r.Balance.String(), num)),
	)
}

func footerRow(total int) core.Row {
	return row.New(6).Add(
		col.New(12).Add(
			text.New(
				fmt.Sprintf("%d asientos / generado %s", total, time.Now().Format("2006-01-02 15:04")),
				props.Text{Size: 7, Color: colorGray},
			),
		),
	)
}

// shortID recorta un UUID a sus primeros 8 caracteres para la tabla.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	if id == "" {
		return "-"
	}
	return id
}
