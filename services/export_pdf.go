package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GeneratePDF creates a tariff report document using maroto/v2. It returns
// the raw PDF bytes or an error.
func GeneratePDF(data TariffExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addReportHeader(m, data)
	addTariffTableHeader(m)
	for _, r := range data.Rows {
		addTariffRow(m, r)
	}
	addReportSummary(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addReportHeader adds the title and generation date.
func addReportHeader(m core.Maroto, data TariffExportData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Fecha: %s", data.GeneratedDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// addTariffTableHeader adds the column header row.
func addTariffTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 31, Green: 56, Blue: 100}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(2).Add(
				text.New("Cliente", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Categoría", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Item", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Unidad", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Precio", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Mínimo", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Incr. %", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Desde", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Hasta", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Estado", headerText),
			).WithStyle(&headerCell),
		),
	)
}

// addTariffRow adds a single tariff line, tinting expired rows.
func addTariffRow(m core.Maroto, r TariffExportRow) {
	cellText := props.Text{
		Size:  7,
		Align: align.Center,
	}
	cellTextLeft := cellText
	cellTextLeft.Align = align.Left

	var rowStyle *props.Cell
	if r.Estado == ExpiryVencida {
		rowStyle = &props.Cell{BackgroundColor: &props.Color{Red: 255, Green: 199, Blue: 206}}
	}

	cols := []core.Col{
		col.New(2).Add(text.New(r.Cliente, cellTextLeft)),
		col.New(1).Add(text.New(r.Categoria, cellText)),
		col.New(2).Add(text.New(r.Item, cellTextLeft)),
		col.New(1).Add(text.New(r.Unidad, cellText)),
		col.New(1).Add(text.New(FormatARS(r.Precio), cellText)),
		col.New(1).Add(text.New(FormatARS(r.Minimo), cellText)),
		col.New(1).Add(text.New(fmt.Sprintf("%.2f", r.Incremento), cellText)),
		col.New(1).Add(text.New(r.VigenciaInicio, cellText)),
		col.New(1).Add(text.New(r.VigenciaFinal, cellText)),
		col.New(1).Add(text.New(estadoLabel(r.Estado), cellText)),
	}
	if rowStyle != nil {
		for i := range cols {
			cols[i] = cols[i].WithStyle(rowStyle)
		}
	}

	m.AddRows(row.New(6).Add(cols...))
}

// addReportSummary adds the status counts below the table.
func addReportSummary(m core.Maroto, data TariffExportData) {
	m.AddRows(row.New(4))

	labelText := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueText := props.Text{
		Size:  9,
		Align: align.Left,
	}

	summaries := []struct {
		label string
		value int
	}{
		{"Total tarifas:", data.Total},
		{"Vigentes:", data.Vigentes},
		{"Por vencer:", data.PorVencer},
		{"Vencidas:", data.Vencidas},
	}
	for _, s := range summaries {
		m.AddRows(
			row.New(5).Add(
				col.New(10).Add(text.New(s.label, labelText)),
				col.New(2).Add(text.New(fmt.Sprintf(" %d", s.value), valueText)),
			),
		)
	}
}
