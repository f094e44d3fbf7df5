package services

import (
	"time"

	"comercial/pricing"
)

// TariffExportRow is a single tariff line in a downloaded report.
type TariffExportRow struct {
	Cliente        string
	Categoria      string
	Item           string
	Unidad         string
	Precio         float64
	Minimo         float64
	Incremento     float64
	VigenciaInicio string
	VigenciaFinal  string
	Estado         ExpiryStatus
}

// TariffExportData holds everything a report file needs.
type TariffExportData struct {
	Title         string
	GeneratedDate string
	Rows          []TariffExportRow
	Total         int
	Vigentes      int
	PorVencer     int
	Vencidas      int
}

// BuildTariffExportData maps a tariff listing into export rows, annotating
// each with its expiry status and accumulating the status counts for the
// summary block.
func BuildTariffExportData(title string, now time.Time, tarifas []pricing.Tariff) TariffExportData {
	data := TariffExportData{
		Title:         title,
		GeneratedDate: now.Format("02/01/2006"),
		Total:         len(tarifas),
	}

	for _, t := range tarifas {
		estado := ClassifyExpiry(t.VigenciaFinal, now)
		switch estado {
		case ExpiryVigente:
			data.Vigentes++
		case ExpiryPorVencer:
			data.PorVencer++
		case ExpiryVencida:
			data.Vencidas++
		}

		data.Rows = append(data.Rows, TariffExportRow{
			Cliente:        t.Cliente,
			Categoria:      t.Categoria,
			Item:           t.Item,
			Unidad:         t.Unidad,
			Precio:         t.Precio,
			Minimo:         t.Minimo,
			Incremento:     t.Incremento,
			VigenciaInicio: FormatDisplayDate(t.VigenciaInicio),
			VigenciaFinal:  FormatDisplayDate(t.VigenciaFinal),
			Estado:         estado,
		})
	}

	return data
}

// estadoLabel is the display text for an expiry status.
func estadoLabel(s ExpiryStatus) string {
	switch s {
	case ExpiryVigente:
		return "Vigente"
	case ExpiryPorVencer:
		return "Por vencer"
	case ExpiryVencida:
		return "Vencida"
	}
	return "-"
}
