package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"comercial/pricing"
	"comercial/services"
)

// exportTitle builds the report title. When the listing is filtered to one
// client the title carries the client's name, resolved from the cached
// reference lists.
func exportTitle(loader *services.Loader, f pricing.TariffFilter) string {
	if f.Cliente == "" {
		return "Tarifario General"
	}
	id, err := strconv.Atoi(f.Cliente)
	if err != nil {
		return "Tarifario"
	}
	for _, c := range loader.Snapshot().Clientes {
		if c.ID == id {
			return "Tarifario " + c.Nombre
		}
	}
	return "Tarifario"
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// HandleTariffExportExcel generates and downloads the tariff listing as an
// Excel workbook, honoring the same filters as the listing endpoint.
func HandleTariffExportExcel(api pricing.API, loader *services.Loader) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		f := tariffFilterFromQuery(e)
		tarifas, err := api.Tariffs(e.Request.Context(), f)
		if err != nil {
			return remoteFail(e, "export_excel", err)
		}

		data := services.BuildTariffExportData(exportTitle(loader, f), time.Now(), tarifas)
		xlsxBytes, err := services.GenerateExcel(data)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "No se pudo generar el archivo Excel")
		}

		filename := fmt.Sprintf("%s_%s.xlsx", sanitizeFilename(data.Title), time.Now().Format("2006-01-02"))

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleTariffExportPDF generates and downloads the tariff listing as a PDF.
func HandleTariffExportPDF(api pricing.API, loader *services.Loader) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		f := tariffFilterFromQuery(e)
		tarifas, err := api.Tariffs(e.Request.Context(), f)
		if err != nil {
			return remoteFail(e, "export_pdf", err)
		}

		data := services.BuildTariffExportData(exportTitle(loader, f), time.Now(), tarifas)
		pdfBytes, err := services.GeneratePDF(data)
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "No se pudo generar el archivo PDF")
		}

		filename := fmt.Sprintf("%s_%s.pdf", sanitizeFilename(data.Title), time.Now().Format("2006-01-02"))

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleClientTariffs returns one client's full tariff sheet.
func HandleClientTariffs(api pricing.API) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		clienteID, err := strconv.Atoi(e.Request.URL.Query().Get("cliente_id"))
		if err != nil {
			return badRequest(e, "Debe indicar un cliente_id válido.")
		}

		list, err := api.ClientTariffs(e.Request.Context(), clienteID)
		if err != nil {
			return remoteFail(e, "client_tariffs", err)
		}
		if list == nil {
			list = []pricing.ClientTariff{}
		}
		return e.JSON(http.StatusOK, map[string]any{"tarifas": list})
	}
}
