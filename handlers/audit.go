package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// auditEntry is one bulk update submission as shown in the audit screen.
type auditEntry struct {
	ID             string  `json:"id"`
	Usuario        string  `json:"usuario"`
	Criterio       string  `json:"criterio"`
	SeleccionID    string  `json:"seleccionId"`
	IncluirCliente bool    `json:"incluirCliente"`
	ClienteID      string  `json:"clienteId"`
	FechaInicio    string  `json:"fechaInicio"`
	FechaFin       string  `json:"fechaFin"`
	Porcentaje     float64 `json:"porcentaje"`
	Exito          bool    `json:"exito"`
	Mensaje        string  `json:"mensaje"`
	Created        string  `json:"created"`
}

// HandleAuditList returns the most recent bulk update submissions, newest
// first.
func HandleAuditList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		col, err := app.FindCollectionByNameOrId("bulk_update_audit")
		if err != nil {
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "No se pudo consultar la auditoría."})
		}

		records, err := app.FindRecordsByFilter(col, "id != ''", "-created", 200, 0, nil)
		if err != nil {
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "No se pudo consultar la auditoría."})
		}

		entries := make([]auditEntry, 0, len(records))
		for _, r := range records {
			entries = append(entries, auditEntry{
				ID:             r.Id,
				Usuario:        r.GetString("usuario"),
				Criterio:       r.GetString("criterio"),
				SeleccionID:    r.GetString("seleccion_id"),
				IncluirCliente: r.GetBool("incluir_cliente"),
				ClienteID:      r.GetString("cliente_id"),
				FechaInicio:    r.GetString("fecha_inicio"),
				FechaFin:       r.GetString("fecha_fin"),
				Porcentaje:     r.GetFloat("porcentaje"),
				Exito:          r.GetBool("exito"),
				Mensaje:        r.GetString("mensaje"),
				Created:        r.GetString("created"),
			})
		}
		return e.JSON(http.StatusOK, entries)
	}
}
