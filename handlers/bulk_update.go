package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"comercial/pricing"
	"comercial/services"
)

// HandleBulkUpdate runs a bulk percentage update. Each submission carries an
// idempotency key (client-provided via X-Idempotency-Key, otherwise
// generated): a key that was already processed replays the stored outcome
// instead of updating prices twice. Every processed submission, failed ones
// included, leaves a row in bulk_update_audit.
func HandleBulkUpdate(app *pocketbase.PocketBase, api pricing.API) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var form services.BulkUpdateForm
		if err := e.BindBody(&form); err != nil {
			return badRequest(e, "Cuerpo de la solicitud inválido.")
		}
		if !form.Criterion.Valid() {
			return badRequest(e, "Criterio inválido.")
		}

		// The acting user comes from the auth record, never from the body.
		form.Usuario = e.Auth.Email()

		key := strings.TrimSpace(e.Request.Header.Get("X-Idempotency-Key"))
		if key == "" {
			key = uuid.NewString()
		}

		auditCol, err := app.FindCollectionByNameOrId("bulk_update_audit")
		if err != nil {
			log.Printf("bulk_update: audit collection missing: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "Ocurrió un error al actualizar las tarifas"})
		}

		prior, err := app.FindRecordsByFilter(auditCol,
			"idempotency_key = {:key}", "-created", 1, 0,
			map[string]any{"key": key})
		if err == nil && len(prior) > 0 {
			r := prior[0]
			log.Printf("bulk_update: replaying stored outcome for key %s", key)
			return e.JSON(http.StatusOK, services.SubmissionResult{
				Success: r.GetBool("exito"),
				Message: r.GetString("mensaje"),
			})
		}

		result := services.SubmitBulkUpdate(e.Request.Context(), api, form, key)

		rec := core.NewRecord(auditCol)
		rec.Set("idempotency_key", key)
		rec.Set("usuario", form.Usuario)
		rec.Set("criterio", string(form.Criterion))
		rec.Set("seleccion_id", form.SelectionID)
		rec.Set("incluir_cliente", form.IncludeClient)
		rec.Set("cliente_id", form.ClientID)
		rec.Set("fecha_inicio", form.FechaInicio)
		rec.Set("fecha_fin", form.FechaFin)
		if pct, err := strconv.ParseFloat(strings.TrimSpace(form.Porcentaje), 64); err == nil {
			rec.Set("porcentaje", pct)
		}
		rec.Set("exito", result.Success)
		rec.Set("mensaje", result.Message)
		if err := app.Save(rec); err != nil {
			log.Printf("bulk_update: audit save failed: %v", err)
		}

		status := http.StatusOK
		if !result.Success {
			if result.Reason == services.FailureRemote {
				status = http.StatusBadGateway
			} else {
				status = http.StatusBadRequest
			}
		}
		return e.JSON(status, result)
	}
}
