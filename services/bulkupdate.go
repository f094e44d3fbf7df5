package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"comercial/pricing"
)

// BulkUpdateForm is the raw form state of a bulk update submission. The
// percentage stays a string until validation so an empty field can be told
// apart from zero.
type BulkUpdateForm struct {
	Criterion     Criterion `json:"criterio"`
	SelectionID   string    `json:"seleccionId"`
	IncludeClient bool      `json:"incluirCliente"`
	ClientID      string    `json:"clienteId"`
	FechaInicio   string    `json:"fechaInicio"`
	FechaFin      string    `json:"fechaFin"`
	Porcentaje    string    `json:"porcentaje"`
	Usuario       string    `json:"usuario"`
}

// FailureReason tags why a submission did not update anything.
type FailureReason string

const (
	FailureMissingSelection   FailureReason = "missing_selection"
	FailureMissingClientScope FailureReason = "missing_client_scope"
	FailureMissingPercentage  FailureReason = "missing_percentage"
	FailureRemote             FailureReason = "remote"
)

// SubmissionResult is the outcome shown to the operator. Message is the
// server text verbatim on success; on failure it is the validation text or
// the server's error detail.
type SubmissionResult struct {
	Success bool          `json:"exito"`
	Reason  FailureReason `json:"motivo,omitempty"`
	Message string        `json:"mensaje"`
}

const (
	msgMissingSelection   = "Debe seleccionar un elemento."
	msgMissingClientScope = "Debe seleccionar un cliente si se incluye."
	msgMissingPercentage  = "El porcentaje no puede estar vacío."
	msgInvalidPercentage  = "El porcentaje debe ser un número."
	msgRemoteFallback     = "Ocurrió un error al actualizar las tarifas"
)

// BuildRequest assembles the wire payload from the form. Pure assembly: the
// only transformation is the percentage string becoming a number, with no
// range check (negative and >100 values are forwarded as-is). Dates pass
// through as YYYY-MM-DD or empty.
func (f BulkUpdateForm) BuildRequest() (pricing.BulkUpdateRequest, error) {
	pct, err := strconv.ParseFloat(strings.TrimSpace(f.Porcentaje), 64)
	if err != nil {
		return pricing.BulkUpdateRequest{}, fmt.Errorf("porcentaje %q: %w", f.Porcentaje, err)
	}
	return pricing.BulkUpdateRequest{
		Criterio:       string(f.Criterion),
		SeleccionID:    f.SelectionID,
		IncluirCliente: f.IncludeClient,
		ClienteID:      f.ClientID,
		FechaInicio:    f.FechaInicio,
		FechaFin:       f.FechaFin,
		Porcentaje:     pct,
		Usuario:        f.Usuario,
	}, nil
}

func failure(reason FailureReason, message string) SubmissionResult {
	return SubmissionResult{Reason: reason, Message: message}
}

// SubmitBulkUpdate validates the form, sends exactly one update request and
// maps the answer into a SubmissionResult. Validation short-circuits in
// order: selection, client scope, percentage. No retry and no dedup happen
// here; guarding against duplicate submissions is the caller's concern.
func SubmitBulkUpdate(ctx context.Context, api pricing.API, form BulkUpdateForm, idempotencyKey string) SubmissionResult {
	if strings.TrimSpace(form.SelectionID) == "" {
		return failure(FailureMissingSelection, msgMissingSelection)
	}
	if form.IncludeClient && strings.TrimSpace(form.ClientID) == "" {
		return failure(FailureMissingClientScope, msgMissingClientScope)
	}
	if strings.TrimSpace(form.Porcentaje) == "" {
		return failure(FailureMissingPercentage, msgMissingPercentage)
	}

	req, err := form.BuildRequest()
	if err != nil {
		return failure(FailureMissingPercentage, msgInvalidPercentage)
	}

	message, err := api.BulkUpdate(ctx, req, idempotencyKey)
	if err != nil {
		log.Printf("bulk_update: submission failed: %v", err)
		var remote *pricing.RemoteError
		if errors.As(err, &remote) && remote.Detail != "" {
			return failure(FailureRemote, remote.Detail)
		}
		return failure(FailureRemote, msgRemoteFallback)
	}

	return SubmissionResult{Success: true, Message: message}
}
