package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"comercial/pricing"
	"comercial/services"
)

// HandleReferenceData refreshes and returns the selection lists. The loader
// tags each refresh with a generation, so a slow fetch racing a newer one
// can never hand back stale lists. Categories are small and fetched inline.
func HandleReferenceData(loader *services.Loader, api pricing.API) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		ref := loader.Refresh(e.Request.Context())

		categorias, err := api.Categories(e.Request.Context())
		if err != nil {
			log.Printf("reference_data: categorias load failed: %v", err)
			categorias = nil
		}

		return e.JSON(http.StatusOK, map[string]any{
			"clientes":   ref.Clientes,
			"items":      ref.Items,
			"unidades":   ref.Unidades,
			"categorias": categorias,
		})
	}
}

// HandleCriterionOptions projects the cached reference lists into the
// selectable options for a bulk update criterion.
func HandleCriterionOptions(loader *services.Loader) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		crit := services.Criterion(e.Request.URL.Query().Get("criterio"))
		if crit == "" {
			crit = services.DefaultCriterion
		}
		if !crit.Valid() {
			return badRequest(e, "Criterio inválido.")
		}

		opts := services.CriterionOptions(loader.Snapshot(), crit)
		if opts == nil {
			opts = []services.Option{}
		}
		return e.JSON(http.StatusOK, opts)
	}
}
