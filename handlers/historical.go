package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"comercial/pricing"
)

// HandleHistoricalTariffs returns the tariff movement history, optionally
// filtered by client, category, unit, item, validity window or movement
// date.
func HandleHistoricalTariffs(api pricing.API) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := e.Request.URL.Query()
		f := pricing.HistoryFilter{
			Cliente:         q.Get("cliente"),
			Categoria:       q.Get("categoria"),
			Unidad:          q.Get("unidad"),
			Item:            q.Get("item"),
			FechaInicio:     q.Get("fecha_inicio"),
			FechaFin:        q.Get("fecha_fin"),
			FechaMovimiento: q.Get("fecha_movimiento"),
		}

		list, err := api.HistoricalTariffs(e.Request.Context(), f)
		if err != nil {
			return remoteFail(e, "historical_tariffs", err)
		}
		if list == nil {
			list = []pricing.HistoricalTariff{}
		}
		return e.JSON(http.StatusOK, list)
	}
}
