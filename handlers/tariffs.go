package handlers

import (
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase/core"

	"comercial/pricing"
)

// tariffFilterFromQuery reads the listing filters off the query string.
// Names match the pricing API's own parameters so the UI can pass them
// through untouched.
func tariffFilterFromQuery(e *core.RequestEvent) pricing.TariffFilter {
	q := e.Request.URL.Query()
	return pricing.TariffFilter{
		Cliente:     q.Get("cliente"),
		Item:        q.Get("item"),
		Unidad:      q.Get("unidad"),
		Categoria:   q.Get("categoria"),
		FechaInicio: q.Get("fechaInicio"),
		FechaFin:    q.Get("fechaFin"),
	}
}

// HandleTariffList returns the general tariff table, optionally filtered.
func HandleTariffList(api pricing.API) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		list, err := api.Tariffs(e.Request.Context(), tariffFilterFromQuery(e))
		if err != nil {
			return remoteFail(e, "tariff_list", err)
		}
		if list == nil {
			list = []pricing.Tariff{}
		}
		return e.JSON(http.StatusOK, list)
	}
}

// HandleTariffCreate creates a tariff row and relays the server's message.
func HandleTariffCreate(api pricing.API) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var in pricing.TariffInput
		if err := e.BindBody(&in); err != nil {
			return badRequest(e, "Cuerpo de la solicitud inválido.")
		}

		msg, err := api.CreateTariff(e.Request.Context(), in)
		if err != nil {
			return remoteFail(e, "tariff_create", err)
		}
		return e.JSON(http.StatusOK, map[string]string{"message": msg})
	}
}

// HandleTariffUpdate updates the tariff named in the path.
func HandleTariffUpdate(api pricing.API) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id, err := strconv.Atoi(e.Request.PathValue("id"))
		if err != nil {
			return badRequest(e, "Identificador de tarifa inválido.")
		}

		var in pricing.TariffInput
		if err := e.BindBody(&in); err != nil {
			return badRequest(e, "Cuerpo de la solicitud inválido.")
		}

		msg, err := api.UpdateTariff(e.Request.Context(), id, in)
		if err != nil {
			return remoteFail(e, "tariff_update", err)
		}
		return e.JSON(http.StatusOK, map[string]string{"message": msg})
	}
}

// HandleTariffDelete deletes the tariff named in the path.
func HandleTariffDelete(api pricing.API) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id, err := strconv.Atoi(e.Request.PathValue("id"))
		if err != nil {
			return badRequest(e, "Identificador de tarifa inválido.")
		}

		msg, err := api.DeleteTariff(e.Request.Context(), id)
		if err != nil {
			return remoteFail(e, "tariff_delete", err)
		}
		return e.JSON(http.StatusOK, map[string]string{"message": msg})
	}
}
