package handlers

import (
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase/core"

	"comercial/pricing"
)

// HandleRangeTariffList returns the weight-range tariff table. It accepts
// the same filters as the general listing.
func HandleRangeTariffList(api pricing.API) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		list, err := api.RangeTariffs(e.Request.Context(), tariffFilterFromQuery(e))
		if err != nil {
			return remoteFail(e, "range_tariff_list", err)
		}
		if list == nil {
			list = []pricing.RangeTariff{}
		}
		return e.JSON(http.StatusOK, list)
	}
}

// HandleRangeTariffCreate creates a weight-range tariff row.
func HandleRangeTariffCreate(api pricing.API) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var in pricing.TariffInput
		if err := e.BindBody(&in); err != nil {
			return badRequest(e, "Cuerpo de la solicitud inválido.")
		}

		msg, err := api.CreateRangeTariff(e.Request.Context(), in)
		if err != nil {
			return remoteFail(e, "range_tariff_create", err)
		}
		return e.JSON(http.StatusOK, map[string]string{"message": msg})
	}
}

// HandleRangeTariffUpdate updates the weight-range tariff named in the path.
func HandleRangeTariffUpdate(api pricing.API) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id, err := strconv.Atoi(e.Request.PathValue("id"))
		if err != nil {
			return badRequest(e, "Identificador de tarifa inválido.")
		}

		var in pricing.TariffInput
		if err := e.BindBody(&in); err != nil {
			return badRequest(e, "Cuerpo de la solicitud inválido.")
		}

		msg, err := api.UpdateRangeTariff(e.Request.Context(), id, in)
		if err != nil {
			return remoteFail(e, "range_tariff_update", err)
		}
		return e.JSON(http.StatusOK, map[string]string{"message": msg})
	}
}

// HandleRangeTariffDelete deletes the weight-range tariff named in the path.
func HandleRangeTariffDelete(api pricing.API) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id, err := strconv.Atoi(e.Request.PathValue("id"))
		if err != nil {
			return badRequest(e, "Identificador de tarifa inválido.")
		}

		msg, err := api.DeleteRangeTariff(e.Request.Context(), id)
		if err != nil {
			return remoteFail(e, "range_tariff_delete", err)
		}
		return e.JSON(http.StatusOK, map[string]string{"message": msg})
	}
}
