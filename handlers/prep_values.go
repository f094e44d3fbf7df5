package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"comercial/pricing"
)

// HandlePrepValueList returns the per-kilo preparation values.
func HandlePrepValueList(api pricing.API) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		list, err := api.PrepValues(e.Request.Context())
		if err != nil {
			return remoteFail(e, "prep_value_list", err)
		}
		if list == nil {
			list = []pricing.PrepValue{}
		}
		return e.JSON(http.StatusOK, list)
	}
}

// HandlePrepValueCreate registers a new per-kilo preparation value for a
// client.
func HandlePrepValueCreate(api pricing.API) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var in pricing.PrepValueInput
		if err := e.BindBody(&in); err != nil {
			return badRequest(e, "Cuerpo de la solicitud inválido.")
		}
		if in.ClienteID == 0 {
			return badRequest(e, "Debe seleccionar un cliente.")
		}

		msg, err := api.CreatePrepValue(e.Request.Context(), in)
		if err != nil {
			return remoteFail(e, "prep_value_create", err)
		}
		return e.JSON(http.StatusOK, map[string]string{"message": msg})
	}
}
