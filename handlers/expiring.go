package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"comercial/pricing"
)

// HandleExpiringClients returns the clients whose tariffs are expired or
// inside the warning window. The pricing API owns the window logic for this
// listing; the dashboard only relays it.
func HandleExpiringClients(api pricing.API) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		list, err := api.ExpiringClients(e.Request.Context())
		if err != nil {
			return remoteFail(e, "expiring_clients", err)
		}
		if list == nil {
			list = []pricing.Client{}
		}
		return e.JSON(http.StatusOK, list)
	}
}
