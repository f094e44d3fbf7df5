// Package handlers wires HTTP routes to the pricing API and the dashboard
// services. Every handler answers JSON; the browser UI is a static SPA.
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"comercial/pricing"
)

// remoteFail logs err and answers with the pricing API's own status and
// error text when there is one, or 502 when the service could not be
// reached at all.
func remoteFail(e *core.RequestEvent, op string, err error) error {
	log.Printf("%s: %v", op, err)

	var remote *pricing.RemoteError
	if errors.As(err, &remote) {
		msg := remote.Detail
		if msg == "" {
			msg = "Ocurrió un error en el servicio de tarifas."
		}
		return e.JSON(remote.Status, map[string]string{"error": msg})
	}
	return e.JSON(http.StatusBadGateway, map[string]string{"error": "No se pudo contactar el servicio de tarifas."})
}

func badRequest(e *core.RequestEvent, msg string) error {
	return e.JSON(http.StatusBadRequest, map[string]string{"error": msg})
}
