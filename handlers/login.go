package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleLogin verifies an operator's credentials against the operators auth
// collection and issues an auth token. The response carries the operator's
// permission set so the UI can hide the sections it cannot open anyway.
func HandleLogin(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := e.BindBody(&body); err != nil {
			return badRequest(e, "Cuerpo de la solicitud inválido.")
		}
		if body.Email == "" || body.Password == "" {
			return badRequest(e, "Debe ingresar email y contraseña.")
		}

		record, err := app.FindAuthRecordByEmail("operators", body.Email)
		if err != nil || !record.ValidatePassword(body.Password) {
			// Same answer for unknown account and wrong password.
			return e.JSON(http.StatusUnauthorized, map[string]string{"error": "Credenciales inválidas."})
		}

		token, err := record.NewAuthToken()
		if err != nil {
			log.Printf("login: token generation failed for %s: %v", body.Email, err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "No se pudo iniciar sesión."})
		}

		return e.JSON(http.StatusOK, map[string]any{
			"token": token,
			"operador": map[string]any{
				"id":       record.Id,
				"name":     record.GetString("name"),
				"email":    record.Email(),
				"permisos": record.GetStringSlice("permisos"),
			},
		})
	}
}

// HandleLogout acknowledges the logout. Tokens are stateless, so the client
// discards its copy and there is nothing to revoke server-side.
func HandleLogout() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, map[string]string{"message": "Sesión cerrada."})
	}
}
