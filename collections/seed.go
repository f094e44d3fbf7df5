package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type operatorDef struct {
	email    string
	name     string
	password string
	permisos []string
}

// Seed inserts the initial operator accounts. It is safe to call on every
// startup because it returns early if any operator records already exist.
// Passwords come from configuration so fresh deployments never ship with a
// hardcoded credential.
func Seed(app *pocketbase.PocketBase, adminPassword, analystPassword string) error {
	operatorsCol, err := app.FindCollectionByNameOrId("operators")
	if err != nil {
		return fmt.Errorf("seed: could not find operators collection: %w", err)
	}
	existing, err := app.FindAllRecords(operatorsCol)
	if err != nil {
		return fmt.Errorf("seed: could not query operators: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: operators collection is empty – inserting seed accounts …")

	operators := []operatorDef{
		{
			email:    "admin@comercial.local",
			name:     "Administrador",
			password: adminPassword,
			permisos: AllPermissions,
		},
		{
			email:    "analista@comercial.local",
			name:     "Analista Comercial",
			password: analystPassword,
			// Every operational section, but not the report exports.
			permisos: []string{
				PermTarifas,
				PermTarifasPorVencer,
				PermActualizacionTarifas,
				PermTarifasHistoricas,
				PermTarifasPorRango,
			},
		},
	}

	for _, d := range operators {
		r := core.NewRecord(operatorsCol)
		r.Set("email", d.email)
		r.Set("name", d.name)
		r.Set("permisos", d.permisos)
		r.SetPassword(d.password)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save operator %q: %w", d.email, err)
		}
	}

	log.Printf("seed: inserted %d operator accounts", len(operators))
	return nil
}
