package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Permission values an operator can carry, one per dashboard section. Each
// section checks its own value before serving its data.
const (
	PermTarifas              = "tarifas"
	PermTarifasPorVencer     = "tarifasPorVencer"
	PermActualizacionTarifas = "actualizacionTarifas"
	PermTarifasHistoricas    = "tarifasHistoricas"
	PermTarifasPorRango      = "tarifasPorRango"
	PermReportes             = "reportes"
	PermValorXKilo           = "valor-x-kilo"
)

// AllPermissions lists every known permission value, in display order.
var AllPermissions = []string{
	PermTarifas,
	PermTarifasPorVencer,
	PermActualizacionTarifas,
	PermTarifasHistoricas,
	PermTarifasPorRango,
	PermReportes,
	PermValorXKilo,
}

// Setup programmatically creates/ensures the operators auth collection and
// the bulk_update_audit collection exist.
func Setup(app *pocketbase.PocketBase) {
	ensureAuthCollection(app, "operators", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "permisos",
			Required:  true,
			Values:    AllPermissions,
			MaxSelect: len(AllPermissions),
		})
	})

	ensureCollection(app, "bulk_update_audit", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "idempotency_key", Required: true})
		c.Fields.Add(&core.TextField{Name: "usuario", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "criterio",
			Required:  true,
			Values:    []string{"cliente", "item", "unidad", "categoria"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "seleccion_id", Required: false})
		c.Fields.Add(&core.BoolField{Name: "incluir_cliente"})
		c.Fields.Add(&core.TextField{Name: "cliente_id", Required: false})
		c.Fields.Add(&core.TextField{Name: "fecha_inicio", Required: false})
		c.Fields.Add(&core.TextField{Name: "fecha_fin", Required: false})
		c.Fields.Add(&core.NumberField{Name: "porcentaje", Required: false})
		c.Fields.Add(&core.BoolField{Name: "exito"})
		c.Fields.Add(&core.TextField{Name: "mensaje", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.AddIndex("idx_audit_idempotency_key", true, "idempotency_key", "")
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}

// ensureAuthCollection is ensureCollection for auth collections. Auth
// collections carry the password/token machinery, so existing ones are never
// mutated here.
func ensureAuthCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewAuthCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
