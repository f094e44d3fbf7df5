// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"comercial/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestOperator creates an operator account with the given email,
// password and permission set, and returns the record.
func CreateTestOperator(t *testing.T, app *pocketbase.PocketBase, email, password string, permisos []string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("operators")
	if err != nil {
		t.Fatalf("failed to find operators collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("email", email)
	record.Set("name", "Test Operator")
	record.Set("permisos", permisos)
	record.SetPassword(password)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test operator: %v", err)
	}

	return record
}

// CreateAuditRecord creates a bulk_update_audit row with the given
// idempotency key and outcome, and returns the record.
func CreateAuditRecord(t *testing.T, app *pocketbase.PocketBase, key, usuario string, exito bool, mensaje string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("bulk_update_audit")
	if err != nil {
		t.Fatalf("failed to find bulk_update_audit collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("idempotency_key", key)
	record.Set("usuario", usuario)
	record.Set("criterio", "cliente")
	record.Set("seleccion_id", "1")
	record.Set("incluir_cliente", false)
	record.Set("porcentaje", 10.0)
	record.Set("exito", exito)
	record.Set("mensaje", mensaje)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save audit record: %v", err)
	}

	return record
}
