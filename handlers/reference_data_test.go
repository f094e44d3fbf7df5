package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"comercial/pricing"
	"comercial/services"
	"comercial/testhelpers"
)

func referenceStub() *stubAPI {
	return &stubAPI{
		clients: func(ctx context.Context) ([]pricing.Client, error) {
			return []pricing.Client{{ID: 1, Nombre: "Acme"}}, nil
		},
		items: func(ctx context.Context) ([]pricing.Item, error) {
			return []pricing.Item{{ID: 10, Nombre: "Almacenaje", Categoria: 4}}, nil
		},
		units: func(ctx context.Context) ([]pricing.Unit, error) {
			return []pricing.Unit{{ID: 20, Nombre: "Pallet"}}, nil
		},
		categories: func(ctx context.Context) ([]pricing.Category, error) {
			return []pricing.Category{{ID: 4, Nombre: "Depósito"}}, nil
		},
	}
}

func TestHandleReferenceData_AllLists(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	stub := referenceStub()
	loader := services.NewLoader(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/referencias", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleReferenceData(loader, stub)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Clientes   []pricing.Client   `json:"clientes"`
		Items      []pricing.Item     `json:"items"`
		Unidades   []pricing.Unit     `json:"unidades"`
		Categorias []pricing.Category `json:"categorias"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Clientes) != 1 || resp.Clientes[0].Nombre != "Acme" {
		t.Errorf("clientes = %+v", resp.Clientes)
	}
	if len(resp.Items) != 1 || len(resp.Unidades) != 1 {
		t.Errorf("items = %+v, unidades = %+v", resp.Items, resp.Unidades)
	}
	if len(resp.Categorias) != 1 || resp.Categorias[0].Nombre != "Depósito" {
		t.Errorf("categorias = %+v", resp.Categorias)
	}
}

func TestHandleReferenceData_CategoriesFailureDegrades(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	stub := referenceStub()
	stub.categories = nil // fetch fails
	loader := services.NewLoader(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/referencias", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleReferenceData(loader, stub)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 despite categorias failure, got %d", rec.Code)
	}

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	var clientes []pricing.Client
	if err := json.Unmarshal(resp["clientes"], &clientes); err != nil || len(clientes) != 1 {
		t.Errorf("clientes should still load, got %s", resp["clientes"])
	}
}

func TestHandleCriterionOptions(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	stub := referenceStub()
	loader := services.NewLoader(stub)
	loader.Refresh(context.Background())

	req := httptest.NewRequest(http.MethodGet, "/api/referencias/opciones?criterio=item", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleCriterionOptions(loader)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var opts []services.Option
	if err := json.Unmarshal(rec.Body.Bytes(), &opts); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(opts) != 1 || opts[0].ID != "10" || opts[0].Label != "Almacenaje" {
		t.Errorf("opts = %+v", opts)
	}
}

func TestHandleCriterionOptions_InvalidCriterion(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	loader := services.NewLoader(referenceStub())

	req := httptest.NewRequest(http.MethodGet, "/api/referencias/opciones?criterio=zona", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleCriterionOptions(loader)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleCriterionOptions_DefaultsToCliente(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	stub := referenceStub()
	loader := services.NewLoader(stub)
	loader.Refresh(context.Background())

	req := httptest.NewRequest(http.MethodGet, "/api/referencias/opciones", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleCriterionOptions(loader)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var opts []services.Option
	if err := json.Unmarshal(rec.Body.Bytes(), &opts); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(opts) != 1 || opts[0].Label != "Acme" {
		t.Errorf("opts = %+v, want the client list", opts)
	}
}
