package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"comercial/pricing"
	"comercial/testhelpers"
)

func TestHandleExpiringClients(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	stub := &stubAPI{
		expiringClients: func(ctx context.Context) ([]pricing.Client, error) {
			return []pricing.Client{{ID: 1, Nombre: "Acme"}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/tarifas-vencidas", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleExpiringClients(stub)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Acme") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestHandleHistoricalTariffs_ForwardsFilters(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	stub := &stubAPI{
		historicalTariffs: func(ctx context.Context, f pricing.HistoryFilter) ([]pricing.HistoricalTariff, error) {
			want := pricing.HistoryFilter{
				Cliente: "3", Categoria: "2", Unidad: "1", Item: "9",
				FechaInicio: "2024-01-01", FechaFin: "2024-06-30",
				FechaMovimiento: "2024-03-15",
			}
			if f != want {
				t.Errorf("filter = %+v, want %+v", f, want)
			}
			return []pricing.HistoricalTariff{{Cliente: "Acme", Movimiento: "aumento"}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet,
		"/api/tarifas_historicas?cliente=3&categoria=2&unidad=1&item=9&fecha_inicio=2024-01-01&fecha_fin=2024-06-30&fecha_movimiento=2024-03-15", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleHistoricalTariffs(stub)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "aumento") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestHandlePrepValueCreate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	stub := &stubAPI{
		createPrepValue: func(ctx context.Context, in pricing.PrepValueInput) (string, error) {
			if in.ClienteID != 3 || in.Valor != 12.5 {
				t.Errorf("input = %+v", in)
			}
			return "Valor registrado correctamente", nil
		},
	}

	body := `{"cliente_id":3,"fecha_inicio":"2024-01-01","fecha_final":"2024-12-31","valor":12.5}`
	req := httptest.NewRequest(http.MethodPost, "/api/reportes/valores_prep", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandlePrepValueCreate(stub)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Valor registrado correctamente") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestHandlePrepValueCreate_MissingClient(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	stub := &stubAPI{}

	body := `{"fecha_inicio":"2024-01-01","valor":12.5}`
	req := httptest.NewRequest(http.MethodPost, "/api/reportes/valores_prep", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandlePrepValueCreate(stub)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Debe seleccionar un cliente.") {
		t.Errorf("body = %s", rec.Body.String())
	}
}
