package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"comercial/pricing"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

var errStubUnset = errors.New("stub: operation not configured")

// stubAPI implements pricing.API with overridable functions. Operations a
// test does not configure fail loudly.
type stubAPI struct {
	clients    func(ctx context.Context) ([]pricing.Client, error)
	items      func(ctx context.Context) ([]pricing.Item, error)
	units      func(ctx context.Context) ([]pricing.Unit, error)
	categories func(ctx context.Context) ([]pricing.Category, error)

	tariffs      func(ctx context.Context, f pricing.TariffFilter) ([]pricing.Tariff, error)
	createTariff func(ctx context.Context, in pricing.TariffInput) (string, error)
	updateTariff func(ctx context.Context, id int, in pricing.TariffInput) (string, error)
	deleteTariff func(ctx context.Context, id int) (string, error)

	rangeTariffs func(ctx context.Context, f pricing.TariffFilter) ([]pricing.RangeTariff, error)

	bulkUpdate func(ctx context.Context, req pricing.BulkUpdateRequest, key string) (string, error)
	bulkCalls  int

	expiringClients   func(ctx context.Context) ([]pricing.Client, error)
	historicalTariffs func(ctx context.Context, f pricing.HistoryFilter) ([]pricing.HistoricalTariff, error)
	clientTariffs     func(ctx context.Context, clienteID int) ([]pricing.ClientTariff, error)

	prepValues      func(ctx context.Context) ([]pricing.PrepValue, error)
	createPrepValue func(ctx context.Context, in pricing.PrepValueInput) (string, error)
}

func (s *stubAPI) Clients(ctx context.Context) ([]pricing.Client, error) {
	if s.clients == nil {
		return nil, errStubUnset
	}
	return s.clients(ctx)
}

func (s *stubAPI) Items(ctx context.Context) ([]pricing.Item, error) {
	if s.items == nil {
		return nil, errStubUnset
	}
	return s.items(ctx)
}

func (s *stubAPI) Units(ctx context.Context) ([]pricing.Unit, error) {
	if s.units == nil {
		return nil, errStubUnset
	}
	return s.units(ctx)
}

func (s *stubAPI) Categories(ctx context.Context) ([]pricing.Category, error) {
	if s.categories == nil {
		return nil, errStubUnset
	}
	return s.categories(ctx)
}

func (s *stubAPI) Tariffs(ctx context.Context, f pricing.TariffFilter) ([]pricing.Tariff, error) {
	if s.tariffs == nil {
		return nil, errStubUnset
	}
	return s.tariffs(ctx, f)
}

func (s *stubAPI) CreateTariff(ctx context.Context, in pricing.TariffInput) (string, error) {
	if s.createTariff == nil {
		return "", errStubUnset
	}
	return s.createTariff(ctx, in)
}

func (s *stubAPI) UpdateTariff(ctx context.Context, id int, in pricing.TariffInput) (string, error) {
	if s.updateTariff == nil {
		return "", errStubUnset
	}
	return s.updateTariff(ctx, id, in)
}

func (s *stubAPI) DeleteTariff(ctx context.Context, id int) (string, error) {
	if s.deleteTariff == nil {
		return "", errStubUnset
	}
	return s.deleteTariff(ctx, id)
}

func (s *stubAPI) RangeTariffs(ctx context.Context, f pricing.TariffFilter) ([]pricing.RangeTariff, error) {
	if s.rangeTariffs == nil {
		return nil, errStubUnset
	}
	return s.rangeTariffs(ctx, f)
}

func (s *stubAPI) CreateRangeTariff(ctx context.Context, in pricing.TariffInput) (string, error) {
	return "", errStubUnset
}

func (s *stubAPI) UpdateRangeTariff(ctx context.Context, id int, in pricing.TariffInput) (string, error) {
	return "", errStubUnset
}

func (s *stubAPI) DeleteRangeTariff(ctx context.Context, id int) (string, error) {
	return "", errStubUnset
}

func (s *stubAPI) BulkUpdate(ctx context.Context, req pricing.BulkUpdateRequest, key string) (string, error) {
	s.bulkCalls++
	if s.bulkUpdate == nil {
		return "", errStubUnset
	}
	return s.bulkUpdate(ctx, req, key)
}

func (s *stubAPI) ExpiringClients(ctx context.Context) ([]pricing.Client, error) {
	if s.expiringClients == nil {
		return nil, errStubUnset
	}
	return s.expiringClients(ctx)
}

func (s *stubAPI) HistoricalTariffs(ctx context.Context, f pricing.HistoryFilter) ([]pricing.HistoricalTariff, error) {
	if s.historicalTariffs == nil {
		return nil, errStubUnset
	}
	return s.historicalTariffs(ctx, f)
}

func (s *stubAPI) ClientTariffs(ctx context.Context, clienteID int) ([]pricing.ClientTariff, error) {
	if s.clientTariffs == nil {
		return nil, errStubUnset
	}
	return s.clientTariffs(ctx, clienteID)
}

func (s *stubAPI) PrepValues(ctx context.Context) ([]pricing.PrepValue, error) {
	if s.prepValues == nil {
		return nil, errStubUnset
	}
	return s.prepValues(ctx)
}

func (s *stubAPI) CreatePrepValue(ctx context.Context, in pricing.PrepValueInput) (string, error) {
	if s.createPrepValue == nil {
		return "", errStubUnset
	}
	return s.createPrepValue(ctx, in)
}
