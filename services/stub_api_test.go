package services

import (
	"context"
	"errors"

	"comercial/pricing"
)

// stubAPI implements pricing.API with overridable funcs. Unset operations
// fail, so a test only wires what it exercises.
type stubAPI struct {
	clients    func(ctx context.Context) ([]pricing.Client, error)
	items      func(ctx context.Context) ([]pricing.Item, error)
	units      func(ctx context.Context) ([]pricing.Unit, error)
	bulkUpdate func(ctx context.Context, req pricing.BulkUpdateRequest, key string) (string, error)

	bulkCalls int
}

var errStubUnset = errors.New("stub: operation not wired")

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
	return nil, errStubUnset
}

func (s *stubAPI) Tariffs(ctx context.Context, f pricing.TariffFilter) ([]pricing.Tariff, error) {
	return nil, errStubUnset
}

func (s *stubAPI) CreateTariff(ctx context.Context, in pricing.TariffInput) (string, error) {
	return "", errStubUnset
}

func (s *stubAPI) UpdateTariff(ctx context.Context, id int, in pricing.TariffInput) (string, error) {
	return "", errStubUnset
}

func (s *stubAPI) DeleteTariff(ctx context.Context, id int) (string, error) {
	return "", errStubUnset
}

func (s *stubAPI) RangeTariffs(ctx context.Context, f pricing.TariffFilter) ([]pricing.RangeTariff, error) {
	return nil, errStubUnset
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
	return nil, errStubUnset
}

func (s *stubAPI) HistoricalTariffs(ctx context.Context, f pricing.HistoryFilter) ([]pricing.HistoricalTariff, error) {
	return nil, errStubUnset
}

func (s *stubAPI) ClientTariffs(ctx context.Context, clienteID int) ([]pricing.ClientTariff, error) {
	return nil, errStubUnset
}

func (s *stubAPI) PrepValues(ctx context.Context) ([]pricing.PrepValue, error) {
	return nil, errStubUnset
}

func (s *stubAPI) CreatePrepValue(ctx context.Context, in pricing.PrepValueInput) (string, error) {
	return "", errStubUnset
}
