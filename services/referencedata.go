// Package services holds the workflow logic of the tariff dashboard:
// reference data loading, the bulk update orchestration, expiry
// classification and the export generators.
package services

import (
	"context"
	"log"
	"sync"

	"comercial/pricing"
)

// ReferenceData is a read-only snapshot of the selection lists. A missing
// list (its fetch failed) is simply empty; the other lists stay usable.
type ReferenceData struct {
	Clientes []pricing.Client
	Items    []pricing.Item
	Unidades []pricing.Unit
}

// LoadReferenceData fetches the three selection lists concurrently. Each
// fetch is independent: a failure is logged and degrades only its own list.
func LoadReferenceData(ctx context.Context, api pricing.API) ReferenceData {
	var ref ReferenceData
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		list, err := api.Clients(ctx)
		if err != nil {
			log.Printf("reference_data: clientes load failed: %v", err)
			return
		}
		ref.Clientes = list
	}()
	go func() {
		defer wg.Done()
		list, err := api.Items(ctx)
		if err != nil {
			log.Printf("reference_data: items load failed: %v", err)
			return
		}
		ref.Items = list
	}()
	go func() {
		defer wg.Done()
		list, err := api.Units(ctx)
		if err != nil {
			log.Printf("reference_data: unidades load failed: %v", err)
			return
		}
		ref.Unidades = list
	}()

	wg.Wait()
	return ref
}

// Loader caches the latest reference data snapshot. Every Refresh is tagged
// with a monotonic generation; a slow load that finishes after a newer one
// never overwrites the newer snapshot.
type Loader struct {
	api pricing.API

	mu      sync.Mutex
	nextGen uint64
	gen     uint64
	current ReferenceData
}

func NewLoader(api pricing.API) *Loader {
	return &Loader{api: api}
}

// Refresh loads a fresh snapshot and installs it unless a later-started
// load already finished. It returns the snapshot that ended up current.
func (l *Loader) Refresh(ctx context.Context) ReferenceData {
	l.mu.Lock()
	l.nextGen++
	gen := l.nextGen
	l.mu.Unlock()

	ref := LoadReferenceData(ctx, l.api)

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen > l.gen {
		l.gen = gen
		l.current = ref
	}
	return l.current
}

// Snapshot returns the current snapshot without fetching.
func (l *Loader) Snapshot() ReferenceData {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current
}
