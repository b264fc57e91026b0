// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-character-wizard/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-character-wizard/internal/orchestrators/catalog"
	catalogloadermock "github.com/KirkDiggler/rpg-character-wizard/internal/orchestrators/catalog/mock"
)

// ExpectCatalogLoad makes the next Load hand catalogs (or loadErr) to its
// target the way the real loader does. The returned channel is closed once
// the load has completed, so tests can wait on background loads.
func ExpectCatalogLoad(mockLoader *catalogloadermock.MockLoader, catalogs *dnd5e.Catalogs, loadErr error) (<-chan struct{}, *gomock.Call) {
	done := make(chan struct{})

	call := mockLoader.EXPECT().
		Load(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *catalog.LoadInput) (*catalog.LoadOutput, error) {
			defer close(done)

			gen := input.Generation
			if gen == 0 {
				gen = input.Target.BeginLoad()
			}

			var delivered *dnd5e.Catalogs
			if loadErr == nil {
				delivered = catalogs
			}
			if !input.Target.CompleteLoad(gen, delivered, loadErr) {
				return &catalog.LoadOutput{Generation: gen, Stale: true}, nil
			}
			if loadErr != nil {
				return nil, loadErr
			}
			return &catalog.LoadOutput{Generation: gen, Catalogs: catalogs}, nil
		})

	return done, call
}

// ExpectPendingCatalogLoad accepts the next Load without ever completing it,
// leaving the target in the loading state
func ExpectPendingCatalogLoad(mockLoader *catalogloadermock.MockLoader) <-chan struct{} {
	done := make(chan struct{})

	mockLoader.EXPECT().
		Load(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *catalog.LoadInput) (*catalog.LoadOutput, error) {
			defer close(done)
			return &catalog.LoadOutput{Generation: input.Generation, Stale: true}, nil
		})

	return done
}
