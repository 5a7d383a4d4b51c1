// Package catalog fetches blend recipes from the supported on-chain
// contracts and normalizes them into the canonical recipe shape. Each
// contract encodes its table rows differently; a Source owns exactly one
// contract's decoding rules.
package catalog

import (
	"context"

	"github.com/futures-relic/relic-atelier/internal/domain"
)

// Source reads one contract's recipe table and normalizes its rows
//
//go:generate mockgen -source=source.go -destination=../mocks/catalog_source.go -package=mocks -mock_names=Source=MockCatalogSource
type Source interface {
	// Contract identifies which blend contract this source reads
	Contract() domain.BlendContract

	// FetchRecipes returns the contract's recipes for the collection
	FetchRecipes(ctx context.Context, collection string) ([]domain.BlendRecipe, error)
}
