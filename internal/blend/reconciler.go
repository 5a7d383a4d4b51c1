// Package blend holds the blend evaluation core: ingredient reconciliation
// against an inventory snapshot, and cross-recipe recommendation ranking.
// Everything here is pure and synchronous; all I/O happens in the callers.
package blend

import (
	"sort"

	"github.com/futures-relic/relic-atelier/internal/domain"
)

// Reconciliation is the outcome of matching one recipe against an inventory
type Reconciliation struct {
	CanComplete bool
	Missing     []domain.MatchResult
}

// TotalDeficit sums the deficits of all missing ingredients
func (r Reconciliation) TotalDeficit() int {
	var total int
	for _, m := range r.Missing {
		total += m.Deficit()
	}
	return total
}

// Reconcile matches owned assets against a recipe's ingredient slots.
//
// The inventory is treated as a pool: each asset may be allocated to at most
// one ingredient slot, so a single owned item never counts toward two
// requirements. Ingredients are processed in the recipe's declared order;
// when two ingredients overlap in eligibility the first-declared one gets
// first claim. Allocation within an ingredient is by ascending asset id to
// keep results deterministic.
//
// An ingredient that cannot be fully satisfied allocates nothing, leaving
// its partial matches available to later ingredients.
func Reconcile(recipe domain.BlendRecipe, inventory []domain.NFTAsset) Reconciliation {
	pool := make([]domain.NFTAsset, len(inventory))
	copy(pool, inventory)
	sort.SliceStable(pool, func(i, j int) bool {
		return lessAssetID(pool[i].AssetID, pool[j].AssetID)
	})

	allocated := make(map[string]bool)
	var missing []domain.MatchResult

	for _, ing := range recipe.Ingredients {
		// Non-positive amounts are invalid input; treat as trivially satisfied.
		if ing.Amount <= 0 {
			continue
		}

		// An ingredient with no recognizable matching key matches nothing.
		if ing.Kind() == domain.MatchNone {
			missing = append(missing, domain.MatchResult{
				Ingredient: ing,
				Owned:      0,
				Needed:     ing.Amount,
			})
			continue
		}

		var candidates []string
		for _, asset := range pool {
			if allocated[asset.AssetID] {
				continue
			}
			if ing.Matches(asset) {
				candidates = append(candidates, asset.AssetID)
			}
		}

		if len(candidates) < ing.Amount {
			missing = append(missing, domain.MatchResult{
				Ingredient: ing,
				Owned:      len(candidates),
				Needed:     ing.Amount,
			})
			continue
		}

		for _, id := range candidates[:ing.Amount] {
			allocated[id] = true
		}
	}

	return Reconciliation{
		CanComplete: len(missing) == 0,
		Missing:     missing,
	}
}

// lessAssetID compares numeric asset id strings without parsing them.
// Shorter digit strings are smaller; equal lengths compare lexically.
func lessAssetID(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}
