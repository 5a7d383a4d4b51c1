package blend

import (
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/futures-relic/relic-atelier/internal/domain"
	"github.com/futures-relic/relic-atelier/internal/logger"
)

const (
	// scoreComplete is the base score of an immediately completable recipe
	scoreComplete = 100.0

	// scarcityBonus applies when fewer than scarcityThreshold executions remain
	scarcityBonus     = 20.0
	scarcityThreshold = 10

	// urgencyBonus applies when the recipe expires within urgencyWindow
	urgencyBonus  = 15.0
	urgencyWindow = 24 * time.Hour

	// acquireScoreFloor is the minimum score for an acquire-items suggestion
	acquireScoreFloor = 50.0
)

// Rank evaluates every recipe in the catalog against the inventory snapshot
// and returns recommendations sorted by descending priority. Recipes already
// completed by the account, and recipes outside their validity window, are
// dropped before scoring. Ties keep catalog order (stable sort) so output is
// deterministic.
//
// Bonuses are additive and uncapped: among several instantly completable
// recipes, scarcity and urgency still break ties.
func Rank(recipes []domain.BlendRecipe, inventory []domain.NFTAsset, completed map[string]bool, now time.Time) []domain.BlendRecommendation {
	recommendations := make([]domain.BlendRecommendation, 0, len(recipes))

	for _, recipe := range recipes {
		if completed[recipe.BlendID] {
			continue
		}
		if !recipe.Eligible(now) {
			continue
		}

		result := Reconcile(recipe, inventory)
		totalRequired := recipe.TotalRequired()

		var priority float64
		var reason string

		switch {
		case totalRequired == 0:
			// Vacuously completable. Almost certainly an upstream data
			// anomaly rather than a genuine free reward, so surface it.
			logger.Warn("recipe with no required ingredients",
				zap.String("blend_id", recipe.BlendID),
				zap.String("contract", string(recipe.Contract)),
			)
			priority = scoreComplete
			reason = "You can complete this blend right now."
		case result.CanComplete:
			priority = scoreComplete
			reason = "You can complete this blend right now."
		default:
			missingTotal := result.TotalDeficit()
			pct := scoreComplete * float64(totalRequired-missingTotal) / float64(totalRequired)
			priority = pct

			switch {
			case pct > 75:
				reason = fmt.Sprintf("Almost there, only %d item(s) needed.", missingTotal)
			case pct > 50:
				reason = fmt.Sprintf("Halfway there, %d more item(s) needed.", missingTotal)
			case pct > 0:
				reason = fmt.Sprintf("In progress, %d item(s) still needed.", missingTotal)
			default:
				reason = fmt.Sprintf("Not started, requires %d specific items.", totalRequired)
			}
		}

		if recipe.Max > 0 {
			remaining := recipe.Max - recipe.UseCount
			if remaining < scarcityThreshold {
				priority += scarcityBonus
				reason += fmt.Sprintf(" Only %d blends remaining!", remaining)
			}
		}

		if recipe.EndTime > 0 {
			untilEnd := time.Duration(recipe.EndTime-now.Unix()) * time.Second
			if untilEnd < urgencyWindow {
				priority += urgencyBonus
				reason += fmt.Sprintf(" Expires in %d hours!", int(math.Round(untilEnd.Hours())))
			}
		}

		recommendations = append(recommendations, domain.BlendRecommendation{
			Recipe:             recipe,
			CanComplete:        result.CanComplete,
			MissingIngredients: result.Missing,
			Priority:           priority,
			Reason:             reason,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Priority > recommendations[j].Priority
	})

	return recommendations
}

// NextAction picks the single best next step from a ranked recommendation
// list. Three branches, in order: the first completable recipe becomes a
// complete-now action; otherwise the top-scored recipe, if above the acquire
// floor, becomes an acquire-missing-items action; otherwise a generic
// explore fallback with no referenced recipe.
func NextAction(recommendations []domain.BlendRecommendation) domain.ActionSummary {
	for i := range recommendations {
		if recommendations[i].CanComplete {
			rec := recommendations[i]
			return domain.ActionSummary{
				Action:         domain.ActionCompleteBlend,
				Description:    fmt.Sprintf("You can complete %q right now.", recipeLabel(rec.Recipe)),
				Recommendation: &rec,
			}
		}
	}

	if len(recommendations) > 0 && recommendations[0].Priority > acquireScoreFloor {
		rec := recommendations[0]
		return domain.ActionSummary{
			Action:         domain.ActionAcquireItems,
			Description:    fmt.Sprintf("Get %d more item(s) to complete %q.", len(rec.MissingIngredients), recipeLabel(rec.Recipe)),
			Recommendation: &rec,
		}
	}

	return domain.ActionSummary{
		Action:      domain.ActionExplore,
		Description: "Check drops and the marketplace to start building towards blends.",
	}
}

// GroupByStoryline buckets recipes by the storyline/category key embedded in
// their display metadata. Recipes with no parsable grouping go under
// "Uncategorized".
func GroupByStoryline(recipes []domain.BlendRecipe) map[string][]domain.BlendRecipe {
	groups := make(map[string][]domain.BlendRecipe)
	for _, recipe := range recipes {
		key := domain.ParseStoryline(recipe.DisplayData)
		if key == "" {
			key = "Uncategorized"
		}
		groups[key] = append(groups[key], recipe)
	}
	return groups
}

func recipeLabel(recipe domain.BlendRecipe) string {
	if recipe.DisplayName != "" {
		return recipe.DisplayName
	}
	if name := domain.ParseDisplayName(recipe.DisplayData); name != "" {
		return name
	}
	return "a blend"
}
