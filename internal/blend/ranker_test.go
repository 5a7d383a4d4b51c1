package blend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futures-relic/relic-atelier/internal/domain"
)

var rankNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func activeRecipe(id string, ingredients ...domain.BlendIngredient) domain.BlendRecipe {
	return domain.BlendRecipe{
		BlendID:     id,
		Contract:    domain.ContractNefty,
		IsActive:    true,
		StartTime:   rankNow.Unix() - 3600,
		Ingredients: ingredients,
	}
}

func TestRank_FullAndHalfOwnership(t *testing.T) {
	full := activeRecipe("1", domain.BlendIngredient{TemplateID: "100", Amount: 2})
	half := activeRecipe("2", domain.BlendIngredient{TemplateID: "200", Amount: 2})

	inventory := []domain.NFTAsset{
		asset("11", "100"),
		asset("12", "100"),
		asset("13", "200"),
	}

	recs := Rank([]domain.BlendRecipe{half, full}, inventory, nil, rankNow)

	require.Len(t, recs, 2)
	assert.Equal(t, "1", recs[0].Recipe.BlendID)
	assert.True(t, recs[0].CanComplete)
	assert.InDelta(t, 100.0, recs[0].Priority, 0.001)
	assert.Equal(t, "2", recs[1].Recipe.BlendID)
	assert.False(t, recs[1].CanComplete)
	assert.InDelta(t, 50.0, recs[1].Priority, 0.001)
}

func TestRank_SkipsCompletedAndIneligible(t *testing.T) {
	completed := activeRecipe("1", domain.BlendIngredient{TemplateID: "100", Amount: 1})
	inactive := activeRecipe("2", domain.BlendIngredient{TemplateID: "100", Amount: 1})
	inactive.IsActive = false
	expired := activeRecipe("3", domain.BlendIngredient{TemplateID: "100", Amount: 1})
	expired.EndTime = rankNow.Unix() - 60
	future := activeRecipe("4", domain.BlendIngredient{TemplateID: "100", Amount: 1})
	future.StartTime = rankNow.Unix() + 3600
	ok := activeRecipe("5", domain.BlendIngredient{TemplateID: "100", Amount: 1})

	recipes := []domain.BlendRecipe{completed, inactive, expired, future, ok}
	inventory := []domain.NFTAsset{asset("11", "100")}

	recs := Rank(recipes, inventory, map[string]bool{"1": true}, rankNow)

	require.Len(t, recs, 1)
	assert.Equal(t, "5", recs[0].Recipe.BlendID)
}

func TestRank_ZeroIngredientsScoresVacuously(t *testing.T) {
	recipe := activeRecipe("1")

	recs := Rank([]domain.BlendRecipe{recipe}, nil, nil, rankNow)

	require.Len(t, recs, 1)
	assert.InDelta(t, 100.0, recs[0].Priority, 0.001)
	assert.False(t, recs[0].Priority != recs[0].Priority, "score must not be NaN")
}

func TestRank_ZeroAmountIngredientsScoreVacuously(t *testing.T) {
	recipe := activeRecipe("1", domain.BlendIngredient{TemplateID: "100", Amount: 0})

	recs := Rank([]domain.BlendRecipe{recipe}, nil, nil, rankNow)

	require.Len(t, recs, 1)
	assert.InDelta(t, 100.0, recs[0].Priority, 0.001)
}

func TestRank_ScarcityBonus(t *testing.T) {
	scarce := activeRecipe("1", domain.BlendIngredient{TemplateID: "100", Amount: 1})
	scarce.Max = 10
	scarce.UseCount = 5
	unlimited := activeRecipe("2", domain.BlendIngredient{TemplateID: "100", Amount: 1})

	inventory := []domain.NFTAsset{asset("11", "100"), asset("12", "100")}

	recs := Rank([]domain.BlendRecipe{scarce, unlimited}, inventory, nil, rankNow)

	require.Len(t, recs, 2)
	assert.Equal(t, "1", recs[0].Recipe.BlendID)
	assert.InDelta(t, 120.0, recs[0].Priority, 0.001)
	assert.InDelta(t, 100.0, recs[1].Priority, 0.001)
	assert.Contains(t, recs[0].Reason, "5 blends remaining")
}

func TestRank_NoScarcityBonusWhenPlentyRemain(t *testing.T) {
	recipe := activeRecipe("1", domain.BlendIngredient{TemplateID: "100", Amount: 1})
	recipe.Max = 100
	recipe.UseCount = 5

	recs := Rank([]domain.BlendRecipe{recipe}, []domain.NFTAsset{asset("11", "100")}, nil, rankNow)

	require.Len(t, recs, 1)
	assert.InDelta(t, 100.0, recs[0].Priority, 0.001)
}

func TestRank_UrgencyBonus(t *testing.T) {
	soon := activeRecipe("1", domain.BlendIngredient{TemplateID: "100", Amount: 1})
	soon.EndTime = rankNow.Add(10 * time.Hour).Unix()
	later := activeRecipe("2", domain.BlendIngredient{TemplateID: "100", Amount: 1})
	later.EndTime = rankNow.Add(48 * time.Hour).Unix()

	inventory := []domain.NFTAsset{asset("11", "100"), asset("12", "100")}

	recs := Rank([]domain.BlendRecipe{soon, later}, inventory, nil, rankNow)

	require.Len(t, recs, 2)
	assert.Equal(t, "1", recs[0].Recipe.BlendID)
	assert.InDelta(t, 115.0, recs[0].Priority, 0.001)
	assert.InDelta(t, 100.0, recs[1].Priority, 0.001)
	assert.Contains(t, recs[0].Reason, "Expires in 10 hours")
}

func TestRank_StableOrderOnTies(t *testing.T) {
	a := activeRecipe("1", domain.BlendIngredient{TemplateID: "100", Amount: 1})
	b := activeRecipe("2", domain.BlendIngredient{TemplateID: "100", Amount: 1})
	c := activeRecipe("3", domain.BlendIngredient{TemplateID: "100", Amount: 1})

	recs := Rank([]domain.BlendRecipe{a, b, c}, []domain.NFTAsset{asset("11", "100")}, nil, rankNow)

	require.Len(t, recs, 3)
	assert.Equal(t, "1", recs[0].Recipe.BlendID)
	assert.Equal(t, "2", recs[1].Recipe.BlendID)
	assert.Equal(t, "3", recs[2].Recipe.BlendID)
}

func TestRank_SortedNonIncreasing(t *testing.T) {
	recipes := []domain.BlendRecipe{
		activeRecipe("1", domain.BlendIngredient{TemplateID: "900", Amount: 4}),
		activeRecipe("2", domain.BlendIngredient{TemplateID: "100", Amount: 1}),
		activeRecipe("3", domain.BlendIngredient{TemplateID: "100", Amount: 2}),
	}
	inventory := []domain.NFTAsset{asset("11", "100")}

	recs := Rank(recipes, inventory, nil, rankNow)

	require.Len(t, recs, 3)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].Priority, recs[i].Priority)
	}
}

func TestNextAction_CompleteNow(t *testing.T) {
	full := activeRecipe("1", domain.BlendIngredient{TemplateID: "100", Amount: 2})
	full.DisplayData = `{"name":"The Chronometer"}`
	half := activeRecipe("2", domain.BlendIngredient{TemplateID: "200", Amount: 2})

	inventory := []domain.NFTAsset{
		asset("11", "100"),
		asset("12", "100"),
		asset("13", "200"),
	}

	recs := Rank([]domain.BlendRecipe{half, full}, inventory, nil, rankNow)
	action := NextAction(recs)

	assert.Equal(t, domain.ActionCompleteBlend, action.Action)
	require.NotNil(t, action.Recommendation)
	assert.Equal(t, "1", action.Recommendation.Recipe.BlendID)
	assert.Contains(t, action.Description, "The Chronometer")
}

func TestNextAction_AcquireMissing(t *testing.T) {
	recipe := activeRecipe("1",
		domain.BlendIngredient{TemplateID: "100", Amount: 3},
		domain.BlendIngredient{TemplateID: "200", Amount: 1},
	)

	// 3 of 4 required units owned: 75% > acquire floor, not completable
	inventory := []domain.NFTAsset{
		asset("11", "100"),
		asset("12", "100"),
		asset("13", "100"),
	}

	recs := Rank([]domain.BlendRecipe{recipe}, inventory, nil, rankNow)
	action := NextAction(recs)

	assert.Equal(t, domain.ActionAcquireItems, action.Action)
	require.NotNil(t, action.Recommendation)
	assert.Equal(t, "1", action.Recommendation.Recipe.BlendID)
}

func TestNextAction_ExploreFallback(t *testing.T) {
	recipe := activeRecipe("1", domain.BlendIngredient{TemplateID: "100", Amount: 4})
	inventory := []domain.NFTAsset{asset("11", "100")}

	recs := Rank([]domain.BlendRecipe{recipe}, inventory, nil, rankNow)
	action := NextAction(recs)

	assert.Equal(t, domain.ActionExplore, action.Action)
	assert.Nil(t, action.Recommendation)
}

func TestNextAction_EmptyList(t *testing.T) {
	action := NextAction(nil)

	assert.Equal(t, domain.ActionExplore, action.Action)
}

func TestGroupByStoryline(t *testing.T) {
	a := activeRecipe("1")
	a.DisplayData = `{"name":"A","category":"origins"}`
	b := activeRecipe("2")
	b.DisplayData = `{"name":"B","storyline":"origins"}`
	c := activeRecipe("3")
	c.DisplayData = `not json`

	groups := GroupByStoryline([]domain.BlendRecipe{a, b, c})

	assert.Len(t, groups["origins"], 2)
	assert.Len(t, groups["Uncategorized"], 1)
}
