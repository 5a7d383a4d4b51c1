package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidContract(t *testing.T) {
	tests := []struct {
		name     string
		contract BlendContract
		expected bool
	}{
		{
			name:     "nefty contract",
			contract: ContractNefty,
			expected: true,
		},
		{
			name:     "blenderizer contract",
			contract: ContractBlenderizer,
			expected: true,
		},
		{
			name:     "empty contract",
			contract: BlendContract(""),
			expected: false,
		},
		{
			name:     "unknown contract",
			contract: BlendContract("atomicassets"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidContract(tt.contract)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestBlendIngredient_Kind(t *testing.T) {
	tests := []struct {
		name       string
		ingredient BlendIngredient
		expected   MatchKind
	}{
		{
			name:       "template is most specific",
			ingredient: BlendIngredient{TemplateID: "100", SchemaName: "relics", CollectionName: "futuresrelic", Amount: 1},
			expected:   MatchTemplate,
		},
		{
			name:       "schema when no template",
			ingredient: BlendIngredient{SchemaName: "relics", CollectionName: "futuresrelic", Amount: 1},
			expected:   MatchSchema,
		},
		{
			name:       "collection when nothing else",
			ingredient: BlendIngredient{CollectionName: "futuresrelic", Amount: 1},
			expected:   MatchCollection,
		},
		{
			name:       "no discriminator",
			ingredient: BlendIngredient{Amount: 1},
			expected:   MatchNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.ingredient.Kind())
		})
	}
}

func TestBlendIngredient_Matches(t *testing.T) {
	asset := NFTAsset{
		AssetID:        "1099511627776",
		TemplateID:     "100",
		SchemaName:     "relics",
		CollectionName: "futuresrelic",
	}

	tests := []struct {
		name       string
		ingredient BlendIngredient
		expected   bool
	}{
		{
			name:       "template match",
			ingredient: BlendIngredient{TemplateID: "100", Amount: 1},
			expected:   true,
		},
		{
			name:       "template mismatch",
			ingredient: BlendIngredient{TemplateID: "200", Amount: 1},
			expected:   false,
		},
		{
			name:       "no fallback to schema when template set",
			ingredient: BlendIngredient{TemplateID: "200", SchemaName: "relics", Amount: 1},
			expected:   false,
		},
		{
			name:       "schema match",
			ingredient: BlendIngredient{SchemaName: "relics", Amount: 1},
			expected:   true,
		},
		{
			name:       "collection match",
			ingredient: BlendIngredient{CollectionName: "futuresrelic", Amount: 1},
			expected:   true,
		},
		{
			name:       "ingredient with no key matches nothing",
			ingredient: BlendIngredient{Amount: 1},
			expected:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.ingredient.Matches(asset))
		})
	}
}

func TestBlendRecipe_Eligible(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ts := now.Unix()

	tests := []struct {
		name     string
		recipe   BlendRecipe
		expected bool
	}{
		{
			name:     "active with no expiry",
			recipe:   BlendRecipe{IsActive: true, StartTime: ts - 3600, EndTime: 0},
			expected: true,
		},
		{
			name:     "inactive",
			recipe:   BlendRecipe{IsActive: false, StartTime: ts - 3600, EndTime: 0},
			expected: false,
		},
		{
			name:     "not started yet",
			recipe:   BlendRecipe{IsActive: true, StartTime: ts + 3600, EndTime: 0},
			expected: false,
		},
		{
			name:     "already ended",
			recipe:   BlendRecipe{IsActive: true, StartTime: ts - 7200, EndTime: ts - 3600},
			expected: false,
		},
		{
			name:     "ends in the future",
			recipe:   BlendRecipe{IsActive: true, StartTime: ts - 7200, EndTime: ts + 3600},
			expected: true,
		},
		{
			name:     "starts exactly now",
			recipe:   BlendRecipe{IsActive: true, StartTime: ts, EndTime: 0},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.recipe.Eligible(now))
		})
	}
}

func TestBlendRecipe_TotalRequired(t *testing.T) {
	recipe := BlendRecipe{
		Ingredients: []BlendIngredient{
			{TemplateID: "100", Amount: 2},
			{SchemaName: "relics", Amount: 3},
			{CollectionName: "futuresrelic", Amount: 0},
			{TemplateID: "200", Amount: -1},
		},
	}

	assert.Equal(t, 5, recipe.TotalRequired())
}

func TestParseDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "valid display data",
			raw:      `{"name":"The Chronometer","image":"QmHash"}`,
			expected: "The Chronometer",
		},
		{
			name:     "empty string",
			raw:      "",
			expected: "",
		},
		{
			name:     "malformed json degrades to empty",
			raw:      `{"name":`,
			expected: "",
		},
		{
			name:     "missing name field",
			raw:      `{"image":"QmHash"}`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseDisplayName(tt.raw))
		})
	}
}

func TestParseStoryline(t *testing.T) {
	assert.Equal(t, "ancient", ParseStoryline(`{"category":"ancient"}`))
	assert.Equal(t, "origins", ParseStoryline(`{"storyline":"origins"}`))
	assert.Equal(t, "ancient", ParseStoryline(`{"category":"ancient","storyline":"origins"}`))
	assert.Equal(t, "", ParseStoryline("not json"))
}

func TestMatchResult_Deficit(t *testing.T) {
	assert.Equal(t, 1, MatchResult{Owned: 1, Needed: 2}.Deficit())
	assert.Equal(t, 0, MatchResult{Owned: 2, Needed: 2}.Deficit())
	assert.Equal(t, 0, MatchResult{Owned: 3, Needed: 2}.Deficit())
}

func TestUserProgress_Sets(t *testing.T) {
	progress := NewUserProgress("ancientrelic")
	assert.False(t, progress.HasUnlocked("scene_1"))
	assert.False(t, progress.HasCompleted("42"))

	progress.UnlockedScenes = append(progress.UnlockedScenes, "scene_1")
	progress.CompletedBlends = append(progress.CompletedBlends, "42")

	assert.True(t, progress.HasUnlocked("scene_1"))
	assert.True(t, progress.HasCompleted("42"))
	assert.False(t, progress.HasUnlocked("scene_2"))
}
