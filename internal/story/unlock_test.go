package story

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/futures-relic/relic-atelier/internal/domain"
	"github.com/futures-relic/relic-atelier/internal/logger"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func TestOwnedTemplateIDs(t *testing.T) {
	inventory := []domain.NFTAsset{
		{AssetID: "11", TemplateID: "100"},
		{AssetID: "12", TemplateID: "100"},
		{AssetID: "13", TemplateID: "200"},
		{AssetID: "14"}, // missing template id is skipped
	}

	owned := OwnedTemplateIDs(inventory)

	assert.Len(t, owned, 2)
	assert.True(t, owned["100"])
	assert.True(t, owned["200"])
}

func TestIsUnlocked(t *testing.T) {
	tests := []struct {
		name     string
		scene    domain.StoryScene
		owned    map[string]bool
		progress *domain.UserProgress
		expected bool
	}{
		{
			name:     "no requirements always unlocked",
			scene:    domain.StoryScene{ID: "scene_1"},
			owned:    map[string]bool{},
			expected: true,
		},
		{
			name:     "all required templates owned",
			scene:    domain.StoryScene{ID: "scene_2", RequiredNFTs: []string{"100", "200"}},
			owned:    map[string]bool{"100": true, "200": true},
			expected: true,
		},
		{
			name:     "one required template missing",
			scene:    domain.StoryScene{ID: "scene_2", RequiredNFTs: []string{"100", "200"}},
			owned:    map[string]bool{"100": true},
			expected: false,
		},
		{
			name:  "ratchet: recorded unlock wins over lost ownership",
			scene: domain.StoryScene{ID: "scene_2", RequiredNFTs: []string{"100"}},
			owned: map[string]bool{},
			progress: &domain.UserProgress{
				AccountName:    "ancientrelic",
				UnlockedScenes: []string{"scene_2"},
			},
			expected: true,
		},
		{
			name:     "nil progress",
			scene:    domain.StoryScene{ID: "scene_2", RequiredNFTs: []string{"100"}},
			owned:    map[string]bool{"100": true},
			progress: nil,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsUnlocked(tt.scene, tt.owned, tt.progress))
		})
	}
}

func TestEvaluateScenes(t *testing.T) {
	scenes := []domain.StoryScene{
		{ID: "scene_1"}, // starter scene, no requirements
		{ID: "scene_2", RequiredNFTs: []string{"100"}},
		{ID: "scene_3", RequiredNFTs: []string{"100", "999"}},
		{ID: "scene_4", RequiredNFTs: []string{"999"}},
	}
	owned := map[string]bool{"100": true}
	progress := &domain.UserProgress{
		AccountName:    "ancientrelic",
		UnlockedScenes: []string{"scene_4"}, // previously unlocked, NFT since transferred
	}

	evaluated, newlyUnlocked := EvaluateScenes(scenes, owned, progress)

	assert.True(t, evaluated[0].Unlocked)
	assert.True(t, evaluated[1].Unlocked)
	assert.False(t, evaluated[2].Unlocked)
	assert.True(t, evaluated[3].Unlocked)
	assert.Equal(t, []string{"scene_1", "scene_2"}, newlyUnlocked)
}
