package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futures-relic/relic-atelier/internal/domain"
)

func TestMemoryStore_ProgressRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	loaded, err := s.Load(ctx, "ancientrelic")
	require.NoError(t, err)
	assert.Nil(t, loaded)

	progress := &domain.UserProgress{
		AccountName:     "ancientrelic",
		UnlockedScenes:  []string{"scene_1"},
		CompletedBlends: []string{"42"},
		LastUpdated:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.Save(ctx, progress))

	loaded, err = s.Load(ctx, "ancientrelic")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, progress.UnlockedScenes, loaded.UnlockedScenes)
	assert.Equal(t, progress.CompletedBlends, loaded.CompletedBlends)

	// Mutating the loaded copy must not leak back into the store
	loaded.UnlockedScenes[0] = "scene_X"
	again, err := s.Load(ctx, "ancientrelic")
	require.NoError(t, err)
	assert.Equal(t, []string{"scene_1"}, again.UnlockedScenes)
}

func TestMemoryStore_SceneCRUD(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	scene := &domain.StoryScene{
		ID:           "scene_1",
		Title:        "The Discovery",
		Content:      "In the depths of an abandoned archive...",
		RequiredNFTs: []string{},
		Order:        1,
	}
	require.NoError(t, s.CreateScene(ctx, scene))
	assert.ErrorIs(t, s.CreateScene(ctx, scene), domain.ErrSceneAlreadyExists)

	got, err := s.GetScene(ctx, "scene_1")
	require.NoError(t, err)
	assert.Equal(t, "The Discovery", got.Title)

	scene.Title = "The First Relic"
	require.NoError(t, s.UpdateScene(ctx, scene))
	got, err = s.GetScene(ctx, "scene_1")
	require.NoError(t, err)
	assert.Equal(t, "The First Relic", got.Title)

	require.NoError(t, s.DeleteScene(ctx, "scene_1"))
	_, err = s.GetScene(ctx, "scene_1")
	assert.ErrorIs(t, err, domain.ErrSceneNotFound)
	assert.ErrorIs(t, s.DeleteScene(ctx, "scene_1"), domain.ErrSceneNotFound)
	assert.ErrorIs(t, s.UpdateScene(ctx, scene), domain.ErrSceneNotFound)
}

func TestMemoryStore_ListScenesOrdered(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.CreateScene(ctx, &domain.StoryScene{ID: "scene_3", Title: "C", Content: "c", Order: 3}))
	require.NoError(t, s.CreateScene(ctx, &domain.StoryScene{ID: "scene_1", Title: "A", Content: "a", Order: 1}))
	require.NoError(t, s.CreateScene(ctx, &domain.StoryScene{ID: "scene_2", Title: "B", Content: "b", Order: 2}))

	scenes, err := s.ListScenes(ctx)
	require.NoError(t, err)
	require.Len(t, scenes, 3)
	assert.Equal(t, "scene_1", scenes[0].ID)
	assert.Equal(t, "scene_2", scenes[1].ID)
	assert.Equal(t, "scene_3", scenes[2].ID)
}
