package story

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futures-relic/relic-atelier/internal/domain"
	"github.com/futures-relic/relic-atelier/internal/mocks"
	"github.com/futures-relic/relic-atelier/internal/store"
)

var serviceNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, store.Store) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(serviceNow).AnyTimes()

	memory := store.NewMemoryStore()
	return NewService(memory, clock), memory
}

func TestGetProgress_EmptyWhenAbsent(t *testing.T) {
	svc, _ := newTestService(t)

	progress, err := svc.GetProgress(context.Background(), "ancientrelic")
	require.NoError(t, err)
	require.NotNil(t, progress)
	assert.Equal(t, "ancientrelic", progress.AccountName)
	assert.Empty(t, progress.UnlockedScenes)
	assert.Empty(t, progress.CompletedBlends)
}

func TestUnlockScene(t *testing.T) {
	svc, memory := newTestService(t)
	ctx := context.Background()

	progress, err := svc.UnlockScene(ctx, "ancientrelic", "scene_2")
	require.NoError(t, err)
	assert.Equal(t, []string{"scene_2"}, progress.UnlockedScenes)
	assert.Equal(t, serviceNow, progress.LastUpdated)

	// idempotent on repeat
	progress, err = svc.UnlockScene(ctx, "ancientrelic", "scene_2")
	require.NoError(t, err)
	assert.Equal(t, []string{"scene_2"}, progress.UnlockedScenes)

	stored, err := memory.Load(ctx, "ancientrelic")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, []string{"scene_2"}, stored.UnlockedScenes)
}

func TestCompleteBlend(t *testing.T) {
	svc, memory := newTestService(t)
	ctx := context.Background()

	progress, err := svc.CompleteBlend(ctx, "ancientrelic", "nefty:42")
	require.NoError(t, err)
	assert.Equal(t, []string{"nefty:42"}, progress.CompletedBlends)

	progress, err = svc.CompleteBlend(ctx, "ancientrelic", "nefty:42")
	require.NoError(t, err)
	assert.Equal(t, []string{"nefty:42"}, progress.CompletedBlends)

	stored, err := memory.Load(ctx, "ancientrelic")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, []string{"nefty:42"}, stored.CompletedBlends)
}

func TestSyncScenes_PersistsRatchet(t *testing.T) {
	svc, memory := newTestService(t)
	ctx := context.Background()

	scenes := []domain.StoryScene{
		{ID: "scene_1"},
		{ID: "scene_2", RequiredNFTs: []string{"100"}},
		{ID: "scene_3", RequiredNFTs: []string{"999"}},
	}
	inventory := []domain.NFTAsset{
		{AssetID: "11", TemplateID: "100"},
	}

	evaluated, progress, err := svc.SyncScenes(ctx, "ancientrelic", scenes, inventory)
	require.NoError(t, err)
	assert.True(t, evaluated[0].Unlocked)
	assert.True(t, evaluated[1].Unlocked)
	assert.False(t, evaluated[2].Unlocked)
	assert.ElementsMatch(t, []string{"scene_1", "scene_2"}, progress.UnlockedScenes)

	// the unlocks were persisted, so they hold with an empty inventory
	evaluated, progress, err = svc.SyncScenes(ctx, "ancientrelic", scenes, nil)
	require.NoError(t, err)
	assert.True(t, evaluated[0].Unlocked)
	assert.True(t, evaluated[1].Unlocked)
	assert.False(t, evaluated[2].Unlocked)

	stored, err := memory.Load(ctx, "ancientrelic")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.ElementsMatch(t, []string{"scene_1", "scene_2"}, stored.UnlockedScenes)
}

func TestSyncScenes_NoSaveWhenNothingNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := mocks.NewMockClock(ctrl)
	progressStore := mocks.NewMockProgressStore(ctrl)

	existing := &domain.UserProgress{
		AccountName:    "ancientrelic",
		UnlockedScenes: []string{"scene_1"},
	}
	progressStore.EXPECT().Load(gomock.Any(), "ancientrelic").Return(existing, nil)
	// no Save expectation: nothing new unlocks

	svc := NewService(progressStore, clock)
	scenes := []domain.StoryScene{
		{ID: "scene_1"},
		{ID: "scene_2", RequiredNFTs: []string{"999"}},
	}

	evaluated, _, err := svc.SyncScenes(context.Background(), "ancientrelic", scenes, nil)
	require.NoError(t, err)
	assert.True(t, evaluated[0].Unlocked)
	assert.False(t, evaluated[1].Unlocked)
}
