package story

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/futures-relic/relic-atelier/internal/adapter"
	"github.com/futures-relic/relic-atelier/internal/domain"
	"github.com/futures-relic/relic-atelier/internal/logger"
	"github.com/futures-relic/relic-atelier/internal/store"
)

// Service mutates per-account progress through the persistence port.
// All mutations are ratchets: ids are only ever added to the progress sets.
type Service struct {
	progress store.ProgressStore
	clock    adapter.Clock
}

// NewService creates a new story service
func NewService(progress store.ProgressStore, clock adapter.Clock) *Service {
	return &Service{
		progress: progress,
		clock:    clock,
	}
}

// GetProgress loads the stored progress for an account, returning fresh
// empty progress when none exists yet.
func (s *Service) GetProgress(ctx context.Context, accountName string) (*domain.UserProgress, error) {
	progress, err := s.progress.Load(ctx, accountName)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		progress = domain.NewUserProgress(accountName)
	}
	return progress, nil
}

// UnlockScene records a scene as unlocked for the account
func (s *Service) UnlockScene(ctx context.Context, accountName, sceneID string) (*domain.UserProgress, error) {
	progress, err := s.GetProgress(ctx, accountName)
	if err != nil {
		return nil, err
	}

	if progress.HasUnlocked(sceneID) {
		return progress, nil
	}

	progress.UnlockedScenes = append(progress.UnlockedScenes, sceneID)
	progress.LastUpdated = s.clock.Now()

	if err := s.progress.Save(ctx, progress); err != nil {
		return nil, fmt.Errorf("failed to persist scene unlock: %w", err)
	}
	return progress, nil
}

// CompleteBlend credits the account with a completed blend
func (s *Service) CompleteBlend(ctx context.Context, accountName, blendID string) (*domain.UserProgress, error) {
	progress, err := s.GetProgress(ctx, accountName)
	if err != nil {
		return nil, err
	}

	if progress.HasCompleted(blendID) {
		return progress, nil
	}

	progress.CompletedBlends = append(progress.CompletedBlends, blendID)
	progress.LastUpdated = s.clock.Now()

	if err := s.progress.Save(ctx, progress); err != nil {
		return nil, fmt.Errorf("failed to persist blend completion: %w", err)
	}
	return progress, nil
}

// SyncScenes evaluates the scene list against an inventory snapshot and
// persists any newly satisfied unlocks so the ratchet holds even after the
// qualifying NFTs leave the wallet.
func (s *Service) SyncScenes(ctx context.Context, accountName string, scenes []domain.StoryScene, inventory []domain.NFTAsset) ([]domain.StoryScene, *domain.UserProgress, error) {
	progress, err := s.GetProgress(ctx, accountName)
	if err != nil {
		return nil, nil, err
	}

	owned := OwnedTemplateIDs(inventory)
	evaluated, newlyUnlocked := EvaluateScenes(scenes, owned, progress)

	if len(newlyUnlocked) > 0 {
		progress.UnlockedScenes = append(progress.UnlockedScenes, newlyUnlocked...)
		progress.LastUpdated = s.clock.Now()
		if err := s.progress.Save(ctx, progress); err != nil {
			return nil, nil, fmt.Errorf("failed to persist scene unlocks: %w", err)
		}
		logger.InfoCtx(ctx, "unlocked scenes",
			zap.String("account", accountName),
			zap.Strings("scene_ids", newlyUnlocked),
		)
	}

	return evaluated, progress, nil
}
