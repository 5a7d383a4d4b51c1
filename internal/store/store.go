package store

import (
	"context"

	"github.com/futures-relic/relic-atelier/internal/domain"
)

// ProgressStore is the persistence port for per-account story progress.
// Load returns nil (no error) when the account has no stored progress yet.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=ProgressStore=MockProgressStore,SceneStore=MockSceneStore
type ProgressStore interface {
	// Load retrieves the stored progress for an account, or nil if absent
	Load(ctx context.Context, accountName string) (*domain.UserProgress, error)
	// Save upserts the progress for its account
	Save(ctx context.Context, progress *domain.UserProgress) error
}

// SceneStore is the persistence port for the story scene catalog.
// Scenes are content-managed (admin editing) rather than derived.
type SceneStore interface {
	// ListScenes returns all scenes ordered by their display order
	ListScenes(ctx context.Context) ([]domain.StoryScene, error)
	// GetScene retrieves a scene by id, ErrSceneNotFound when absent
	GetScene(ctx context.Context, sceneID string) (*domain.StoryScene, error)
	// CreateScene stores a new scene, ErrSceneAlreadyExists on id collision
	CreateScene(ctx context.Context, scene *domain.StoryScene) error
	// UpdateScene replaces an existing scene, ErrSceneNotFound when absent
	UpdateScene(ctx context.Context, scene *domain.StoryScene) error
	// DeleteScene removes a scene by id, ErrSceneNotFound when absent
	DeleteScene(ctx context.Context, sceneID string) error
}

// Store bundles the persistence ports the API server needs
type Store interface {
	ProgressStore
	SceneStore
}
