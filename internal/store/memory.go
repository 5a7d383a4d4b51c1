package store

import (
	"context"
	"sort"
	"sync"

	"github.com/futures-relic/relic-atelier/internal/domain"
)

// memoryStore is an in-memory Store implementation. It backs tests and the
// default zero-config deployment; data does not survive a restart.
type memoryStore struct {
	mu       sync.RWMutex
	progress map[string]domain.UserProgress
	scenes   map[string]domain.StoryScene
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() Store {
	return &memoryStore{
		progress: make(map[string]domain.UserProgress),
		scenes:   make(map[string]domain.StoryScene),
	}
}

func (s *memoryStore) Load(_ context.Context, accountName string) (*domain.UserProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	progress, ok := s.progress[accountName]
	if !ok {
		return nil, nil
	}
	copied := progress
	copied.UnlockedScenes = append([]string(nil), progress.UnlockedScenes...)
	copied.CompletedBlends = append([]string(nil), progress.CompletedBlends...)
	return &copied, nil
}

func (s *memoryStore) Save(_ context.Context, progress *domain.UserProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *progress
	copied.UnlockedScenes = append([]string(nil), progress.UnlockedScenes...)
	copied.CompletedBlends = append([]string(nil), progress.CompletedBlends...)
	s.progress[progress.AccountName] = copied
	return nil
}

func (s *memoryStore) ListScenes(_ context.Context) ([]domain.StoryScene, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	scenes := make([]domain.StoryScene, 0, len(s.scenes))
	for _, scene := range s.scenes {
		scenes = append(scenes, scene)
	}
	sort.SliceStable(scenes, func(i, j int) bool {
		if scenes[i].Order != scenes[j].Order {
			return scenes[i].Order < scenes[j].Order
		}
		return scenes[i].ID < scenes[j].ID
	})
	return scenes, nil
}

func (s *memoryStore) GetScene(_ context.Context, sceneID string) (*domain.StoryScene, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	scene, ok := s.scenes[sceneID]
	if !ok {
		return nil, domain.ErrSceneNotFound
	}
	return &scene, nil
}

func (s *memoryStore) CreateScene(_ context.Context, scene *domain.StoryScene) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.scenes[scene.ID]; ok {
		return domain.ErrSceneAlreadyExists
	}
	s.scenes[scene.ID] = *scene
	return nil
}

func (s *memoryStore) UpdateScene(_ context.Context, scene *domain.StoryScene) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.scenes[scene.ID]; !ok {
		return domain.ErrSceneNotFound
	}
	s.scenes[scene.ID] = *scene
	return nil
}

func (s *memoryStore) DeleteScene(_ context.Context, sceneID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.scenes[sceneID]; !ok {
		return domain.ErrSceneNotFound
	}
	delete(s.scenes, sceneID)
	return nil
}
