package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/futures-relic/relic-atelier/internal/domain"
)

const (
	progressKeyPrefix = "progress:"
	scenesHashKey     = "story_scenes"
)

// redisStore is a Redis-backed Store implementation. Progress lives as JSON
// blobs under progress:<account>; the scene catalog lives in one hash keyed
// by scene id.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis store and verifies connectivity
func NewRedisStore(ctx context.Context, addr, password string, db int) (Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &redisStore{client: client}, nil
}

func (s *redisStore) Load(ctx context.Context, accountName string) (*domain.UserProgress, error) {
	data, err := s.client.Get(ctx, progressKeyPrefix+accountName).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}

	var progress domain.UserProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		return nil, fmt.Errorf("failed to decode progress: %w", err)
	}
	return &progress, nil
}

func (s *redisStore) Save(ctx context.Context, progress *domain.UserProgress) error {
	data, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("failed to encode progress: %w", err)
	}

	if err := s.client.Set(ctx, progressKeyPrefix+progress.AccountName, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

func (s *redisStore) ListScenes(ctx context.Context) ([]domain.StoryScene, error) {
	entries, err := s.client.HGetAll(ctx, scenesHashKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list scenes: %w", err)
	}

	scenes := make([]domain.StoryScene, 0, len(entries))
	for _, raw := range entries {
		var scene domain.StoryScene
		if err := json.Unmarshal([]byte(raw), &scene); err != nil {
			return nil, fmt.Errorf("failed to decode scene: %w", err)
		}
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

func (s *redisStore) GetScene(ctx context.Context, sceneID string) (*domain.StoryScene, error) {
	raw, err := s.client.HGet(ctx, scenesHashKey, sceneID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSceneNotFound
		}
		return nil, fmt.Errorf("failed to get scene: %w", err)
	}

	var scene domain.StoryScene
	if err := json.Unmarshal([]byte(raw), &scene); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	return &scene, nil
}

func (s *redisStore) CreateScene(ctx context.Context, scene *domain.StoryScene) error {
	data, err := json.Marshal(scene)
	if err != nil {
		return fmt.Errorf("failed to encode scene: %w", err)
	}

	created, err := s.client.HSetNX(ctx, scenesHashKey, scene.ID, data).Result()
	if err != nil {
		return fmt.Errorf("failed to create scene: %w", err)
	}
	if !created {
		return domain.ErrSceneAlreadyExists
	}
	return nil
}

func (s *redisStore) UpdateScene(ctx context.Context, scene *domain.StoryScene) error {
	exists, err := s.client.HExists(ctx, scenesHashKey, scene.ID).Result()
	if err != nil {
		return fmt.Errorf("failed to check scene: %w", err)
	}
	if !exists {
		return domain.ErrSceneNotFound
	}

	data, err := json.Marshal(scene)
	if err != nil {
		return fmt.Errorf("failed to encode scene: %w", err)
	}
	if err := s.client.HSet(ctx, scenesHashKey, scene.ID, data).Err(); err != nil {
		return fmt.Errorf("failed to update scene: %w", err)
	}
	return nil
}

func (s *redisStore) DeleteScene(ctx context.Context, sceneID string) error {
	removed, err := s.client.HDel(ctx, scenesHashKey, sceneID).Result()
	if err != nil {
		return fmt.Errorf("failed to delete scene: %w", err)
	}
	if removed == 0 {
		return domain.ErrSceneNotFound
	}
	return nil
}
