// Package executor holds the business logic behind the REST handlers. It
// composes the fetch layer, the blend engine, and the story service so the
// transport layer stays thin.
package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/futures-relic/relic-atelier/internal/adapter"
	"github.com/futures-relic/relic-atelier/internal/api/shared/dto"
	apierrors "github.com/futures-relic/relic-atelier/internal/api/shared/errors"
	"github.com/futures-relic/relic-atelier/internal/blend"
	"github.com/futures-relic/relic-atelier/internal/cache"
	"github.com/futures-relic/relic-atelier/internal/catalog"
	"github.com/futures-relic/relic-atelier/internal/domain"
	"github.com/futures-relic/relic-atelier/internal/providers/atomicassets"
	"github.com/futures-relic/relic-atelier/internal/store"
	"github.com/futures-relic/relic-atelier/internal/story"
)

// Config holds executor configuration
type Config struct {
	// Collection is the AtomicAssets collection every query is scoped to
	Collection string
}

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// GetInventory returns the account's assets in the configured collection
	GetInventory(ctx context.Context, account string) (*dto.AssetListResponse, error)

	// GetRecommendations returns the ranked blend list plus the next action
	GetRecommendations(ctx context.Context, account string) (*dto.RecommendationsResponse, error)

	// GetCatalog returns the normalized merged blend catalog, optionally
	// grouped by storyline
	GetCatalog(ctx context.Context, grouped bool) (*dto.BlendListResponse, error)

	// GetScenes returns the scene list with unlock state. With a non-empty
	// account, newly satisfied unlocks are persisted.
	GetScenes(ctx context.Context, account string) (*dto.ScenesResponse, error)

	// GetProgress returns the stored story progress of an account
	GetProgress(ctx context.Context, account string) (*dto.ProgressResponse, error)

	// UnlockScene records a scene as unlocked for the account
	UnlockScene(ctx context.Context, account, sceneID string) (*dto.ProgressResponse, error)

	// CompleteBlend credits the account with a completed blend
	CompleteBlend(ctx context.Context, account, blendID string) (*dto.ProgressResponse, error)

	// GetTemplates returns all templates of the configured collection
	GetTemplates(ctx context.Context) (*dto.TemplateListResponse, error)

	// GetTemplate returns one template, served from cache when fresh
	GetTemplate(ctx context.Context, templateID string) (*dto.TemplateResponse, error)

	// GetCollectionStats returns aggregate counts for the collection
	GetCollectionStats(ctx context.Context) (*dto.StatsResponse, error)

	// CreateScene stores a new story scene (admin)
	CreateScene(ctx context.Context, req dto.CreateSceneRequest) (*dto.SceneResponse, error)

	// UpdateScene replaces an existing story scene (admin)
	UpdateScene(ctx context.Context, sceneID string, req dto.UpdateSceneRequest) (*dto.SceneResponse, error)

	// DeleteScene removes a story scene (admin)
	DeleteScene(ctx context.Context, sceneID string) error
}

type executor struct {
	config    Config
	assets    atomicassets.Client
	catalog   *catalog.Fetcher
	templates cache.TemplateCache
	story     *story.Service
	scenes    store.SceneStore
	clock     adapter.Clock
}

// NewExecutor creates the executor behind the API surface
func NewExecutor(
	cfg Config,
	assets atomicassets.Client,
	catalogFetcher *catalog.Fetcher,
	templates cache.TemplateCache,
	storyService *story.Service,
	scenes store.SceneStore,
	clock adapter.Clock,
) Executor {
	return &executor{
		config:    cfg,
		assets:    assets,
		catalog:   catalogFetcher,
		templates: templates,
		story:     storyService,
		scenes:    scenes,
		clock:     clock,
	}
}

func (e *executor) GetInventory(ctx context.Context, account string) (*dto.AssetListResponse, error) {
	assets, err := e.assets.GetAssets(ctx, account, e.config.Collection)
	if err != nil {
		return nil, apierrors.NewUpstreamError("Failed to fetch inventory", err.Error())
	}

	return &dto.AssetListResponse{
		Account: account,
		Total:   len(assets),
		Assets:  assets,
	}, nil
}

func (e *executor) GetRecommendations(ctx context.Context, account string) (*dto.RecommendationsResponse, error) {
	inventory, err := e.assets.GetAssets(ctx, account, e.config.Collection)
	if err != nil {
		return nil, apierrors.NewUpstreamError("Failed to fetch inventory", err.Error())
	}

	recipes, err := e.catalog.FetchCatalog(ctx, e.config.Collection)
	if err != nil {
		return nil, apierrors.NewUpstreamError("Failed to fetch blend catalog", err.Error())
	}

	progress, err := e.story.GetProgress(ctx, account)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to load progress", err.Error())
	}

	completed := make(map[string]bool, len(progress.CompletedBlends))
	for _, blendID := range progress.CompletedBlends {
		completed[blendID] = true
	}

	recommendations := blend.Rank(recipes, inventory, completed, e.clock.Now())

	return &dto.RecommendationsResponse{
		Account:         account,
		Recommendations: recommendations,
		NextAction:      blend.NextAction(recommendations),
	}, nil
}

func (e *executor) GetCatalog(ctx context.Context, grouped bool) (*dto.BlendListResponse, error) {
	recipes, err := e.catalog.FetchCatalog(ctx, e.config.Collection)
	if err != nil {
		return nil, apierrors.NewUpstreamError("Failed to fetch blend catalog", err.Error())
	}

	resp := &dto.BlendListResponse{Total: len(recipes)}
	if grouped {
		resp.Storylines = blend.GroupByStoryline(recipes)
	} else {
		resp.Blends = recipes
	}
	return resp, nil
}

func (e *executor) GetScenes(ctx context.Context, account string) (*dto.ScenesResponse, error) {
	scenes, err := e.scenes.ListScenes(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to list scenes", err.Error())
	}

	// anonymous callers see unlock state without ownership or history
	if account == "" {
		evaluated, _ := story.EvaluateScenes(scenes, nil, nil)
		return &dto.ScenesResponse{Scenes: evaluated}, nil
	}

	inventory, err := e.assets.GetAssets(ctx, account, e.config.Collection)
	if err != nil {
		return nil, apierrors.NewUpstreamError("Failed to fetch inventory", err.Error())
	}

	evaluated, progress, err := e.story.SyncScenes(ctx, account, scenes, inventory)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to sync scenes", err.Error())
	}

	return &dto.ScenesResponse{
		Account:  account,
		Scenes:   evaluated,
		Progress: progress,
	}, nil
}

func (e *executor) GetProgress(ctx context.Context, account string) (*dto.ProgressResponse, error) {
	progress, err := e.story.GetProgress(ctx, account)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to load progress", err.Error())
	}
	return &dto.ProgressResponse{Progress: progress}, nil
}

func (e *executor) UnlockScene(ctx context.Context, account, sceneID string) (*dto.ProgressResponse, error) {
	if _, err := e.scenes.GetScene(ctx, sceneID); err != nil {
		if errors.Is(err, domain.ErrSceneNotFound) {
			return nil, apierrors.NewNotFoundError("Scene not found", sceneID)
		}
		return nil, apierrors.NewDatabaseError("Failed to load scene", err.Error())
	}

	progress, err := e.story.UnlockScene(ctx, account, sceneID)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to unlock scene", err.Error())
	}
	return &dto.ProgressResponse{Progress: progress}, nil
}

func (e *executor) CompleteBlend(ctx context.Context, account, blendID string) (*dto.ProgressResponse, error) {
	progress, err := e.story.CompleteBlend(ctx, account, blendID)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to record blend completion", err.Error())
	}
	return &dto.ProgressResponse{Progress: progress}, nil
}

func (e *executor) GetTemplates(ctx context.Context) (*dto.TemplateListResponse, error) {
	templates, err := e.assets.GetTemplates(ctx, e.config.Collection)
	if err != nil {
		return nil, apierrors.NewUpstreamError("Failed to fetch templates", err.Error())
	}

	// warm the cache so per-template lookups skip the API
	for i := range templates {
		info := templates[i]
		e.templates.Set(info.TemplateID, &info)
	}

	return &dto.TemplateListResponse{
		Total:     len(templates),
		Templates: templates,
	}, nil
}

func (e *executor) GetTemplate(ctx context.Context, templateID string) (*dto.TemplateResponse, error) {
	if info, ok := e.templates.Get(templateID); ok {
		return &dto.TemplateResponse{Template: info}, nil
	}

	info, err := e.assets.GetTemplate(ctx, e.config.Collection, templateID)
	if err != nil {
		return nil, apierrors.NewUpstreamError("Failed to fetch template", err.Error())
	}

	e.templates.Set(templateID, info)
	return &dto.TemplateResponse{Template: info}, nil
}

func (e *executor) GetCollectionStats(ctx context.Context) (*dto.StatsResponse, error) {
	stats, err := e.assets.GetCollectionStats(ctx, e.config.Collection)
	if err != nil {
		return nil, apierrors.NewUpstreamError("Failed to fetch collection stats", err.Error())
	}

	return &dto.StatsResponse{
		Collection: e.config.Collection,
		Stats:      stats,
	}, nil
}

func (e *executor) CreateScene(ctx context.Context, req dto.CreateSceneRequest) (*dto.SceneResponse, error) {
	scene := sceneFromRequest(req.ID, req.Title, req.Description, req.Content, req.RequiredNFTs, req.Order, req.ImageURL, req.BlendID, req.CinematicEffect)
	if scene.ID == "" {
		scene.ID = fmt.Sprintf("scene_%s", uuid.NewString())
	}

	if err := e.scenes.CreateScene(ctx, scene); err != nil {
		if errors.Is(err, domain.ErrSceneAlreadyExists) {
			return nil, apierrors.NewConflictError("Scene already exists", scene.ID)
		}
		return nil, apierrors.NewDatabaseError("Failed to create scene", err.Error())
	}

	return &dto.SceneResponse{Scene: scene}, nil
}

func (e *executor) UpdateScene(ctx context.Context, sceneID string, req dto.UpdateSceneRequest) (*dto.SceneResponse, error) {
	scene := sceneFromRequest(sceneID, req.Title, req.Description, req.Content, req.RequiredNFTs, req.Order, req.ImageURL, req.BlendID, req.CinematicEffect)

	if err := e.scenes.UpdateScene(ctx, scene); err != nil {
		if errors.Is(err, domain.ErrSceneNotFound) {
			return nil, apierrors.NewNotFoundError("Scene not found", sceneID)
		}
		return nil, apierrors.NewDatabaseError("Failed to update scene", err.Error())
	}

	return &dto.SceneResponse{Scene: scene}, nil
}

func (e *executor) DeleteScene(ctx context.Context, sceneID string) error {
	if err := e.scenes.DeleteScene(ctx, sceneID); err != nil {
		if errors.Is(err, domain.ErrSceneNotFound) {
			return apierrors.NewNotFoundError("Scene not found", sceneID)
		}
		return apierrors.NewDatabaseError("Failed to delete scene", err.Error())
	}
	return nil
}

func sceneFromRequest(id, title, description, content string, requiredNFTs []string, order int, imageURL, blendID, effect string) *domain.StoryScene {
	if requiredNFTs == nil {
		requiredNFTs = []string{}
	}
	return &domain.StoryScene{
		ID:              id,
		Title:           title,
		Description:     description,
		Content:         content,
		RequiredNFTs:    requiredNFTs,
		Order:           order,
		ImageURL:        imageURL,
		BlendID:         blendID,
		CinematicEffect: domain.CinematicEffect(effect),
	}
}
