package dto

import (
	"github.com/futures-relic/relic-atelier/internal/domain"
	"github.com/futures-relic/relic-atelier/internal/providers/atomicassets"
)

// AssetListResponse is the inventory snapshot for an account
type AssetListResponse struct {
	Account string            `json:"account"`
	Total   int               `json:"total"`
	Assets  []domain.NFTAsset `json:"assets"`
}

// RecommendationsResponse carries the ranked blend list and the single
// suggested next action derived from it
type RecommendationsResponse struct {
	Account         string                       `json:"account"`
	Recommendations []domain.BlendRecommendation `json:"recommendations"`
	NextAction      domain.ActionSummary         `json:"next_action"`
}

// BlendListResponse is the normalized merged catalog. Storylines is populated
// instead of Blends when grouping is requested.
type BlendListResponse struct {
	Total      int                             `json:"total"`
	Blends     []domain.BlendRecipe            `json:"blends,omitempty"`
	Storylines map[string][]domain.BlendRecipe `json:"storylines,omitempty"`
}

// ScenesResponse lists scenes with their unlock state for an account
type ScenesResponse struct {
	Account  string               `json:"account,omitempty"`
	Scenes   []domain.StoryScene  `json:"scenes"`
	Progress *domain.UserProgress `json:"progress,omitempty"`
}

// ProgressResponse wraps the stored progress of an account
type ProgressResponse struct {
	Progress *domain.UserProgress `json:"progress"`
}

// TemplateListResponse lists cached template metadata
type TemplateListResponse struct {
	Total     int                   `json:"total"`
	Templates []domain.TemplateInfo `json:"templates"`
}

// TemplateResponse wraps one template
type TemplateResponse struct {
	Template *domain.TemplateInfo `json:"template"`
}

// StatsResponse wraps collection-level aggregate counts
type StatsResponse struct {
	Collection string                        `json:"collection"`
	Stats      *atomicassets.CollectionStats `json:"stats"`
}

// SceneResponse wraps one story scene
type SceneResponse struct {
	Scene *domain.StoryScene `json:"scene"`
}

// HealthResponse is the health check payload
type HealthResponse struct {
	Status string `json:"status"`
}
