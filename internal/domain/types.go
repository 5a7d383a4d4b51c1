package domain

import (
	"encoding/json"
	"time"
)

// BlendContract identifies the on-chain program a recipe was issued by
type BlendContract string

const (
	ContractNefty       BlendContract = "blend.nefty"
	ContractBlenderizer BlendContract = "blenderizerx"
)

// IsValidContract checks if a contract is one of the supported blend issuers
func IsValidContract(contract BlendContract) bool {
	return contract == ContractNefty || contract == ContractBlenderizer
}

// NFTAsset represents one owned non-fungible item ("relic").
// AssetID is the stable identity of the physical item and the unit of
// allocation: the same AssetID may never be counted toward two different
// ingredient slots within one recipe evaluation.
type NFTAsset struct {
	AssetID        string            `json:"asset_id"`
	TemplateID     string            `json:"template_id"`
	SchemaName     string            `json:"schema_name"`
	CollectionName string            `json:"collection_name"`
	Name           string            `json:"name,omitempty"`
	Image          string            `json:"img,omitempty"`
	Data           map[string]string `json:"data,omitempty"`
}

// BlendIngredient is one requirement line within a recipe. Exactly one of
// TemplateID, SchemaName, CollectionName acts as the matching key; template
// is the most specific, collection the least. Whichever is present is the
// one and only discriminator, there is no fallback chaining.
type BlendIngredient struct {
	TemplateID     string `json:"template_id,omitempty"`
	SchemaName     string `json:"schema_name,omitempty"`
	CollectionName string `json:"collection_name,omitempty"`
	Amount         int    `json:"amount"`
}

// MatchKind identifies which discriminator field an ingredient matches on
type MatchKind string

const (
	MatchTemplate   MatchKind = "template"
	MatchSchema     MatchKind = "schema"
	MatchCollection MatchKind = "collection"
	MatchNone       MatchKind = "none"
)

// Kind returns the single most specific discriminator present on the
// ingredient, or MatchNone when no key field is set.
func (i BlendIngredient) Kind() MatchKind {
	switch {
	case i.TemplateID != "":
		return MatchTemplate
	case i.SchemaName != "":
		return MatchSchema
	case i.CollectionName != "":
		return MatchCollection
	default:
		return MatchNone
	}
}

// Matches reports whether the asset satisfies the ingredient's matching key
func (i BlendIngredient) Matches(asset NFTAsset) bool {
	switch i.Kind() {
	case MatchTemplate:
		return asset.TemplateID == i.TemplateID
	case MatchSchema:
		return asset.SchemaName == i.SchemaName
	case MatchCollection:
		return asset.CollectionName == i.CollectionName
	default:
		return false
	}
}

// BlendRecipe is a recipe the blockchain will execute if its ingredients are
// supplied. Recipes from both supported contracts are normalized into this
// single representation before anything else touches them.
type BlendRecipe struct {
	BlendID        string            `json:"blend_id"`
	Contract       BlendContract     `json:"contract"`
	CollectionName string            `json:"collection_name"`
	IsActive       bool              `json:"is_active"`
	StartTime      int64             `json:"start_time"` // epoch seconds
	EndTime        int64             `json:"end_time"`   // epoch seconds, 0 = no expiry
	Max            int64             `json:"max"`        // global execution cap, 0 = unlimited
	UseCount       int64             `json:"use_count"`
	Ingredients    []BlendIngredient `json:"ingredients"`
	DisplayData    string            `json:"display_data,omitempty"`
	DisplayName    string            `json:"display_name,omitempty"`
}

// Eligible reports whether the recipe may be recommended at the given time:
// active, started, and not expired (EndTime 0 means no expiry).
func (r BlendRecipe) Eligible(now time.Time) bool {
	ts := now.Unix()
	if !r.IsActive {
		return false
	}
	if r.StartTime > ts {
		return false
	}
	if r.EndTime != 0 && r.EndTime <= ts {
		return false
	}
	return true
}

// TotalRequired sums every ingredient's amount. Non-positive amounts are
// trivially satisfied and contribute nothing.
func (r BlendRecipe) TotalRequired() int {
	var total int
	for _, ing := range r.Ingredients {
		if ing.Amount > 0 {
			total += ing.Amount
		}
	}
	return total
}

// displayData is the subset of the opaque display_data metadata we care about
type displayData struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Storyline string `json:"storyline"`
}

// ParseDisplayName extracts a human-readable name from serialized
// display_data. Parse failures degrade to an empty name, never an error:
// the metadata originates from untrusted third-party responses.
func ParseDisplayName(raw string) string {
	if raw == "" {
		return ""
	}
	var dd displayData
	if err := json.Unmarshal([]byte(raw), &dd); err != nil {
		return ""
	}
	return dd.Name
}

// ParseStoryline extracts a storyline/category grouping key from serialized
// display_data, falling back from category to storyline.
func ParseStoryline(raw string) string {
	if raw == "" {
		return ""
	}
	var dd displayData
	if err := json.Unmarshal([]byte(raw), &dd); err != nil {
		return ""
	}
	if dd.Category != "" {
		return dd.Category
	}
	return dd.Storyline
}

// MatchResult is the per-ingredient outcome of reconciliation
type MatchResult struct {
	Ingredient BlendIngredient `json:"ingredient"`
	Owned      int             `json:"owned"`
	Needed     int             `json:"needed"`
}

// Deficit returns how many matching units are still missing
func (m MatchResult) Deficit() int {
	if d := m.Needed - m.Owned; d > 0 {
		return d
	}
	return 0
}

// BlendRecommendation wraps a recipe with its reconciliation outcome and a
// ranking score. Higher priority means more recommended; scores above 100
// are possible when scarcity/urgency bonuses apply to a completable recipe.
type BlendRecommendation struct {
	Recipe             BlendRecipe   `json:"recipe"`
	CanComplete        bool          `json:"can_complete"`
	MissingIngredients []MatchResult `json:"missing_ingredients"`
	Priority           float64       `json:"priority"`
	Reason             string        `json:"reason"`
}

// ActionKind is the type of the single suggested next action
type ActionKind string

const (
	ActionCompleteBlend ActionKind = "complete_blend"
	ActionAcquireItems  ActionKind = "acquire_items"
	ActionExplore       ActionKind = "explore"
)

// ActionSummary is the single "best next action" derived from a ranked
// recommendation list.
type ActionSummary struct {
	Action         ActionKind           `json:"action"`
	Description    string               `json:"description"`
	Recommendation *BlendRecommendation `json:"recommendation,omitempty"`
}

// UserProgress is the per-account persisted story state. Unlock state is a
// ratchet: once a scene id is recorded here it stays unlocked even if the
// qualifying NFTs are later transferred away.
type UserProgress struct {
	AccountName     string    `json:"account_name"`
	UnlockedScenes  []string  `json:"unlocked_scenes"`
	CompletedBlends []string  `json:"completed_blends"`
	LastUpdated     time.Time `json:"last_updated"`
}

// NewUserProgress returns empty progress for an account
func NewUserProgress(accountName string) *UserProgress {
	return &UserProgress{
		AccountName:     accountName,
		UnlockedScenes:  []string{},
		CompletedBlends: []string{},
	}
}

// HasUnlocked reports whether the scene id is recorded as unlocked
func (p *UserProgress) HasUnlocked(sceneID string) bool {
	for _, id := range p.UnlockedScenes {
		if id == sceneID {
			return true
		}
	}
	return false
}

// HasCompleted reports whether the blend id is recorded as completed
func (p *UserProgress) HasCompleted(blendID string) bool {
	for _, id := range p.CompletedBlends {
		if id == blendID {
			return true
		}
	}
	return false
}

// CinematicEffect is the presentation hint attached to a scene
type CinematicEffect string

const (
	EffectFade    CinematicEffect = "fade"
	EffectFlicker CinematicEffect = "flicker"
	EffectNone    CinematicEffect = "none"
)

// StoryScene is a narrative unit gated by NFT ownership. RequiredNFTs lists
// template ids that must ALL be owned (logical AND), unlike blend
// ingredients which may require amount>1 of a single type.
type StoryScene struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description,omitempty"`
	Content         string          `json:"content"`
	RequiredNFTs    []string        `json:"required_nfts"`
	Order           int             `json:"order"`
	Unlocked        bool            `json:"unlocked"`
	ImageURL        string          `json:"image_url,omitempty"`
	BlendID         string          `json:"blend_id,omitempty"`
	CinematicEffect CinematicEffect `json:"cinematic_effect,omitempty"`
}

// TemplateInfo is the cached human-readable metadata for a template
type TemplateInfo struct {
	TemplateID   string `json:"template_id"`
	Name         string `json:"name"`
	Image        string `json:"img"`
	MaxSupply    string `json:"max_supply,omitempty"`
	IssuedSupply string `json:"issued_supply,omitempty"`
}
