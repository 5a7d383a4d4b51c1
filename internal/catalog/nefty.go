package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/futures-relic/relic-atelier/internal/domain"
	"github.com/futures-relic/relic-atelier/internal/logger"
	"github.com/futures-relic/relic-atelier/internal/providers/waxchain"
)

// NeftyBlends table row limit matches what the contract API accepts
const neftyRowLimit = 1000

// Variant tags the blend.nefty contract uses for its ingredient union
const (
	neftyTemplateIngredient   = "TEMPLATE_INGREDIENT"
	neftySchemaIngredient     = "SCHEMA_INGREDIENT"
	neftyCollectionIngredient = "COLLECTION_INGREDIENT"
)

// neftyRow is the wire shape of one blend.nefty "blends" table row
type neftyRow struct {
	BlendID        json.Number       `json:"blend_id"`
	CollectionName string            `json:"collection_name"`
	StartTime      int64             `json:"start_time"`
	EndTime        int64             `json:"end_time"`
	Max            int64             `json:"max"`
	UseCount       int64             `json:"use_count"`
	DisplayData    string            `json:"display_data"`
	IsHidden       int               `json:"is_hidden"`
	Ingredients    []json.RawMessage `json:"ingredients"`
}

// neftyIngredientPayload is the second element of a tagged ingredient variant
type neftyIngredientPayload struct {
	TemplateID     json.Number `json:"template_id"`
	SchemaName     string      `json:"schema_name"`
	CollectionName string      `json:"collection_name"`
	Amount         int         `json:"amount"`
}

// neftySource reads the blend.nefty contract. Its rows carry explicit
// start/end times but no activity flag, and its ingredients are tagged
// variants of the form ["TEMPLATE_INGREDIENT", {...}].
type neftySource struct {
	chain waxchain.Client
}

// NewNeftySource creates a Source for the blend.nefty contract
func NewNeftySource(chain waxchain.Client) Source {
	return &neftySource{chain: chain}
}

func (s *neftySource) Contract() domain.BlendContract {
	return domain.ContractNefty
}

// FetchRecipes returns the contract's visible recipes for the collection.
// Rows flagged is_hidden are creator-suppressed and never surface.
func (s *neftySource) FetchRecipes(ctx context.Context, collection string) ([]domain.BlendRecipe, error) {
	query := waxchain.TableQuery{
		Code:  string(domain.ContractNefty),
		Scope: string(domain.ContractNefty),
		Table: "blends",
		Limit: neftyRowLimit,
	}

	rawRows, err := s.chain.FetchAllRows(ctx, query, waxchain.AdvancePastID("blend_id"))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blend.nefty rows: %w", err)
	}

	var recipes []domain.BlendRecipe
	for _, raw := range rawRows {
		var row neftyRow
		if err := json.Unmarshal(raw, &row); err != nil {
			logger.WarnCtx(ctx, "skipping undecodable blend.nefty row", zap.Error(err))
			continue
		}
		if row.CollectionName != collection || row.IsHidden == 1 {
			continue
		}

		recipes = append(recipes, domain.BlendRecipe{
			BlendID:        row.BlendID.String(),
			Contract:       domain.ContractNefty,
			CollectionName: row.CollectionName,
			// the contract has no activity flag; start/end times govern
			IsActive:    true,
			StartTime:   row.StartTime,
			EndTime:     row.EndTime,
			Max:         row.Max,
			UseCount:    row.UseCount,
			Ingredients: s.normalizeIngredients(ctx, row),
			DisplayData: row.DisplayData,
			DisplayName: domain.ParseDisplayName(row.DisplayData),
		})
	}

	return recipes, nil
}

// normalizeIngredients flattens the contract's tagged variants into the
// canonical ingredient shape. Unknown variants (fungible tokens, attribute
// requirements) normalize to a keyless ingredient, which the reconciler
// treats as unsatisfiable.
func (s *neftySource) normalizeIngredients(ctx context.Context, row neftyRow) []domain.BlendIngredient {
	ingredients := make([]domain.BlendIngredient, 0, len(row.Ingredients))

	for _, raw := range row.Ingredients {
		var variant []json.RawMessage
		if err := json.Unmarshal(raw, &variant); err != nil || len(variant) != 2 {
			logger.WarnCtx(ctx, "skipping malformed ingredient variant",
				zap.String("blend_id", row.BlendID.String()),
			)
			ingredients = append(ingredients, domain.BlendIngredient{Amount: 1})
			continue
		}

		var tag string
		if err := json.Unmarshal(variant[0], &tag); err != nil {
			ingredients = append(ingredients, domain.BlendIngredient{Amount: 1})
			continue
		}

		var payload neftyIngredientPayload
		if err := json.Unmarshal(variant[1], &payload); err != nil {
			ingredients = append(ingredients, domain.BlendIngredient{Amount: 1})
			continue
		}

		amount := payload.Amount
		if amount <= 0 {
			amount = 1
		}

		ingredient := domain.BlendIngredient{Amount: amount}
		switch tag {
		case neftyTemplateIngredient:
			ingredient.TemplateID = payload.TemplateID.String()
		case neftySchemaIngredient:
			ingredient.SchemaName = payload.SchemaName
		case neftyCollectionIngredient:
			ingredient.CollectionName = payload.CollectionName
		default:
			logger.DebugCtx(ctx, "unsupported ingredient variant",
				zap.String("blend_id", row.BlendID.String()),
				zap.String("variant", tag),
			)
		}
		ingredients = append(ingredients, ingredient)
	}

	return ingredients
}
