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

const blenderizerRowLimit = 1000

// blenderizerRow is the wire shape of one blenderizerx "blends" table row.
// Unlike blend.nefty, ingredients are plain objects and activity is an
// explicit flag.
type blenderizerRow struct {
	BlendID        json.Number             `json:"blend_id"`
	CollectionName string                  `json:"collection_name"`
	StartTime      int64                   `json:"start_time"`
	EndTime        int64                   `json:"end_time"`
	Max            int64                   `json:"max"`
	UseCount       int64                   `json:"use_count"`
	DisplayData    string                  `json:"display_data"`
	IsActive       *bool                   `json:"is_active"`
	Ingredients    []blenderizerIngredient `json:"ingredients"`
}

type blenderizerIngredient struct {
	TemplateID     json.Number `json:"template_id"`
	SchemaName     string      `json:"schema_name"`
	CollectionName string      `json:"collection_name"`
	Amount         int         `json:"amount"`
}

// blenderizerSource reads the legacy blenderizerx contract
type blenderizerSource struct {
	chain waxchain.Client
}

// NewBlenderizerSource creates a Source for the blenderizerx contract
func NewBlenderizerSource(chain waxchain.Client) Source {
	return &blenderizerSource{chain: chain}
}

func (s *blenderizerSource) Contract() domain.BlendContract {
	return domain.ContractBlenderizer
}

// FetchRecipes returns the contract's recipes for the collection. A row
// without an is_active flag counts as active; only an explicit false
// deactivates it.
func (s *blenderizerSource) FetchRecipes(ctx context.Context, collection string) ([]domain.BlendRecipe, error) {
	query := waxchain.TableQuery{
		Code:  string(domain.ContractBlenderizer),
		Scope: string(domain.ContractBlenderizer),
		Table: "blends",
		Limit: blenderizerRowLimit,
	}

	rawRows, err := s.chain.FetchAllRows(ctx, query, waxchain.AdvancePastID("blend_id"))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blenderizerx rows: %w", err)
	}

	var recipes []domain.BlendRecipe
	for _, raw := range rawRows {
		var row blenderizerRow
		if err := json.Unmarshal(raw, &row); err != nil {
			logger.WarnCtx(ctx, "skipping undecodable blenderizerx row", zap.Error(err))
			continue
		}
		if row.CollectionName != collection {
			continue
		}

		ingredients := make([]domain.BlendIngredient, 0, len(row.Ingredients))
		for _, ing := range row.Ingredients {
			amount := ing.Amount
			if amount <= 0 {
				amount = 1
			}
			ingredients = append(ingredients, domain.BlendIngredient{
				TemplateID:     ing.TemplateID.String(),
				SchemaName:     ing.SchemaName,
				CollectionName: ing.CollectionName,
				Amount:         amount,
			})
		}

		recipes = append(recipes, domain.BlendRecipe{
			BlendID:        row.BlendID.String(),
			Contract:       domain.ContractBlenderizer,
			CollectionName: row.CollectionName,
			IsActive:       row.IsActive == nil || *row.IsActive,
			StartTime:      row.StartTime,
			EndTime:        row.EndTime,
			Max:            row.Max,
			UseCount:       row.UseCount,
			Ingredients:    ingredients,
			DisplayData:    row.DisplayData,
			DisplayName:    domain.ParseDisplayName(row.DisplayData),
		})
	}

	return recipes, nil
}
