package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/futures-relic/relic-atelier/internal/domain"
	"github.com/futures-relic/relic-atelier/internal/logger"
)

// sourceResult carries one source's outcome through the worker pool
type sourceResult struct {
	contract domain.BlendContract
	recipes  []domain.BlendRecipe
	err      error
}

// Fetcher merges recipes from every configured contract source. Sources
// are queried concurrently; one contract being down must not blank the
// whole catalog, so a failed source is logged and skipped unless every
// source fails.
type Fetcher struct {
	sources []Source
	pool    pond.ResultPool[*sourceResult]
}

// NewFetcher creates a Fetcher over the given sources
func NewFetcher(sources ...Source) *Fetcher {
	workers := len(sources)
	if workers == 0 {
		workers = 1
	}
	return &Fetcher{
		sources: sources,
		pool:    pond.NewResultPool[*sourceResult](workers),
	}
}

// FetchCatalog returns the merged recipe list for a collection. Order is
// deterministic: recipes appear grouped by source in configuration order.
func (f *Fetcher) FetchCatalog(ctx context.Context, collection string) ([]domain.BlendRecipe, error) {
	if len(f.sources) == 0 {
		return nil, errors.New("no blend sources configured")
	}

	tasks := make([]pond.Result[*sourceResult], len(f.sources))
	for i, source := range f.sources {
		source := source
		tasks[i] = f.pool.Submit(func() *sourceResult {
			recipes, err := source.FetchRecipes(ctx, collection)
			return &sourceResult{
				contract: source.Contract(),
				recipes:  recipes,
				err:      err,
			}
		})
	}

	var recipes []domain.BlendRecipe
	var failures int
	var lastErr error

	for _, task := range tasks {
		result, err := task.Wait()
		if err != nil {
			// pool-level failure (panic in the task)
			failures++
			lastErr = err
			continue
		}
		if result.err != nil {
			failures++
			lastErr = result.err
			logger.ErrorCtx(ctx, fmt.Errorf("blend source failed: %w", result.err),
				zap.String("contract", string(result.contract)),
			)
			continue
		}
		recipes = append(recipes, result.recipes...)
	}

	if failures == len(f.sources) {
		return nil, fmt.Errorf("all blend sources failed: %w", lastErr)
	}

	logger.DebugCtx(ctx, "fetched blend catalog",
		zap.String("collection", collection),
		zap.Int("recipes", len(recipes)),
		zap.Int("failed_sources", failures),
	)
	return recipes, nil
}

// Stop drains the worker pool. Call on shutdown.
func (f *Fetcher) Stop() {
	f.pool.StopAndWait()
}
