// Package atomicassets wraps the AtomicAssets HTTP API, the read layer for
// wallet inventories and template metadata on WAX.
package atomicassets

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/futures-relic/relic-atelier/internal/adapter"
	"github.com/futures-relic/relic-atelier/internal/domain"
	"github.com/futures-relic/relic-atelier/internal/logger"
)

const (
	// pageLimit is the maximum page size the API accepts
	pageLimit = 1000

	// maxPages bounds pagination so a misbehaving endpoint cannot loop us
	maxPages = 30

	// DefaultIPFSGateway resolves raw IPFS hashes in template metadata
	DefaultIPFSGateway = "https://ipfs.io/ipfs/"
)

// assetRecord is the wire shape of one asset in an API response
type assetRecord struct {
	AssetID  string `json:"asset_id"`
	Owner    string `json:"owner"`
	Name     string `json:"name"`
	Template *struct {
		TemplateID string `json:"template_id"`
	} `json:"template"`
	Schema struct {
		SchemaName string `json:"schema_name"`
	} `json:"schema"`
	Collection struct {
		CollectionName string `json:"collection_name"`
	} `json:"collection"`
	Data map[string]interface{} `json:"data"`
}

// templateRecord is the wire shape of one template in an API response
type templateRecord struct {
	TemplateID    string                 `json:"template_id"`
	MaxSupply     string                 `json:"max_supply"`
	IssuedSupply  string                 `json:"issued_supply"`
	ImmutableData map[string]interface{} `json:"immutable_data"`
}

// CollectionStats summarizes a collection as reported by the API
type CollectionStats struct {
	Assets    string `json:"assets"`
	Templates string `json:"templates"`
	Schemas   string `json:"schemas"`
	Burned    string `json:"burned"`
}

type assetsResponse struct {
	Success bool          `json:"success"`
	Data    []assetRecord `json:"data"`
	Message string        `json:"message"`
}

type templatesResponse struct {
	Success bool             `json:"success"`
	Data    []templateRecord `json:"data"`
	Message string           `json:"message"`
}

type templateResponse struct {
	Success bool           `json:"success"`
	Data    templateRecord `json:"data"`
	Message string         `json:"message"`
}

type statsResponse struct {
	Success bool            `json:"success"`
	Data    CollectionStats `json:"data"`
	Message string          `json:"message"`
}

// Client defines an interface for AtomicAssets API operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/atomicassets_client.go -package=mocks -mock_names=Client=MockAtomicAssetsClient
type Client interface {
	// GetAssets returns every asset the account owns in the collection
	GetAssets(ctx context.Context, owner, collection string) ([]domain.NFTAsset, error)

	// GetTemplates returns all templates of the collection
	GetTemplates(ctx context.Context, collection string) ([]domain.TemplateInfo, error)

	// GetTemplate returns one template of the collection by id
	GetTemplate(ctx context.Context, collection, templateID string) (*domain.TemplateInfo, error)

	// GetCollectionStats returns aggregate counts for the collection
	GetCollectionStats(ctx context.Context, collection string) (*CollectionStats, error)
}

// atomicClient is the concrete implementation of Client
type atomicClient struct {
	baseURL     string
	ipfsGateway string
	httpClient  adapter.HTTPClient
}

// NewClient creates a new AtomicAssets API client. An empty ipfsGateway
// falls back to DefaultIPFSGateway.
func NewClient(baseURL string, ipfsGateway string, httpClient adapter.HTTPClient) Client {
	if ipfsGateway == "" {
		ipfsGateway = DefaultIPFSGateway
	}
	return &atomicClient{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		ipfsGateway: ipfsGateway,
		httpClient:  httpClient,
	}
}

// GetAssets returns every asset the account owns in the collection.
// The API pages at pageLimit records; we walk pages until a short page.
func (c *atomicClient) GetAssets(ctx context.Context, owner, collection string) ([]domain.NFTAsset, error) {
	var assets []domain.NFTAsset

	for page := 1; page <= maxPages; page++ {
		url := fmt.Sprintf("%s/atomicassets/v1/assets?owner=%s&collection_name=%s&page=%d&limit=%d",
			c.baseURL, owner, collection, page, pageLimit)

		var resp assetsResponse
		if err := c.httpClient.Get(ctx, url, &resp); err != nil {
			return nil, fmt.Errorf("failed to fetch assets page %d: %w", page, err)
		}
		if !resp.Success {
			return nil, fmt.Errorf("assets request rejected: %s", resp.Message)
		}

		for _, record := range resp.Data {
			assets = append(assets, record.toDomain(c.ipfsGateway))
		}

		if len(resp.Data) < pageLimit {
			return assets, nil
		}
	}

	logger.WarnCtx(ctx, "asset pagination hit page cap",
		zap.String("owner", owner),
		zap.String("collection", collection),
		zap.Int("max_pages", maxPages),
	)
	return assets, nil
}

// GetTemplates returns all templates of the collection
func (c *atomicClient) GetTemplates(ctx context.Context, collection string) ([]domain.TemplateInfo, error) {
	var templates []domain.TemplateInfo

	for page := 1; page <= maxPages; page++ {
		url := fmt.Sprintf("%s/atomicassets/v1/templates?collection_name=%s&page=%d&limit=%d",
			c.baseURL, collection, page, pageLimit)

		var resp templatesResponse
		if err := c.httpClient.Get(ctx, url, &resp); err != nil {
			return nil, fmt.Errorf("failed to fetch templates page %d: %w", page, err)
		}
		if !resp.Success {
			return nil, fmt.Errorf("templates request rejected: %s", resp.Message)
		}

		for _, record := range resp.Data {
			templates = append(templates, record.toDomain(c.ipfsGateway))
		}

		if len(resp.Data) < pageLimit {
			return templates, nil
		}
	}

	logger.WarnCtx(ctx, "template pagination hit page cap",
		zap.String("collection", collection),
		zap.Int("max_pages", maxPages),
	)
	return templates, nil
}

// GetTemplate returns one template of the collection by id
func (c *atomicClient) GetTemplate(ctx context.Context, collection, templateID string) (*domain.TemplateInfo, error) {
	url := fmt.Sprintf("%s/atomicassets/v1/templates/%s/%s", c.baseURL, collection, templateID)

	var resp templateResponse
	if err := c.httpClient.Get(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch template %s: %w", templateID, err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("template request rejected: %s", resp.Message)
	}

	info := resp.Data.toDomain(c.ipfsGateway)
	return &info, nil
}

// GetCollectionStats returns aggregate counts for the collection
func (c *atomicClient) GetCollectionStats(ctx context.Context, collection string) (*CollectionStats, error) {
	url := fmt.Sprintf("%s/atomicassets/v1/collections/%s/stats", c.baseURL, collection)

	var resp statsResponse
	if err := c.httpClient.Get(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch collection stats: %w", err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("collection stats request rejected: %s", resp.Message)
	}

	return &resp.Data, nil
}

// ResolveIPFS turns a raw IPFS hash into a URL on the given gateway. Values
// that already look like URLs pass through unchanged.
func ResolveIPFS(gateway, value string) string {
	if value == "" || strings.Contains(value, "://") {
		return value
	}
	if gateway == "" {
		gateway = DefaultIPFSGateway
	}
	return gateway + strings.TrimPrefix(value, "ipfs/")
}

func (r assetRecord) toDomain(gateway string) domain.NFTAsset {
	asset := domain.NFTAsset{
		AssetID:        r.AssetID,
		SchemaName:     r.Schema.SchemaName,
		CollectionName: r.Collection.CollectionName,
		Name:           r.Name,
	}
	if r.Template != nil {
		asset.TemplateID = r.Template.TemplateID
	}
	if len(r.Data) > 0 {
		asset.Data = make(map[string]string, len(r.Data))
		for key, value := range r.Data {
			if str, ok := value.(string); ok {
				asset.Data[key] = str
			}
		}
		if img := asset.Data["img"]; img != "" {
			asset.Image = ResolveIPFS(gateway, img)
		}
		if asset.Name == "" {
			asset.Name = asset.Data["name"]
		}
	}
	return asset
}

func (r templateRecord) toDomain(gateway string) domain.TemplateInfo {
	info := domain.TemplateInfo{
		TemplateID:   r.TemplateID,
		MaxSupply:    r.MaxSupply,
		IssuedSupply: r.IssuedSupply,
	}
	if name, ok := r.ImmutableData["name"].(string); ok {
		info.Name = name
	}
	if img, ok := r.ImmutableData["img"].(string); ok {
		info.Image = ResolveIPFS(gateway, img)
	}
	return info
}
