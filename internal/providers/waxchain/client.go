// Package waxchain reads smart contract table state through the WAX chain
// HTTP API. Blend contracts expose their recipes as table rows.
package waxchain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/futures-relic/relic-atelier/internal/adapter"
	"github.com/futures-relic/relic-atelier/internal/logger"
)

const (
	// defaultRowLimit is how many rows we request per get_table_rows call
	defaultRowLimit = 100

	// maxPages bounds pagination so a misbehaving node cannot loop us
	maxPages = 100
)

// TableQuery identifies a contract table scope to read
type TableQuery struct {
	Code  string
	Scope string
	Table string
	Limit int
}

// tableRowsRequest is the wire shape of a get_table_rows request
type tableRowsRequest struct {
	JSON       bool   `json:"json"`
	Code       string `json:"code"`
	Scope      string `json:"scope"`
	Table      string `json:"table"`
	Limit      int    `json:"limit"`
	LowerBound string `json:"lower_bound,omitempty"`
}

// TableRowsResult is one page of table rows. Rows stay raw because each
// contract encodes its rows differently; decoding belongs to the caller.
type TableRowsResult struct {
	Rows []json.RawMessage `json:"rows"`
	More bool              `json:"more"`
}

// AdvanceFunc derives the lower_bound for the next page from the last row
// of the current one
type AdvanceFunc func(last json.RawMessage) (string, error)

// Client defines an interface for WAX chain API operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/waxchain_client.go -package=mocks -mock_names=Client=MockWaxChainClient
type Client interface {
	// GetTableRows reads one page of a contract table
	GetTableRows(ctx context.Context, query TableQuery, lowerBound string) (*TableRowsResult, error)

	// FetchAllRows walks a contract table page by page until exhausted
	FetchAllRows(ctx context.Context, query TableQuery, advance AdvanceFunc) ([]json.RawMessage, error)
}

// waxClient is the concrete implementation of Client
type waxClient struct {
	baseURL    string
	httpClient adapter.HTTPClient
	json       adapter.JSON
}

// NewClient creates a new WAX chain API client
func NewClient(baseURL string, httpClient adapter.HTTPClient, json adapter.JSON) Client {
	return &waxClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		json:       json,
	}
}

// GetTableRows reads one page of a contract table
func (c *waxClient) GetTableRows(ctx context.Context, query TableQuery, lowerBound string) (*TableRowsResult, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultRowLimit
	}

	body, err := c.json.Marshal(tableRowsRequest{
		JSON:       true,
		Code:       query.Code,
		Scope:      query.Scope,
		Table:      query.Table,
		Limit:      limit,
		LowerBound: lowerBound,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode table rows request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/chain/get_table_rows", c.baseURL)
	respBody, err := c.httpClient.Post(ctx, url, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to read table %s/%s: %w", query.Code, query.Table, err)
	}

	var result TableRowsResult
	if err := c.json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to decode table rows response: %w", err)
	}

	return &result, nil
}

// FetchAllRows walks a contract table page by page until the node reports
// no more rows. The advance callback turns the last row of a page into the
// lower_bound of the next one, which must be strictly past that row to
// avoid refetching it.
func (c *waxClient) FetchAllRows(ctx context.Context, query TableQuery, advance AdvanceFunc) ([]json.RawMessage, error) {
	var rows []json.RawMessage
	lowerBound := ""

	for page := 0; page < maxPages; page++ {
		result, err := c.GetTableRows(ctx, query, lowerBound)
		if err != nil {
			return nil, err
		}

		rows = append(rows, result.Rows...)

		if !result.More || len(result.Rows) == 0 {
			return rows, nil
		}

		lowerBound, err = advance(result.Rows[len(result.Rows)-1])
		if err != nil {
			return nil, fmt.Errorf("failed to advance table cursor: %w", err)
		}
	}

	logger.WarnCtx(ctx, "table row pagination hit page cap",
		zap.String("code", query.Code),
		zap.String("table", query.Table),
		zap.Int("max_pages", maxPages),
	)
	return rows, nil
}

// AdvancePastID builds an AdvanceFunc for tables keyed by a numeric id
// field. The next lower_bound is that id plus one.
func AdvancePastID(field string) AdvanceFunc {
	return func(last json.RawMessage) (string, error) {
		var row map[string]json.RawMessage
		if err := json.Unmarshal(last, &row); err != nil {
			return "", fmt.Errorf("failed to decode row: %w", err)
		}

		raw, ok := row[field]
		if !ok {
			return "", fmt.Errorf("row has no %q field", field)
		}

		var id uint64
		if err := json.Unmarshal(raw, &id); err != nil {
			// some nodes serialize u64 keys as strings
			var str string
			if err := json.Unmarshal(raw, &str); err != nil {
				return "", fmt.Errorf("field %q is not a numeric id", field)
			}
			if _, err := fmt.Sscanf(str, "%d", &id); err != nil {
				return "", fmt.Errorf("field %q is not a numeric id: %w", field, err)
			}
		}

		return fmt.Sprintf("%d", id+1), nil
	}
}
