package atomicassets_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futures-relic/relic-atelier/internal/logger"
	"github.com/futures-relic/relic-atelier/internal/mocks"
	"github.com/futures-relic/relic-atelier/internal/providers/atomicassets"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// respondJSON returns a DoAndReturn func that decodes the payload into the
// result the client passed in
func respondJSON(payload string) func(ctx context.Context, url string, result interface{}) error {
	return func(_ context.Context, _ string, result interface{}) error {
		return json.Unmarshal([]byte(payload), result)
	}
}

func TestGetAssets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := atomicassets.NewClient("https://wax.api.atomicassets.io", "", httpClient)

	payload := `{
		"success": true,
		"data": [
			{
				"asset_id": "1099511627776",
				"owner": "ancientrelic",
				"template": {"template_id": "650001"},
				"schema": {"schema_name": "relics"},
				"collection": {"collection_name": "futuresrelic"},
				"data": {"name": "Ancient Relic", "img": "QmRelicHash"}
			},
			{
				"asset_id": "1099511627777",
				"owner": "ancientrelic",
				"template": null,
				"schema": {"schema_name": "scrolls"},
				"collection": {"collection_name": "futuresrelic"},
				"data": {"rarity": "common"}
			}
		]
	}`

	httpClient.EXPECT().
		Get(gomock.Any(), "https://wax.api.atomicassets.io/atomicassets/v1/assets?owner=ancientrelic&collection_name=futuresrelic&page=1&limit=1000", gomock.Any()).
		DoAndReturn(respondJSON(payload))

	assets, err := client.GetAssets(context.Background(), "ancientrelic", "futuresrelic")
	require.NoError(t, err)
	require.Len(t, assets, 2)

	assert.Equal(t, "1099511627776", assets[0].AssetID)
	assert.Equal(t, "650001", assets[0].TemplateID)
	assert.Equal(t, "relics", assets[0].SchemaName)
	assert.Equal(t, "futuresrelic", assets[0].CollectionName)
	assert.Equal(t, "Ancient Relic", assets[0].Name)
	assert.Equal(t, "https://ipfs.io/ipfs/QmRelicHash", assets[0].Image)

	// untemplated asset keeps an empty template id
	assert.Empty(t, assets[1].TemplateID)
	assert.Equal(t, "scrolls", assets[1].SchemaName)
}

func TestGetAssets_Paginated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := atomicassets.NewClient("https://wax.api.atomicassets.io", "", httpClient)

	// a full first page forces a second request
	fullPage := make([]string, 1000)
	for i := range fullPage {
		fullPage[i] = fmt.Sprintf(`{
			"asset_id": "%d",
			"schema": {"schema_name": "relics"},
			"collection": {"collection_name": "futuresrelic"}
		}`, 1000+i)
	}
	firstPayload := `{"success": true, "data": [` + joinJSON(fullPage) + `]}`
	secondPayload := `{"success": true, "data": [{
		"asset_id": "2000",
		"schema": {"schema_name": "relics"},
		"collection": {"collection_name": "futuresrelic"}
	}]}`

	gomock.InOrder(
		httpClient.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(respondJSON(firstPayload)),
		httpClient.EXPECT().
			Get(gomock.Any(), "https://wax.api.atomicassets.io/atomicassets/v1/assets?owner=ancientrelic&collection_name=futuresrelic&page=2&limit=1000", gomock.Any()).
			DoAndReturn(respondJSON(secondPayload)),
	)

	assets, err := client.GetAssets(context.Background(), "ancientrelic", "futuresrelic")
	require.NoError(t, err)
	assert.Len(t, assets, 1001)
}

func TestGetAssets_APIRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := atomicassets.NewClient("https://wax.api.atomicassets.io", "", httpClient)

	httpClient.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(respondJSON(`{"success": false, "message": "collection not found"}`))

	_, err := client.GetAssets(context.Background(), "ancientrelic", "nocollection")
	assert.ErrorContains(t, err, "collection not found")
}

func TestGetTemplates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := atomicassets.NewClient("https://wax.api.atomicassets.io", "", httpClient)

	payload := `{
		"success": true,
		"data": [
			{
				"template_id": "650001",
				"max_supply": "100",
				"issued_supply": "42",
				"immutable_data": {"name": "Ancient Relic", "img": "QmRelicHash"}
			}
		]
	}`

	httpClient.EXPECT().
		Get(gomock.Any(), "https://wax.api.atomicassets.io/atomicassets/v1/templates?collection_name=futuresrelic&page=1&limit=1000", gomock.Any()).
		DoAndReturn(respondJSON(payload))

	templates, err := client.GetTemplates(context.Background(), "futuresrelic")
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "650001", templates[0].TemplateID)
	assert.Equal(t, "Ancient Relic", templates[0].Name)
	assert.Equal(t, "https://ipfs.io/ipfs/QmRelicHash", templates[0].Image)
	assert.Equal(t, "100", templates[0].MaxSupply)
	assert.Equal(t, "42", templates[0].IssuedSupply)
}

func TestGetTemplate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := atomicassets.NewClient("https://wax.api.atomicassets.io", "", httpClient)

	payload := `{
		"success": true,
		"data": {
			"template_id": "650001",
			"max_supply": "100",
			"issued_supply": "42",
			"immutable_data": {"name": "Ancient Relic"}
		}
	}`

	httpClient.EXPECT().
		Get(gomock.Any(), "https://wax.api.atomicassets.io/atomicassets/v1/templates/futuresrelic/650001", gomock.Any()).
		DoAndReturn(respondJSON(payload))

	info, err := client.GetTemplate(context.Background(), "futuresrelic", "650001")
	require.NoError(t, err)
	assert.Equal(t, "Ancient Relic", info.Name)
}

func TestGetCollectionStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := atomicassets.NewClient("https://wax.api.atomicassets.io", "", httpClient)

	payload := `{
		"success": true,
		"data": {"assets": "1234", "templates": "56", "schemas": "3", "burned": "78"}
	}`

	httpClient.EXPECT().
		Get(gomock.Any(), "https://wax.api.atomicassets.io/atomicassets/v1/collections/futuresrelic/stats", gomock.Any()).
		DoAndReturn(respondJSON(payload))

	stats, err := client.GetCollectionStats(context.Background(), "futuresrelic")
	require.NoError(t, err)
	assert.Equal(t, "1234", stats.Assets)
	assert.Equal(t, "56", stats.Templates)
}

func TestResolveIPFS(t *testing.T) {
	tests := []struct {
		name     string
		gateway  string
		value    string
		expected string
	}{
		{
			name:     "raw hash on default gateway",
			value:    "QmRelicHash",
			expected: "https://ipfs.io/ipfs/QmRelicHash",
		},
		{
			name:     "hash with ipfs prefix",
			value:    "ipfs/QmRelicHash",
			expected: "https://ipfs.io/ipfs/QmRelicHash",
		},
		{
			name:     "custom gateway",
			gateway:  "https://gateway.example/ipfs/",
			value:    "QmRelicHash",
			expected: "https://gateway.example/ipfs/QmRelicHash",
		},
		{
			name:     "https url passes through",
			value:    "https://example.com/relic.png",
			expected: "https://example.com/relic.png",
		},
		{
			name:     "empty",
			value:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, atomicassets.ResolveIPFS(tt.gateway, tt.value))
		})
	}
}

func joinJSON(items []string) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += ","
		}
		out += item
	}
	return out
}
