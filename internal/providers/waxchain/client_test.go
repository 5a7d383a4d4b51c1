package waxchain_test

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futures-relic/relic-atelier/internal/adapter"
	"github.com/futures-relic/relic-atelier/internal/logger"
	"github.com/futures-relic/relic-atelier/internal/mocks"
	"github.com/futures-relic/relic-atelier/internal/providers/waxchain"
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

var blendsQuery = waxchain.TableQuery{
	Code:  "blend.nefty",
	Scope: "blend.nefty",
	Table: "blends",
}

func TestGetTableRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := waxchain.NewClient("https://wax.greymass.com", httpClient, adapter.NewJSON())

	httpClient.EXPECT().
		Post(gomock.Any(), "https://wax.greymass.com/v1/chain/get_table_rows", "application/json", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, body io.Reader) ([]byte, error) {
			sent, err := io.ReadAll(body)
			require.NoError(t, err)

			var req map[string]interface{}
			require.NoError(t, json.Unmarshal(sent, &req))
			assert.Equal(t, true, req["json"])
			assert.Equal(t, "blend.nefty", req["code"])
			assert.Equal(t, "blends", req["table"])
			assert.Equal(t, float64(100), req["limit"])
			assert.NotContains(t, req, "lower_bound")

			return []byte(`{"rows": [{"blend_id": 7}], "more": false}`), nil
		})

	result, err := client.GetTableRows(context.Background(), blendsQuery, "")
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.False(t, result.More)
	assert.JSONEq(t, `{"blend_id": 7}`, string(result.Rows[0]))
}

func TestFetchAllRows_Paginates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := waxchain.NewClient("https://wax.greymass.com", httpClient, adapter.NewJSON())

	pages := []string{
		`{"rows": [{"blend_id": 1}, {"blend_id": 2}], "more": true}`,
		`{"rows": [{"blend_id": 3}], "more": false}`,
	}
	var bounds []string

	httpClient.EXPECT().
		Post(gomock.Any(), gomock.Any(), "application/json", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, body io.Reader) ([]byte, error) {
			sent, err := io.ReadAll(body)
			require.NoError(t, err)

			var req struct {
				LowerBound string `json:"lower_bound"`
			}
			require.NoError(t, json.Unmarshal(sent, &req))
			bounds = append(bounds, req.LowerBound)

			page := pages[0]
			pages = pages[1:]
			return []byte(page), nil
		}).
		Times(2)

	rows, err := client.FetchAllRows(context.Background(), blendsQuery, waxchain.AdvancePastID("blend_id"))
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	// the second page starts strictly past the last seen blend_id
	assert.Equal(t, []string{"", "3"}, bounds)
}

func TestFetchAllRows_StopsOnEmptyPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := waxchain.NewClient("https://wax.greymass.com", httpClient, adapter.NewJSON())

	httpClient.EXPECT().
		Post(gomock.Any(), gomock.Any(), "application/json", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, _ io.Reader) ([]byte, error) {
			return []byte(`{"rows": [], "more": true}`), nil
		})

	rows, err := client.FetchAllRows(context.Background(), blendsQuery, waxchain.AdvancePastID("blend_id"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAdvancePastID(t *testing.T) {
	tests := []struct {
		name     string
		row      string
		expected string
		wantErr  string
	}{
		{
			name:     "numeric id",
			row:      `{"blend_id": 41}`,
			expected: "42",
		},
		{
			name:     "string-encoded id",
			row:      `{"blend_id": "41"}`,
			expected: "42",
		},
		{
			name:    "missing field",
			row:     `{"other": 1}`,
			wantErr: `no "blend_id" field`,
		},
		{
			name:    "non-numeric id",
			row:     `{"blend_id": "abc"}`,
			wantErr: "not a numeric id",
		},
		{
			name:    "malformed row",
			row:     `not json`,
			wantErr: "failed to decode row",
		},
	}

	advance := waxchain.AdvancePastID("blend_id")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bound, err := advance(json.RawMessage(tt.row))
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, bound)
		})
	}
}
