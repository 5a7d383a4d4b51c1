package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futures-relic/relic-atelier/internal/domain"
	"github.com/futures-relic/relic-atelier/internal/logger"
	"github.com/futures-relic/relic-atelier/internal/mocks"
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

var cacheEpoch = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newMockClock(t *testing.T) *mocks.MockClock {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return mocks.NewMockClock(ctrl)
}

func TestTTLCache_HitWithinTTL(t *testing.T) {
	clock := newMockClock(t)
	c := NewTTLCache(time.Hour, clock)

	clock.EXPECT().Now().Return(cacheEpoch)
	c.Set("650001", &domain.TemplateInfo{TemplateID: "650001", Name: "Ancient Relic"})

	clock.EXPECT().Now().Return(cacheEpoch.Add(59 * time.Minute))
	info, ok := c.Get("650001")
	require.True(t, ok)
	assert.Equal(t, "Ancient Relic", info.Name)
}

func TestTTLCache_MissAfterExpiry(t *testing.T) {
	clock := newMockClock(t)
	c := NewTTLCache(time.Hour, clock)

	clock.EXPECT().Now().Return(cacheEpoch)
	c.Set("650001", &domain.TemplateInfo{TemplateID: "650001"})

	clock.EXPECT().Now().Return(cacheEpoch.Add(time.Hour))
	_, ok := c.Get("650001")
	assert.False(t, ok)

	// expired entries still occupy the map until swept
	assert.Equal(t, 1, c.Len())
}

func TestTTLCache_MissWhenAbsent(t *testing.T) {
	clock := newMockClock(t)
	c := NewTTLCache(time.Hour, clock)

	_, ok := c.Get("unknown")
	assert.False(t, ok)
}

func TestTTLCache_SetResetsExpiry(t *testing.T) {
	clock := newMockClock(t)
	c := NewTTLCache(time.Hour, clock)

	clock.EXPECT().Now().Return(cacheEpoch)
	c.Set("650001", &domain.TemplateInfo{TemplateID: "650001"})

	clock.EXPECT().Now().Return(cacheEpoch.Add(50 * time.Minute))
	c.Set("650001", &domain.TemplateInfo{TemplateID: "650001", Name: "Refreshed"})

	clock.EXPECT().Now().Return(cacheEpoch.Add(100 * time.Minute))
	info, ok := c.Get("650001")
	require.True(t, ok)
	assert.Equal(t, "Refreshed", info.Name)
}

func TestTTLCache_Sweep(t *testing.T) {
	clock := newMockClock(t)
	c := NewTTLCache(time.Hour, clock)

	clock.EXPECT().Now().Return(cacheEpoch)
	c.Set("650001", &domain.TemplateInfo{TemplateID: "650001"})
	clock.EXPECT().Now().Return(cacheEpoch.Add(30 * time.Minute))
	c.Set("650002", &domain.TemplateInfo{TemplateID: "650002"})

	clock.EXPECT().Now().Return(cacheEpoch.Add(70 * time.Minute))
	evicted := c.Sweep(context.Background())
	assert.Equal(t, 1, evicted)
	assert.Equal(t, 1, c.Len())

	clock.EXPECT().Now().Return(cacheEpoch.Add(71 * time.Minute))
	_, ok := c.Get("650002")
	assert.True(t, ok)
}

func TestNopCache(t *testing.T) {
	c := NewNopCache()

	c.Set("650001", &domain.TemplateInfo{TemplateID: "650001"})
	_, ok := c.Get("650001")
	assert.False(t, ok)
	assert.Zero(t, c.Len())
	assert.Zero(t, c.Sweep(context.Background()))
}
