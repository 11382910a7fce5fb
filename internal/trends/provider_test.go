package trends

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tshirtMarketAi/internal/ai"
	"tshirtMarketAi/internal/market"
)

type fakeTrendGateway struct {
	calls int
	err   error
}

func (f *fakeTrendGateway) CurrentTrends(_ context.Context, timeframe string) (map[string]any, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return map[string]any{"timeframe": timeframe}, nil
}

func (f *fakeTrendGateway) ExtractDesignFeatures(context.Context, []byte) (ai.DesignFeatures, error) {
	return ai.DesignFeatures{}, nil
}

func (f *fakeTrendGateway) ScoreMarket(context.Context, ai.DesignFeatures, string, market.Entry) (map[string]any, error) {
	return nil, nil
}

func (f *fakeTrendGateway) Recommend(context.Context, ai.DesignFeatures, []ai.MarketSummary) []string {
	return nil
}

func (f *fakeTrendGateway) CompetitorAnalysis(context.Context, string, string, map[string]float64) (map[string]any, error) {
	return nil, nil
}

func TestProviderCachesPerTimeframe(t *testing.T) {
	t.Parallel()

	gateway := &fakeTrendGateway{}
	provider := NewProvider(gateway, time.Minute)
	ctx := context.Background()

	_, err := provider.Current(ctx, "current")
	require.NoError(t, err)
	_, err = provider.Current(ctx, "current")
	require.NoError(t, err)
	require.Equal(t, 1, gateway.calls)

	_, err = provider.Current(ctx, "next_quarter")
	require.NoError(t, err)
	require.Equal(t, 2, gateway.calls)
}

func TestProviderNormalizesCacheKey(t *testing.T) {
	t.Parallel()

	gateway := &fakeTrendGateway{}
	provider := NewProvider(gateway, time.Minute)
	ctx := context.Background()

	_, err := provider.Current(ctx, "Current")
	require.NoError(t, err)
	_, err = provider.Current(ctx, "  current ")
	require.NoError(t, err)
	require.Equal(t, 1, gateway.calls)
}

func TestProviderErrorsNotCached(t *testing.T) {
	t.Parallel()

	gateway := &fakeTrendGateway{err: errors.New("upstream down")}
	provider := NewProvider(gateway, time.Minute)
	ctx := context.Background()

	_, err := provider.Current(ctx, "current")
	require.Error(t, err)
	_, err = provider.Current(ctx, "current")
	require.Error(t, err)
	require.Equal(t, 2, gateway.calls)
}

func TestProviderZeroTTLBypassesCache(t *testing.T) {
	t.Parallel()

	gateway := &fakeTrendGateway{}
	provider := NewProvider(gateway, 0)
	ctx := context.Background()

	_, err := provider.Current(ctx, "current")
	require.NoError(t, err)
	_, err = provider.Current(ctx, "current")
	require.NoError(t, err)
	require.Equal(t, 2, gateway.calls)
}
