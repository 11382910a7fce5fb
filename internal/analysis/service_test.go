package analysis

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"tshirtMarketAi/internal/ai"
	"tshirtMarketAi/internal/apperrors"
	"tshirtMarketAi/internal/config"
	"tshirtMarketAi/internal/imaging"
	"tshirtMarketAi/internal/market"
	"tshirtMarketAi/internal/media"
)

type fakeGateway struct {
	mu           sync.Mutex
	extractErr   error
	scoreErrs    map[string]error
	scoreRaw     map[string]map[string]any
	extractCalls int
	scoreCalls   []string
}

func (f *fakeGateway) ExtractDesignFeatures(_ context.Context, _ []byte) (ai.DesignFeatures, error) {
	f.mu.Lock()
	f.extractCalls++
	f.mu.Unlock()
	if f.extractErr != nil {
		return ai.DesignFeatures{}, f.extractErr
	}
	return ai.DesignFeatures{
		StyleCategory:     "vintage",
		ThemeCategory:     "music",
		TargetDemographic: "millennials",
		VisualAppealScore: 80,
		UniquenessScore:   70,
	}, nil
}

func (f *fakeGateway) ScoreMarket(_ context.Context, _ ai.DesignFeatures, location string, _ market.Entry) (map[string]any, error) {
	f.mu.Lock()
	f.scoreCalls = append(f.scoreCalls, location)
	f.mu.Unlock()
	if err := f.scoreErrs[location]; err != nil {
		return nil, err
	}
	if raw, ok := f.scoreRaw[location]; ok {
		return raw, nil
	}
	return map[string]any{"market_score": 75.0, "demand_level": "high"}, nil
}

func (f *fakeGateway) Recommend(_ context.Context, _ ai.DesignFeatures, _ []ai.MarketSummary) []string {
	return []string{"test first", "price carefully", "promote widely"}
}

func (f *fakeGateway) CurrentTrends(_ context.Context, _ string) (map[string]any, error) {
	return map[string]any{"trending_styles": []any{"vintage"}}, nil
}

func (f *fakeGateway) CompetitorAnalysis(_ context.Context, _, _ string, _ map[string]float64) (map[string]any, error) {
	return map[string]any{"competition_level": "medium"}, nil
}

func testService(gateway ai.Gateway) *Service {
	images := imaging.NewPreconditioner(config.ImageConfig{
		MaxFileBytes: 5 * 1024 * 1024,
		MinDimension: 100,
		MaxDimension: 1024,
		JPEGQuality:  85,
	})
	return NewService(gateway, images, market.DefaultTable(), media.Disabled(), nil, 4)
}

func testImage(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 200, 200))))
	return buf.Bytes()
}

func TestAnalyzeDesignSuccess(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	svc := testService(gateway)

	result, err := svc.AnalyzeDesign(context.Background(), testImage(t), "design.png", []string{"USA", "India", "UK"})
	require.NoError(t, err)

	require.NotEmpty(t, result.ID)
	require.Len(t, result.MarketAnalysis, 3)
	require.Equal(t, "vintage", result.DesignFeatures.StyleCategory)
	require.Len(t, result.Recommendations, 3)
	require.NotEmpty(t, result.AnalysisTimestamp)
	require.Greater(t, result.OverallScore, 0.0)
	require.LessOrEqual(t, result.ConfidenceScore, 95.0)

	for _, a := range result.MarketAnalysis {
		require.Equal(t, 75.0, a.MarketScore)
		require.Equal(t, "high", a.DemandLevel)
		require.NotEmpty(t, a.PriceRange.Currency)
		require.NotNil(t, a.Opportunity)
	}
}

func TestAnalyzeDesignAppliesFieldDefaults(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{
		scoreRaw: map[string]map[string]any{
			"USA": {"market_trends": "not a list"},
		},
	}
	svc := testService(gateway)

	result, err := svc.AnalyzeDesign(context.Background(), testImage(t), "design.png", []string{"USA"})
	require.NoError(t, err)
	require.Len(t, result.MarketAnalysis, 1)

	a := result.MarketAnalysis[0]
	require.Equal(t, 70.0, a.MarketScore)
	require.Equal(t, "medium", a.DemandLevel)
	require.Equal(t, "medium", a.CompetitionLevel)
	require.Equal(t, []string{"year-round"}, a.SeasonalTrends)
	require.Equal(t, []string{"18-35"}, a.TargetAgeGroups)
	require.Equal(t, 1000, a.EstimatedMonthlySales)
	require.Equal(t, 70.0, a.SuccessProbability)
}

func TestAnalyzeDesignPartialMarketFailure(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{
		scoreErrs: map[string]error{"India": errors.New("upstream timeout")},
	}
	svc := testService(gateway)

	result, err := svc.AnalyzeDesign(context.Background(), testImage(t), "design.png", []string{"USA", "India", "UK"})
	require.NoError(t, err)

	require.Len(t, result.MarketAnalysis, 2)
	for _, a := range result.MarketAnalysis {
		require.NotEqual(t, "India", a.Location)
	}
}

func TestAnalyzeDesignAllMarketsFail(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{
		scoreErrs: map[string]error{
			"USA": errors.New("down"),
			"UK":  errors.New("down"),
		},
	}
	svc := testService(gateway)

	_, err := svc.AnalyzeDesign(context.Background(), testImage(t), "design.png", []string{"USA", "UK"})
	require.Error(t, err)
	require.True(t, apperrors.IsKind(err, apperrors.KindAnalysisService))
	require.Contains(t, err.Error(), "No successful market analyses")
}

func TestAnalyzeDesignSkipsUnknownLocations(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	svc := testService(gateway)

	result, err := svc.AnalyzeDesign(context.Background(), testImage(t), "design.png", []string{"USA", "Atlantis"})
	require.NoError(t, err)

	require.Len(t, result.MarketAnalysis, 1)
	require.Equal(t, "USA", result.MarketAnalysis[0].Location)
	require.NotContains(t, gateway.scoreCalls, "Atlantis")
}

func TestAnalyzeDesignDeduplicatesLocations(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	svc := testService(gateway)

	result, err := svc.AnalyzeDesign(context.Background(), testImage(t), "design.png", []string{"USA", "USA", "USA"})
	require.NoError(t, err)
	require.Len(t, result.MarketAnalysis, 1)
	require.Len(t, gateway.scoreCalls, 1)
}

func TestAnalyzeDesignExtractionFailure(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{extractErr: errors.New("model unavailable")}
	svc := testService(gateway)

	_, err := svc.AnalyzeDesign(context.Background(), testImage(t), "design.png", []string{"USA"})
	require.Error(t, err)
	require.True(t, apperrors.IsKind(err, apperrors.KindAnalysisService))
	require.Empty(t, gateway.scoreCalls)
}

func TestAnalyzeDesignBadImageSkipsAI(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	svc := testService(gateway)

	_, err := svc.AnalyzeDesign(context.Background(), []byte("not an image"), "bad.png", []string{"USA"})
	require.Error(t, err)
	require.True(t, apperrors.IsKind(err, apperrors.KindImageProcessing))
	require.Zero(t, gateway.extractCalls)
}

func TestAnalyzeBatchCollectsFailures(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	svc := testService(gateway)

	files := []BatchFile{
		{Filename: "one.png", Data: testImage(t)},
		{Filename: "broken.png", Data: []byte("garbage")},
		{Filename: "three.png", Data: testImage(t)},
	}

	batch := svc.AnalyzeBatch(context.Background(), files, []string{"USA"})

	require.Equal(t, 3, batch.TotalProcessed)
	require.Equal(t, 2, batch.Successful)
	require.Equal(t, 1, batch.Failed)
	require.Len(t, batch.Results, 2)
	require.Len(t, batch.Errors, 1)
	require.Contains(t, batch.Errors[0], "broken.png")
}
