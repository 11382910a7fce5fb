package ai

import (
	"context"

	"tshirtMarketAi/internal/market"
)

// DesignFeatures are the AI-derived attributes of one garment design image.
// Immutable once produced; one instance is produced per analysis.
type DesignFeatures struct {
	StyleCategory     string   `json:"style_category"`
	ColorPalette      []string `json:"color_palette"`
	DesignComplexity  string   `json:"design_complexity"`
	TargetDemographic string   `json:"target_demographic"`
	ThemeCategory     string   `json:"theme_category"`
	VisualAppealScore float64  `json:"visual_appeal_score"`
	UniquenessScore   float64  `json:"uniqueness_score"`
	BrandPotential    string   `json:"brand_potential"`
	TypographyQuality *float64 `json:"typography_quality,omitempty"`
	GraphicElements   []string `json:"graphic_elements,omitempty"`
}

// MarketSummary is the per-location digest fed to the recommendation prompt.
type MarketSummary struct {
	Location     string  `json:"location"`
	Score        float64 `json:"score"`
	Demand       string  `json:"demand"`
	MonthlySales int     `json:"sales"`
}

// Gateway is the behaviour the analysis pipeline requires from the external
// model. Implementations must be safe for concurrent use: the pipeline issues
// many market-scoring calls in parallel against one shared handle.
type Gateway interface {
	ExtractDesignFeatures(ctx context.Context, image []byte) (DesignFeatures, error)
	ScoreMarket(ctx context.Context, features DesignFeatures, location string, entry market.Entry) (map[string]any, error)
	Recommend(ctx context.Context, features DesignFeatures, markets []MarketSummary) []string
	CurrentTrends(ctx context.Context, timeframe string) (map[string]any, error)
	CompetitorAnalysis(ctx context.Context, description, targetMarket string, priceRange map[string]float64) (map[string]any, error)
}
