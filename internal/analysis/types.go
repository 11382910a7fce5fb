package analysis

import (
	"tshirtMarketAi/internal/ai"
	"tshirtMarketAi/internal/market"
)

// Stage identifies a step of the analysis pipeline. Stage transitions are
// published to subscribers so clients can watch long-running analyses.
type Stage string

const (
	StageValidating         Stage = "validating"
	StagePreconditioning    Stage = "preconditioning"
	StageExtractingFeatures Stage = "extracting_features"
	StageScoringMarkets     Stage = "scoring_markets"
	StageAggregating        Stage = "aggregating"
	StageRecommending       Stage = "recommending"
	StageDone               Stage = "done"
	StageFailed             Stage = "failed"
)

// MarketAnalysis is one location's scored outcome. A location's analysis
// either exists in full or is entirely absent; no partial records are built.
type MarketAnalysis struct {
	Location              string              `json:"location"`
	MarketScore           float64             `json:"market_score"`
	DemandLevel           string              `json:"demand_level"`
	PriceRange            market.PriceRange   `json:"price_range"`
	CompetitionLevel      string              `json:"competition_level"`
	SeasonalTrends        []string            `json:"seasonal_trends"`
	TargetAgeGroups       []string            `json:"target_age_groups"`
	EstimatedMonthlySales int                 `json:"estimated_monthly_sales"`
	MarketTrends          []string            `json:"market_trends"`
	SuccessProbability    float64             `json:"success_probability"`
	RiskFactors           []string            `json:"risk_factors,omitempty"`
	Opportunities         []string            `json:"opportunities,omitempty"`
	Opportunity           *market.Opportunity `json:"opportunity,omitempty"`
}

// Result is the terminal aggregate for one analyzed design. Immutable; it has
// no persisted lifecycle beyond the response.
type Result struct {
	ID                string            `json:"id"`
	DesignFeatures    ai.DesignFeatures `json:"design_features"`
	MarketAnalysis    []MarketAnalysis  `json:"market_analysis"`
	OverallScore      float64           `json:"overall_score"`
	Recommendations   []string          `json:"recommendations"`
	AnalysisTimestamp string            `json:"analysis_timestamp"`
	ConfidenceScore   float64           `json:"confidence_score"`
	ImageURL          string            `json:"image_url,omitempty"`
}

// BatchFile is one uploaded image in a batch request.
type BatchFile struct {
	Filename string
	Data     []byte
}

// BatchItem pairs a filename with its successful analysis.
type BatchItem struct {
	Filename string `json:"filename"`
	Analysis Result `json:"analysis"`
}

// BatchResult summarizes a batch run. The batch call itself never fails;
// per-file failures are reported in Errors.
type BatchResult struct {
	TotalProcessed int         `json:"total_processed"`
	Successful     int         `json:"successful"`
	Failed         int         `json:"failed"`
	Results        []BatchItem `json:"results"`
	Errors         []string    `json:"errors"`
}
