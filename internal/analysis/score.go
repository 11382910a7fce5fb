package analysis

import (
	"math"

	"tshirtMarketAi/internal/ai"
	"tshirtMarketAi/internal/market"
)

// Large and growing markets count for more than small or emerging ones when
// rolling per-location scores into a single number.
var sizeWeights = map[string]float64{
	"massive": 1.5,
	"large":   1.2,
	"medium":  1.0,
	"small":   0.8,
}

var maturityWeights = map[string]float64{
	"growing":  1.3,
	"mature":   1.1,
	"emerging": 1.0,
}

func weightFor(entry market.Entry) float64 {
	size, ok := sizeWeights[entry.MarketSize]
	if !ok {
		size = 1.0
	}
	maturity, ok := maturityWeights[entry.MarketMaturity]
	if !ok {
		maturity = 1.0
	}
	return size * maturity
}

// overallScore is the weighted mean of the surviving locations' market
// scores, rounded to one decimal.
func overallScore(analyses []MarketAnalysis, table market.Table) float64 {
	if len(analyses) == 0 {
		return 0
	}
	var sum, weights float64
	for _, a := range analyses {
		weight := 1.0
		if entry, ok := table.Get(a.Location); ok {
			weight = weightFor(entry)
		}
		sum += a.MarketScore * weight
		weights += weight
	}
	if weights == 0 {
		return 0
	}
	return round1(sum / weights)
}

// confidenceScore estimates how trustworthy the aggregate is: clear designs,
// markets that agree with each other, and broad location coverage all raise
// it. Capped at 95 since the inputs are themselves estimates.
func confidenceScore(features ai.DesignFeatures, analyses []MarketAnalysis, table market.Table) float64 {
	clarity := (features.VisualAppealScore + features.UniquenessScore) / 2

	consistency := 80.0
	if len(analyses) >= 2 {
		consistency = math.Max(0, 100-2*stddev(marketScores(analyses)))
	}

	total := table.Len()
	if total == 0 {
		total = 1
	}
	completeness := math.Min(1, float64(len(analyses))/float64(total)) * 100

	confidence := 0.4*clarity + 0.4*consistency + 0.2*completeness
	return round1(math.Min(confidence, 95))
}

func marketScores(analyses []MarketAnalysis) []float64 {
	scores := make([]float64, len(analyses))
	for i, a := range analyses {
		scores[i] = a.MarketScore
	}
	return scores
}

func stddev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
