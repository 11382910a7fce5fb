package market

import "strings"

// Opportunity is the deterministic secondary metric for one design in one
// location, distinct from the AI-assigned market score.
type Opportunity struct {
	OpportunityScore float64 `json:"opportunity_score"`
	TrendAlignment   float64 `json:"trend_alignment"`
	DemographicFit   float64 `json:"demographic_fit"`
	MarketSizeFactor float64 `json:"market_size_factor"`
}

// Keyword stems associated with each style category. The substring matching
// below is deliberately crude; its output feeds user-visible scores, so the
// stems and boost multipliers must not change.
var styleTrendWords = map[string][]string{
	"minimalist": {"minimalism", "quality", "simplicity"},
	"vintage":    {"vintage", "retro", "nostalgia"},
	"streetwear": {"urban", "youth", "hip_hop"},
	"sports":     {"sports", "fitness", "athletic"},
	"artistic":   {"art", "creativity", "expression"},
}

var demographicWords = map[string][]string{
	"gen_z":       {"youth", "gen_z", "teens"},
	"millennials": {"millennials", "young_adults"},
	"gen_x":       {"gen_x", "adults"},
	"all_ages":    {"all_ages", "universal"},
}

var marketSizeFactors = map[string]float64{
	"massive": 1.3,
	"large":   1.1,
	"medium":  1.0,
	"small":   0.8,
}

// CalculateOpportunity scores how well a design's style, theme and target
// demographic line up with a location's local trends and demographics.
func CalculateOpportunity(style, theme, demographic string, entry Entry) Opportunity {
	trendAlignment := calculateTrendAlignment(style, theme, entry.Trends)
	demographicFit := calculateDemographicFit(demographic, entry.Demographics)

	sizeFactor, ok := marketSizeFactors[entry.MarketSize]
	if !ok {
		sizeFactor = 1.0
	}

	score := (trendAlignment*0.4 + demographicFit*0.4) * sizeFactor * 100
	score = clamp(score, 0, 100)

	return Opportunity{
		OpportunityScore: round1(score),
		TrendAlignment:   round1(trendAlignment * 100),
		DemographicFit:   round1(demographicFit * 100),
		MarketSizeFactor: sizeFactor,
	}
}

func calculateTrendAlignment(style, theme string, localTrends []string) float64 {
	if len(localTrends) == 0 {
		return 0
	}

	words := append([]string{}, styleTrendWords[style]...)
	words = append(words, theme)

	matches := 0
	for _, trend := range localTrends {
		if containsAny(trend, words) {
			matches++
		}
	}

	return clamp(float64(matches)/float64(len(localTrends))*2, 0, 1)
}

func calculateDemographicFit(demographic string, localDemographics []string) float64 {
	if len(localDemographics) == 0 {
		return 0
	}

	words := demographicWords[demographic]

	matches := 0
	for _, demo := range localDemographics {
		if containsAny(demo, words) {
			matches++
		}
	}

	return clamp(float64(matches)/float64(len(localDemographics))*1.5, 0, 1)
}

func containsAny(target string, words []string) bool {
	for _, word := range words {
		if word != "" && strings.Contains(target, word) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
