package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"tshirtMarketAi/internal/market"
)

// The JSON field schemas below are part of the external AI contract and must
// be reproduced exactly for compatibility with downstream consumers.

func designAnalysisPrompt() string {
	return fmt.Sprintf(`Analyze this t-shirt design image comprehensively. Evaluate:

1. **style_category**: %s
2. **color_palette**: List main colors used (e.g., ["blue", "white", "red"])
3. **design_complexity**: %s
4. **target_demographic**: %s
5. **theme_category**: %s
6. **visual_appeal_score**: 0-100 based on current design trends and aesthetic quality
7. **uniqueness_score**: 0-100 based on how distinctive/original the design is
8. **brand_potential**: %s - scalability as a brand
9. **typography_quality**: 0-100 if text is present, null if no text
10. **graphic_elements**: List of graphic elements present

Consider current fashion trends, color psychology, target audience preferences,
and commercial viability. Be specific and analytical.

Return ONLY valid JSON with these exact field names.`,
		strings.Join(market.Categories["style"], ", "),
		strings.Join(market.Categories["complexity"], ", "),
		strings.Join(market.Categories["demographics"], ", "),
		strings.Join(market.Categories["themes"], ", "),
		strings.Join(market.Categories["brand_potential"], ", "))
}

func marketAnalysisPrompt(features DesignFeatures, location string, entry market.Entry) string {
	return fmt.Sprintf(`Analyze market potential for this t-shirt design in %s.

Design Profile:
- Style: %s
- Colors: %s
- Complexity: %s
- Target Demo: %s
- Theme: %s
- Visual Appeal: %.0f/100
- Uniqueness: %.0f/100

%s Market Context:
- Trends: %s
- Demographics: %s
- Market Size: %s
- Competition: %s

Provide detailed analysis:

{
    "market_score": 0-100,
    "demand_level": "low/medium/high",
    "competition_level": "low/medium/high",
    "seasonal_trends": ["season1", "season2"],
    "target_age_groups": ["18-25", "26-35"],
    "market_trends": ["trend1", "trend2", "trend3"],
    "success_probability": 0-100,
    "estimated_monthly_sales": realistic_number,
    "risk_factors": ["risk1", "risk2"],
    "opportunities": ["opp1", "opp2"]
}

Consider local culture, economic factors, fashion preferences, and seasonal patterns.
Be realistic and data-driven in your analysis.`,
		location,
		features.StyleCategory,
		strings.Join(features.ColorPalette, ", "),
		features.DesignComplexity,
		features.TargetDemographic,
		features.ThemeCategory,
		features.VisualAppealScore,
		features.UniquenessScore,
		location,
		strings.Join(entry.Trends, ", "),
		strings.Join(entry.Demographics, ", "),
		entry.MarketSize,
		entry.CompetitionLevel)
}

func recommendationsPrompt(features DesignFeatures, markets []MarketSummary) string {
	summary := make(map[string]map[string]any, len(markets))
	for _, m := range markets {
		summary[m.Location] = map[string]any{
			"score":  m.Score,
			"demand": m.Demand,
			"sales":  m.MonthlySales,
		}
	}
	payload, _ := json.MarshalIndent(summary, "", "  ")

	return fmt.Sprintf(`Generate strategic business recommendations based on this analysis:

Design Strengths:
- Visual Appeal: %.0f/100
- Uniqueness: %.0f/100
- Brand Potential: %s

Market Performance Summary:
%s

Provide 5-7 specific, actionable recommendations covering:
1. Market entry strategy and prioritization
2. Pricing optimization across regions
3. Marketing and promotion tactics
4. Production and inventory planning
5. Risk mitigation strategies
6. Growth opportunities

Return as JSON: {"recommendations": ["rec1", "rec2", ...]}

Make recommendations specific, measurable, and implementable.`,
		features.VisualAppealScore,
		features.UniquenessScore,
		features.BrandPotential,
		string(payload))
}

func trendsPrompt(timeframe string) string {
	return fmt.Sprintf(`Analyze current t-shirt market trends for %s period.

Provide insights on:
1. Popular design styles and their growth rates
2. Color trends and seasonal patterns
3. Emerging themes and cultural influences
4. Consumer behavior changes post-pandemic
5. Technology impact (AI, personalization, sustainability)
6. Regional preference differences
7. Price sensitivity changes

Return as structured JSON with specific metrics where possible.`, timeframe)
}

func competitorAnalysisPrompt(description, targetMarket string, priceRange map[string]float64) string {
	priceText := "Not specified"
	if len(priceRange) > 0 {
		if b, err := json.Marshal(priceRange); err == nil {
			priceText = string(b)
		}
	}

	return fmt.Sprintf(`Analyze competitive landscape for t-shirt design in %s.

Design Description: %s
Price Range: %s

Provide analysis on:
1. Major competitors and market leaders
2. Similar designs currently in market
3. Price positioning strategies
4. Market gaps and opportunities
5. Differentiation strategies needed
6. Competitive advantages to develop
7. Market entry barriers

Return structured JSON analysis.`, targetMarket, description, priceText)
}
