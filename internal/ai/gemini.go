package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"tshirtMarketAi/internal/apperrors"
	"tshirtMarketAi/internal/config"
	"tshirtMarketAi/internal/logger"
	"tshirtMarketAi/internal/market"
)

const defaultModel = "gemini-1.5-flash"

// Fallback recommendations used when the recommendation call fails in any way.
var defaultRecommendations = []string{
	"Focus on highest scoring markets first",
	"Implement dynamic pricing strategy",
	"Target social media marketing",
}

// GeminiGateway implements Gateway against Google's Gemini API. The underlying
// client is safe for concurrent use, so one gateway serves all in-flight calls.
type GeminiGateway struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiGateway constructs the gateway, or fails if no API key is configured.
func NewGeminiGateway(ctx context.Context, cfg config.GeminiConfig) (*GeminiGateway, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &GeminiGateway{
		client:  client,
		model:   normalizeModel(cfg.Model),
		timeout: timeout,
	}, nil
}

// ExtractDesignFeatures asks the vision model for the design profile of one
// normalized JPEG image.
func (g *GeminiGateway) ExtractDesignFeatures(ctx context.Context, image []byte) (DesignFeatures, error) {
	contents := []*genai.Content{{
		Role: genai.RoleUser,
		Parts: []*genai.Part{
			{Text: designAnalysisPrompt()},
			{InlineData: &genai.Blob{MIMEType: "image/jpeg", Data: image}},
		},
	}}

	text, err := g.generate(ctx, contents, 0.4)
	if err != nil {
		return DesignFeatures{}, apperrors.NewAIService(fmt.Sprintf("design analysis failed: %v", err), err)
	}

	raw, err := ExtractJSON(text)
	if err != nil {
		return DesignFeatures{}, err
	}

	return featuresFromRaw(raw), nil
}

// ScoreMarket returns the model's raw market judgment for one location. Typed
// defaulting is applied by the caller, field by field.
func (g *GeminiGateway) ScoreMarket(ctx context.Context, features DesignFeatures, location string, entry market.Entry) (map[string]any, error) {
	text, err := g.generate(ctx, genai.Text(marketAnalysisPrompt(features, location, entry)), 0.4)
	if err != nil {
		return nil, apperrors.NewAIService(fmt.Sprintf("market analysis failed for %s: %v", location, err), err)
	}

	return ExtractJSON(text)
}

// Recommend generates strategic recommendations. It never fails: any error
// falls back to the fixed default list, since recommendations are enhancement
// rather than core signal.
func (g *GeminiGateway) Recommend(ctx context.Context, features DesignFeatures, markets []MarketSummary) []string {
	text, err := g.generate(ctx, genai.Text(recommendationsPrompt(features, markets)), 0.4)
	if err != nil {
		logger.WithError(err).Error("error generating recommendations")
		return defaultRecommendations
	}

	raw, err := ExtractJSON(text)
	if err != nil {
		logger.WithError(err).Error("error parsing recommendations")
		return defaultRecommendations
	}

	recommendations := StringListField(raw, "recommendations", nil)
	if len(recommendations) == 0 {
		return defaultRecommendations
	}
	return recommendations
}

// CurrentTrends asks the model for a structured trend report.
func (g *GeminiGateway) CurrentTrends(ctx context.Context, timeframe string) (map[string]any, error) {
	if timeframe == "" {
		timeframe = "current"
	}

	text, err := g.generate(ctx, genai.Text(trendsPrompt(timeframe)), 0.4)
	if err != nil {
		return nil, apperrors.NewAIService(fmt.Sprintf("trend analysis failed: %v", err), err)
	}

	return ExtractJSON(text)
}

// CompetitorAnalysis asks the model for a competitive-landscape report.
func (g *GeminiGateway) CompetitorAnalysis(ctx context.Context, description, targetMarket string, priceRange map[string]float64) (map[string]any, error) {
	text, err := g.generate(ctx, genai.Text(competitorAnalysisPrompt(description, targetMarket, priceRange)), 0.4)
	if err != nil {
		return nil, apperrors.NewAIService(fmt.Sprintf("competitor analysis failed: %v", err), err)
	}

	return ExtractJSON(text)
}

func (g *GeminiGateway) generate(ctx context.Context, contents []*genai.Content, temperature float32) (string, error) {
	childCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(childCtx, g.model, contents, &genai.GenerateContentConfig{
		Temperature: genai.Ptr(temperature),
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var parts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		if trimmed := strings.TrimSpace(part.Text); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("gemini candidate missing text")
	}
	return strings.Join(parts, "\n\n"), nil
}

func featuresFromRaw(raw map[string]any) DesignFeatures {
	return DesignFeatures{
		StyleCategory:     StringField(raw, "style_category", "modern"),
		ColorPalette:      StringListField(raw, "color_palette", []string{"unknown"}),
		DesignComplexity:  StringField(raw, "design_complexity", "moderate"),
		TargetDemographic: StringField(raw, "target_demographic", "millennials"),
		ThemeCategory:     StringField(raw, "theme_category", "abstract"),
		VisualAppealScore: FloatField(raw, "visual_appeal_score", 75),
		UniquenessScore:   FloatField(raw, "uniqueness_score", 70),
		BrandPotential:    StringField(raw, "brand_potential", "medium"),
		TypographyQuality: OptionalFloatField(raw, "typography_quality"),
		GraphicElements:   StringListField(raw, "graphic_elements", []string{}),
	}
}

func normalizeModel(model string) string {
	clean := strings.TrimSpace(model)
	clean = strings.TrimPrefix(clean, "models/")
	if clean == "" {
		return defaultModel
	}
	return clean
}
