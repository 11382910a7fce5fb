package market

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"tshirtMarketAi/internal/apperrors"
	"tshirtMarketAi/internal/logger"
)

// TrendSource supplies live trend intelligence for the insights endpoint.
type TrendSource interface {
	CurrentTrends(ctx context.Context, timeframe string) (map[string]any, error)
}

// Handler exposes the market reference endpoints.
type Handler struct {
	Table  Table
	Trends TrendSource
}

// LocationInfo is the list entry returned by the locations endpoint.
type LocationInfo struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Currency    string `json:"currency"`
	MarketSize  string `json:"market_size"`
}

var locationNames = map[string]string{
	"USA":       "United States",
	"India":     "India",
	"UK":        "United Kingdom",
	"Germany":   "Germany",
	"Japan":     "Japan",
	"Brazil":    "Brazil",
	"Australia": "Australia",
	"Canada":    "Canada",
}

// Locations handles GET /api/v1/market/locations.
func (h Handler) Locations(w http.ResponseWriter, r *http.Request) {
	codes := h.Table.Codes()
	infos := make([]LocationInfo, 0, len(codes))
	for _, code := range codes {
		entry, _ := h.Table.Get(code)
		name := locationNames[code]
		if name == "" {
			name = code
		}
		infos = append(infos, LocationInfo{
			Code:        code,
			Name:        name,
			Description: describe(entry),
			Currency:    entry.Currency,
			MarketSize:  entry.MarketSize,
		})
	}
	writeData(w, map[string]any{"locations": infos, "total": len(infos)})
}

func describe(entry Entry) string {
	size := entry.MarketSize
	if size == "" {
		size = "medium"
	}
	maturity := entry.MarketMaturity
	if maturity == "" {
		maturity = "emerging"
	}
	return title(size) + " " + maturity + " market"
}

func title(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// Insights handles GET /api/v1/market/insights/{location}. The reference
// summary always returns; live trend intelligence is best effort and omitted
// when the upstream call fails.
func (h Handler) Insights(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "location")
	entry, ok := h.Table.Get(code)
	if !ok {
		writeError(w, apperrors.NewNotFound("unknown location: "+code))
		return
	}

	insights := map[string]any{
		"location":          code,
		"market_size":       entry.MarketSize,
		"market_maturity":   entry.MarketMaturity,
		"competition_level": entry.CompetitionLevel,
		"currency":          entry.Currency,
		"base_price_range": map[string]float64{
			"min": entry.BasePriceMin,
			"max": entry.BasePriceMax,
		},
		"popular_trends":   entry.Trends,
		"key_demographics": entry.Demographics,
		"seasonal_peaks":   entry.SeasonalPeaks,
		"analysis_date":    time.Now().Format(time.RFC3339),
	}

	if h.Trends != nil {
		trends, err := h.Trends.CurrentTrends(r.Context(), "current")
		if err != nil {
			logger.WithError(err).WithField("location", code).Warn("live trend lookup failed")
		} else {
			insights["current_trends"] = trends
		}
	}

	writeData(w, insights)
}

// Compare handles GET /api/v1/market/compare/{first}/{second}.
func (h Handler) Compare(w http.ResponseWriter, r *http.Request) {
	firstCode := chi.URLParam(r, "first")
	secondCode := chi.URLParam(r, "second")

	first, ok := h.Table.Get(firstCode)
	if !ok {
		writeError(w, apperrors.NewNotFound("unknown location: "+firstCode))
		return
	}
	second, ok := h.Table.Get(secondCode)
	if !ok {
		writeError(w, apperrors.NewNotFound("unknown location: "+secondCode))
		return
	}

	writeData(w, map[string]any{
		"locations": []string{firstCode, secondCode},
		firstCode:   comparisonSummary(first),
		secondCode:  comparisonSummary(second),
		"price_difference": map[string]float64{
			"min": round2(math.Abs(first.BasePriceMin - second.BasePriceMin)),
			"max": round2(math.Abs(first.BasePriceMax - second.BasePriceMax)),
		},
	})
}

func comparisonSummary(entry Entry) map[string]any {
	return map[string]any{
		"market_size":       entry.MarketSize,
		"market_maturity":   entry.MarketMaturity,
		"competition_level": entry.CompetitionLevel,
		"currency":          entry.Currency,
		"base_price_range": map[string]float64{
			"min": entry.BasePriceMin,
			"max": entry.BasePriceMax,
		},
		"popular_trends": entry.Trends,
	}
}

func writeData(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	response := map[string]any{"success": true, "data": payload}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apperrors.StatusCode(err))
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   err.Error(),
	})
}
