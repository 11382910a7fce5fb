package trends

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"tshirtMarketAi/internal/ai"
	"tshirtMarketAi/internal/apperrors"
)

// Handler exposes trend intelligence endpoints.
type Handler struct {
	Provider Provider
	Gateway  ai.Gateway
}

// Current handles POST /api/v1/trends/current.
func (h Handler) Current(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Timeframe string `json:"timeframe"`
	}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	timeframe := strings.TrimSpace(req.Timeframe)
	if timeframe == "" {
		timeframe = "current"
	}

	trends, err := h.Provider.Current(r.Context(), timeframe)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, map[string]any{
		"timeframe":     timeframe,
		"trends":        trends,
		"analysis_date": time.Now().Format(time.RFC3339),
	})
}

// Competitor handles POST /api/v1/trends/competitor-analysis.
func (h Handler) Competitor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DesignDescription string             `json:"design_description"`
		TargetMarket      string             `json:"target_market"`
		PriceRange        map[string]float64 `json:"price_range"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.NewValidation("invalid request body", err))
		return
	}
	if strings.TrimSpace(req.DesignDescription) == "" {
		writeError(w, apperrors.NewValidation("design_description is required", nil))
		return
	}
	if strings.TrimSpace(req.TargetMarket) == "" {
		writeError(w, apperrors.NewValidation("target_market is required", nil))
		return
	}

	analysis, err := h.Gateway.CompetitorAnalysis(r.Context(), req.DesignDescription, req.TargetMarket, req.PriceRange)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, map[string]any{
		"target_market":       req.TargetMarket,
		"competitor_analysis": analysis,
		"analysis_date":       time.Now().Format(time.RFC3339),
	})
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
