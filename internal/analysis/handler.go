package analysis

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"tshirtMarketAi/internal/apperrors"
	"tshirtMarketAi/internal/events"
	"tshirtMarketAi/internal/logger"
)

// Handler exposes the analysis endpoints.
type Handler struct {
	Service          *Service
	Broker           *events.Broker
	MaxUploadBytes   int64
	DefaultLocations []string
}

// Single handles POST /api/v1/analysis/single.
func (h Handler) Single(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.MaxUploadBytes + (1 << 20)); err != nil {
		writeError(w, apperrors.NewValidation(fmt.Sprintf("could not parse form: %v", err), err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, apperrors.NewValidation("file is required", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.MaxUploadBytes+1))
	if err != nil {
		writeError(w, apperrors.NewValidation("could not read file", err))
		return
	}
	if len(data) == 0 {
		writeError(w, apperrors.NewValidation("empty file", nil))
		return
	}

	result, err := h.Service.AnalyzeDesign(r.Context(), data, header.Filename, h.locations(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, result)
}

// Batch handles POST /api/v1/analysis/batch.
func (h Handler) Batch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 * (h.MaxUploadBytes + (1 << 20))); err != nil {
		writeError(w, apperrors.NewValidation(fmt.Sprintf("could not parse form: %v", err), err))
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		writeError(w, apperrors.NewValidation("files is required", nil))
		return
	}

	files := make([]BatchFile, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			writeError(w, apperrors.NewValidation(fmt.Sprintf("could not open %s", header.Filename), err))
			return
		}
		data, err := io.ReadAll(io.LimitReader(file, h.MaxUploadBytes+1))
		file.Close()
		if err != nil {
			writeError(w, apperrors.NewValidation(fmt.Sprintf("could not read %s", header.Filename), err))
			return
		}
		files = append(files, BatchFile{Filename: header.Filename, Data: data})
	}

	writeData(w, h.Service.AnalyzeBatch(r.Context(), files, h.locations(r)))
}

// StreamEvents handles GET /api/v1/analysis/events as server-sent events.
func (h Handler) StreamEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, apperrors.NewAnalysisService("streaming unsupported", nil))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	ch := h.Broker.Subscribe()
	defer h.Broker.Unsubscribe(ch)

	for {
		select {
		case <-r.Context().Done():
			return
		case evt := <-ch:
			payload, err := json.Marshal(evt)
			if err != nil {
				logger.WithError(err).Error("could not encode event")
				continue
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func (h Handler) locations(r *http.Request) []string {
	raw := r.FormValue("locations")
	if strings.TrimSpace(raw) == "" {
		return h.DefaultLocations
	}
	parts := strings.Split(raw, ",")
	locations := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			locations = append(locations, trimmed)
		}
	}
	if len(locations) == 0 {
		return h.DefaultLocations
	}
	return locations
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
