package analysis

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tshirtMarketAi/internal/ai"
	"tshirtMarketAi/internal/apperrors"
	"tshirtMarketAi/internal/events"
	"tshirtMarketAi/internal/imaging"
	"tshirtMarketAi/internal/logger"
	"tshirtMarketAi/internal/market"
	"tshirtMarketAi/internal/media"
)

const timestampLayout = "2006-01-02 15:04:05"

// Service runs the full design analysis pipeline: precondition the image,
// extract features, score the requested markets concurrently, aggregate and
// recommend.
type Service struct {
	gateway ai.Gateway
	images  *imaging.Preconditioner
	markets market.Table
	archive media.Archiver
	events  *events.Broker
	workers int
}

func NewService(gateway ai.Gateway, images *imaging.Preconditioner, markets market.Table, archive media.Archiver, broker *events.Broker, workers int) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{
		gateway: gateway,
		images:  images,
		markets: markets,
		archive: archive,
		events:  broker,
		workers: workers,
	}
}

func (s *Service) Locations() market.Table {
	return s.markets
}

func (s *Service) publish(id, filename string, stage Stage, err error) {
	if s.events == nil {
		return
	}
	evt := events.Event{AnalysisID: id, Filename: filename, Stage: string(stage)}
	if err != nil {
		evt.Error = err.Error()
	}
	s.events.Publish(evt)
}

// AnalyzeDesign analyzes one uploaded design against the given locations.
// Image failures surface as image processing errors before any AI call is
// made; anything after that is normalized to an analysis service error.
func (s *Service) AnalyzeDesign(ctx context.Context, image []byte, filename string, locations []string) (*Result, error) {
	id := uuid.NewString()
	log := logger.WithFields(map[string]interface{}{
		"analysis_id": id,
		"filename":    filename,
	})

	s.publish(id, filename, StageValidating, nil)
	if err := s.images.Validate(image, filename); err != nil {
		s.publish(id, filename, StageFailed, err)
		return nil, err
	}

	s.publish(id, filename, StagePreconditioning, nil)
	normalized, dims, err := s.images.Normalize(image)
	if err != nil {
		s.publish(id, filename, StageFailed, err)
		return nil, err
	}
	log.WithField("dimensions", fmt.Sprintf("%dx%d", dims.Width, dims.Height)).Debug("image preconditioned")

	s.publish(id, filename, StageExtractingFeatures, nil)
	features, err := s.gateway.ExtractDesignFeatures(ctx, normalized)
	if err != nil {
		wrapped := apperrors.NewAnalysisService("Design feature extraction failed", err)
		s.publish(id, filename, StageFailed, wrapped)
		return nil, wrapped
	}

	s.publish(id, filename, StageScoringMarkets, nil)
	analyses := s.scoreMarkets(ctx, features, locations, log)
	if len(analyses) == 0 {
		err := apperrors.NewAnalysisService("No successful market analyses", nil)
		s.publish(id, filename, StageFailed, err)
		return nil, err
	}

	s.publish(id, filename, StageAggregating, nil)
	overall := overallScore(analyses, s.markets)
	confidence := confidenceScore(features, analyses, s.markets)

	s.publish(id, filename, StageRecommending, nil)
	summaries := make([]ai.MarketSummary, len(analyses))
	for i, a := range analyses {
		summaries[i] = ai.MarketSummary{
			Location:     a.Location,
			Score:        a.MarketScore,
			Demand:       a.DemandLevel,
			MonthlySales: a.EstimatedMonthlySales,
		}
	}
	recommendations := s.gateway.Recommend(ctx, features, summaries)

	result := &Result{
		ID:                id,
		DesignFeatures:    features,
		MarketAnalysis:    analyses,
		OverallScore:      overall,
		Recommendations:   recommendations,
		AnalysisTimestamp: time.Now().Format(timestampLayout),
		ConfidenceScore:   confidence,
	}

	if s.archive != nil {
		archived, err := s.archive.Archive(ctx, media.ArchiveInput{
			Filename:    filename,
			ContentType: "image/jpeg",
			Body:        bytes.NewReader(normalized),
			Size:        int64(len(normalized)),
		})
		switch {
		case err == nil:
			result.ImageURL = archived.URL
		case errors.Is(err, media.ErrArchiverDisabled):
		default:
			log.WithError(err).Warn("image archival failed")
		}
	}

	s.publish(id, filename, StageDone, nil)
	log.WithFields(map[string]interface{}{
		"overall_score": overall,
		"markets":       len(analyses),
	}).Info("analysis complete")
	return result, nil
}

// scoreMarkets fans the requested locations out over a bounded worker pool.
// A failed location is logged and dropped; siblings keep running so one bad
// upstream response does not void the rest.
func (s *Service) scoreMarkets(ctx context.Context, features ai.DesignFeatures, locations []string, log *logrus.Entry) []MarketAnalysis {
	type target struct {
		code  string
		entry market.Entry
	}

	targets := make([]target, 0, len(locations))
	seen := make(map[string]bool, len(locations))
	for _, code := range locations {
		if seen[code] {
			continue
		}
		seen[code] = true
		entry, ok := s.markets.Get(code)
		if !ok {
			log.WithField("location", code).Warn("unknown location skipped")
			continue
		}
		targets = append(targets, target{code: code, entry: entry})
	}

	outcomes := make([]*MarketAnalysis, len(targets))
	pool := NewWorkerPool(s.workers)
	defer pool.Close()

	for i, t := range targets {
		i, t := i, t
		pool.Submit(func() {
			analysis, err := s.scoreMarket(ctx, features, t.code, t.entry)
			if err != nil {
				log.WithError(err).WithField("location", t.code).Warn("market analysis failed")
				return
			}
			outcomes[i] = analysis
		})
	}
	pool.Wait()

	analyses := make([]MarketAnalysis, 0, len(targets))
	for _, outcome := range outcomes {
		if outcome != nil {
			analyses = append(analyses, *outcome)
		}
	}
	return analyses
}

func (s *Service) scoreMarket(ctx context.Context, features ai.DesignFeatures, code string, entry market.Entry) (*MarketAnalysis, error) {
	raw, err := s.gateway.ScoreMarket(ctx, features, code, entry)
	if err != nil {
		return nil, err
	}

	score := ai.FloatField(raw, "market_score", 70)
	opportunity := market.CalculateOpportunity(features.StyleCategory, features.ThemeCategory, features.TargetDemographic, entry)

	return &MarketAnalysis{
		Location:              code,
		MarketScore:           score,
		DemandLevel:           ai.StringField(raw, "demand_level", "medium"),
		PriceRange:            market.Pricing(s.markets, code, score),
		CompetitionLevel:      ai.StringField(raw, "competition_level", "medium"),
		SeasonalTrends:        ai.StringListField(raw, "seasonal_trends", []string{"year-round"}),
		TargetAgeGroups:       ai.StringListField(raw, "target_age_groups", []string{"18-35"}),
		EstimatedMonthlySales: ai.IntField(raw, "estimated_monthly_sales", 1000),
		MarketTrends:          ai.StringListField(raw, "market_trends", []string{}),
		SuccessProbability:    ai.FloatField(raw, "success_probability", 70),
		RiskFactors:           ai.StringListField(raw, "risk_factors", []string{}),
		Opportunities:         ai.StringListField(raw, "opportunities", []string{}),
		Opportunity:           &opportunity,
	}, nil
}

// AnalyzeBatch analyzes each uploaded file in turn. Per-file failures are
// collected rather than failing the batch.
func (s *Service) AnalyzeBatch(ctx context.Context, files []BatchFile, locations []string) *BatchResult {
	batch := &BatchResult{
		TotalProcessed: len(files),
		Results:        make([]BatchItem, 0, len(files)),
		Errors:         []string{},
	}

	for _, file := range files {
		result, err := s.AnalyzeDesign(ctx, file.Data, file.Filename, locations)
		if err != nil {
			batch.Failed++
			batch.Errors = append(batch.Errors, fmt.Sprintf("%s: %v", file.Filename, err))
			continue
		}
		batch.Successful++
		batch.Results = append(batch.Results, BatchItem{Filename: file.Filename, Analysis: *result})
	}
	return batch
}
