package services

import (
	"context"
	"errors"
	"time"

	"github.com/GregMSThompson/finance-insights/internal/dto"
	"github.com/GregMSThompson/finance-insights/internal/errs"
	"github.com/GregMSThompson/finance-insights/internal/insights"
	"github.com/GregMSThompson/finance-insights/internal/models"
	"github.com/GregMSThompson/finance-insights/pkg/helpers"
	"github.com/GregMSThompson/finance-insights/pkg/logger"
)

type vertexClient interface {
	GenerateContent(ctx context.Context, req dto.VertexGenerateRequest) (dto.VertexGenerateResponse, error)
}

type narrativeCache interface {
	GetNarrative(ctx context.Context, uid string) (*models.Insight, error)
	SaveNarrative(ctx context.Context, uid string, in *models.Insight) error
}

const narrativeSystemPrompt = "You write short, practical personal finance advice in markdown. " +
	"Only use figures that appear in the data you are given."

type insightService struct {
	vertex   vertexClient
	ledger   ledgerReader
	cache    narrativeCache
	ttl      time.Duration
	clockNow func() time.Time
}

// NewInsightService takes a nil vertex client to always use the rule-based
// narrative. A ttl of zero disables caching.
func NewInsightService(vertex vertexClient, ledger ledgerReader, cache narrativeCache, ttl time.Duration) *insightService {
	return &insightService{
		vertex:   vertex,
		ledger:   ledger,
		cache:    cache,
		ttl:      ttl,
		clockNow: time.Now,
	}
}

// Narrative returns the cached narrative while it is fresh, unless refresh
// is set. Model failures never fail the request; the rule-based narrative is
// served instead.
func (s *insightService) Narrative(ctx context.Context, uid string, refresh bool) (dto.NarrativeResponse, error) {
	log := logger.FromContext(ctx)
	now := s.clockNow().UTC()

	if !refresh && s.ttl > 0 {
		if cached, ok := s.cached(ctx, uid, now); ok {
			log.Info("narrative served from cache", "source", cached.Source)
			return toNarrativeResponse(cached, true), nil
		}
	}

	expenses, income, err := loadLedger(ctx, s.ledger, uid)
	if err != nil {
		return dto.NarrativeResponse{}, err
	}
	report := insights.Analyze(expenses, income, now)

	text, source := s.generate(ctx, report, len(expenses) > 0)
	in := &models.Insight{
		Narrative: text,
		Source:    source,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if s.ttl > 0 {
		if err := s.cache.SaveNarrative(ctx, uid, in); err != nil {
			log.Warn("failed to cache narrative", "error", err)
		}
	}

	log.Info("narrative generated", "source", source)
	return toNarrativeResponse(in, false), nil
}

func (s *insightService) cached(ctx context.Context, uid string, now time.Time) (*models.Insight, bool) {
	in, err := s.cache.GetNarrative(ctx, uid)
	if err != nil {
		var notFound *errs.NotFoundError
		if !errors.As(err, &notFound) {
			logger.FromContext(ctx).Warn("narrative cache read failed", "error", err)
		}
		return nil, false
	}
	if !now.Before(in.ExpiresAt) {
		return nil, false
	}
	return in, true
}

func (s *insightService) generate(ctx context.Context, report insights.Report, hasData bool) (string, string) {
	if s.vertex == nil || !hasData {
		return insights.BasicNarrative(report), dto.NarrativeSourceRules
	}

	resp, err := s.vertex.GenerateContent(ctx, dto.VertexGenerateRequest{
		System:          narrativeSystemPrompt,
		UserMessage:     insights.NarrativePrompt(report),
		Temperature:     helpers.Ptr(float32(0.4)),
		MaxOutputTokens: helpers.Ptr(int32(1024)),
	})
	if err != nil {
		logger.FromContext(ctx).Warn("narrative model failed, using rule-based narrative", "error", err)
		return insights.BasicNarrative(report), dto.NarrativeSourceRules
	}
	return resp.Text, dto.NarrativeSourceVertex
}

func toNarrativeResponse(in *models.Insight, cached bool) dto.NarrativeResponse {
	return dto.NarrativeResponse{
		Narrative: in.Narrative,
		Source:    in.Source,
		Cached:    cached,
		CreatedAt: in.CreatedAt,
		ExpiresAt: in.ExpiresAt,
	}
}
