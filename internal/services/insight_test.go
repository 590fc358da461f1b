package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/GregMSThompson/finance-insights/internal/dto"
	"github.com/GregMSThompson/finance-insights/internal/errs"
	"github.com/GregMSThompson/finance-insights/internal/models"
	"github.com/GregMSThompson/finance-insights/pkg/helpers"
)

func newTestInsightService(vertex vertexClient, ledger *fakeLedger, cache *fakeNarrativeCache) *insightService {
	svc := NewInsightService(vertex, ledger, cache, time.Hour)
	svc.clockNow = helpers.TestClock(testNow)
	return svc
}

func TestNarrativeFromModel(t *testing.T) {
	vertex := &fakeVertexClient{resp: dto.VertexGenerateResponse{Text: "Cook at home more."}}
	cache := &fakeNarrativeCache{}
	svc := newTestInsightService(vertex, sampleLedger(), cache)

	got, err := svc.Narrative(helpers.TestCtx(), "user", false)
	if err != nil {
		t.Fatalf("Narrative error: %v", err)
	}
	if got.Narrative != "Cook at home more." || got.Source != dto.NarrativeSourceVertex || got.Cached {
		t.Fatalf("unexpected response: %+v", got)
	}
	if len(vertex.requests) != 1 {
		t.Fatalf("expected one model call, got %d", len(vertex.requests))
	}
	if !strings.Contains(vertex.requests[0].UserMessage, "Total Spending: $1,926.50") {
		t.Fatalf("prompt missing totals: %q", vertex.requests[0].UserMessage)
	}
	if cache.saved == nil || !cache.saved.ExpiresAt.Equal(testNow.Add(time.Hour)) {
		t.Fatalf("narrative not cached with ttl: %+v", cache.saved)
	}
}

func TestNarrativeFallsBackOnModelError(t *testing.T) {
	vertex := &fakeVertexClient{err: errs.NewExternalServiceError("vertex", true, errors.New("quota"))}
	svc := newTestInsightService(vertex, sampleLedger(), &fakeNarrativeCache{})

	got, err := svc.Narrative(helpers.TestCtx(), "user", false)
	if err != nil {
		t.Fatalf("model failure should not fail the request: %v", err)
	}
	if got.Source != dto.NarrativeSourceRules {
		t.Fatalf("source = %q", got.Source)
	}
	if !strings.HasPrefix(got.Narrative, "**Spending Analysis** (Total: $1,926.50)") {
		t.Fatalf("unexpected narrative: %q", got.Narrative)
	}
}

func TestNarrativeWithoutModel(t *testing.T) {
	svc := newTestInsightService(nil, sampleLedger(), &fakeNarrativeCache{})

	got, err := svc.Narrative(helpers.TestCtx(), "user", false)
	if err != nil {
		t.Fatalf("Narrative error: %v", err)
	}
	if got.Source != dto.NarrativeSourceRules {
		t.Fatalf("source = %q", got.Source)
	}
}

func TestNarrativeSkipsModelWithoutExpenses(t *testing.T) {
	vertex := &fakeVertexClient{resp: dto.VertexGenerateResponse{Text: "unused"}}
	svc := newTestInsightService(vertex, &fakeLedger{}, &fakeNarrativeCache{})

	got, err := svc.Narrative(helpers.TestCtx(), "user", false)
	if err != nil {
		t.Fatalf("Narrative error: %v", err)
	}
	if len(vertex.requests) != 0 || got.Source != dto.NarrativeSourceRules {
		t.Fatalf("expected rule-based narrative without a model call, got %+v", got)
	}
}

func TestNarrativeServedFromCache(t *testing.T) {
	cache := &fakeNarrativeCache{insight: &models.Insight{
		Narrative: "cached advice",
		Source:    dto.NarrativeSourceVertex,
		CreatedAt: testNow.Add(-time.Minute),
		ExpiresAt: testNow.Add(time.Minute),
	}}
	ledger := sampleLedger()
	vertex := &fakeVertexClient{}
	svc := newTestInsightService(vertex, ledger, cache)

	got, err := svc.Narrative(helpers.TestCtx(), "user", false)
	if err != nil {
		t.Fatalf("Narrative error: %v", err)
	}
	if !got.Cached || got.Narrative != "cached advice" {
		t.Fatalf("expected cached narrative, got %+v", got)
	}
	if ledger.listCalls != 0 || len(vertex.requests) != 0 {
		t.Fatalf("cache hit should not read the ledger or call the model")
	}
}

func TestNarrativeRegeneratesWhenStaleOrRefreshed(t *testing.T) {
	cases := []struct {
		name      string
		expiresAt time.Time
		refresh   bool
	}{
		{"expired", testNow, false},
		{"refresh", testNow.Add(time.Hour), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cache := &fakeNarrativeCache{insight: &models.Insight{Narrative: "old", ExpiresAt: tc.expiresAt}}
			vertex := &fakeVertexClient{resp: dto.VertexGenerateResponse{Text: "new"}}
			svc := newTestInsightService(vertex, sampleLedger(), cache)

			got, err := svc.Narrative(helpers.TestCtx(), "user", tc.refresh)
			if err != nil {
				t.Fatalf("Narrative error: %v", err)
			}
			if got.Cached || got.Narrative != "new" {
				t.Fatalf("expected regenerated narrative, got %+v", got)
			}
		})
	}
}

func TestNarrativeCacheFailuresAreNotFatal(t *testing.T) {
	cache := &fakeNarrativeCache{getErr: errors.New("read failed"), saveErr: errors.New("write failed")}
	vertex := &fakeVertexClient{resp: dto.VertexGenerateResponse{Text: "advice"}}
	svc := newTestInsightService(vertex, sampleLedger(), cache)

	got, err := svc.Narrative(helpers.TestCtx(), "user", false)
	if err != nil {
		t.Fatalf("Narrative error: %v", err)
	}
	if got.Narrative != "advice" {
		t.Fatalf("narrative = %q", got.Narrative)
	}
}
