package services

import (
	"context"
	"time"

	"github.com/GregMSThompson/finance-insights/internal/insights"
	"github.com/GregMSThompson/finance-insights/pkg/logger"
)

type analysisService struct {
	ledger   ledgerReader
	clockNow func() time.Time
}

func NewAnalysisService(ledger ledgerReader) *analysisService {
	return &analysisService{
		ledger:   ledger,
		clockNow: time.Now,
	}
}

// Analyze builds the full report over everything the user has stored.
func (s *analysisService) Analyze(ctx context.Context, uid string) (insights.Report, error) {
	expenses, income, err := loadLedger(ctx, s.ledger, uid)
	if err != nil {
		return insights.Report{}, err
	}

	report := insights.Analyze(expenses, income, s.clockNow().UTC())
	logger.FromContext(ctx).Info("analysis completed",
		"health_score", report.Health.Score,
		"anomalies", len(report.Anomalies.Anomalies),
		"recommendations", len(report.Recommendations))
	return report, nil
}
