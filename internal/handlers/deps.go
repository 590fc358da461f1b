package handlers

import (
	"log/slog"

	"github.com/GregMSThompson/finance-insights/internal/middleware"
	"github.com/GregMSThompson/finance-insights/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Verifier        middleware.TokenVerifier
	CORSOrigins     []string
	AnalysisSvc     AnalysisService
	InsightSvc      InsightService
	GoalSvc         GoalService
	TransactionSvc  TransactionService
}
