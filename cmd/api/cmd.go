package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/GregMSThompson/finance-insights/internal/bootstrap"
	"github.com/GregMSThompson/finance-insights/internal/config"
	"github.com/GregMSThompson/finance-insights/internal/handlers"
	"github.com/GregMSThompson/finance-insights/internal/middleware"
	"github.com/GregMSThompson/finance-insights/internal/response"
	"github.com/GregMSThompson/finance-insights/internal/router"
	"github.com/GregMSThompson/finance-insights/internal/services"
	"github.com/GregMSThompson/finance-insights/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = response.New()
	deps.CORSOrigins = cfg.CORSOrigins

	if cfg.UseMemoryStore {
		// single process store, no model: narratives are rule based
		mem := store.NewMemoryStore()
		deps.Verifier = middleware.DevVerifier{}
		deps.AnalysisSvc = services.NewAnalysisService(mem)
		deps.InsightSvc = services.NewInsightService(nil, mem, mem, cfg.AITTL)
		deps.GoalSvc = services.NewGoalService(mem, mem)
		deps.TransactionSvc = services.NewTransactionService(mem, mem)
	} else {
		// stores
		tstore := store.NewTransactionStore(bs.Firestore)
		gstore := store.NewGoalStore(bs.Firestore)
		istore := store.NewInsightStore(bs.Firestore)

		// services
		deps.Verifier = bs.Firebase
		deps.AnalysisSvc = services.NewAnalysisService(tstore)
		deps.InsightSvc = services.NewInsightService(bs.VertexAdapter, tstore, istore, cfg.AITTL)
		deps.GoalSvc = services.NewGoalService(gstore, tstore)
		deps.TransactionSvc = services.NewTransactionService(tstore, istore)
	}

	// router
	r := router.NewRouter(deps)
	bs.Log.Info("listening", "addr", cfg.Addr())
	err = http.ListenAndServe(cfg.Addr(), r)
	exitOnError("server start failed", err, bs.Log)
}
