package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/finance-insights/internal/dto"
	"github.com/GregMSThompson/finance-insights/internal/middleware"
	"github.com/GregMSThompson/finance-insights/internal/response"
)

type TransactionService interface {
	ImportExpenses(ctx context.Context, uid string, req dto.ImportExpensesRequest) (dto.ImportResult, error)
	ImportIncome(ctx context.Context, uid string, req dto.ImportIncomeRequest) (dto.ImportResult, error)
}

type transactionHandlers struct {
	ResponseHandler response.ResponseHandler
	TransactionSvc  TransactionService
}

func NewTransactionHandlers(deps *Deps) *transactionHandlers {
	return &transactionHandlers{
		ResponseHandler: deps.ResponseHandler,
		TransactionSvc:  deps.TransactionSvc,
	}
}

func (h *transactionHandlers) TransactionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/expenses", h.ImportExpenses)
	r.Post("/income", h.ImportIncome)
	return r
}

func (h *transactionHandlers) ImportExpenses(w http.ResponseWriter, r *http.Request) {
	var req dto.ImportExpensesRequest
	if err := decodeBody(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	result, err := h.TransactionSvc.ImportExpenses(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, result)
}

func (h *transactionHandlers) ImportIncome(w http.ResponseWriter, r *http.Request) {
	var req dto.ImportIncomeRequest
	if err := decodeBody(r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	result, err := h.TransactionSvc.ImportIncome(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, result)
}
