package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/finbook/internal/adapter/http/dto"
	"github.com/iho/finbook/internal/domain"
	"github.com/iho/finbook/internal/usecase"
)

// BalanceSheetService defines the behavior needed by BalanceSheetHandler.
type BalanceSheetService interface {
	GenerateBalanceSheet(ctx context.Context, period domain.Period, generatedBy string) (*domain.BalanceSheet, error)
	GetBalanceSheet(ctx context.Context, period domain.Period) (*domain.BalanceSheet, error)
	ListBalanceSheets(ctx context.Context, limit, offset int) ([]*domain.BalanceSheet, error)
	UpdateBalanceSheet(ctx context.Context, period domain.Period, items usecase.BalanceSheetLineItems) (*domain.BalanceSheet, error)
	CreateBalanceSheetDirect(ctx context.Context, period domain.Period, items usecase.BalanceSheetLineItems, createdBy string) (*domain.BalanceSheet, error)
	FinalizeBalanceSheet(ctx context.Context, period domain.Period) (*domain.BalanceSheet, error)
}

// BalanceSheetHandler handles balance sheet HTTP requests.
type BalanceSheetHandler struct {
	sheetUC BalanceSheetService
}

// NewBalanceSheetHandler creates a new BalanceSheetHandler.
func NewBalanceSheetHandler(sheetUC BalanceSheetService) *BalanceSheetHandler {
	return &BalanceSheetHandler{sheetUC: sheetUC}
}

// Generate derives and stores the sheet for a period.
func (h *BalanceSheetHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateStatementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	period, err := parsePeriodParam(req.Period)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", req.Period)
		return
	}

	sheet, err := h.sheetUC.GenerateBalanceSheet(r.Context(), period, req.GeneratedBy)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to generate balance sheet", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.BalanceSheetFromDomain(sheet))
}

// Get retrieves the stored sheet for a period.
func (h *BalanceSheetHandler) Get(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriodParam(chi.URLParam(r, "period"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", chi.URLParam(r, "period"))
		return
	}

	sheet, err := h.sheetUC.GetBalanceSheet(r.Context(), period)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get balance sheet", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceSheetFromDomain(sheet))
}

// List lists stored sheets.
func (h *BalanceSheetHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	sheets, err := h.sheetUC.ListBalanceSheets(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list balance sheets", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceSheetsFromDomain(sheets))
}

// Update overwrites the line items of a stored sheet.
func (h *BalanceSheetHandler) Update(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriodParam(chi.URLParam(r, "period"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", chi.URLParam(r, "period"))
		return
	}

	var req dto.BalanceSheetItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	sheet, err := h.sheetUC.UpdateBalanceSheet(r.Context(), period, req.ToLineItems())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update balance sheet", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceSheetFromDomain(sheet))
}

// CreateDirect stores caller-provided figures without derivation.
func (h *BalanceSheetHandler) CreateDirect(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriodParam(chi.URLParam(r, "period"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", chi.URLParam(r, "period"))
		return
	}

	var req dto.BalanceSheetItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	sheet, err := h.sheetUC.CreateBalanceSheetDirect(r.Context(), period, req.ToLineItems(), req.CreatedBy)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create balance sheet", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.BalanceSheetFromDomain(sheet))
}

// Finalize locks the sheet against regeneration and edits.
func (h *BalanceSheetHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriodParam(chi.URLParam(r, "period"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", chi.URLParam(r, "period"))
		return
	}

	sheet, err := h.sheetUC.FinalizeBalanceSheet(r.Context(), period)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to finalize balance sheet", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceSheetFromDomain(sheet))
}
