package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/finbook/internal/adapter/http/dto"
	"github.com/iho/finbook/internal/domain"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	GenerateGeneralLedger(ctx context.Context, period domain.Period) ([]*domain.GeneralLedgerRow, error)
	ListGeneralLedger(ctx context.Context, period domain.Period) ([]*domain.GeneralLedgerRow, error)
	GetLedgerRow(ctx context.Context, period domain.Period, accountCode string) (*domain.GeneralLedgerRow, error)
}

// LedgerHandler handles general ledger HTTP requests.
type LedgerHandler struct {
	ledgerUC LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC}
}

// Generate rebuilds the ledger rows for a period.
func (h *LedgerHandler) Generate(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriodParam(chi.URLParam(r, "period"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", chi.URLParam(r, "period"))
		return
	}

	rows, err := h.ledgerUC.GenerateGeneralLedger(r.Context(), period)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to generate general ledger", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.LedgerRowsFromDomain(rows))
}

// List returns the stored ledger rows for a period.
func (h *LedgerHandler) List(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriodParam(chi.URLParam(r, "period"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", chi.URLParam(r, "period"))
		return
	}

	rows, err := h.ledgerUC.ListGeneralLedger(r.Context(), period)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list general ledger", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LedgerRowsFromDomain(rows))
}

// GetRow returns one account's ledger row for a period.
func (h *LedgerHandler) GetRow(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriodParam(chi.URLParam(r, "period"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", chi.URLParam(r, "period"))
		return
	}

	code := chi.URLParam(r, "code")
	row, err := h.ledgerUC.GetLedgerRow(r.Context(), period, code)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get ledger row", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LedgerRowFromDomain(row))
}
