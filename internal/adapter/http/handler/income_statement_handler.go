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

// IncomeStatementService defines the behavior needed by
// IncomeStatementHandler.
type IncomeStatementService interface {
	GenerateIncomeStatement(ctx context.Context, period domain.Period, generatedBy string) (*domain.IncomeStatement, error)
	GetIncomeStatement(ctx context.Context, period domain.Period) (*domain.IncomeStatement, error)
	ListIncomeStatements(ctx context.Context, limit, offset int) ([]*domain.IncomeStatement, error)
	UpdateIncomeStatement(ctx context.Context, period domain.Period, items usecase.IncomeStatementLineItems) (*domain.IncomeStatement, error)
	CreateIncomeStatementDirect(ctx context.Context, period domain.Period, items usecase.IncomeStatementLineItems, createdBy string) (*domain.IncomeStatement, error)
	FinalizeIncomeStatement(ctx context.Context, period domain.Period) (*domain.IncomeStatement, error)
}

// IncomeStatementHandler handles income statement HTTP requests.
type IncomeStatementHandler struct {
	stmtUC IncomeStatementService
}

// NewIncomeStatementHandler creates a new IncomeStatementHandler.
func NewIncomeStatementHandler(stmtUC IncomeStatementService) *IncomeStatementHandler {
	return &IncomeStatementHandler{stmtUC: stmtUC}
}

// Generate derives and stores the statement for a period.
func (h *IncomeStatementHandler) Generate(w http.ResponseWriter, r *http.Request) {
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

	stmt, err := h.stmtUC.GenerateIncomeStatement(r.Context(), period, req.GeneratedBy)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to generate income statement", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.IncomeStatementFromDomain(stmt, false))
}

// Get retrieves the stored statement for a period. Pass ?detail=true
// for the expanded presentation totals.
func (h *IncomeStatementHandler) Get(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriodParam(chi.URLParam(r, "period"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", chi.URLParam(r, "period"))
		return
	}

	stmt, err := h.stmtUC.GetIncomeStatement(r.Context(), period)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get income statement", err.Error())
		return
	}

	detail := r.URL.Query().Get("detail") == "true"
	writeJSON(w, http.StatusOK, dto.IncomeStatementFromDomain(stmt, detail))
}

// List lists stored statements.
func (h *IncomeStatementHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	stmts, err := h.stmtUC.ListIncomeStatements(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list income statements", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.IncomeStatementsFromDomain(stmts))
}

// Update overwrites the input lines of a stored statement.
func (h *IncomeStatementHandler) Update(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriodParam(chi.URLParam(r, "period"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", chi.URLParam(r, "period"))
		return
	}

	var req dto.IncomeStatementItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	stmt, err := h.stmtUC.UpdateIncomeStatement(r.Context(), period, req.ToLineItems())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update income statement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.IncomeStatementFromDomain(stmt, false))
}

// CreateDirect stores caller-provided figures without derivation.
func (h *IncomeStatementHandler) CreateDirect(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriodParam(chi.URLParam(r, "period"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", chi.URLParam(r, "period"))
		return
	}

	var req dto.IncomeStatementItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	stmt, err := h.stmtUC.CreateIncomeStatementDirect(r.Context(), period, req.ToLineItems(), req.CreatedBy)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create income statement", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.IncomeStatementFromDomain(stmt, false))
}

// Finalize locks the statement against regeneration and edits.
func (h *IncomeStatementHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriodParam(chi.URLParam(r, "period"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", chi.URLParam(r, "period"))
		return
	}

	stmt, err := h.stmtUC.FinalizeIncomeStatement(r.Context(), period)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to finalize income statement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.IncomeStatementFromDomain(stmt, false))
}
