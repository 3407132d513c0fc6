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

// PeriodService defines the behavior needed by PeriodHandler.
type PeriodService interface {
	CreateReportPeriod(ctx context.Context, input usecase.CreateReportPeriodInput) (*domain.ReportPeriod, error)
	GetReportPeriod(ctx context.Context, code domain.Period) (*domain.ReportPeriod, error)
	ListReportPeriods(ctx context.Context, limit, offset int) ([]*domain.ReportPeriod, error)
	ClosePeriod(ctx context.Context, code domain.Period, closedBy string) (*domain.ReportPeriod, error)
	ReopenPeriod(ctx context.Context, code domain.Period) (*domain.ReportPeriod, error)
	ListVoucherPeriods(ctx context.Context) ([]domain.Period, error)
}

// PeriodHandler handles report period HTTP requests.
type PeriodHandler struct {
	periodUC PeriodService
}

// NewPeriodHandler creates a new PeriodHandler.
func NewPeriodHandler(periodUC PeriodService) *PeriodHandler {
	return &PeriodHandler{periodUC: periodUC}
}

// Create registers a period window.
func (h *PeriodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReportPeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	code, err := parsePeriodParam(req.Code)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", req.Code)
		return
	}

	period, err := h.periodUC.CreateReportPeriod(r.Context(), usecase.CreateReportPeriodInput{
		Code: code,
		Name: req.Name,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create report period", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.ReportPeriodFromDomain(period))
}

// Get retrieves a registered period.
func (h *PeriodHandler) Get(w http.ResponseWriter, r *http.Request) {
	code, err := parsePeriodParam(chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", chi.URLParam(r, "code"))
		return
	}

	period, err := h.periodUC.GetReportPeriod(r.Context(), code)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get report period", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReportPeriodFromDomain(period))
}

// List lists registered periods.
func (h *PeriodHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	periods, err := h.periodUC.ListReportPeriods(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list report periods", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReportPeriodsFromDomain(periods))
}

// Close marks a period closed.
func (h *PeriodHandler) Close(w http.ResponseWriter, r *http.Request) {
	code, err := parsePeriodParam(chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", chi.URLParam(r, "code"))
		return
	}

	var req dto.ClosePeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	period, err := h.periodUC.ClosePeriod(r.Context(), code, req.ClosedBy)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to close report period", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReportPeriodFromDomain(period))
}

// Reopen clears the closed flag.
func (h *PeriodHandler) Reopen(w http.ResponseWriter, r *http.Request) {
	code, err := parsePeriodParam(chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", chi.URLParam(r, "code"))
		return
	}

	period, err := h.periodUC.ReopenPeriod(r.Context(), code)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to reopen report period", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReportPeriodFromDomain(period))
}

// VoucherPeriods lists the distinct periods that have vouchers eligible
// for statement generation.
func (h *PeriodHandler) VoucherPeriods(w http.ResponseWriter, r *http.Request) {
	periods, err := h.periodUC.ListVoucherPeriods(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list voucher periods", err.Error())
		return
	}

	tokens := make([]string, len(periods))
	for i, p := range periods {
		tokens[i] = p.String()
	}
	writeJSON(w, http.StatusOK, dto.PeriodListResponse{Periods: tokens})
}
