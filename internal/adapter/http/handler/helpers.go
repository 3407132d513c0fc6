package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/iho/finbook/internal/adapter/http/dto"
	"github.com/iho/finbook/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrVoucherNotFound),
		errors.Is(err, domain.ErrStatementNotFound),
		errors.Is(err, domain.ErrLedgerRowNotFound),
		errors.Is(err, domain.ErrReportPeriodNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAccountExists),
		errors.Is(err, domain.ErrReportPeriodExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrStatementFinal),
		errors.Is(err, domain.ErrVoucherNotDraft),
		errors.Is(err, domain.ErrInvalidStatusTransition),
		errors.Is(err, domain.ErrStatementNotBalanced):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidAccount),
		errors.Is(err, domain.ErrInvalidAccountType),
		errors.Is(err, domain.ErrInvalidDirection),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidPeriod),
		errors.Is(err, domain.ErrTooFewEntries),
		errors.Is(err, domain.ErrUnbalancedVoucher),
		errors.Is(err, domain.ErrAccountInactive):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNoVouchersForPeriod):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

// parsePeriodParam parses a YYYYMM path or query value.
func parsePeriodParam(value string) (domain.Period, error) {
	return domain.ParsePeriod(value)
}
