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

// VoucherService defines the behavior needed by VoucherHandler.
type VoucherService interface {
	CreateVoucher(ctx context.Context, input usecase.CreateVoucherInput) (*domain.Voucher, error)
	GetVoucher(ctx context.Context, number string) (*domain.Voucher, error)
	ListVouchers(ctx context.Context, filter domain.VoucherFilter) ([]*domain.Voucher, error)
	UpdateVoucher(ctx context.Context, input usecase.UpdateVoucherInput) (*domain.Voucher, error)
	SubmitVoucher(ctx context.Context, number string) (*domain.Voucher, error)
	AuditVoucher(ctx context.Context, number, auditedBy string) (*domain.Voucher, error)
	PostVoucher(ctx context.Context, number string) (*domain.Voucher, error)
	DeleteVoucher(ctx context.Context, number string) error
}

// VoucherHandler handles voucher HTTP requests.
type VoucherHandler struct {
	voucherUC VoucherService
}

// NewVoucherHandler creates a new VoucherHandler.
func NewVoucherHandler(voucherUC VoucherService) *VoucherHandler {
	return &VoucherHandler{voucherUC: voucherUC}
}

// Create creates a new DRAFT voucher.
func (h *VoucherHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVoucherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	voucher, err := h.voucherUC.CreateVoucher(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create voucher", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.VoucherFromDomain(voucher))
}

// Get retrieves a voucher with its entries.
func (h *VoucherHandler) Get(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	if number == "" {
		writeError(w, http.StatusBadRequest, "missing voucher number", "")
		return
	}

	voucher, err := h.voucherUC.GetVoucher(r.Context(), number)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get voucher", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.VoucherFromDomain(voucher))
}

// List lists vouchers with optional status and period filters.
func (h *VoucherHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.VoucherFilter{
		Status: domain.VoucherStatus(r.URL.Query().Get("status")),
		Limit:  parseIntQuery(r, "limit", 20),
		Offset: parseIntQuery(r, "offset", 0),
	}
	if token := r.URL.Query().Get("period"); token != "" {
		period, err := parsePeriodParam(token)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid period", token)
			return
		}
		filter.Period = period
	}

	vouchers, err := h.voucherUC.ListVouchers(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list vouchers", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListVouchersResponse{
		Vouchers: dto.VouchersFromDomain(vouchers),
		Total:    int64(len(vouchers)),
	})
}

// Update rewrites a DRAFT voucher.
func (h *VoucherHandler) Update(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	var req dto.UpdateVoucherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	voucher, err := h.voucherUC.UpdateVoucher(r.Context(), req.ToUseCaseInput(number))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update voucher", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.VoucherFromDomain(voucher))
}

// Submit moves a voucher from DRAFT to SUBMITTED.
func (h *VoucherHandler) Submit(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	voucher, err := h.voucherUC.SubmitVoucher(r.Context(), number)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to submit voucher", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.VoucherFromDomain(voucher))
}

// Audit moves a voucher from SUBMITTED to AUDITED.
func (h *VoucherHandler) Audit(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	var req dto.AuditVoucherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.AuditedBy == "" {
		writeError(w, http.StatusBadRequest, "missing audited_by", "")
		return
	}

	voucher, err := h.voucherUC.AuditVoucher(r.Context(), number, req.AuditedBy)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to audit voucher", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.VoucherFromDomain(voucher))
}

// Post moves a voucher from AUDITED to POSTED.
func (h *VoucherHandler) Post(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	voucher, err := h.voucherUC.PostVoucher(r.Context(), number)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to post voucher", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.VoucherFromDomain(voucher))
}

// Delete removes a DRAFT voucher.
func (h *VoucherHandler) Delete(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	if err := h.voucherUC.DeleteVoucher(r.Context(), number); err != nil {
		writeError(w, mapDomainError(err), "failed to delete voucher", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
