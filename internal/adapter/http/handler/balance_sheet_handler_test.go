package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finbook/internal/adapter/http/dto"
	"github.com/iho/finbook/internal/domain"
	"github.com/iho/finbook/internal/usecase"
)

type balanceSheetServiceStub struct {
	generateFn func(ctx context.Context, period domain.Period, generatedBy string) (*domain.BalanceSheet, error)
	getFn      func(ctx context.Context, period domain.Period) (*domain.BalanceSheet, error)
	listFn     func(ctx context.Context, limit, offset int) ([]*domain.BalanceSheet, error)
	updateFn   func(ctx context.Context, period domain.Period, items usecase.BalanceSheetLineItems) (*domain.BalanceSheet, error)
	createFn   func(ctx context.Context, period domain.Period, items usecase.BalanceSheetLineItems, createdBy string) (*domain.BalanceSheet, error)
	finalizeFn func(ctx context.Context, period domain.Period) (*domain.BalanceSheet, error)
}

func (s *balanceSheetServiceStub) GenerateBalanceSheet(ctx context.Context, period domain.Period, generatedBy string) (*domain.BalanceSheet, error) {
	return s.generateFn(ctx, period, generatedBy)
}

func (s *balanceSheetServiceStub) GetBalanceSheet(ctx context.Context, period domain.Period) (*domain.BalanceSheet, error) {
	return s.getFn(ctx, period)
}

func (s *balanceSheetServiceStub) ListBalanceSheets(ctx context.Context, limit, offset int) ([]*domain.BalanceSheet, error) {
	return s.listFn(ctx, limit, offset)
}

func (s *balanceSheetServiceStub) UpdateBalanceSheet(ctx context.Context, period domain.Period, items usecase.BalanceSheetLineItems) (*domain.BalanceSheet, error) {
	return s.updateFn(ctx, period, items)
}

func (s *balanceSheetServiceStub) CreateBalanceSheetDirect(ctx context.Context, period domain.Period, items usecase.BalanceSheetLineItems, createdBy string) (*domain.BalanceSheet, error) {
	return s.createFn(ctx, period, items, createdBy)
}

func (s *balanceSheetServiceStub) FinalizeBalanceSheet(ctx context.Context, period domain.Period) (*domain.BalanceSheet, error) {
	return s.finalizeFn(ctx, period)
}

func testBalanceSheet(period domain.Period) *domain.BalanceSheet {
	s := &domain.BalanceSheet{
		Period:        period,
		CurrentAssets: decimal.NewFromInt(1000),
		CurrentProfit: decimal.NewFromInt(1000),
		GeneratedBy:   "system",
	}
	s.Recalculate()
	return s
}

func TestBalanceSheetHandler_Generate_Success(t *testing.T) {
	period := domain.Period{Year: 2025, Month: time.January}

	var capturedBy string
	handler := NewBalanceSheetHandler(&balanceSheetServiceStub{
		generateFn: func(ctx context.Context, p domain.Period, generatedBy string) (*domain.BalanceSheet, error) {
			if p != period {
				t.Fatalf("unexpected period: %+v", p)
			}
			capturedBy = generatedBy
			return testBalanceSheet(p), nil
		},
	})

	body, _ := json.Marshal(dto.GenerateStatementRequest{Period: "202501", GeneratedBy: "alice"})
	req := httptest.NewRequest(http.MethodPost, "/balance-sheets/generate", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Generate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if capturedBy != "alice" {
		t.Fatalf("expected generated_by alice, got %s", capturedBy)
	}

	var resp dto.BalanceSheetResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Period != "202501" || !resp.IsBalanced {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestBalanceSheetHandler_Generate_InvalidPeriod(t *testing.T) {
	handler := NewBalanceSheetHandler(&balanceSheetServiceStub{
		generateFn: func(ctx context.Context, p domain.Period, generatedBy string) (*domain.BalanceSheet, error) {
			t.Fatal("GenerateBalanceSheet should not be called for a bad period")
			return nil, nil
		},
	})

	body, _ := json.Marshal(dto.GenerateStatementRequest{Period: "2025-01"})
	req := httptest.NewRequest(http.MethodPost, "/balance-sheets/generate", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Generate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestBalanceSheetHandler_Generate_NoVouchers(t *testing.T) {
	handler := NewBalanceSheetHandler(&balanceSheetServiceStub{
		generateFn: func(ctx context.Context, p domain.Period, generatedBy string) (*domain.BalanceSheet, error) {
			return nil, domain.ErrNoVouchersForPeriod
		},
	})

	body, _ := json.Marshal(dto.GenerateStatementRequest{Period: "202501"})
	req := httptest.NewRequest(http.MethodPost, "/balance-sheets/generate", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Generate(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestBalanceSheetHandler_Generate_FinalConflict(t *testing.T) {
	handler := NewBalanceSheetHandler(&balanceSheetServiceStub{
		generateFn: func(ctx context.Context, p domain.Period, generatedBy string) (*domain.BalanceSheet, error) {
			return nil, domain.ErrStatementFinal
		},
	})

	body, _ := json.Marshal(dto.GenerateStatementRequest{Period: "202501"})
	req := httptest.NewRequest(http.MethodPost, "/balance-sheets/generate", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Generate(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestBalanceSheetHandler_Get_NotFound(t *testing.T) {
	handler := NewBalanceSheetHandler(&balanceSheetServiceStub{
		getFn: func(ctx context.Context, p domain.Period) (*domain.BalanceSheet, error) {
			return nil, domain.ErrStatementNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/balance-sheets/202501", nil)
	req = withURLParam(req, "period", "202501")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestBalanceSheetHandler_Update_PassesItems(t *testing.T) {
	var captured usecase.BalanceSheetLineItems
	handler := NewBalanceSheetHandler(&balanceSheetServiceStub{
		updateFn: func(ctx context.Context, p domain.Period, items usecase.BalanceSheetLineItems) (*domain.BalanceSheet, error) {
			captured = items
			return testBalanceSheet(p), nil
		},
	})

	body, _ := json.Marshal(dto.BalanceSheetItemsRequest{
		CurrentAssets: decimal.NewFromInt(500),
		PaidInCapital: decimal.NewFromInt(500),
	})
	req := httptest.NewRequest(http.MethodPut, "/balance-sheets/202501", bytes.NewReader(body))
	req = withURLParam(req, "period", "202501")
	rec := httptest.NewRecorder()

	handler.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !captured.CurrentAssets.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("expected current assets 500, got %s", captured.CurrentAssets)
	}
}

func TestBalanceSheetHandler_Finalize_Unbalanced(t *testing.T) {
	handler := NewBalanceSheetHandler(&balanceSheetServiceStub{
		finalizeFn: func(ctx context.Context, p domain.Period) (*domain.BalanceSheet, error) {
			return nil, domain.ErrStatementNotBalanced
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/balance-sheets/202501/finalize", nil)
	req = withURLParam(req, "period", "202501")
	rec := httptest.NewRecorder()

	handler.Finalize(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}
