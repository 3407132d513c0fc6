package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finbook/internal/domain"
	"github.com/iho/finbook/internal/usecase"
)

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Direction  string `json:"direction"`
	ParentCode string `json:"parent_code,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Code:       r.Code,
		Name:       r.Name,
		Type:       domain.AccountType(r.Type),
		Direction:  domain.Direction(r.Direction),
		ParentCode: r.ParentCode,
	}
}

// UpdateAccountRequest represents a request to rename an account.
type UpdateAccountRequest struct {
	Name string `json:"name"`
}

// EntryItem represents a single journal entry line in a voucher request.
type EntryItem struct {
	AccountCode string          `json:"account_code"`
	Direction   string          `json:"direction"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Customer    string          `json:"customer,omitempty"`
	Supplier    string          `json:"supplier,omitempty"`
}

func (e EntryItem) toUseCaseInput() usecase.EntryInput {
	return usecase.EntryInput{
		AccountCode: e.AccountCode,
		Direction:   domain.Direction(e.Direction),
		Amount:      e.Amount,
		Description: e.Description,
		Customer:    e.Customer,
		Supplier:    e.Supplier,
	}
}

// CreateVoucherRequest represents a request to create a voucher.
type CreateVoucherRequest struct {
	Date        *time.Time  `json:"date,omitempty"`
	Description string      `json:"description,omitempty"`
	CreatedBy   string      `json:"created_by"`
	Entries     []EntryItem `json:"entries"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateVoucherRequest) ToUseCaseInput() usecase.CreateVoucherInput {
	input := usecase.CreateVoucherInput{
		Description: r.Description,
		CreatedBy:   r.CreatedBy,
	}
	if r.Date != nil {
		input.Date = *r.Date
	}
	for _, e := range r.Entries {
		input.Entries = append(input.Entries, e.toUseCaseInput())
	}
	return input
}

// UpdateVoucherRequest represents a request to rewrite a DRAFT voucher.
type UpdateVoucherRequest struct {
	Date        *time.Time  `json:"date,omitempty"`
	Description string      `json:"description,omitempty"`
	Entries     []EntryItem `json:"entries"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateVoucherRequest) ToUseCaseInput(number string) usecase.UpdateVoucherInput {
	input := usecase.UpdateVoucherInput{
		Number:      number,
		Description: r.Description,
	}
	if r.Date != nil {
		input.Date = *r.Date
	}
	for _, e := range r.Entries {
		input.Entries = append(input.Entries, e.toUseCaseInput())
	}
	return input
}

// AuditVoucherRequest carries the auditor identity.
type AuditVoucherRequest struct {
	AuditedBy string `json:"audited_by"`
}

// GenerateStatementRequest represents a request to generate a statement
// for a period.
type GenerateStatementRequest struct {
	Period      string `json:"period"`
	GeneratedBy string `json:"generated_by"`
}

// BalanceSheetItemsRequest carries the nine balance sheet line items.
type BalanceSheetItemsRequest struct {
	CurrentAssets    decimal.Decimal `json:"current_assets"`
	FixedAssets      decimal.Decimal `json:"fixed_assets"`
	IntangibleAssets decimal.Decimal `json:"intangible_assets"`
	OtherAssets      decimal.Decimal `json:"other_assets"`

	CurrentLiabilities  decimal.Decimal `json:"current_liabilities"`
	LongTermLiabilities decimal.Decimal `json:"long_term_liabilities"`

	PaidInCapital    decimal.Decimal `json:"paid_in_capital"`
	RetainedEarnings decimal.Decimal `json:"retained_earnings"`
	CurrentProfit    decimal.Decimal `json:"current_profit"`

	CreatedBy string `json:"created_by,omitempty"`
}

// ToLineItems converts to use case line items.
func (r *BalanceSheetItemsRequest) ToLineItems() usecase.BalanceSheetLineItems {
	return usecase.BalanceSheetLineItems{
		CurrentAssets:       r.CurrentAssets,
		FixedAssets:         r.FixedAssets,
		IntangibleAssets:    r.IntangibleAssets,
		OtherAssets:         r.OtherAssets,
		CurrentLiabilities:  r.CurrentLiabilities,
		LongTermLiabilities: r.LongTermLiabilities,
		PaidInCapital:       r.PaidInCapital,
		RetainedEarnings:    r.RetainedEarnings,
		CurrentProfit:       r.CurrentProfit,
	}
}

// IncomeStatementItemsRequest carries the nine income statement input
// lines.
type IncomeStatementItemsRequest struct {
	OperatingRevenue decimal.Decimal `json:"operating_revenue"`
	OtherRevenue     decimal.Decimal `json:"other_revenue"`

	OperatingCost decimal.Decimal `json:"operating_cost"`

	SellingExpenses   decimal.Decimal `json:"selling_expenses"`
	AdminExpenses     decimal.Decimal `json:"admin_expenses"`
	FinancialExpenses decimal.Decimal `json:"financial_expenses"`

	OtherIncome   decimal.Decimal `json:"other_income"`
	OtherExpenses decimal.Decimal `json:"other_expenses"`
	TaxExpense    decimal.Decimal `json:"tax_expense"`

	// CreatedBy is honored only by direct creation.
	CreatedBy string `json:"created_by,omitempty"`
}

// ToLineItems converts to use case line items.
func (r *IncomeStatementItemsRequest) ToLineItems() usecase.IncomeStatementLineItems {
	return usecase.IncomeStatementLineItems{
		OperatingRevenue:  r.OperatingRevenue,
		OtherRevenue:      r.OtherRevenue,
		OperatingCost:     r.OperatingCost,
		SellingExpenses:   r.SellingExpenses,
		AdminExpenses:     r.AdminExpenses,
		FinancialExpenses: r.FinancialExpenses,
		OtherIncome:       r.OtherIncome,
		OtherExpenses:     r.OtherExpenses,
		TaxExpense:        r.TaxExpense,
	}
}

// CreateReportPeriodRequest represents a request to register a period.
type CreateReportPeriodRequest struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

// ClosePeriodRequest carries the closer identity.
type ClosePeriodRequest struct {
	ClosedBy string `json:"closed_by"`
}
