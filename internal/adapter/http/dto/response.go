package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finbook/internal/domain"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Direction  string    `json:"direction"`
	ParentCode string    `json:"parent_code,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		Code:       a.Code,
		Name:       a.Name,
		Type:       string(a.Type),
		Direction:  string(a.Direction),
		ParentCode: a.ParentCode,
		Status:     string(a.Status),
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps an account listing.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// EntryResponse represents a journal entry in API responses.
type EntryResponse struct {
	ID            string          `json:"id"`
	VoucherNumber string          `json:"voucher_number"`
	AccountCode   string          `json:"account_code"`
	Direction     string          `json:"direction"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description,omitempty"`
	Customer      string          `json:"customer,omitempty"`
	Supplier      string          `json:"supplier,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// EntryFromDomain converts a domain journal entry to response.
func EntryFromDomain(e *domain.JournalEntry) *EntryResponse {
	return &EntryResponse{
		ID:            e.ID,
		VoucherNumber: e.VoucherNumber,
		AccountCode:   e.AccountCode,
		Direction:     string(e.Direction),
		Amount:        e.Amount,
		Description:   e.Description,
		Customer:      e.Customer,
		Supplier:      e.Supplier,
		CreatedAt:     e.CreatedAt,
	}
}

// EntriesFromDomain converts domain journal entries to responses.
func EntriesFromDomain(entries []*domain.JournalEntry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// VoucherResponse represents a voucher in API responses.
type VoucherResponse struct {
	Number      string           `json:"number"`
	Date        time.Time        `json:"date"`
	Period      string           `json:"period"`
	Description string           `json:"description,omitempty"`
	TotalDebit  decimal.Decimal  `json:"total_debit"`
	TotalCredit decimal.Decimal  `json:"total_credit"`
	Status      string           `json:"status"`
	CreatedBy   string           `json:"created_by"`
	AuditedBy   string           `json:"audited_by,omitempty"`
	AuditedAt   *time.Time       `json:"audited_at,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	Entries     []*EntryResponse `json:"entries,omitempty"`
}

// VoucherFromDomain converts a domain voucher to response.
func VoucherFromDomain(v *domain.Voucher) *VoucherResponse {
	resp := &VoucherResponse{
		Number:      v.Number,
		Date:        v.Date,
		Period:      v.Period().String(),
		Description: v.Description,
		TotalDebit:  v.TotalDebit,
		TotalCredit: v.TotalCredit,
		Status:      string(v.Status),
		CreatedBy:   v.CreatedBy,
		AuditedBy:   v.AuditedBy,
		AuditedAt:   v.AuditedAt,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
	if len(v.Entries) > 0 {
		resp.Entries = EntriesFromDomain(v.Entries)
	}
	return resp
}

// VouchersFromDomain converts domain vouchers to responses.
func VouchersFromDomain(vouchers []*domain.Voucher) []*VoucherResponse {
	result := make([]*VoucherResponse, len(vouchers))
	for i, v := range vouchers {
		result[i] = VoucherFromDomain(v)
	}
	return result
}

// ListVouchersResponse wraps a voucher listing.
type ListVouchersResponse struct {
	Vouchers []*VoucherResponse `json:"vouchers"`
	Total    int64              `json:"total"`
}

// BalanceSheetResponse represents a balance sheet in API responses.
type BalanceSheetResponse struct {
	Period string `json:"period"`

	CurrentAssets    decimal.Decimal `json:"current_assets"`
	FixedAssets      decimal.Decimal `json:"fixed_assets"`
	IntangibleAssets decimal.Decimal `json:"intangible_assets"`
	OtherAssets      decimal.Decimal `json:"other_assets"`

	CurrentLiabilities  decimal.Decimal `json:"current_liabilities"`
	LongTermLiabilities decimal.Decimal `json:"long_term_liabilities"`

	PaidInCapital    decimal.Decimal `json:"paid_in_capital"`
	RetainedEarnings decimal.Decimal `json:"retained_earnings"`
	CurrentProfit    decimal.Decimal `json:"current_profit"`

	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	TotalEquity      decimal.Decimal `json:"total_equity"`

	IsBalanced  bool            `json:"is_balanced"`
	BalanceDiff decimal.Decimal `json:"balance_diff"`

	IsFinal     bool      `json:"is_final"`
	GeneratedBy string    `json:"generated_by"`
	GeneratedAt time.Time `json:"generated_at"`
}

// BalanceSheetFromDomain converts a domain balance sheet to response.
func BalanceSheetFromDomain(s *domain.BalanceSheet) *BalanceSheetResponse {
	return &BalanceSheetResponse{
		Period:              s.Period.String(),
		CurrentAssets:       s.CurrentAssets,
		FixedAssets:         s.FixedAssets,
		IntangibleAssets:    s.IntangibleAssets,
		OtherAssets:         s.OtherAssets,
		CurrentLiabilities:  s.CurrentLiabilities,
		LongTermLiabilities: s.LongTermLiabilities,
		PaidInCapital:       s.PaidInCapital,
		RetainedEarnings:    s.RetainedEarnings,
		CurrentProfit:       s.CurrentProfit,
		TotalAssets:         s.TotalAssets,
		TotalLiabilities:    s.TotalLiabilities,
		TotalEquity:         s.TotalEquity,
		IsBalanced:          s.IsBalanced,
		BalanceDiff:         s.BalanceDiff,
		IsFinal:             s.IsFinal,
		GeneratedBy:         s.GeneratedBy,
		GeneratedAt:         s.GeneratedAt,
	}
}

// BalanceSheetsFromDomain converts domain balance sheets to responses.
func BalanceSheetsFromDomain(sheets []*domain.BalanceSheet) []*BalanceSheetResponse {
	result := make([]*BalanceSheetResponse, len(sheets))
	for i, s := range sheets {
		result[i] = BalanceSheetFromDomain(s)
	}
	return result
}

// IncomeStatementResponse represents an income statement in API
// responses. The detail block folds other income into revenue and
// other expenses plus tax into costs.
type IncomeStatementResponse struct {
	Period string `json:"period"`

	OperatingRevenue decimal.Decimal `json:"operating_revenue"`
	OtherRevenue     decimal.Decimal `json:"other_revenue"`

	OperatingCost decimal.Decimal `json:"operating_cost"`

	SellingExpenses   decimal.Decimal `json:"selling_expenses"`
	AdminExpenses     decimal.Decimal `json:"admin_expenses"`
	FinancialExpenses decimal.Decimal `json:"financial_expenses"`

	OtherIncome   decimal.Decimal `json:"other_income"`
	OtherExpenses decimal.Decimal `json:"other_expenses"`
	TaxExpense    decimal.Decimal `json:"tax_expense"`

	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalCostExpense decimal.Decimal `json:"total_cost_expense"`
	GrossProfit      decimal.Decimal `json:"gross_profit"`
	OperatingProfit  decimal.Decimal `json:"operating_profit"`
	ProfitBeforeTax  decimal.Decimal `json:"profit_before_tax"`
	NetProfit        decimal.Decimal `json:"net_profit"`

	Detail *IncomeStatementDetailResponse `json:"detail,omitempty"`

	IsFinal     bool      `json:"is_final"`
	GeneratedBy string    `json:"generated_by"`
	GeneratedAt time.Time `json:"generated_at"`
}

// IncomeStatementDetailResponse is the expanded presentation variant.
type IncomeStatementDetailResponse struct {
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalCostExpense decimal.Decimal `json:"total_cost_expense"`
	NetProfit        decimal.Decimal `json:"net_profit"`
}

// IncomeStatementFromDomain converts a domain income statement to
// response. Set detail to include the expanded presentation totals.
func IncomeStatementFromDomain(s *domain.IncomeStatement, detail bool) *IncomeStatementResponse {
	resp := &IncomeStatementResponse{
		Period:            s.Period.String(),
		OperatingRevenue:  s.OperatingRevenue,
		OtherRevenue:      s.OtherRevenue,
		OperatingCost:     s.OperatingCost,
		SellingExpenses:   s.SellingExpenses,
		AdminExpenses:     s.AdminExpenses,
		FinancialExpenses: s.FinancialExpenses,
		OtherIncome:       s.OtherIncome,
		OtherExpenses:     s.OtherExpenses,
		TaxExpense:        s.TaxExpense,
		TotalRevenue:      s.TotalRevenue,
		TotalCostExpense:  s.TotalCostExpense,
		GrossProfit:       s.GrossProfit,
		OperatingProfit:   s.OperatingProfit,
		ProfitBeforeTax:   s.ProfitBeforeTax,
		NetProfit:         s.NetProfit,
		IsFinal:           s.IsFinal,
		GeneratedBy:       s.GeneratedBy,
		GeneratedAt:       s.GeneratedAt,
	}
	if detail {
		d := s.DetailTotals()
		resp.Detail = &IncomeStatementDetailResponse{
			TotalRevenue:     d.TotalRevenue,
			TotalCostExpense: d.TotalCostExpense,
			NetProfit:        d.NetProfit,
		}
	}
	return resp
}

// IncomeStatementsFromDomain converts domain income statements to
// responses.
func IncomeStatementsFromDomain(stmts []*domain.IncomeStatement) []*IncomeStatementResponse {
	result := make([]*IncomeStatementResponse, len(stmts))
	for i, s := range stmts {
		result[i] = IncomeStatementFromDomain(s, false)
	}
	return result
}

// LedgerRowResponse represents a general ledger row in API responses.
type LedgerRowResponse struct {
	Period      string `json:"period"`
	AccountCode string `json:"account_code"`

	OpeningBalance   decimal.Decimal `json:"opening_balance"`
	OpeningDirection string          `json:"opening_direction"`

	DebitTotal  decimal.Decimal `json:"debit_total"`
	CreditTotal decimal.Decimal `json:"credit_total"`

	EndingBalance   decimal.Decimal `json:"ending_balance"`
	EndingDirection string          `json:"ending_direction"`

	UpdatedAt time.Time `json:"updated_at"`
}

// LedgerRowFromDomain converts a domain ledger row to response.
func LedgerRowFromDomain(r *domain.GeneralLedgerRow) *LedgerRowResponse {
	return &LedgerRowResponse{
		Period:           r.Period.String(),
		AccountCode:      r.AccountCode,
		OpeningBalance:   r.OpeningBalance,
		OpeningDirection: string(r.OpeningDirection),
		DebitTotal:       r.DebitTotal,
		CreditTotal:      r.CreditTotal,
		EndingBalance:    r.EndingBalance,
		EndingDirection:  string(r.EndingDirection),
		UpdatedAt:        r.UpdatedAt,
	}
}

// LedgerRowsFromDomain converts domain ledger rows to responses.
func LedgerRowsFromDomain(rows []*domain.GeneralLedgerRow) []*LedgerRowResponse {
	result := make([]*LedgerRowResponse, len(rows))
	for i, r := range rows {
		result[i] = LedgerRowFromDomain(r)
	}
	return result
}

// ReportPeriodResponse represents a report period in API responses.
type ReportPeriodResponse struct {
	Code      string     `json:"code"`
	Name      string     `json:"name"`
	StartDate time.Time  `json:"start_date"`
	EndDate   time.Time  `json:"end_date"`
	IsClosed  bool       `json:"is_closed"`
	ClosedBy  string     `json:"closed_by,omitempty"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
}

// ReportPeriodFromDomain converts a domain report period to response.
func ReportPeriodFromDomain(p *domain.ReportPeriod) *ReportPeriodResponse {
	return &ReportPeriodResponse{
		Code:      p.Code.String(),
		Name:      p.Name,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		IsClosed:  p.IsClosed,
		ClosedBy:  p.ClosedBy,
		ClosedAt:  p.ClosedAt,
	}
}

// ReportPeriodsFromDomain converts domain report periods to responses.
func ReportPeriodsFromDomain(periods []*domain.ReportPeriod) []*ReportPeriodResponse {
	result := make([]*ReportPeriodResponse, len(periods))
	for i, p := range periods {
		result[i] = ReportPeriodFromDomain(p)
	}
	return result
}

// PeriodListResponse wraps a plain period token listing.
type PeriodListResponse struct {
	Periods []string `json:"periods"`
}
