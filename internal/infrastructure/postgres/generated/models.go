package generated

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Account struct {
	Code       string             `json:"code"`
	Name       string             `json:"name"`
	Type       string             `json:"type"`
	Direction  string             `json:"direction"`
	ParentCode string             `json:"parent_code"`
	Status     string             `json:"status"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
	UpdatedAt  pgtype.Timestamptz `json:"updated_at"`
}

type BalanceSheet struct {
	Period              string             `json:"period"`
	CurrentAssets       pgtype.Numeric     `json:"current_assets"`
	FixedAssets         pgtype.Numeric     `json:"fixed_assets"`
	IntangibleAssets    pgtype.Numeric     `json:"intangible_assets"`
	OtherAssets         pgtype.Numeric     `json:"other_assets"`
	CurrentLiabilities  pgtype.Numeric     `json:"current_liabilities"`
	LongTermLiabilities pgtype.Numeric     `json:"long_term_liabilities"`
	PaidInCapital       pgtype.Numeric     `json:"paid_in_capital"`
	RetainedEarnings    pgtype.Numeric     `json:"retained_earnings"`
	CurrentProfit       pgtype.Numeric     `json:"current_profit"`
	TotalAssets         pgtype.Numeric     `json:"total_assets"`
	TotalLiabilities    pgtype.Numeric     `json:"total_liabilities"`
	TotalEquity         pgtype.Numeric     `json:"total_equity"`
	IsBalanced          bool               `json:"is_balanced"`
	BalanceDiff         pgtype.Numeric     `json:"balance_diff"`
	IsFinal             bool               `json:"is_final"`
	GeneratedBy         string             `json:"generated_by"`
	GeneratedAt         pgtype.Timestamptz `json:"generated_at"`
}

type GeneralLedger struct {
	Period           string             `json:"period"`
	AccountCode      string             `json:"account_code"`
	OpeningBalance   pgtype.Numeric     `json:"opening_balance"`
	OpeningDirection string             `json:"opening_direction"`
	DebitTotal       pgtype.Numeric     `json:"debit_total"`
	CreditTotal      pgtype.Numeric     `json:"credit_total"`
	EndingBalance    pgtype.Numeric     `json:"ending_balance"`
	EndingDirection  string             `json:"ending_direction"`
	UpdatedAt        pgtype.Timestamptz `json:"updated_at"`
}

type IncomeStatement struct {
	Period            string             `json:"period"`
	OperatingRevenue  pgtype.Numeric     `json:"operating_revenue"`
	OtherRevenue      pgtype.Numeric     `json:"other_revenue"`
	OperatingCost     pgtype.Numeric     `json:"operating_cost"`
	SellingExpenses   pgtype.Numeric     `json:"selling_expenses"`
	AdminExpenses     pgtype.Numeric     `json:"admin_expenses"`
	FinancialExpenses pgtype.Numeric     `json:"financial_expenses"`
	OtherIncome       pgtype.Numeric     `json:"other_income"`
	OtherExpenses     pgtype.Numeric     `json:"other_expenses"`
	TaxExpense        pgtype.Numeric     `json:"tax_expense"`
	TotalRevenue      pgtype.Numeric     `json:"total_revenue"`
	TotalCostExpense  pgtype.Numeric     `json:"total_cost_expense"`
	GrossProfit       pgtype.Numeric     `json:"gross_profit"`
	OperatingProfit   pgtype.Numeric     `json:"operating_profit"`
	ProfitBeforeTax   pgtype.Numeric     `json:"profit_before_tax"`
	NetProfit         pgtype.Numeric     `json:"net_profit"`
	IsFinal           bool               `json:"is_final"`
	GeneratedBy       string             `json:"generated_by"`
	GeneratedAt       pgtype.Timestamptz `json:"generated_at"`
}

type JournalEntry struct {
	ID            string             `json:"id"`
	VoucherNumber string             `json:"voucher_number"`
	AccountCode   string             `json:"account_code"`
	Direction     string             `json:"direction"`
	Amount        pgtype.Numeric     `json:"amount"`
	Description   string             `json:"description"`
	Customer      string             `json:"customer"`
	Supplier      string             `json:"supplier"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

type ReportPeriod struct {
	Code      string             `json:"code"`
	Name      string             `json:"name"`
	StartDate pgtype.Timestamptz `json:"start_date"`
	EndDate   pgtype.Timestamptz `json:"end_date"`
	IsClosed  bool               `json:"is_closed"`
	ClosedBy  string             `json:"closed_by"`
	ClosedAt  pgtype.Timestamptz `json:"closed_at"`
}

type Voucher struct {
	Number      string             `json:"number"`
	Date        pgtype.Timestamptz `json:"date"`
	Period      string             `json:"period"`
	Description string             `json:"description"`
	TotalDebit  pgtype.Numeric     `json:"total_debit"`
	TotalCredit pgtype.Numeric     `json:"total_credit"`
	Status      string             `json:"status"`
	CreatedBy   string             `json:"created_by"`
	AuditedBy   string             `json:"audited_by"`
	AuditedAt   pgtype.Timestamptz `json:"audited_at"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

type VoucherSequence struct {
	Period    string `json:"period"`
	LastValue int64  `json:"last_value"`
}
