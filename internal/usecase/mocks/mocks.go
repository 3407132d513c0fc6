package mocks

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/iho/finbook/internal/domain"
	"github.com/iho/finbook/internal/usecase"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	CreateFunc       func(ctx context.Context, account *domain.Account) error
	GetByCodeFunc    func(ctx context.Context, code string) (*domain.Account, error)
	ListFunc         func(ctx context.Context, filter domain.AccountFilter) ([]*domain.Account, error)
	ListAllFunc      func(ctx context.Context) ([]*domain.Account, error)
	UpdateFunc       func(ctx context.Context, account *domain.Account) error
	UpdateStatusFunc func(ctx context.Context, code string, status domain.AccountStatus, updatedAt time.Time) error
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

// Seed inserts accounts directly, bypassing any Func override.
func (m *MockAccountRepository) Seed(accounts ...*domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range accounts {
		m.accounts[a.Code] = a
	}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[account.Code]; ok {
		return domain.ErrAccountExists
	}
	m.accounts[account.Code] = account
	return nil
}

func (m *MockAccountRepository) GetByCode(ctx context.Context, code string) (*domain.Account, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.accounts[code]; ok {
		return a, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) List(ctx context.Context, filter domain.AccountFilter) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, a := range m.accounts {
		if filter.Type != "" && a.Type != filter.Type {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		accounts = append(accounts, a)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Code < accounts[j].Code })
	return accounts, nil
}

func (m *MockAccountRepository) ListAll(ctx context.Context) ([]*domain.Account, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return m.List(ctx, domain.AccountFilter{})
}

func (m *MockAccountRepository) Update(ctx context.Context, account *domain.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[account.Code]; !ok {
		return domain.ErrAccountNotFound
	}
	m.accounts[account.Code] = account
	return nil
}

func (m *MockAccountRepository) UpdateStatus(ctx context.Context, code string, status domain.AccountStatus, updatedAt time.Time) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, code, status, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.accounts[code]
	if !ok {
		return domain.ErrAccountNotFound
	}
	a.Status = status
	a.UpdatedAt = updatedAt
	return nil
}

// MockVoucherRepository is a mock implementation of VoucherRepository.
type MockVoucherRepository struct {
	mu       sync.RWMutex
	vouchers map[string]*domain.Voucher

	CreateFunc       func(ctx context.Context, tx usecase.Transaction, voucher *domain.Voucher) error
	GetByNumberFunc  func(ctx context.Context, number string) (*domain.Voucher, error)
	NextNumberFunc   func(ctx context.Context, tx usecase.Transaction, period domain.Period) (string, error)
	ListFunc         func(ctx context.Context, filter domain.VoucherFilter) ([]*domain.Voucher, error)
	ListByPeriodFunc func(ctx context.Context, period domain.Period, statuses []domain.VoucherStatus) ([]*domain.Voucher, error)
	ListPeriodsFunc  func(ctx context.Context, statuses []domain.VoucherStatus) ([]domain.Period, error)
	UpdateFunc       func(ctx context.Context, tx usecase.Transaction, voucher *domain.Voucher) error
	UpdateStatusFunc func(ctx context.Context, number string, status domain.VoucherStatus, auditedBy string, auditedAt *time.Time, updatedAt time.Time) error
	DeleteFunc       func(ctx context.Context, tx usecase.Transaction, number string) error
}

func NewMockVoucherRepository() *MockVoucherRepository {
	return &MockVoucherRepository{
		vouchers: make(map[string]*domain.Voucher),
	}
}

// Seed inserts vouchers directly, bypassing any Func override.
func (m *MockVoucherRepository) Seed(vouchers ...*domain.Voucher) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range vouchers {
		m.vouchers[v.Number] = v
	}
}

func (m *MockVoucherRepository) Create(ctx context.Context, tx usecase.Transaction, voucher *domain.Voucher) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, voucher)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vouchers[voucher.Number] = voucher
	return nil
}

func (m *MockVoucherRepository) GetByNumber(ctx context.Context, number string) (*domain.Voucher, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.vouchers[number]; ok {
		return v, nil
	}
	return nil, domain.ErrVoucherNotFound
}

func (m *MockVoucherRepository) NextNumber(ctx context.Context, tx usecase.Transaction, period domain.Period) (string, error) {
	if m.NextNumberFunc != nil {
		return m.NextNumberFunc(ctx, tx, period)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	prefix := domain.VoucherNumberPrefix + period.String()
	seq := 0
	for number := range m.vouchers {
		if strings.HasPrefix(number, prefix) {
			seq++
		}
	}
	return fmt.Sprintf("%s%04d", prefix, seq+1), nil
}

func (m *MockVoucherRepository) List(ctx context.Context, filter domain.VoucherFilter) ([]*domain.Voucher, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var vouchers []*domain.Voucher
	for _, v := range m.vouchers {
		if filter.Status != "" && v.Status != filter.Status {
			continue
		}
		if !filter.Period.IsZero() && v.Period() != filter.Period {
			continue
		}
		vouchers = append(vouchers, v)
	}
	sort.Slice(vouchers, func(i, j int) bool { return vouchers[i].Number < vouchers[j].Number })
	return vouchers, nil
}

func (m *MockVoucherRepository) ListByPeriod(ctx context.Context, period domain.Period, statuses []domain.VoucherStatus) ([]*domain.Voucher, error) {
	if m.ListByPeriodFunc != nil {
		return m.ListByPeriodFunc(ctx, period, statuses)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var vouchers []*domain.Voucher
	for _, v := range m.vouchers {
		if v.Period() == period && v.StatusIn(statuses...) {
			vouchers = append(vouchers, v)
		}
	}
	sort.Slice(vouchers, func(i, j int) bool { return vouchers[i].Number < vouchers[j].Number })
	return vouchers, nil
}

func (m *MockVoucherRepository) ListPeriods(ctx context.Context, statuses []domain.VoucherStatus) ([]domain.Period, error) {
	if m.ListPeriodsFunc != nil {
		return m.ListPeriodsFunc(ctx, statuses)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := make(map[domain.Period]struct{})
	var periods []domain.Period
	for _, v := range m.vouchers {
		if !v.StatusIn(statuses...) {
			continue
		}
		p := v.Period()
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool { return periods[j].Before(periods[i]) })
	return periods, nil
}

func (m *MockVoucherRepository) Update(ctx context.Context, tx usecase.Transaction, voucher *domain.Voucher) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx, voucher)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.vouchers[voucher.Number]; !ok {
		return domain.ErrVoucherNotFound
	}
	m.vouchers[voucher.Number] = voucher
	return nil
}

func (m *MockVoucherRepository) UpdateStatus(ctx context.Context, number string, status domain.VoucherStatus, auditedBy string, auditedAt *time.Time, updatedAt time.Time) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, number, status, auditedBy, auditedAt, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vouchers[number]
	if !ok {
		return domain.ErrVoucherNotFound
	}
	v.Status = status
	if auditedBy != "" {
		v.AuditedBy = auditedBy
	}
	if auditedAt != nil {
		v.AuditedAt = auditedAt
	}
	v.UpdatedAt = updatedAt
	return nil
}

func (m *MockVoucherRepository) Delete(ctx context.Context, tx usecase.Transaction, number string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, number)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.vouchers[number]; !ok {
		return domain.ErrVoucherNotFound
	}
	delete(m.vouchers, number)
	return nil
}

// MockEntryRepository is a mock implementation of EntryRepository.
type MockEntryRepository struct {
	mu      sync.RWMutex
	entries map[string][]*domain.JournalEntry // keyed by voucher number

	CreateBatchFunc     func(ctx context.Context, tx usecase.Transaction, entries []*domain.JournalEntry) error
	GetByVoucherFunc    func(ctx context.Context, voucherNumber string) ([]*domain.JournalEntry, error)
	ListByAccountFunc   func(ctx context.Context, accountCode string, limit, offset int) ([]*domain.JournalEntry, error)
	DeleteByVoucherFunc func(ctx context.Context, tx usecase.Transaction, voucherNumber string) error
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{
		entries: make(map[string][]*domain.JournalEntry),
	}
}

func (m *MockEntryRepository) CreateBatch(ctx context.Context, tx usecase.Transaction, entries []*domain.JournalEntry) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, tx, entries)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range entries {
		m.entries[e.VoucherNumber] = append(m.entries[e.VoucherNumber], e)
	}
	return nil
}

func (m *MockEntryRepository) GetByVoucher(ctx context.Context, voucherNumber string) ([]*domain.JournalEntry, error) {
	if m.GetByVoucherFunc != nil {
		return m.GetByVoucherFunc(ctx, voucherNumber)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries[voucherNumber], nil
}

func (m *MockEntryRepository) ListByAccount(ctx context.Context, accountCode string, limit, offset int) ([]*domain.JournalEntry, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountCode, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.JournalEntry
	for _, entries := range m.entries {
		for _, e := range entries {
			if e.AccountCode == accountCode {
				out = append(out, e)
			}
		}
	}
	return out, nil
}

func (m *MockEntryRepository) DeleteByVoucher(ctx context.Context, tx usecase.Transaction, voucherNumber string) error {
	if m.DeleteByVoucherFunc != nil {
		return m.DeleteByVoucherFunc(ctx, tx, voucherNumber)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, voucherNumber)
	return nil
}

// MockBalanceSheetRepository is a mock implementation of BalanceSheetRepository.
type MockBalanceSheetRepository struct {
	mu     sync.RWMutex
	sheets map[domain.Period]*domain.BalanceSheet

	CreateFunc         func(ctx context.Context, tx usecase.Transaction, sheet *domain.BalanceSheet) error
	GetByPeriodFunc    func(ctx context.Context, period domain.Period) (*domain.BalanceSheet, error)
	ListFunc           func(ctx context.Context, limit, offset int) ([]*domain.BalanceSheet, error)
	UpdateFunc         func(ctx context.Context, sheet *domain.BalanceSheet) error
	DeleteByPeriodFunc func(ctx context.Context, tx usecase.Transaction, period domain.Period) error
}

func NewMockBalanceSheetRepository() *MockBalanceSheetRepository {
	return &MockBalanceSheetRepository{
		sheets: make(map[domain.Period]*domain.BalanceSheet),
	}
}

// Seed inserts sheets directly, bypassing any Func override.
func (m *MockBalanceSheetRepository) Seed(sheets ...*domain.BalanceSheet) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range sheets {
		m.sheets[s.Period] = s
	}
}

func (m *MockBalanceSheetRepository) Create(ctx context.Context, tx usecase.Transaction, sheet *domain.BalanceSheet) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, sheet)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sheets[sheet.Period] = sheet
	return nil
}

func (m *MockBalanceSheetRepository) GetByPeriod(ctx context.Context, period domain.Period) (*domain.BalanceSheet, error) {
	if m.GetByPeriodFunc != nil {
		return m.GetByPeriodFunc(ctx, period)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sheets[period]; ok {
		return s, nil
	}
	return nil, domain.ErrStatementNotFound
}

func (m *MockBalanceSheetRepository) List(ctx context.Context, limit, offset int) ([]*domain.BalanceSheet, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var sheets []*domain.BalanceSheet
	for _, s := range m.sheets {
		sheets = append(sheets, s)
	}
	sort.Slice(sheets, func(i, j int) bool { return sheets[j].Period.Before(sheets[i].Period) })
	return sheets, nil
}

func (m *MockBalanceSheetRepository) Update(ctx context.Context, sheet *domain.BalanceSheet) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, sheet)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sheets[sheet.Period]; !ok {
		return domain.ErrStatementNotFound
	}
	m.sheets[sheet.Period] = sheet
	return nil
}

func (m *MockBalanceSheetRepository) DeleteByPeriod(ctx context.Context, tx usecase.Transaction, period domain.Period) error {
	if m.DeleteByPeriodFunc != nil {
		return m.DeleteByPeriodFunc(ctx, tx, period)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sheets, period)
	return nil
}

// MockIncomeStatementRepository is a mock implementation of IncomeStatementRepository.
type MockIncomeStatementRepository struct {
	mu    sync.RWMutex
	stmts map[domain.Period]*domain.IncomeStatement

	CreateFunc         func(ctx context.Context, tx usecase.Transaction, stmt *domain.IncomeStatement) error
	GetByPeriodFunc    func(ctx context.Context, period domain.Period) (*domain.IncomeStatement, error)
	ListFunc           func(ctx context.Context, limit, offset int) ([]*domain.IncomeStatement, error)
	UpdateFunc         func(ctx context.Context, stmt *domain.IncomeStatement) error
	DeleteByPeriodFunc func(ctx context.Context, tx usecase.Transaction, period domain.Period) error
}

func NewMockIncomeStatementRepository() *MockIncomeStatementRepository {
	return &MockIncomeStatementRepository{
		stmts: make(map[domain.Period]*domain.IncomeStatement),
	}
}

// Seed inserts statements directly, bypassing any Func override.
func (m *MockIncomeStatementRepository) Seed(stmts ...*domain.IncomeStatement) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range stmts {
		m.stmts[s.Period] = s
	}
}

func (m *MockIncomeStatementRepository) Create(ctx context.Context, tx usecase.Transaction, stmt *domain.IncomeStatement) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, stmt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stmts[stmt.Period] = stmt
	return nil
}

func (m *MockIncomeStatementRepository) GetByPeriod(ctx context.Context, period domain.Period) (*domain.IncomeStatement, error) {
	if m.GetByPeriodFunc != nil {
		return m.GetByPeriodFunc(ctx, period)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.stmts[period]; ok {
		return s, nil
	}
	return nil, domain.ErrStatementNotFound
}

func (m *MockIncomeStatementRepository) List(ctx context.Context, limit, offset int) ([]*domain.IncomeStatement, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var stmts []*domain.IncomeStatement
	for _, s := range m.stmts {
		stmts = append(stmts, s)
	}
	sort.Slice(stmts, func(i, j int) bool { return stmts[j].Period.Before(stmts[i].Period) })
	return stmts, nil
}

func (m *MockIncomeStatementRepository) Update(ctx context.Context, stmt *domain.IncomeStatement) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, stmt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.stmts[stmt.Period]; !ok {
		return domain.ErrStatementNotFound
	}
	m.stmts[stmt.Period] = stmt
	return nil
}

func (m *MockIncomeStatementRepository) DeleteByPeriod(ctx context.Context, tx usecase.Transaction, period domain.Period) error {
	if m.DeleteByPeriodFunc != nil {
		return m.DeleteByPeriodFunc(ctx, tx, period)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stmts, period)
	return nil
}

// MockGeneralLedgerRepository is a mock implementation of GeneralLedgerRepository.
type MockGeneralLedgerRepository struct {
	mu   sync.RWMutex
	rows map[domain.Period]map[string]*domain.GeneralLedgerRow

	CreateBatchFunc           func(ctx context.Context, tx usecase.Transaction, rows []*domain.GeneralLedgerRow) error
	ListByPeriodFunc          func(ctx context.Context, period domain.Period) ([]*domain.GeneralLedgerRow, error)
	GetByPeriodAndAccountFunc func(ctx context.Context, period domain.Period, accountCode string) (*domain.GeneralLedgerRow, error)
	DeleteByPeriodFunc        func(ctx context.Context, tx usecase.Transaction, period domain.Period) error
}

func NewMockGeneralLedgerRepository() *MockGeneralLedgerRepository {
	return &MockGeneralLedgerRepository{
		rows: make(map[domain.Period]map[string]*domain.GeneralLedgerRow),
	}
}

// Seed inserts rows directly, bypassing any Func override.
func (m *MockGeneralLedgerRepository) Seed(rows ...*domain.GeneralLedgerRow) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range rows {
		if m.rows[r.Period] == nil {
			m.rows[r.Period] = make(map[string]*domain.GeneralLedgerRow)
		}
		m.rows[r.Period][r.AccountCode] = r
	}
}

func (m *MockGeneralLedgerRepository) CreateBatch(ctx context.Context, tx usecase.Transaction, rows []*domain.GeneralLedgerRow) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, tx, rows)
	}
	m.Seed(rows...)
	return nil
}

func (m *MockGeneralLedgerRepository) ListByPeriod(ctx context.Context, period domain.Period) ([]*domain.GeneralLedgerRow, error) {
	if m.ListByPeriodFunc != nil {
		return m.ListByPeriodFunc(ctx, period)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var rows []*domain.GeneralLedgerRow
	for _, r := range m.rows[period] {
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].AccountCode < rows[j].AccountCode })
	return rows, nil
}

func (m *MockGeneralLedgerRepository) GetByPeriodAndAccount(ctx context.Context, period domain.Period, accountCode string) (*domain.GeneralLedgerRow, error) {
	if m.GetByPeriodAndAccountFunc != nil {
		return m.GetByPeriodAndAccountFunc(ctx, period, accountCode)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.rows[period][accountCode]; ok {
		return r, nil
	}
	return nil, domain.ErrLedgerRowNotFound
}

func (m *MockGeneralLedgerRepository) DeleteByPeriod(ctx context.Context, tx usecase.Transaction, period domain.Period) error {
	if m.DeleteByPeriodFunc != nil {
		return m.DeleteByPeriodFunc(ctx, tx, period)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, period)
	return nil
}

// MockReportPeriodRepository is a mock implementation of ReportPeriodRepository.
type MockReportPeriodRepository struct {
	mu      sync.RWMutex
	periods map[domain.Period]*domain.ReportPeriod

	CreateFunc    func(ctx context.Context, period *domain.ReportPeriod) error
	GetByCodeFunc func(ctx context.Context, code domain.Period) (*domain.ReportPeriod, error)
	ListFunc      func(ctx context.Context, limit, offset int) ([]*domain.ReportPeriod, error)
	UpdateFunc    func(ctx context.Context, period *domain.ReportPeriod) error
}

func NewMockReportPeriodRepository() *MockReportPeriodRepository {
	return &MockReportPeriodRepository{
		periods: make(map[domain.Period]*domain.ReportPeriod),
	}
}

func (m *MockReportPeriodRepository) Create(ctx context.Context, period *domain.ReportPeriod) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, period)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.periods[period.Code]; ok {
		return domain.ErrReportPeriodExists
	}
	m.periods[period.Code] = period
	return nil
}

func (m *MockReportPeriodRepository) GetByCode(ctx context.Context, code domain.Period) (*domain.ReportPeriod, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.periods[code]; ok {
		return p, nil
	}
	return nil, domain.ErrReportPeriodNotFound
}

func (m *MockReportPeriodRepository) List(ctx context.Context, limit, offset int) ([]*domain.ReportPeriod, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var periods []*domain.ReportPeriod
	for _, p := range m.periods {
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool { return periods[j].Code.Before(periods[i].Code) })
	return periods, nil
}

func (m *MockReportPeriodRepository) Update(ctx context.Context, period *domain.ReportPeriod) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, period)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.periods[period.Code]; !ok {
		return domain.ErrReportPeriodNotFound
	}
	m.periods[period.Code] = period
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	return nil
}

// MockRetrier is a mock implementation of Retrier that runs the
// operation once.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
	counter      int
	mu           sync.Mutex
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("mock-id-%d", m.counter)
}

// MockCache is an in-memory mock implementation of Cache.
type MockCache struct {
	mu   sync.RWMutex
	data map[string][]byte

	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{
		data: make(map[string][]byte),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[key], nil
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// NopMetrics is a Metrics implementation that records nothing.
type NopMetrics struct{}

func (NopMetrics) VoucherCreated()                                  {}
func (NopMetrics) VoucherStatusChanged(status domain.VoucherStatus) {}
func (NopMetrics) StatementGenerated(kind string)                   {}
func (NopMetrics) ImbalanceDetected()                               {}

// MockIdempotencyStore is a mock implementation of IdempotencyStore.
type MockIdempotencyStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	CheckAndSetFunc func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	UpdateFunc      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{
		data: make(map[string][]byte),
	}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if m.CheckAndSetFunc != nil {
		return m.CheckAndSetFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.data[key]; ok {
		return true, existing, nil
	}
	if response != nil {
		m.data[key] = response
	} else {
		m.data[key] = []byte("processing")
	}
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = response
	return nil
}
