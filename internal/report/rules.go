package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/iho/finbook/internal/domain"
)

// Bucket is a statement line item an account's net balance is summed
// into.
type Bucket string

// Balance sheet buckets.
const (
	BucketCurrentAssets       Bucket = "current_assets"
	BucketFixedAssets         Bucket = "fixed_assets"
	BucketIntangibleAssets    Bucket = "intangible_assets"
	BucketOtherAssets         Bucket = "other_assets"
	BucketCurrentLiabilities  Bucket = "current_liabilities"
	BucketLongTermLiabilities Bucket = "long_term_liabilities"
	BucketPaidInCapital       Bucket = "paid_in_capital"
	BucketRetainedEarnings    Bucket = "retained_earnings"
	BucketCurrentProfit       Bucket = "current_profit"
)

// Income statement buckets.
const (
	BucketOperatingRevenue  Bucket = "operating_revenue"
	BucketOperatingCost     Bucket = "operating_cost"
	BucketSellingExpenses   Bucket = "selling_expenses"
	BucketAdminExpenses     Bucket = "admin_expenses"
	BucketFinancialExpenses Bucket = "financial_expenses"
)

// Rule maps account codes of one type onto a bucket. Exactly one of
// Codes, Prefixes or Default should be set; precedence across rules is
// exact code match, then prefix match, then the type default,
// regardless of rule order within a tier.
type Rule struct {
	Type     domain.AccountType `json:"type"`
	Codes    []string           `json:"codes,omitempty"`
	Prefixes []string           `json:"prefixes,omitempty"`
	Default  bool               `json:"default,omitempty"`
	Bucket   Bucket             `json:"bucket"`
}

// DefaultRules returns the built-in chart-of-accounts classification
// table. The code lists are configuration data: several codes of the
// same type land in different buckets, so buckets can never be
// inferred from the type alone.
func DefaultRules() []Rule {
	return []Rule{
		// Assets
		{Type: domain.AccountTypeAsset, Codes: []string{"1001", "1002", "1121", "1122", "1221", "1231", "1406"}, Bucket: BucketCurrentAssets},
		{Type: domain.AccountTypeAsset, Prefixes: []string{"15", "16"}, Bucket: BucketFixedAssets},
		{Type: domain.AccountTypeAsset, Prefixes: []string{"17", "18"}, Bucket: BucketIntangibleAssets},
		{Type: domain.AccountTypeAsset, Default: true, Bucket: BucketOtherAssets},

		// Liabilities
		{Type: domain.AccountTypeLiability, Codes: []string{"2001", "2002", "2201", "2202", "2221", "2231"}, Bucket: BucketCurrentLiabilities},
		{Type: domain.AccountTypeLiability, Default: true, Bucket: BucketLongTermLiabilities},

		// Equity. No default: an equity code outside these families
		// contributes to no line item.
		{Type: domain.AccountTypeEquity, Prefixes: []string{"30", "31"}, Bucket: BucketPaidInCapital},
		{Type: domain.AccountTypeEquity, Codes: []string{"3301"}, Prefixes: []string{"32"}, Bucket: BucketRetainedEarnings},
		{Type: domain.AccountTypeEquity, Codes: []string{"3131"}, Bucket: BucketCurrentProfit},

		// Profit and loss
		{Type: domain.AccountTypeProfit, Codes: []string{"6001", "6002", "6051"}, Bucket: BucketOperatingRevenue},
		{Type: domain.AccountTypeProfit, Codes: []string{"6401", "6402"}, Bucket: BucketOperatingCost},
		{Type: domain.AccountTypeProfit, Prefixes: []string{"6601"}, Bucket: BucketSellingExpenses},
		{Type: domain.AccountTypeProfit, Prefixes: []string{"6602"}, Bucket: BucketAdminExpenses},
		{Type: domain.AccountTypeProfit, Prefixes: []string{"6603"}, Bucket: BucketFinancialExpenses},
	}
}

// ReadRules decodes a classification table from JSON.
func ReadRules(r io.Reader) ([]Rule, error) {
	var rules []Rule
	if err := json.NewDecoder(r).Decode(&rules); err != nil {
		return nil, fmt.Errorf("failed to decode classification rules: %w", err)
	}

	for _, rule := range rules {
		if !rule.Type.Valid() {
			return nil, fmt.Errorf("classification rule for bucket %q: unknown account type %q", rule.Bucket, rule.Type)
		}
		if rule.Bucket == "" {
			return nil, fmt.Errorf("classification rule for type %q: missing bucket", rule.Type)
		}
	}

	return rules, nil
}

// LoadRules reads a classification table from a JSON file.
func LoadRules(path string) ([]Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open classification rules: %w", err)
	}
	defer f.Close()

	return ReadRules(f)
}
