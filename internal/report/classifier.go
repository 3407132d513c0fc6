package report

import (
	"strings"

	"github.com/iho/finbook/internal/domain"
)

// Classifier resolves account codes to statement buckets using a rule
// table. Lookup precedence is exact code, then longest matching prefix,
// then the type default; an account matching nothing maps to no bucket.
type Classifier struct {
	exact    map[string]Bucket
	prefixes []prefixRule
	defaults map[domain.AccountType]Bucket
}

type prefixRule struct {
	typ    domain.AccountType
	prefix string
	bucket Bucket
}

// NewClassifier builds a classifier from a rule table. Pass
// DefaultRules() for the built-in chart of accounts.
func NewClassifier(rules []Rule) *Classifier {
	c := &Classifier{
		exact:    make(map[string]Bucket),
		defaults: make(map[domain.AccountType]Bucket),
	}
	for _, r := range rules {
		for _, code := range r.Codes {
			c.exact[code] = r.Bucket
		}
		for _, p := range r.Prefixes {
			c.prefixes = append(c.prefixes, prefixRule{typ: r.Type, prefix: p, bucket: r.Bucket})
		}
		if r.Default {
			c.defaults[r.Type] = r.Bucket
		}
	}
	return c
}

// Classify returns the bucket for an account code, or false when the
// code maps to no statement line item.
func (c *Classifier) Classify(typ domain.AccountType, code string) (Bucket, bool) {
	if b, ok := c.exact[code]; ok {
		return b, true
	}

	var (
		best    Bucket
		bestLen = -1
	)
	for _, p := range c.prefixes {
		if p.typ != typ {
			continue
		}
		if strings.HasPrefix(code, p.prefix) && len(p.prefix) > bestLen {
			best = p.bucket
			bestLen = len(p.prefix)
		}
	}
	if bestLen >= 0 {
		return best, true
	}

	if b, ok := c.defaults[typ]; ok {
		return b, true
	}
	return "", false
}
