package domain

import (
	"fmt"
	"time"
)

// Period is a year-month accounting window, keyed by a 6-character
// YYYYMM token.
type Period struct {
	Year  int
	Month time.Month
}

// ParsePeriod parses a 6-digit YYYYMM token. The format is validated
// once here; everything downstream works with the structured value.
func ParsePeriod(token string) (Period, error) {
	if len(token) != 6 {
		return Period{}, ErrInvalidPeriod
	}
	for _, c := range token {
		if c < '0' || c > '9' {
			return Period{}, ErrInvalidPeriod
		}
	}

	year := int(token[0]-'0')*1000 + int(token[1]-'0')*100 + int(token[2]-'0')*10 + int(token[3]-'0')
	month := int(token[4]-'0')*10 + int(token[5]-'0')
	if month < 1 || month > 12 {
		return Period{}, ErrInvalidPeriod
	}

	return Period{Year: year, Month: time.Month(month)}, nil
}

// PeriodFromDate derives the period containing t.
func PeriodFromDate(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// String formats the period as its YYYYMM token.
func (p Period) String() string {
	return fmt.Sprintf("%04d%02d", p.Year, int(p.Month))
}

// IsZero reports whether the period is unset.
func (p Period) IsZero() bool {
	return p.Year == 0 && p.Month == 0
}

// Previous returns the period one month earlier.
func (p Period) Previous() Period {
	if p.Month == time.January {
		return Period{Year: p.Year - 1, Month: time.December}
	}
	return Period{Year: p.Year, Month: p.Month - 1}
}

// Before reports whether p precedes o.
func (p Period) Before(o Period) bool {
	if p.Year != o.Year {
		return p.Year < o.Year
	}
	return p.Month < o.Month
}
