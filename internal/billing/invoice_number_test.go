package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFinancialYearAt(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"april 1 starts the new year", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), "2024-2025"},
		{"march 31 is still the old year", time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC), "2023-2024"},
		{"december mid-year", time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC), "2024-2025"},
		{"january before april", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), "2024-2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FinancialYearAt(tt.date))
		})
	}
}

func TestFormatInvoiceNo(t *testing.T) {
	assert.Equal(t, "INV/2024-2025/1", FormatInvoiceNo("2024-2025", 1))
	assert.Equal(t, "INV/2023-2024/42", FormatInvoiceNo("2023-2024", 42))
}

// Two derivations from the same snapshot and date must agree; the number is a
// pure function of both.
func TestInvoiceNoIsDeterministic(t *testing.T) {
	at := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	fy := FinancialYearAt(at)
	assert.Equal(t, FormatInvoiceNo(fy, 3), FormatInvoiceNo(FinancialYearAt(at), 3))
}
