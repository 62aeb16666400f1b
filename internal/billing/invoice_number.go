package billing

import (
	"fmt"
	"time"
)

// FinancialYearAt returns the Indian financial year (April 1 to March 31)
// containing t, encoded "YYYY-YYYY+1".
func FinancialYearAt(t time.Time) string {
	y := t.Year()
	if t.Month() > time.March {
		return fmt.Sprintf("%d-%d", y, y+1)
	}
	return fmt.Sprintf("%d-%d", y-1, y)
}

// FinancialYear is FinancialYearAt for the current date.
func FinancialYear() string {
	return FinancialYearAt(time.Now())
}

// FormatInvoiceNo renders the human-facing invoice number for the given
// financial year and 1-based sequence: INV/{fy}/{seq}. Sequence numbers are
// derived from a count of existing bills in the same financial year and are
// never reused, even if a bill were later removed.
func FormatInvoiceNo(fy string, seq int64) string {
	return fmt.Sprintf("INV/%s/%d", fy, seq)
}
