// Package billing holds the pure invoice math: per-line tax computation,
// cart aggregation and financial-year invoice numbering. Nothing in here
// touches the database.
package billing

import (
	"github.com/shopspring/decimal"
)

// TaxMode selects the tax scheme for a whole bill. It is a single explicit
// value per bill, never per line.
type TaxMode string

const (
	TaxModeGST   TaxMode = "GST"    // intra-state: CGST + SGST, half the nominal rate each
	TaxModeIGST  TaxMode = "IGST"   // inter-state: IGST at the full nominal rate
	TaxModeNoTax TaxMode = "NO_TAX" // tax-free bill
)

var (
	hundred    = decimal.NewFromInt(100)
	twoHundred = decimal.NewFromInt(200)
)

// CartLine is one selected product in the cart. Snapshot fields (Product,
// HSN, Mfg, Exp) pass through untouched so the bill items keep their
// historical values. FreeQty is informational only and never enters the
// taxable base.
type CartLine struct {
	Product     string
	HSN         string
	BatchNo     string
	Mfg         string
	Exp         string
	Qty         int
	UnitPrice   decimal.Decimal
	DiscountPct decimal.Decimal
	GSTRate     decimal.Decimal
	FreeQty     int
}

// ComputedLine is a cart line with its derived amounts.
type ComputedLine struct {
	CartLine
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	Taxable        decimal.Decimal
	CGST           decimal.Decimal
	SGST           decimal.Decimal
	IGST           decimal.Decimal
	Total          decimal.Decimal
}

// Totals aggregates the per-line fields exactly. No rounding is applied;
// currency rounding is the renderer's concern.
type Totals struct {
	Taxable    decimal.Decimal
	CGST       decimal.Decimal
	SGST       decimal.Decimal
	IGST       decimal.Decimal
	GrandTotal decimal.Decimal
}

// ComputeLine derives the amounts for a single cart line under the given tax
// mode:
//
//	subtotal = qty * unit_price
//	discount = subtotal * discount_pct / 100
//	taxable  = subtotal - discount
//	GST:    cgst = sgst = taxable * rate / 200
//	IGST:   igst = taxable * rate / 100
//	NO_TAX: all tax fields zero
//	total   = taxable + taxes
func ComputeLine(line CartLine, mode TaxMode) ComputedLine {
	subtotal := decimal.NewFromInt(int64(line.Qty)).Mul(line.UnitPrice)
	discount := subtotal.Mul(line.DiscountPct).Div(hundred)
	taxable := subtotal.Sub(discount)

	out := ComputedLine{
		CartLine:       line,
		Subtotal:       subtotal,
		DiscountAmount: discount,
		Taxable:        taxable,
		CGST:           decimal.Zero,
		SGST:           decimal.Zero,
		IGST:           decimal.Zero,
	}

	switch mode {
	case TaxModeIGST:
		out.IGST = taxable.Mul(line.GSTRate).Div(hundred)
		out.Total = taxable.Add(out.IGST)
	case TaxModeGST:
		half := taxable.Mul(line.GSTRate).Div(twoHundred)
		out.CGST = half
		out.SGST = half
		out.Total = taxable.Add(out.CGST).Add(out.SGST)
	default:
		out.Total = taxable
	}

	return out
}

// ComputeCart computes every line and the exact bill-level sums. Lines with
// qty <= 0 are excluded from the cart entirely rather than kept as
// zero-amount lines.
func ComputeCart(lines []CartLine, mode TaxMode) ([]ComputedLine, Totals) {
	computed := make([]ComputedLine, 0, len(lines))
	totals := Totals{
		Taxable:    decimal.Zero,
		CGST:       decimal.Zero,
		SGST:       decimal.Zero,
		IGST:       decimal.Zero,
		GrandTotal: decimal.Zero,
	}

	for _, line := range lines {
		if line.Qty <= 0 {
			continue
		}
		cl := ComputeLine(line, mode)
		computed = append(computed, cl)

		totals.Taxable = totals.Taxable.Add(cl.Taxable)
		totals.CGST = totals.CGST.Add(cl.CGST)
		totals.SGST = totals.SGST.Add(cl.SGST)
		totals.IGST = totals.IGST.Add(cl.IGST)
		totals.GrandTotal = totals.GrandTotal.Add(cl.Total)
	}

	return computed, totals
}

// InferTaxMode recovers the tax scheme from a bill's stored tax totals. It is
// a migration shim for rows created before tax_mode became a first-class
// column: a bill with legitimately all-zero taxes is indistinguishable from
// "mode not recorded" and comes back as NO_TAX.
func InferTaxMode(cgst, sgst, igst decimal.Decimal) TaxMode {
	if igst.Sign() > 0 {
		return TaxModeIGST
	}
	if cgst.Sign() > 0 || sgst.Sign() > 0 {
		return TaxModeGST
	}
	return TaxModeNoTax
}

// ValidTaxMode reports whether s is one of the three supported schemes.
func ValidTaxMode(s string) bool {
	switch TaxMode(s) {
	case TaxModeGST, TaxModeIGST, TaxModeNoTax:
		return true
	}
	return false
}
