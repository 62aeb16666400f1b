package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleLine() CartLine {
	return CartLine{
		Product:     "Paracetamol 500mg",
		Qty:         2,
		UnitPrice:   dec("100"),
		DiscountPct: dec("10"),
		GSTRate:     dec("18"),
	}
}

func TestComputeLine(t *testing.T) {
	tests := []struct {
		name     string
		mode     TaxMode
		wantCGST string
		wantSGST string
		wantIGST string
		wantTot  string
	}{
		{"GST splits half and half", TaxModeGST, "16.2", "16.2", "0", "212.4"},
		{"IGST takes the full rate", TaxModeIGST, "0", "0", "32.4", "212.4"},
		{"NO_TAX leaves taxable as total", TaxModeNoTax, "0", "0", "0", "180"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeLine(sampleLine(), tt.mode)

			assert.True(t, got.Subtotal.Equal(dec("200")), "subtotal = %s", got.Subtotal)
			assert.True(t, got.DiscountAmount.Equal(dec("20")), "discount = %s", got.DiscountAmount)
			assert.True(t, got.Taxable.Equal(dec("180")), "taxable = %s", got.Taxable)
			assert.True(t, got.CGST.Equal(dec(tt.wantCGST)), "cgst = %s", got.CGST)
			assert.True(t, got.SGST.Equal(dec(tt.wantSGST)), "sgst = %s", got.SGST)
			assert.True(t, got.IGST.Equal(dec(tt.wantIGST)), "igst = %s", got.IGST)
			assert.True(t, got.Total.Equal(dec(tt.wantTot)), "total = %s", got.Total)
		})
	}
}

func TestComputeLineNoDiscountNoTax(t *testing.T) {
	got := ComputeLine(CartLine{Qty: 3, UnitPrice: dec("50")}, TaxModeNoTax)
	assert.True(t, got.Taxable.Equal(dec("150")))
	assert.True(t, got.Total.Equal(dec("150")))
}

func TestComputeCartDropsZeroQtyLines(t *testing.T) {
	lines := []CartLine{
		sampleLine(),
		{Product: "empty", Qty: 0, UnitPrice: dec("999"), GSTRate: dec("18")},
		{Product: "negative", Qty: -2, UnitPrice: dec("999"), GSTRate: dec("18")},
	}

	computed, totals := ComputeCart(lines, TaxModeGST)

	require.Len(t, computed, 1)
	assert.Equal(t, "Paracetamol 500mg", computed[0].Product)
	assert.True(t, totals.GrandTotal.Equal(dec("212.4")))
}

func TestComputeCartSumsAreExact(t *testing.T) {
	lines := []CartLine{
		{Product: "a", Qty: 2, UnitPrice: dec("100"), DiscountPct: dec("10"), GSTRate: dec("18")},
		{Product: "b", Qty: 1, UnitPrice: dec("33.33"), GSTRate: dec("12")},
		{Product: "c", Qty: 7, UnitPrice: dec("9.99"), DiscountPct: dec("2.5"), GSTRate: dec("5")},
	}

	for _, mode := range []TaxMode{TaxModeGST, TaxModeIGST, TaxModeNoTax} {
		computed, totals := ComputeCart(lines, mode)

		sumTaxable := decimal.Zero
		sumCGST := decimal.Zero
		sumSGST := decimal.Zero
		sumIGST := decimal.Zero
		sumTotal := decimal.Zero
		for _, cl := range computed {
			sumTaxable = sumTaxable.Add(cl.Taxable)
			sumCGST = sumCGST.Add(cl.CGST)
			sumSGST = sumSGST.Add(cl.SGST)
			sumIGST = sumIGST.Add(cl.IGST)
			sumTotal = sumTotal.Add(cl.Total)

			// per-line invariants
			switch mode {
			case TaxModeGST:
				assert.True(t, cl.CGST.Equal(cl.SGST))
				assert.True(t, cl.CGST.Equal(cl.Taxable.Mul(cl.GSTRate).Div(dec("200"))))
				assert.True(t, cl.IGST.IsZero())
			case TaxModeIGST:
				assert.True(t, cl.IGST.Equal(cl.Taxable.Mul(cl.GSTRate).Div(dec("100"))))
				assert.True(t, cl.CGST.IsZero())
				assert.True(t, cl.SGST.IsZero())
			default:
				assert.True(t, cl.CGST.IsZero() && cl.SGST.IsZero() && cl.IGST.IsZero())
				assert.True(t, cl.Total.Equal(cl.Taxable))
			}
		}

		assert.True(t, totals.Taxable.Equal(sumTaxable), "mode %s subtotal", mode)
		assert.True(t, totals.CGST.Equal(sumCGST), "mode %s cgst", mode)
		assert.True(t, totals.SGST.Equal(sumSGST), "mode %s sgst", mode)
		assert.True(t, totals.IGST.Equal(sumIGST), "mode %s igst", mode)
		assert.True(t, totals.GrandTotal.Equal(sumTotal), "mode %s grand total", mode)
	}
}

func TestInferTaxMode(t *testing.T) {
	tests := []struct {
		name             string
		cgst, sgst, igst string
		want             TaxMode
	}{
		{"igst wins", "0", "0", "32.4", TaxModeIGST},
		{"cgst implies gst", "16.2", "16.2", "0", TaxModeGST},
		{"sgst alone implies gst", "0", "16.2", "0", TaxModeGST},
		{"all zero is no tax", "0", "0", "0", TaxModeNoTax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferTaxMode(dec(tt.cgst), dec(tt.sgst), dec(tt.igst)))
		})
	}
}

func TestValidTaxMode(t *testing.T) {
	assert.True(t, ValidTaxMode("GST"))
	assert.True(t, ValidTaxMode("IGST"))
	assert.True(t, ValidTaxMode("NO_TAX"))
	assert.False(t, ValidTaxMode(""))
	assert.False(t, ValidTaxMode("VAT"))
}
