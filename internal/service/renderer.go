package service

import (
	"github.com/aakshay001/MOOFUs-Billing-APP/internal/billing"
	"github.com/aakshay001/MOOFUs-Billing-APP/internal/model"
)

// InvoiceDocument carries everything the renderer needs to lay out one
// invoice. The customer comes with shipping fields already defaulted to the
// billing fields; amounts are the calculator's exact values and any currency
// rounding happens inside the renderer.
type InvoiceDocument struct {
	Company       model.Company
	Customer      model.Customer
	InvoiceNo     string
	InvoiceDate   string
	Terms         string
	TaxMode       billing.TaxMode
	PaymentStatus string
	UPIID         string
	LogoPath      string
	Lines         []billing.ComputedLine
	Totals        billing.Totals
}

// DocumentRenderer produces the invoice PDF. Rendering happens after the
// bill and stock movements have committed; a render error is reported to the
// caller but never rolls the commit back.
type DocumentRenderer interface {
	RenderInvoice(doc InvoiceDocument) ([]byte, error)
}
