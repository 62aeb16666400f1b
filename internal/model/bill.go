package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus enum constants
const (
	PaymentPending       = "Pending"
	PaymentPaid          = "Paid"
	PaymentPartiallyPaid = "Partially Paid"
)

// Bill is a finalized tax invoice. Exactly one of {cgst+sgst} or {igst} is
// nonzero, or all are zero for tax-free bills. TaxMode stores the scheme
// explicitly; older rows imported without it are resolved by inference from
// the nonzero tax fields.
type Bill struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	BillNo        string          `gorm:"type:varchar(30);uniqueIndex;not null" json:"bill_no"` // INV/{fy}/{seq}
	FY            string          `gorm:"column:fy;type:varchar(9);not null;index" json:"fy"`
	CustomerID    uint            `gorm:"not null;index" json:"customer_id"`
	Customer      *Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	BillDate      time.Time       `gorm:"type:date;not null" json:"bill_date"`
	TaxMode       string          `gorm:"type:varchar(10)" json:"tax_mode"` // GST, IGST, NO_TAX
	Subtotal      decimal.Decimal `gorm:"type:decimal(14,4);not null" json:"subtotal"` // sum of taxable amounts
	CGST          decimal.Decimal `gorm:"column:cgst;type:decimal(14,4);not null;default:0" json:"cgst"`
	SGST          decimal.Decimal `gorm:"column:sgst;type:decimal(14,4);not null;default:0" json:"sgst"`
	IGST          decimal.Decimal `gorm:"column:igst;type:decimal(14,4);not null;default:0" json:"igst"`
	GrandTotal    decimal.Decimal `gorm:"type:decimal(14,4);not null" json:"grand_total"`
	PaymentStatus string          `gorm:"type:varchar(20);not null;default:'Pending'" json:"payment_status"`
	Items         []BillItem      `gorm:"foreignKey:BillNo;references:BillNo" json:"items,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// BillItem is an immutable historical line of a bill. Product name, price,
// gst rate and mfg/exp are snapshots taken at billing time, not live
// references — historical correctness over normalization. The edit flow
// replaces a bill's item set wholesale under the same bill_no.
type BillItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	BillNo      string          `gorm:"type:varchar(30);not null;index" json:"bill_no"`
	Product     string          `gorm:"type:varchar(255);not null" json:"product"`
	Qty         int             `gorm:"type:int;not null" json:"qty"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	GSTRate     decimal.Decimal `gorm:"column:gst;type:decimal(6,2);not null;default:0" json:"gst"`
	Mfg         string          `gorm:"type:varchar(20)" json:"mfg"`
	Exp         string          `gorm:"type:varchar(20)" json:"exp"`
	FreeQty     int             `gorm:"column:free;type:int;not null;default:0" json:"free"`
	DiscountPct decimal.Decimal `gorm:"column:discount;type:decimal(6,2);not null;default:0" json:"discount"`
	BatchNo     string          `gorm:"type:varchar(100)" json:"batch_no"`
}
