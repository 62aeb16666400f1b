package model

import (
	"time"
)

// MovementType enum constants
const (
	MovementIn        = "IN"
	MovementOut       = "OUT"
	MovementAdjustIn  = "ADJUST_IN"
	MovementAdjustOut = "ADJUST_OUT"
	MovementAdjustSet = "ADJUST_SET"
)

// BatchNo sentinels for movements not tied to a real batch.
const (
	BatchNoNone   = "N/A"
	BatchNoManual = "MANUAL"
)

// ReferenceManualAdjustment marks movements produced by the manual
// stock-adjustment flow rather than a bill or batch intake.
const ReferenceManualAdjustment = "Manual Adjustment"

// StockMovement is one row of the append-only stock ledger. Rows are never
// updated or deleted; insertion order is chronological and ids are
// monotonically increasing. Quantity is the signed delta applied to the
// product's cached stock (for ADJUST_SET it is new minus old).
type StockMovement struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProductID    uint      `gorm:"not null;index" json:"product_id"`
	Product      *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	BatchNo      string    `gorm:"type:varchar(100);not null" json:"batch_no"`
	MovementType string    `gorm:"type:varchar(20);not null;index" json:"movement_type"`
	Quantity     int       `gorm:"type:int;not null" json:"quantity"`
	Date         time.Time `gorm:"type:date;not null" json:"date"`
	Reference    string    `gorm:"type:varchar(100)" json:"reference"` // bill_no, "Batch <no>" or "Manual Adjustment"
	Notes        string    `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}
