package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold is the level below which a product is flagged on the
// stock overview and broadcast over the websocket hub.
const LowStockThreshold = 10

// Product is a sellable item. Stock is a cached aggregate: it tracks the sum
// of batch quantities for batch-managed products but can also be adjusted
// directly for products without batches. It is clamped at zero on every
// movement.
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	HSN         string          `gorm:"column:hsn;type:varchar(20)" json:"hsn"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	GSTRate     decimal.Decimal `gorm:"column:gst;type:decimal(6,2);not null;default:0" json:"gst"`
	Stock       int             `gorm:"type:int;not null;default:0" json:"stock"`
	Mfg         string          `gorm:"type:varchar(20)" json:"mfg"`
	Exp         string          `gorm:"type:varchar(20)" json:"exp"`
	FreeQty     int             `gorm:"column:free;type:int;not null;default:0" json:"free"`
	DiscountPct decimal.Decimal `gorm:"column:discount;type:decimal(6,2);not null;default:0" json:"discount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Batch is a dated lot of a product with its own quantity, used for expiry
// and traceability tracking. Quantity is decremented on sale independently of
// the product's cached stock and is likewise clamped at zero. Batches are
// never auto-deleted when they reach zero.
type Batch struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	ProductID uint            `gorm:"not null;index;uniqueIndex:idx_product_batch" json:"product_id"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	BatchNo   string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_product_batch" json:"batch_no"`
	MfgDate   string          `gorm:"type:varchar(20)" json:"mfg_date"`
	ExpDate   string          `gorm:"type:varchar(20)" json:"exp_date"`
	Quantity  int             `gorm:"type:int;not null;default:0" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"price"` // purchase price
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
