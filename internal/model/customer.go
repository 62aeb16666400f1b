package model

import (
	"time"
)

// Customer represents a buyer with billing and optional shipping details.
// Shipping fields fall back to the billing fields at render time when unset.
type Customer struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone       string    `gorm:"type:varchar(50)" json:"phone"`
	GSTIN       string    `gorm:"column:gstin;type:varchar(20)" json:"gstin"`
	Address     string    `gorm:"type:text" json:"address"`
	Place       string    `gorm:"type:varchar(255)" json:"place"` // place of supply
	ShipName    string    `gorm:"type:varchar(255)" json:"ship_name"`
	ShipAddress string    `gorm:"type:text" json:"ship_address"`
	ShipPhone   string    `gorm:"type:varchar(50)" json:"ship_phone"`
	ShipGSTIN   string    `gorm:"column:ship_gstin;type:varchar(20)" json:"ship_gstin"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
