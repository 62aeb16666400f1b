package model

import (
	"time"
)

// Company is the seller profile printed on every invoice. Exactly one row
// exists; it is created empty on first access and must have a name before
// any bill can be generated.
type Company struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255)" json:"name"`
	GSTIN     string    `gorm:"column:gstin;type:varchar(20)" json:"gstin"`
	MSME      string    `gorm:"column:msme;type:varchar(50)" json:"msme"`
	FSSAI     string    `gorm:"column:fssai;type:varchar(50)" json:"fssai"`
	Phone     string    `gorm:"type:varchar(50)" json:"phone"`
	Address   string    `gorm:"type:text" json:"address"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Settings holds renderer preferences: the logo file path and the UPI id the
// payment QR is generated from. Singleton row like Company.
type Settings struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	LogoPath  string    `gorm:"type:varchar(255)" json:"logo_path"`
	UPIID     string    `gorm:"column:upi_id;type:varchar(100)" json:"upi_id"`
	UpdatedAt time.Time `json:"updated_at"`
}
