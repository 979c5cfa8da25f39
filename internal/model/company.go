package model

import "time"

// Company is the tenant root: every chart of accounts, journal entry and
// subscription belongs to exactly one company.
type Company struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(150);not null" json:"name"`
	TaxID     string    `gorm:"type:varchar(32);uniqueIndex" json:"tax_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName maps Company to the companies table.
func (Company) TableName() string {
	return "companies"
}
