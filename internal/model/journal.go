package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry ("asiento") is a dated, balanced group of movements.
// Balanced means sum(debits) == sum(credits) across its movements.
type JournalEntry struct {
	ID          string    `gorm:"type:varchar(26);primaryKey" json:"id"`
	CompanyID   uint      `gorm:"not null;index" json:"company_id"`
	Date        time.Time `gorm:"type:date;not null;index" json:"date"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`

	Movements []Movement `gorm:"foreignKey:EntryID" json:"movements"`
}

// TableName maps JournalEntry to the journal_entries table.
func (JournalEntry) TableName() string {
	return "journal_entries"
}

// Movement ("movimiento") is one debit-or-credit posting line against a
// single account. Exactly one of Debit/Credit is non-zero; both are
// non-negative. Movements are immutable once posted.
type Movement struct {
	ID        string          `gorm:"type:varchar(26);primaryKey" json:"id"`
	EntryID   string          `gorm:"type:varchar(26);not null;index" json:"entry_id"`
	AccountID uint            `gorm:"not null;index" json:"account_id"`
	Debit     decimal.Decimal `gorm:"type:decimal(14,3);not null;default:0" json:"debit"`
	Credit    decimal.Decimal `gorm:"type:decimal(14,3);not null;default:0" json:"credit"`
	Reference string          `gorm:"type:varchar(100)" json:"reference"`
}

// TableName maps Movement to the movements table.
func (Movement) TableName() string {
	return "movements"
}
