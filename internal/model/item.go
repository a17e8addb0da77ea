package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is one fiche: a household object of the inheritance, identified by a
// sequential number. Items are soft-deleted only; DeletedAt/DeletedBy are
// set and cleared, the row itself is never removed and the number is never
// reused.
type Item struct {
	ID     int64 `gorm:"primaryKey"`
	Number int   `gorm:"not null;uniqueIndex"`

	Title       *string `gorm:"size:100"`
	Description *string

	// Optional estimated value, EUR. Items without a value still count in the
	// repartition view but are reported separately.
	Value *decimal.Decimal `gorm:"type:decimal(12,2)"`

	CreatedBy int64     `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	// Plain pointer columns, not gorm.DeletedAt: deleted fiches stay listable.
	DeletedAt *time.Time
	DeletedBy *int64

	Photos []Photo `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}
