package model

import "time"

// Photo is one picture of an item, stored inline as a base64 data URL.
// Position is a 0-based display order; removing a photo keeps the stored
// positions of the survivors (no renumbering).
type Photo struct {
	ID     int64 `gorm:"primaryKey"`
	ItemID int64 `gorm:"not null;index"`

	Data     string `gorm:"not null"` // data:image/...;base64,...
	Position int    `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
