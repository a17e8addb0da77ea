package model

import "time"

// Preference levels, as picked on the item page.
const (
	LevelLove  = "love"  // "coup de cœur"
	LevelMaybe = "maybe" // "peut-être"
	LevelNo    = "no"    // "pas intéressé"
)

// Preference records one member's stance on one item. At most one row per
// (item, user): changing the level overwrites in place.
type Preference struct {
	ID     int64 `gorm:"primaryKey"`
	ItemID int64 `gorm:"not null;uniqueIndex:idx_item_user"`
	UserID int64 `gorm:"not null;uniqueIndex:idx_item_user"`

	Level string `gorm:"size:10;not null"` // love | maybe | no

	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	User *User `gorm:"foreignKey:UserID"`
}

// ValidLevel reports whether s is one of the three preference levels.
func ValidLevel(s string) bool {
	return s == LevelLove || s == LevelMaybe || s == LevelNo
}
