package model

import "time"

// Comment is a note left on an item. Preference changes append
// system-generated comments authored by the member whose preference changed;
// those behave like any other comment of that member.
type Comment struct {
	ID     int64 `gorm:"primaryKey"`
	ItemID int64 `gorm:"not null;index"`
	UserID int64 `gorm:"not null;index"`

	Text string `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`

	User *User `gorm:"foreignKey:UserID"`
}
