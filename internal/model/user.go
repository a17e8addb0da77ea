package model

import "time"

// User roles. The family splits into parents and children; the role only
// affects how a member is displayed, never what they may do.
const (
	RoleParent = "parent"
	RoleEnfant = "enfant"
)

// User is a family member. Identity is self-asserted: members pick their own
// first name from the list, there are no passwords. Users are immutable once
// created and are never deleted.
type User struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"size:50;not null;uniqueIndex"`
	Role string `gorm:"size:10;not null"` // parent | enfant

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
