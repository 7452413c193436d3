package models

import "time"

// HistoryEntry is one completed analysis saved for an authenticated
// user. Written once, read back newest-first, deleted only by its owner.
type HistoryEntry struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	UserID uint `gorm:"index;not null"`
	User   User

	Framework string `gorm:"size:50;not null"`
	Filename  string `gorm:"size:255"`

	// canonical categories array, serialized JSON
	Results string `gorm:"type:text;not null"`

	Score   int
	Covered int
	Partial int
	Gaps    int
}
