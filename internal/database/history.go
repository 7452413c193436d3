package database

import (
	"errors"

	"mapmygap/internal/logger"
	"mapmygap/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a history entry does not exist or does
// not belong to the requesting user.
var ErrNotFound = errors.New("history entry not found")

// SaveHistory persists a completed analysis. Best-effort: failures are
// logged and swallowed so history can never block the analysis response.
func SaveHistory(entry models.HistoryEntry) {
	if DB == nil {
		return
	}
	if err := DB.Create(&entry).Error; err != nil {
		logger.S().Warnf("failed to save history for user %d: %v", entry.UserID, err)
	}
}

// RecentHistory returns the user's newest entries, most recent first.
func RecentHistory(userID uint, limit int) ([]models.HistoryEntry, error) {
	if DB == nil {
		return nil, errors.New("history store is not configured")
	}
	var entries []models.HistoryEntry
	err := DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// DeleteHistory removes one entry, owner-scoped.
func DeleteHistory(userID, entryID uint) error {
	if DB == nil {
		return errors.New("history store is not configured")
	}
	res := DB.Where("id = ? AND user_id = ?", entryID, userID).Delete(&models.HistoryEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// gorm re-exported sentinel check, used by handlers
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}
