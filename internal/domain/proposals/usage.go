package proposals

import (
	"time"

	"gorm.io/gorm"
)

// MonthStart returns the first instant of now's calendar month in UTC.
func MonthStart(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// CountActiveThisMonth counts the user's non-archived proposals created in
// the current calendar month. This is the usage the "proposals" limit meters.
func CountActiveThisMonth(db *gorm.DB, userID uint, now time.Time) (int, error) {
	var n int64
	err := db.Model(&Proposal{}).
		Where("user_id = ? AND status <> ? AND created_at >= ?", userID, StatusArchived, MonthStart(now)).
		Count(&n).Error
	return int(n), err
}
