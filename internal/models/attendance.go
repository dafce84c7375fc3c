package models

import "time"

// Attendance is one (user, calendar day) pair. Date is truncated to
// midnight so the composite unique index allows at most one record per
// user per day. Records are immutable once created.
type Attendance struct {
	ID       uint64    `gorm:"primarykey" json:"id"`
	UserID   uint64    `gorm:"not null;uniqueIndex:idx_attendance_user_date" json:"user_id"`
	Date     time.Time `gorm:"not null;uniqueIndex:idx_attendance_user_date" json:"date"`
	MarkedAt time.Time `gorm:"not null" json:"marked_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
