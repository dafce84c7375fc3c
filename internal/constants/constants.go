package constants

import "time"

// Context keys
const (
	ContextKeyUser   = "current_user"
	ContextKeyUserID = "user_id"
)

// Authentication
const (
	MinPasswordLength = 8
	BcryptCost        = 12
	TokenTTL          = 24 * time.Hour
)

// Attendance
const (
	AttendanceHistoryDays = 30
)

// Validation limits
const (
	MaxNameLength       = 50
	MaxDepartmentLength = 50
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
