package dto

import (
	"time"

	"github.com/stafflow/employee-management-api/internal/models"
)

// AttendanceDTO represents an attendance record in API responses
type AttendanceDTO struct {
	ID       uint64    `json:"id"`
	UserID   uint64    `json:"user_id"`
	Date     time.Time `json:"date"`
	MarkedAt time.Time `json:"marked_at"`
}

// ToAttendanceDTO converts an Attendance model to AttendanceDTO
func ToAttendanceDTO(record models.Attendance) AttendanceDTO {
	return AttendanceDTO{
		ID:       record.ID,
		UserID:   record.UserID,
		Date:     record.Date,
		MarkedAt: record.MarkedAt,
	}
}

// ToAttendanceDTOs converts a slice of attendance records
func ToAttendanceDTOs(records []models.Attendance) []AttendanceDTO {
	out := make([]AttendanceDTO, len(records))
	for i, r := range records {
		out[i] = ToAttendanceDTO(r)
	}
	return out
}
