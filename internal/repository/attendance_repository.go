package repository

import (
	"time"

	"github.com/stafflow/employee-management-api/internal/models"
	"gorm.io/gorm"
)

// GormAttendanceRepository is a GORM implementation of AttendanceRepository
type GormAttendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &GormAttendanceRepository{db: db}
}

// Create inserts an attendance record. The (user_id, date) unique index is
// the concurrency guard: a second mark for the same day fails with
// gorm.ErrDuplicatedKey rather than racing.
func (r *GormAttendanceRepository) Create(record *models.Attendance) error {
	return r.db.Create(record).Error
}

// FindByUserAndDate finds the record for a user on a calendar day
func (r *GormAttendanceRepository) FindByUserAndDate(userID uint64, date time.Time) (*models.Attendance, error) {
	var record models.Attendance
	if err := r.db.Where("user_id = ? AND date = ?", userID, date).
		First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByUserSince lists a user's records from a date forward, newest first
func (r *GormAttendanceRepository) ListByUserSince(userID uint64, from time.Time) ([]models.Attendance, error) {
	var records []models.Attendance
	if err := r.db.Where("user_id = ? AND date >= ?", userID, from).
		Order("date DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
