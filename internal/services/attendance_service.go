package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/stafflow/employee-management-api/internal/constants"
	"github.com/stafflow/employee-management-api/internal/models"
	"github.com/stafflow/employee-management-api/internal/repository"
	"gorm.io/gorm"
)

// ErrAlreadyMarked is returned when a user marks attendance twice on the
// same calendar day.
var ErrAlreadyMarked = errors.New("attendance already marked today")

// AttendanceService handles daily attendance marking and history.
type AttendanceService struct {
	attendanceRepo repository.AttendanceRepository
	now            func() time.Time
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(attendanceRepo repository.AttendanceRepository) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// Mark records today's attendance for a user. The (user, day) unique
// constraint resolves concurrent marks: the duplicate-key failure is
// translated to ErrAlreadyMarked, not surfaced as a storage error.
func (s *AttendanceService) Mark(userID uint64) (*models.Attendance, error) {
	now := s.now()
	record := &models.Attendance{
		UserID:   userID,
		Date:     startOfDay(now),
		MarkedAt: now,
	}

	if err := s.attendanceRepo.Create(record); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyMarked
		}
		return nil, fmt.Errorf("failed to mark attendance: %w", err)
	}

	return record, nil
}

// CheckToday reports whether the user has marked attendance today.
func (s *AttendanceService) CheckToday(userID uint64) (bool, error) {
	_, err := s.attendanceRepo.FindByUserAndDate(userID, startOfDay(s.now()))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check attendance: %w", err)
	}
	return true, nil
}

// History returns the user's attendance for the trailing 30 days,
// newest first.
func (s *AttendanceService) History(userID uint64) ([]models.Attendance, error) {
	from := startOfDay(s.now()).AddDate(0, 0, -constants.AttendanceHistoryDays)
	records, err := s.attendanceRepo.ListByUserSince(userID, from)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance: %w", err)
	}
	return records, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
