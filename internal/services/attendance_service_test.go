package services

import (
	"testing"
	"time"

	"github.com/stafflow/employee-management-api/internal/models"
	"github.com/stafflow/employee-management-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAttendanceTest(t *testing.T) (*AttendanceService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Attendance{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return NewAttendanceService(repository.NewAttendanceRepository(db)), db
}

func TestAttendanceService_MarkTwiceSameDay(t *testing.T) {
	svc, db := setupAttendanceTest(t)

	day := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return day }

	record, err := svc.Mark(1)
	require.NoError(t, err)
	require.Equal(t, uint64(1), record.UserID)
	require.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), record.Date)

	// Later the same day: translated to the conflict sentinel, not a
	// raw duplicate-key error.
	svc.now = func() time.Time { return day.Add(4 * time.Hour) }
	_, err = svc.Mark(1)
	require.ErrorIs(t, err, ErrAlreadyMarked)

	var count int64
	require.NoError(t, db.Model(&models.Attendance{}).Where("user_id = ?", 1).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestAttendanceService_MarkNextDaySucceeds(t *testing.T) {
	svc, _ := setupAttendanceTest(t)

	day := time.Date(2024, 3, 1, 23, 50, 0, 0, time.UTC)
	svc.now = func() time.Time { return day }
	_, err := svc.Mark(1)
	require.NoError(t, err)

	svc.now = func() time.Time { return day.Add(time.Hour) } // past midnight
	_, err = svc.Mark(1)
	require.NoError(t, err)
}

func TestAttendanceService_CheckToday(t *testing.T) {
	svc, _ := setupAttendanceTest(t)

	day := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return day }

	marked, err := svc.CheckToday(1)
	require.NoError(t, err)
	require.False(t, marked)

	_, err = svc.Mark(1)
	require.NoError(t, err)

	marked, err = svc.CheckToday(1)
	require.NoError(t, err)
	require.True(t, marked)
}

func TestAttendanceService_HistoryWindow(t *testing.T) {
	svc, db := setupAttendanceTest(t)

	now := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	// One inside the 30-day window, one outside.
	inside := models.Attendance{UserID: 1, Date: now.AddDate(0, 0, -5).Truncate(24 * time.Hour), MarkedAt: now.AddDate(0, 0, -5)}
	outside := models.Attendance{UserID: 1, Date: now.AddDate(0, 0, -45).Truncate(24 * time.Hour), MarkedAt: now.AddDate(0, 0, -45)}
	require.NoError(t, db.Create(&inside).Error)
	require.NoError(t, db.Create(&outside).Error)

	records, err := svc.History(1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, inside.Date.Unix(), records[0].Date.Unix())
}
