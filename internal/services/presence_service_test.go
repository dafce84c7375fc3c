package services

import (
	"testing"
	"time"

	"github.com/stafflow/employee-management-api/internal/models"
	"github.com/stafflow/employee-management-api/internal/repository"
	"github.com/stafflow/employee-management-api/internal/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupPresenceTest(t *testing.T) (*PresenceService, *gorm.DB, *models.User) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}, &models.Attendance{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	user := &models.User{
		Name:         "Asha",
		Email:        "asha@example.com",
		PasswordHash: "hashed",
		Role:         models.RoleEmployee,
	}
	require.NoError(t, db.Create(user).Error)

	svc := NewPresenceService(repository.NewUserRepository(db))
	return svc, db, user
}

func reloadUser(t *testing.T, db *gorm.DB, id uint64) models.User {
	t.Helper()
	var user models.User
	require.NoError(t, db.First(&user, id).Error)
	return user
}

func TestPresenceService_HeartbeatKeepsOnlineAndAdvancesLastActive(t *testing.T) {
	svc, db, user := setupPresenceTest(t)

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		tick := base.Add(time.Duration(i) * 30 * time.Second)
		svc.now = func() time.Time { return tick }

		require.NoError(t, svc.Heartbeat(user.ID))

		got := reloadUser(t, db, user.ID)
		require.True(t, got.IsOnline)
		require.Equal(t, tick.Unix(), got.LastActive.Unix())
	}
}

func TestPresenceService_LogoutWinsOverRecentHeartbeats(t *testing.T) {
	svc, db, user := setupPresenceTest(t)

	require.NoError(t, svc.Heartbeat(user.ID))
	require.NoError(t, svc.Heartbeat(user.ID))
	require.True(t, reloadUser(t, db, user.ID).IsOnline)

	require.NoError(t, svc.SetOffline(user.ID))
	require.False(t, reloadUser(t, db, user.ID).IsOnline)
}

func TestPresenceService_UpdateAppliesClientFlag(t *testing.T) {
	svc, db, user := setupPresenceTest(t)

	require.NoError(t, svc.Update(user.ID, true))
	require.True(t, reloadUser(t, db, user.ID).IsOnline)

	require.NoError(t, svc.Update(user.ID, false))
	require.False(t, reloadUser(t, db, user.ID).IsOnline)
}

func TestPresenceService_StatusesListsEmployeesOnly(t *testing.T) {
	svc, db, _ := setupPresenceTest(t)

	admin := &models.User{
		Name:         "Root",
		Email:        "root@example.com",
		PasswordHash: "hashed",
		Role:         models.RoleAdmin,
	}
	require.NoError(t, db.Create(admin).Error)

	statuses, total, err := svc.Statuses(utils.PaginationParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, statuses, 1)
	require.Equal(t, "asha@example.com", statuses[0].Email)
}
