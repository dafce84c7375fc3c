package repository

import (
	"time"

	"github.com/stafflow/employee-management-api/internal/models"
	"github.com/stafflow/employee-management-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email, matching case-insensitively
	FindByEmail(email string) (*models.User, error)

	// Update persists changes to a user
	Update(user *models.User) error

	// Remove hard-deletes a user (explicit admin removal)
	Remove(id uint64) error

	// ListByRole lists one page of users with the given role and the
	// unpaginated total
	ListByRole(role models.UserRole, params utils.PaginationParams) ([]models.User, int64, error)

	// ListDirectory lists one page of users ordered by online status then
	// name, plus the unpaginated total
	ListDirectory(params utils.PaginationParams) ([]models.User, int64, error)

	// SetPresence updates the online flag and last-active timestamp.
	// Last write wins; presence is advisory.
	SetPresence(userID uint64, online bool, at time.Time) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// Delete soft deletes a task
	Delete(id uint64) error

	// ListByAssignee lists tasks assigned to a user
	ListByAssignee(userID uint64) ([]models.Task, error)

	// ListByStatus lists one page of tasks in a given status with the
	// assignee preloaded, plus the unpaginated total
	ListByStatus(status models.TaskStatus, params utils.PaginationParams) ([]models.Task, int64, error)

	// SetStatusForAssignee updates the status of a task only when it is
	// assigned to the given user; returns the updated task or
	// gorm.ErrRecordNotFound
	SetStatusForAssignee(taskID, userID uint64, status models.TaskStatus) (*models.Task, error)
}

// AttendanceRepository defines the interface for attendance data access
type AttendanceRepository interface {
	// Create inserts an attendance record; duplicate (user, day) surfaces
	// as gorm.ErrDuplicatedKey
	Create(record *models.Attendance) error

	// FindByUserAndDate finds the record for a user on a calendar day
	FindByUserAndDate(userID uint64, date time.Time) (*models.Attendance, error)

	// ListByUserSince lists a user's records from a date forward, newest first
	ListByUserSince(userID uint64, from time.Time) ([]models.Attendance, error)
}
