package services

import (
	"fmt"
	"time"

	"github.com/stafflow/employee-management-api/internal/models"
	"github.com/stafflow/employee-management-api/internal/repository"
	"github.com/stafflow/employee-management-api/internal/utils"
)

// PresenceService maintains each user's online flag and last-active
// timestamp. Presence is an advisory, eventually consistent signal:
// concurrent updates race last-write-wins and there is no server-side
// expiry of a stale online flag. A client that vanishes without logging
// out stays marked online until its next explicit update.
type PresenceService struct {
	userRepo repository.UserRepository
	now      func() time.Time
}

// NewPresenceService creates a new PresenceService.
func NewPresenceService(userRepo repository.UserRepository) *PresenceService {
	return &PresenceService{
		userRepo: userRepo,
		now:      time.Now,
	}
}

// SetOnline marks a user online, refreshing last-active. Called on login.
func (s *PresenceService) SetOnline(userID uint64) error {
	if err := s.userRepo.SetPresence(userID, true, s.now()); err != nil {
		return fmt.Errorf("failed to mark user online: %w", err)
	}
	return nil
}

// SetOffline marks a user offline, refreshing last-active. Called on logout.
func (s *PresenceService) SetOffline(userID uint64) error {
	if err := s.userRepo.SetPresence(userID, false, s.now()); err != nil {
		return fmt.Errorf("failed to mark user offline: %w", err)
	}
	return nil
}

// Heartbeat refreshes a user's presence regardless of prior state. Safe to
// call repeatedly.
func (s *PresenceService) Heartbeat(userID uint64) error {
	return s.SetOnline(userID)
}

// Update applies a client-supplied online flag, the shape the
// online-status endpoint receives.
func (s *PresenceService) Update(userID uint64, online bool) error {
	if online {
		return s.SetOnline(userID)
	}
	return s.SetOffline(userID)
}

// Statuses lists a page of employee presence for the admin status view.
func (s *PresenceService) Statuses(params utils.PaginationParams) ([]models.User, int64, error) {
	users, total, err := s.userRepo.ListByRole(models.RoleEmployee, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list statuses: %w", err)
	}
	return users, total, nil
}
