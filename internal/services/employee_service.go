package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/stafflow/employee-management-api/internal/constants"
	"github.com/stafflow/employee-management-api/internal/models"
	"github.com/stafflow/employee-management-api/internal/repository"
	"github.com/stafflow/employee-management-api/internal/utils"
	"gorm.io/gorm"
)

// EmployeeService handles profile and directory operations.
type EmployeeService struct {
	userRepo repository.UserRepository
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(userRepo repository.UserRepository) *EmployeeService {
	return &EmployeeService{userRepo: userRepo}
}

// Profile returns a user by ID.
func (s *EmployeeService) Profile(userID uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// UpdateProfileInput is a partial profile edit; empty fields are unchanged.
// Profile carries the stored path of an already-uploaded image; the upload
// itself happens elsewhere.
type UpdateProfileInput struct {
	Name       string
	Phone      string
	Department string
	Profile    string
}

// UpdateProfile applies a partial update to the user's own profile.
func (s *EmployeeService) UpdateProfile(userID uint64, input UpdateProfileInput) (*models.User, error) {
	user, err := s.Profile(userID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		if len(name) > constants.MaxNameLength {
			return nil, fmt.Errorf("name cannot exceed %d characters", constants.MaxNameLength)
		}
		user.Name = name
	}
	if input.Phone != "" {
		if !phonePattern.MatchString(input.Phone) {
			return nil, ErrInvalidPhone
		}
		user.Phone = input.Phone
	}
	if input.Department != "" {
		if len(input.Department) > constants.MaxDepartmentLength {
			return nil, fmt.Errorf("department cannot exceed %d characters", constants.MaxDepartmentLength)
		}
		user.Department = input.Department
	}
	if input.Profile != "" {
		user.Profile = input.Profile
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}

// Directory lists a page of the employee directory view, online users
// first, then alphabetically, with the total headcount.
func (s *EmployeeService) Directory(params utils.PaginationParams) ([]models.User, int64, error) {
	users, total, err := s.userRepo.ListDirectory(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch directory: %w", err)
	}
	return users, total, nil
}

// ListEmployees lists a page of employee-role users for the admin view.
func (s *EmployeeService) ListEmployees(params utils.PaginationParams) ([]models.User, int64, error) {
	users, total, err := s.userRepo.ListByRole(models.RoleEmployee, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	return users, total, nil
}

// Remove hard-deletes a user. This is the only deletion path.
func (s *EmployeeService) Remove(userID uint64) error {
	if err := s.userRepo.Remove(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to remove user: %w", err)
	}
	return nil
}
