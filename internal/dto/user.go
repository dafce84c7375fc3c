package dto

import (
	"time"

	"github.com/stafflow/employee-management-api/internal/models"
)

// UserDTO is the sanitized user projection returned to clients. The
// password hash is never part of any response shape.
type UserDTO struct {
	ID         uint64          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Role       models.UserRole `json:"role"`
	Phone      string          `json:"phone,omitempty"`
	Department string          `json:"department,omitempty"`
	Profile    string          `json:"profile,omitempty"`
	IsOnline   bool            `json:"is_online"`
	LastActive time.Time       `json:"last_active"`
}

// StatusDTO is the minimal presence projection for status listings.
type StatusDTO struct {
	ID         uint64    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	IsOnline   bool      `json:"is_online"`
	LastActive time.Time `json:"last_active"`
}

// DirectoryEntryDTO is the employee directory projection.
type DirectoryEntryDTO struct {
	ID         uint64    `json:"id"`
	Name       string    `json:"name"`
	Profile    string    `json:"profile,omitempty"`
	IsOnline   bool      `json:"is_online"`
	LastActive time.Time `json:"last_active"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		Phone:      user.Phone,
		Department: user.Department,
		Profile:    user.Profile,
		IsOnline:   user.IsOnline,
		LastActive: user.LastActive,
	}
}

// ToStatusDTO converts a User model to StatusDTO
func ToStatusDTO(user models.User) StatusDTO {
	return StatusDTO{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		IsOnline:   user.IsOnline,
		LastActive: user.LastActive,
	}
}

// ToDirectoryEntryDTO converts a User model to DirectoryEntryDTO
func ToDirectoryEntryDTO(user models.User) DirectoryEntryDTO {
	return DirectoryEntryDTO{
		ID:         user.ID,
		Name:       user.Name,
		Profile:    user.Profile,
		IsOnline:   user.IsOnline,
		LastActive: user.LastActive,
	}
}

// ToStatusDTOs converts a slice of users
func ToStatusDTOs(users []models.User) []StatusDTO {
	out := make([]StatusDTO, len(users))
	for i, u := range users {
		out[i] = ToStatusDTO(u)
	}
	return out
}

// ToDirectoryEntryDTOs converts a slice of users
func ToDirectoryEntryDTOs(users []models.User) []DirectoryEntryDTO {
	out := make([]DirectoryEntryDTO, len(users))
	for i, u := range users {
		out[i] = ToDirectoryEntryDTO(u)
	}
	return out
}

// ToUserDTOs converts a slice of users
func ToUserDTOs(users []models.User) []UserDTO {
	out := make([]UserDTO, len(users))
	for i, u := range users {
		out[i] = ToUserDTO(u)
	}
	return out
}
