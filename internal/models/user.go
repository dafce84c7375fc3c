package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleEmployee UserRole = "employee"
)

// User is the identity record. Email is stored lowercased so the unique
// index enforces case-insensitive uniqueness. PasswordHash is write-only
// and never serialized to clients.
type User struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Name         string         `gorm:"type:varchar(50);not null" json:"name"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	Role         UserRole       `gorm:"type:varchar(20);not null;default:'employee'" json:"role"`
	Phone        string         `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Department   string         `gorm:"type:varchar(50)" json:"department,omitempty"`
	Profile      string         `gorm:"type:varchar(255)" json:"profile,omitempty"`
	IsOnline     bool           `gorm:"not null;default:false" json:"is_online"`
	LastActive   time.Time      `json:"last_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	AssignedTasks []Task       `gorm:"foreignKey:AssignedToID" json:"-"`
	CreatedTasks  []Task       `gorm:"foreignKey:AssignedByID" json:"-"`
	Attendance    []Attendance `gorm:"foreignKey:UserID" json:"-"`
}
