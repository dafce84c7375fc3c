package dto

import (
	"time"

	"github.com/stafflow/employee-management-api/internal/models"
)

// AssigneeDTO is the compact user projection embedded in task responses.
type AssigneeDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID           uint64            `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Status       models.TaskStatus `json:"status"`
	AssignedToID uint64            `json:"assigned_to_id"`
	AssignedByID uint64            `json:"assigned_by_id"`
	AssignedTo   *AssigneeDTO      `json:"assigned_to,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		Status:       task.Status,
		AssignedToID: task.AssignedToID,
		AssignedByID: task.AssignedByID,
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
	}

	// Include assignee if preloaded
	if task.AssignedTo.ID != 0 {
		dto.AssignedTo = &AssigneeDTO{
			ID:    task.AssignedTo.ID,
			Name:  task.AssignedTo.Name,
			Email: task.AssignedTo.Email,
		}
	}

	return dto
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	out := make([]TaskDTO, len(tasks))
	for i, t := range tasks {
		out[i] = ToTaskDTO(t)
	}
	return out
}

