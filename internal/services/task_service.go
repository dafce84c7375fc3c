package services

import (
	"errors"
	"fmt"

	"github.com/stafflow/employee-management-api/internal/models"
	"github.com/stafflow/employee-management-api/internal/repository"
	"github.com/stafflow/employee-management-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidAssignee = errors.New("assignee does not exist or is not an employee")
	ErrInvalidStatus   = errors.New("invalid task status")
)

// TaskService handles task business logic.
type TaskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

// CreateTaskInput represents input for creating a task.
type CreateTaskInput struct {
	Title        string
	Description  string
	AssignedToID uint64
	AssignedByID uint64
}

// Create creates a task assigned to an employee.
func (s *TaskService) Create(input CreateTaskInput) (*models.Task, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}

	assignee, err := s.userRepo.FindByID(input.AssignedToID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidAssignee
		}
		return nil, fmt.Errorf("failed to verify assignee: %w", err)
	}
	if assignee.Role != models.RoleEmployee {
		return nil, ErrInvalidAssignee
	}

	task := &models.Task{
		Title:        input.Title,
		Description:  input.Description,
		Status:       models.TaskStatusPending,
		AssignedToID: input.AssignedToID,
		AssignedByID: input.AssignedByID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.taskRepo.FindByID(task.ID, "AssignedTo")
}

// UpdateTaskInput represents a full admin edit; nil fields are unchanged.
type UpdateTaskInput struct {
	Title        *string
	Description  *string
	Status       *models.TaskStatus
	AssignedToID *uint64
}

// Update applies an admin edit to a task.
func (s *TaskService) Update(taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, ErrTitleRequired
		}
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		if *input.Status != models.TaskStatusPending && *input.Status != models.TaskStatusCompleted {
			return nil, ErrInvalidStatus
		}
		task.Status = *input.Status
	}
	if input.AssignedToID != nil {
		assignee, err := s.userRepo.FindByID(*input.AssignedToID)
		if err != nil || assignee.Role != models.RoleEmployee {
			return nil, ErrInvalidAssignee
		}
		task.AssignedToID = *input.AssignedToID
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.taskRepo.FindByID(task.ID, "AssignedTo")
}

// Delete removes a task.
func (s *TaskService) Delete(taskID uint64) error {
	if err := s.taskRepo.Delete(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// ListForAssignee returns the tasks assigned to a user.
func (s *TaskService) ListForAssignee(userID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByAssignee(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Complete marks a task completed. The update is scoped to the assignee:
// a task owned by someone else looks like a missing task.
func (s *TaskService) Complete(taskID, userID uint64) (*models.Task, error) {
	return s.setStatus(taskID, userID, models.TaskStatusCompleted)
}

// Undo returns a completed task to pending, same assignee scoping.
func (s *TaskService) Undo(taskID, userID uint64) (*models.Task, error) {
	return s.setStatus(taskID, userID, models.TaskStatusPending)
}

func (s *TaskService) setStatus(taskID, userID uint64, status models.TaskStatus) (*models.Task, error) {
	task, err := s.taskRepo.SetStatusForAssignee(taskID, userID, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}
	return task, nil
}

// CompletedTasks returns a page of completed tasks with assignees
// preloaded, plus the total count of completed tasks.
func (s *TaskService) CompletedTasks(params utils.PaginationParams) ([]models.Task, int64, error) {
	tasks, total, err := s.taskRepo.ListByStatus(models.TaskStatusCompleted, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list completed tasks: %w", err)
	}
	return tasks, total, nil
}
