package repository

import (
	"github.com/stafflow/employee-management-api/internal/database"
	"github.com/stafflow/employee-management-api/internal/models"
	"github.com/stafflow/employee-management-api/internal/utils"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(id uint64, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&task, id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// Update updates a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete soft deletes a task
func (r *GormTaskRepository) Delete(id uint64) error {
	result := r.db.Delete(&models.Task{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByAssignee lists tasks assigned to a user, newest first
func (r *GormTaskRepository) ListByAssignee(userID uint64) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Where("assigned_to_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListByStatus lists one page of tasks in a status with the assignee preloaded
func (r *GormTaskRepository) ListByStatus(status models.TaskStatus, params utils.PaginationParams) ([]models.Task, int64, error) {
	var total int64
	if err := r.db.Model(&models.Task{}).
		Where("status = ?", status).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []models.Task
	if err := r.db.Preload("AssignedTo").
		Where("status = ?", status).
		Order("updated_at DESC").
		Scopes(database.Paginate(params)).
		Find(&tasks).Error; err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

// SetStatusForAssignee flips a task's status, scoped to its assignee so an
// employee can never touch someone else's task. A miss (wrong assignee or
// no such task) is reported as gorm.ErrRecordNotFound.
func (r *GormTaskRepository) SetStatusForAssignee(taskID, userID uint64, status models.TaskStatus) (*models.Task, error) {
	var task models.Task
	if err := r.db.Where("id = ? AND assigned_to_id = ?", taskID, userID).
		First(&task).Error; err != nil {
		return nil, err
	}

	task.Status = status
	if err := r.db.Save(&task).Error; err != nil {
		return nil, err
	}

	return &task, nil
}
