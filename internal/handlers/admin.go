package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stafflow/employee-management-api/internal/dto"
	apierrors "github.com/stafflow/employee-management-api/internal/errors"
	"github.com/stafflow/employee-management-api/internal/middleware"
	"github.com/stafflow/employee-management-api/internal/models"
	"github.com/stafflow/employee-management-api/internal/services"
	"github.com/stafflow/employee-management-api/internal/utils"
)

// AdminHandler serves the admin routes: task assignment and editing,
// employee management, attendance review, and presence overview.
type AdminHandler struct {
	taskService       *services.TaskService
	employeeService   *services.EmployeeService
	attendanceService *services.AttendanceService
	presenceService   *services.PresenceService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(taskService *services.TaskService, employeeService *services.EmployeeService, attendanceService *services.AttendanceService, presenceService *services.PresenceService) *AdminHandler {
	return &AdminHandler{
		taskService:       taskService,
		employeeService:   employeeService,
		attendanceService: attendanceService,
		presenceService:   presenceService,
	}
}

// CreateTask assigns a new task to an employee.
func (h *AdminHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		Title        string `json:"title" binding:"required"`
		Description  string `json:"description"`
		AssignedToID uint64 `json:"assigned_to_id" binding:"required"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	adminID, _ := middleware.GetUserID(c)

	task, err := h.taskService.Create(services.CreateTaskInput{
		Title:        req.Title,
		Description:  req.Description,
		AssignedToID: req.AssignedToID,
		AssignedByID: adminID,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask applies a full admin edit to a task.
func (h *AdminHandler) UpdateTask(c *gin.Context) {
	type UpdateTaskRequest struct {
		Title        *string            `json:"title"`
		Description  *string            `json:"description"`
		Status       *models.TaskStatus `json:"status"`
		AssignedToID *uint64            `json:"assigned_to_id"`
	}

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task id")
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Update(taskID, services.UpdateTaskInput{
		Title:        req.Title,
		Description:  req.Description,
		Status:       req.Status,
		AssignedToID: req.AssignedToID,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask removes a task.
func (h *AdminHandler) DeleteTask(c *gin.Context) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task id")
		return
	}

	if err := h.taskService.Delete(taskID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

// ListEmployees lists a page of employee accounts.
func (h *AdminHandler) ListEmployees(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users, total, err := h.employeeService.ListEmployees(params)
	if err != nil {
		apierrors.InternalError(c, "Error fetching employees")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"employees": dto.ToUserDTOs(users),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetEmployee returns one employee's profile.
func (h *AdminHandler) GetEmployee(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid employee id")
		return
	}

	user, err := h.employeeService.Profile(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, "Employee not found")
			return
		}
		apierrors.InternalError(c, "Error fetching profile")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// RemoveEmployee hard-deletes a user account.
func (h *AdminHandler) RemoveEmployee(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid employee id")
		return
	}

	if err := h.employeeService.Remove(userID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, "User not found")
			return
		}
		apierrors.InternalError(c, "Error removing user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// EmployeeAttendance returns one employee's trailing 30 days of attendance.
func (h *AdminHandler) EmployeeAttendance(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid employee id")
		return
	}

	records, err := h.attendanceService.History(userID)
	if err != nil {
		apierrors.InternalError(c, "Error fetching attendance")
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendanceDTOs(records))
}

// CompletedTasks lists a page of completed tasks with assignees.
func (h *AdminHandler) CompletedTasks(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	tasks, total, err := h.taskService.CompletedTasks(params)
	if err != nil {
		apierrors.InternalError(c, "Error fetching completed tasks")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": dto.ToTaskDTOs(tasks),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// Statuses lists a page of employee presence.
func (h *AdminHandler) Statuses(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users, total, err := h.presenceService.Statuses(params)
	if err != nil {
		apierrors.InternalError(c, "Error fetching statuses")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"statuses": dto.ToStatusDTOs(users),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	case errors.Is(err, services.ErrTitleRequired):
		apierrors.BadRequest(c, "Title is required")
	case errors.Is(err, services.ErrInvalidAssignee):
		apierrors.BadRequest(c, "Assignee does not exist or is not an employee")
	case errors.Is(err, services.ErrInvalidStatus):
		apierrors.BadRequest(c, "Status must be pending or completed")
	default:
		apierrors.InternalError(c, "")
	}
}
