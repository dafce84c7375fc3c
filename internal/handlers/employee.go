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

// EmployeeHandler serves the employee-facing routes: own profile,
// attendance, assigned tasks, and the directory.
type EmployeeHandler struct {
	employeeService   *services.EmployeeService
	taskService       *services.TaskService
	attendanceService *services.AttendanceService
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(employeeService *services.EmployeeService, taskService *services.TaskService, attendanceService *services.AttendanceService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService:   employeeService,
		taskService:       taskService,
		attendanceService: attendanceService,
	}
}

// GetProfile returns the caller's own profile.
func (h *EmployeeHandler) GetProfile(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	user, err := h.employeeService.Profile(userID)
	if err != nil {
		respondEmployeeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// UpdateProfile applies a partial edit to the caller's profile. The
// profile field carries the stored path of an externally uploaded image.
// The response echoes the caller's token, which the client session store
// re-persists alongside the updated user.
func (h *EmployeeHandler) UpdateProfile(c *gin.Context) {
	type UpdateProfileRequest struct {
		Name       string `json:"name"`
		Phone      string `json:"phone"`
		Department string `json:"department"`
		Profile    string `json:"profile"`
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	userID, _ := middleware.GetUserID(c)

	user, err := h.employeeService.UpdateProfile(userID, services.UpdateProfileInput{
		Name:       req.Name,
		Phone:      req.Phone,
		Department: req.Department,
		Profile:    req.Profile,
	})
	if err != nil {
		respondEmployeeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    dto.ToUserDTO(*user),
		"token":   bearerToken(c),
	})
}

// CheckAttendance reports whether the caller already marked today.
func (h *EmployeeHandler) CheckAttendance(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	marked, err := h.attendanceService.CheckToday(userID)
	if err != nil {
		apierrors.InternalError(c, "Error checking attendance")
		return
	}

	c.JSON(http.StatusOK, gin.H{"marked": marked})
}

// MarkAttendance records today's attendance. A repeat mark on the same
// day answers with a conflict, never a storage error.
func (h *EmployeeHandler) MarkAttendance(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	record, err := h.attendanceService.Mark(userID)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyMarked) {
			apierrors.Conflict(c, "Attendance already marked today")
			return
		}
		apierrors.InternalError(c, "Error marking attendance")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Attendance marked successfully",
		"attendance": dto.ToAttendanceDTO(*record),
	})
}

// ListMyTasks returns the caller's assigned tasks.
func (h *EmployeeHandler) ListMyTasks(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	tasks, err := h.taskService.ListForAssignee(userID)
	if err != nil {
		apierrors.InternalError(c, "Error fetching tasks")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// CompleteTask marks one of the caller's tasks completed.
func (h *EmployeeHandler) CompleteTask(c *gin.Context) {
	h.setTaskStatus(c, h.taskService.Complete)
}

// UndoTask returns one of the caller's tasks to pending.
func (h *EmployeeHandler) UndoTask(c *gin.Context) {
	h.setTaskStatus(c, h.taskService.Undo)
}

// Directory lists a page of everyone with presence, online first.
func (h *EmployeeHandler) Directory(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users, total, err := h.employeeService.Directory(params)
	if err != nil {
		apierrors.InternalError(c, "Error fetching employee directory")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"directory": dto.ToDirectoryEntryDTOs(users),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

func (h *EmployeeHandler) setTaskStatus(c *gin.Context, apply func(taskID, userID uint64) (*models.Task, error)) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task id")
		return
	}

	userID, _ := middleware.GetUserID(c)

	task, err := apply(taskID, userID)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.InternalError(c, "Error updating task")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

func respondEmployeeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "Employee not found")
	case errors.Is(err, services.ErrInvalidPhone):
		apierrors.BadRequest(c, "Please fill a valid phone number")
	default:
		apierrors.InternalError(c, "")
	}
}

func bearerToken(c *gin.Context) string {
	const prefix = "Bearer "
	header := c.GetHeader("Authorization")
	if len(header) > len(prefix) {
		return header[len(prefix):]
	}
	return ""
}
