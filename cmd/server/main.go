package main

import (
	"github.com/gin-gonic/gin"
	"github.com/stafflow/employee-management-api/internal/config"
	"github.com/stafflow/employee-management-api/internal/database"
	"github.com/stafflow/employee-management-api/internal/handlers"
	"github.com/stafflow/employee-management-api/internal/logging"
	"github.com/stafflow/employee-management-api/internal/middleware"
	"github.com/stafflow/employee-management-api/internal/models"
	"github.com/stafflow/employee-management-api/internal/repository"
	"github.com/stafflow/employee-management-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger := logging.New(cfg.Environment)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Tokens are useless without a signing secret; refuse to start.
	tokenService, err := services.NewTokenService(cfg.JWTSecret)
	if err != nil {
		logger.Fatal().Err(err).Msg("token service configuration error")
	}

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	db := database.GetDB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)

	// Services
	presenceService := services.NewPresenceService(userRepo)
	authService := services.NewAuthService(userRepo, tokenService, presenceService, logger)
	taskService := services.NewTaskService(taskRepo, userRepo)
	attendanceService := services.NewAttendanceService(attendanceRepo)
	employeeService := services.NewEmployeeService(userRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, presenceService, logger)
	employeeHandler := handlers.NewEmployeeHandler(employeeService, taskService, attendanceService)
	adminHandler := handlers.NewAdminHandler(taskService, employeeService, attendanceService, presenceService)

	// Initialize Gin router
	r := gin.New()
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Employee Management API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.PATCH("/online-status", middleware.RequireAuth(tokenService, userRepo), authHandler.UpdateOnlineStatus)
		}

		// Employee routes (protected)
		employee := api.Group("/employee")
		employee.Use(middleware.RequireAuth(tokenService, userRepo), middleware.RequireRole(models.RoleEmployee))
		{
			employee.GET("/profile", employeeHandler.GetProfile)
			employee.PUT("/profile", employeeHandler.UpdateProfile)
			employee.GET("/attendance/check", employeeHandler.CheckAttendance)
			employee.POST("/attendance", employeeHandler.MarkAttendance)
			employee.GET("/tasks", employeeHandler.ListMyTasks)
			employee.PUT("/tasks/:id/complete", employeeHandler.CompleteTask)
			employee.PUT("/tasks/:id/undo", employeeHandler.UndoTask)
			employee.GET("/directory", employeeHandler.Directory)
		}

		// Admin routes (protected)
		admin := api.Group("/admin")
		admin.Use(middleware.RequireAuth(tokenService, userRepo), middleware.RequireRole(models.RoleAdmin))
		{
			admin.POST("/tasks", adminHandler.CreateTask)
			admin.PUT("/tasks/:id", adminHandler.UpdateTask)
			admin.DELETE("/tasks/:id", adminHandler.DeleteTask)
			admin.GET("/employees", adminHandler.ListEmployees)
			admin.GET("/employees/:id", adminHandler.GetEmployee)
			admin.DELETE("/employees/:id", adminHandler.RemoveEmployee)
			admin.GET("/employees/:id/attendance", adminHandler.EmployeeAttendance)
			admin.GET("/completed-tasks", adminHandler.CompletedTasks)
			admin.GET("/status", adminHandler.Statuses)
		}
	}

	// Start server
	logger.Info().Str("addr", cfg.ListenAddr).Msg("server starting")
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
