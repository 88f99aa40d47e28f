package app

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/k1slee/worktime-tracking/internal/auth"
	"github.com/k1slee/worktime-tracking/internal/calendar"
	"github.com/k1slee/worktime-tracking/internal/department"
	"github.com/k1slee/worktime-tracking/internal/employee"
	"github.com/k1slee/worktime-tracking/internal/messaging/kafka"
	"github.com/k1slee/worktime-tracking/internal/monthview"
	"github.com/k1slee/worktime-tracking/internal/rbac"
	"github.com/k1slee/worktime-tracking/internal/rbac/infra"
	"github.com/k1slee/worktime-tracking/internal/shared/counter"
	"github.com/k1slee/worktime-tracking/internal/timesheet"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	holidayRepo := calendar.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	timesheetRepo := timesheet.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(
		filepath.Join("internal", "rbac", "infra", "model.conf"),
		filepath.Join("internal", "rbac", "infra", "policy.csv"),
	)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)

	// --- Services ---
	authService := auth.NewService(authRepo, logger)
	if err := authService.EnsureAdmin(
		context.Background(),
		os.Getenv("ADMIN_USERNAME"),
		os.Getenv("ADMIN_PASSWORD"),
	); err != nil {
		return err
	}
	calendarService := calendar.NewService(holidayRepo, logger)
	departmentService := department.NewService(db, departmentRepo, rdb, logger)
	employeeService := employee.NewService(db, employeeRepo, counterRepo, rdb, logger)
	timesheetService := timesheet.NewService(db, timesheetRepo, employeeRepo, calendarService, outboxRepo, authRepo, logger)
	monthviewService := monthview.NewService(timesheetRepo, employeeRepo, calendarService, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	calendarHandler := calendar.NewHandler(calendarService)
	departmentHandler := department.NewHandler(departmentService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	timesheetHandler := timesheet.NewHandler(timesheetService, logger)
	monthviewHandler := monthview.NewHandler(monthviewService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, rbacService)
		calendar.RegisterRoutes(api, calendarHandler, rbacService)
		department.RegisterRoutes(api, departmentHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		timesheet.RegisterRoutes(api, timesheetHandler, rbacService, rdb, logger)
		monthview.RegisterRoutes(api, monthviewHandler, rbacService, logger)
	}

	return nil
}
