package timesheet

import (
	"github.com/k1slee/worktime-tracking/internal/middleware"
	"github.com/k1slee/worktime-tracking/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	timesheets := r.Group("/timesheets")
	timesheets.Use(middleware.AuthMiddleware())
	timesheets.Use(middleware.ContextLogger(logger))
	{
		timesheets.GET("/:id",
			middleware.RBACAuthorize(rbacService, "timesheet", "read"),
			handler.GetById,
		)

		timesheets.POST("",
			middleware.RateLimitByUser(5, 20),
			middleware.Idempotency(rdb),
			middleware.RBACAuthorize(rbacService, "timesheet", "create"),
			handler.Create,
		)

		timesheets.PUT("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "timesheet", "update"),
			handler.Update,
		)

		timesheets.DELETE("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "timesheet", "delete"),
			handler.Delete,
		)

		timesheets.POST("/:id/submit",
			middleware.RBACAuthorize(rbacService, "timesheet", "submit"),
			handler.Submit,
		)

		timesheets.POST("/:id/approve",
			middleware.RBACAuthorize(rbacService, "timesheet", "approve"),
			handler.Approve,
		)

		timesheets.POST("/:id/unapprove",
			middleware.RBACAuthorize(rbacService, "timesheet", "approve"),
			handler.Unapprove,
		)

		timesheets.POST("/bulk-submit",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "timesheet", "submit"),
			handler.BulkSubmit,
		)

		timesheets.POST("/submit-month",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "timesheet", "submit"),
			handler.SubmitMonth,
		)

		timesheets.POST("/bulk-approve",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "timesheet", "approve"),
			handler.BulkApprove,
		)

		timesheets.POST("/quick-edit",
			middleware.RateLimitByUser(10, 30),
			middleware.RBACAuthorize(rbacService, "timesheet", "update"),
			handler.QuickEdit,
		)

		timesheets.POST("/generate-month",
			middleware.RateLimitByUser(0.2, 1),
			middleware.Idempotency(rdb),
			middleware.RBACAuthorize(rbacService, "timesheet", "create"),
			handler.GenerateMonth,
		)

		timesheets.GET("/export",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "export", "read"),
			handler.Export,
		)
	}
}
