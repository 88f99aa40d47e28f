package calendar

import (
	"github.com/k1slee/worktime-tracking/internal/middleware"
	"github.com/k1slee/worktime-tracking/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	holidays := r.Group("/holidays")
	holidays.Use(middleware.AuthMiddleware())
	{
		holidays.GET("", middleware.RBACAuthorize(rbacService, "holiday", "read"), h.ListYear)
		holidays.POST("/import", middleware.RBACAuthorize(rbacService, "holiday", "create"), h.Import)
	}
}
