package monthview

import (
	"github.com/k1slee/worktime-tracking/internal/middleware"
	"github.com/k1slee/worktime-tracking/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, logger *zap.Logger) {
	views := r.Group("/monthview")
	views.Use(middleware.AuthMiddleware())
	views.Use(middleware.ContextLogger(logger))
	{
		views.GET("", middleware.RBACAuthorize(rbacService, "monthview", "read"), h.View)
		views.GET("/print", middleware.RBACAuthorize(rbacService, "monthview", "read"), h.Print)
	}
}
