package user

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("", middleware.RBACAuthorize(rbacService, "user", "read"), handler.GetAll)
		users.GET("/:id", middleware.RBACAuthorize(rbacService, "user", "read"), handler.GetByID)
		users.POST("", middleware.RBACAuthorize(rbacService, "user", "create"), handler.Create)
		users.POST("/:id/roles", middleware.RBACAuthorize(rbacService, "user", "update"), handler.AssignRole)
		users.PATCH("/:id/status", middleware.RBACAuthorize(rbacService, "user", "update"), handler.ToggleStatus)
		users.POST("/:id/reset-password", middleware.RBACAuthorize(rbacService, "user", "update"), handler.ForceResetPassword)
		users.POST("/change-password", handler.ChangePassword)
	}
}
