package benefit

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	benefits := r.Group("/benefits")
	benefits.Use(middleware.AuthMiddleware())
	{
		benefits.POST("", middleware.RBACAuthorize(rbacService, "benefit", "create"), handler.Create)
		benefits.GET("/employee/:employeeId", middleware.RBACAuthorize(rbacService, "benefit", "read"), handler.GetByEmployee)
		benefits.PUT("/:id", middleware.RBACAuthorize(rbacService, "benefit", "update"), handler.Update)
		benefits.DELETE("/:id", middleware.RBACAuthorize(rbacService, "benefit", "delete"), handler.Delete)
	}
}
