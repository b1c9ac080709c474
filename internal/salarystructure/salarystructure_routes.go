package salarystructure

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	structures := r.Group("/salary-structures")
	structures.Use(middleware.AuthMiddleware())
	{
		structures.POST("", middleware.RBACAuthorize(rbacService, "salary", "create"), handler.Create)
		structures.GET("", middleware.RBACAuthorize(rbacService, "salary", "read"), handler.GetAll)
		structures.GET("/employee/:employeeId", middleware.RBACAuthorize(rbacService, "salary", "read"), handler.GetHistory)
		structures.GET("/employee/:employeeId/current", middleware.RBACAuthorize(rbacService, "salary", "read"), handler.GetCurrent)
	}
}
