package payrollpolicy

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	policies := r.Group("/payroll-policies")
	policies.Use(middleware.AuthMiddleware())
	{
		policies.POST("", middleware.RBACAuthorize(rbacService, "policy", "create"), handler.Create)
		policies.GET("", middleware.RBACAuthorize(rbacService, "policy", "read"), handler.GetAll)
		policies.GET("/latest", middleware.RBACAuthorize(rbacService, "policy", "read"), handler.GetLatest)
	}
}
