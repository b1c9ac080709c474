package timesheet

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	timesheets := r.Group("/timesheets")
	timesheets.Use(middleware.AuthMiddleware())
	{
		timesheets.POST("", middleware.RBACAuthorize(rbacService, "timesheet", "create"), handler.Submit)
		timesheets.PUT("/:id", middleware.RBACAuthorize(rbacService, "timesheet", "update"), handler.Update)
		timesheets.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "timesheet", "approve"), handler.Approve)
		timesheets.GET("/employee/:employeeId", middleware.RBACAuthorize(rbacService, "timesheet", "read"), handler.GetByEmployee)
		timesheets.GET("/employee/:employeeId/overtime-preview", middleware.RBACAuthorize(rbacService, "timesheet", "read"), handler.OvertimePreview)
	}
}
