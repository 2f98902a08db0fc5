package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nori1432/Laws-sub002/internal/handlers"
	"github.com/nori1432/Laws-sub002/internal/middleware"
	"github.com/nori1432/Laws-sub002/models"
)

// RegisterAPIRoutes registers the authenticated API. Student routes need only
// a session; staff/admin routes sit behind role gates.
func RegisterAPIRoutes(rg *gin.RouterGroup) {
	api := rg.Group("/api")

	api.GET("/me", handlers.MeHandler)
	api.GET("/logout", handlers.LogoutHandler)

	// Student self-service.
	api.POST("/enrollments", handlers.RequestEnrollmentHandler)
	api.GET("/enrollments/mine", handlers.ListMyEnrollmentsHandler)
	api.POST("/attendance/setup/request", handlers.RequestSetupTokenHandler)

	// Staff-visible data.
	staff := api.Group("/", middleware.RequireRole(models.RoleStaff))
	{
		staff.GET("/schedule/grid", handlers.GetScheduleGridHandler)
		staff.GET("/attendance/today", handlers.TodayAttendanceHandler)
		staff.GET("/attendance/feed", handlers.AttendanceFeedHandler)
		staff.GET("/students", handlers.ListStudentsHandler)
		staff.GET("/students/:id", handlers.GetStudentHandler)
		staff.GET("/enrollments", handlers.ListEnrollmentsHandler)
		staff.GET("/payments", handlers.ListPaymentsHandler)
		staff.GET("/export/attendance", handlers.ExportAttendanceHandler)
		staff.GET("/export/enrollments", handlers.ExportEnrollmentsHandler)
	}

	// Admin-only mutations.
	admin := api.Group("/", middleware.RequireRole(models.RoleAdmin))
	{
		admin.POST("/courses", handlers.CreateCourseHandler)
		admin.PUT("/courses/:id", handlers.UpdateCourseHandler)
		admin.DELETE("/courses/:id", handlers.DeleteCourseHandler)

		admin.GET("/sections", handlers.ListSectionsHandler)
		admin.GET("/sections/:id", handlers.GetSectionHandler)
		admin.POST("/sections", handlers.CreateSectionHandler)
		admin.PUT("/sections/:id", handlers.UpdateSectionHandler)
		admin.PATCH("/sections/:id/schedule", handlers.UpdateSectionScheduleHandler)
		admin.DELETE("/sections/:id", handlers.DeleteSectionHandler)
		admin.GET("/schedule/suggest", handlers.SuggestScheduleHandler)

		admin.POST("/students", handlers.CreateStudentHandler)
		admin.PUT("/students/:id", handlers.UpdateStudentHandler)
		admin.POST("/students/:id/barcode", handlers.RegenerateBarcodeHandler)

		admin.POST("/enrollments/:id/approve", handlers.ApproveEnrollmentHandler)
		admin.POST("/enrollments/:id/reject", handlers.RejectEnrollmentHandler)

		admin.POST("/payments", handlers.RecordPaymentHandler)

		admin.POST("/announcements", handlers.CreateAnnouncementHandler)
		admin.PUT("/announcements/:id", handlers.UpdateAnnouncementHandler)
		admin.DELETE("/announcements/:id", handlers.DeleteAnnouncementHandler)
	}
}
