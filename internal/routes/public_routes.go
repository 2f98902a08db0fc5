package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nori1432/Laws-sub002/internal/handlers"
)

// RegisterPublicRoutes registers everything reachable without a session:
// registration and login, the marketing content, the course catalogue, and
// the scanner endpoints (scanners authenticate by device setup, not by user
// session).
func RegisterPublicRoutes(r *gin.Engine) {
	r.POST("/register", handlers.RegisterHandler)
	r.POST("/login", handlers.LoginHandler)

	r.GET("/announcements", handlers.ListAnnouncementsHandler)
	r.GET("/courses", handlers.ListCoursesHandler)
	r.GET("/courses/:id", handlers.GetCourseHandler)

	// Scanner device endpoints. Setup redemption is gated by the one-time
	// token itself; check-in is gated by possession of a valid card barcode.
	r.POST("/api/attendance/setup/redeem", handlers.RedeemSetupTokenHandler)
	r.POST("/api/attendance/checkin", handlers.CheckinHandler)
}
