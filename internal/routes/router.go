package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nori1432/Laws-sub002/internal/middleware"
)

// SetupRoutes registers every route of the application. Public routes first,
// then the authenticated group behind the JWT middleware.
func SetupRoutes(r *gin.Engine) {
	RegisterPublicRoutes(r)

	authRequired := r.Group("/")
	authRequired.Use(middleware.AuthMiddleware())
	{
		RegisterAPIRoutes(authRequired)
	}
}
