package routes

import (
	"github.com/gin-gonic/gin"
	authControllers "github.com/junaidrashid-git/storefront-api/controllers/auth"
)

// SetupAuthRoutes registers the public "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", authControllers.Signup(deps.Auth)) // POST /auth/signup
		authGroup.POST("/login", authControllers.Login(deps.Auth))   // POST /auth/login
		authGroup.POST("/logout", authControllers.Logout(deps.Auth)) // POST /auth/logout
	}
}
