package authControllers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/junaidrashid-git/storefront-api/store"
)

type SignupInput struct {
	Username        string `json:"username" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/signup
func Signup(auth *store.AuthStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Confirm-password and length checks happen before the store is
		// touched, same as the signup form.
		if input.Password != input.ConfirmPassword {
			c.JSON(http.StatusBadRequest, gin.H{"error": store.ErrPasswordMismatch.Error()})
			return
		}
		if len(input.Password) < 6 {
			c.JSON(http.StatusBadRequest, gin.H{"error": store.ErrPasswordTooShort.Error()})
			return
		}

		user, err := auth.Signup(input.Username, input.Password, input.Email)
		if err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}

		token, err := issueSessionToken(user.Username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
	}
}

// POST /auth/login
func Login(auth *store.AuthStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := auth.Login(input.Username, input.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		token, err := issueSessionToken(user.Username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
	}
}

// POST /auth/logout
func Logout(auth *store.AuthStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.Logout()
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

type UpdatePasswordInput struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// PUT /user/password
func UpdatePassword(auth *store.AuthStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdatePasswordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.NewPassword != input.ConfirmPassword {
			c.JSON(http.StatusBadRequest, gin.H{"error": store.ErrPasswordMismatch.Error()})
			return
		}

		if err := auth.UpdatePassword(input.CurrentPassword, input.NewPassword); err != nil {
			status := http.StatusBadRequest
			switch {
			case errors.Is(err, store.ErrNotAuthenticated):
				status = http.StatusUnauthorized
			case errors.Is(err, store.ErrUserNotFound):
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
	}
}

// GET /user/
func GetUser(auth *store.AuthStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser()
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": store.ErrNotAuthenticated.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user, "orders": auth.Orders()})
	}
}

func issueSessionToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
