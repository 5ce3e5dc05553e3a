package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ktadmin/internal/auth"
	"ktadmin/internal/http/response"
	"ktadmin/internal/models"
)

// LoginHandler authenticates the user and returns JWT
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			response.Fail(c, response.CodeInvalidParams, err.Error())
			return
		}

		var user models.User
		if err := db.Where("email = ?", in.Email).First(&user).Error; err != nil {
			response.Fail(c, response.CodeUnauthorized, "invalid email or password")
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
			response.Fail(c, response.CodeUnauthorized, "invalid email or password")
			return
		}
		if user.Status != models.UserActive {
			response.Fail(c, response.CodeForbidden, "account suspended")
			return
		}

		// Generate JWT
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"uid":   user.ID,
			"oid":   user.OrgID,
			"email": user.Email,
			"exp":   time.Now().Add(24 * time.Hour).Unix(),
		})
		tokenString, err := token.SignedString([]byte(jwtSecret))
		if err != nil {
			response.Fail(c, response.CodeServerError, "failed to create token")
			return
		}

		// Set JWT as cookie (browser will send it automatically)
		c.SetCookie(
			"token",     // name
			tokenString, // value
			3600*24,     // expires in 1 day
			"/",         // path
			"",          // domain (same origin)
			false,       // secure (false for localhost; true for HTTPS)
			true,        // HttpOnly
		)

		// Also return token in JSON (for Postman or JS use)
		response.OK(c, gin.H{
			"token": tokenString,
			"user": gin.H{
				"id":    user.ID,
				"email": user.Email,
				"name":  user.Name,
				"orgId": user.OrgID,
			},
		})
	}
}

// Me returns the currently authenticated user with roles.
func Me(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsI, ok := c.Get("claims")
		if !ok {
			response.Fail(c, response.CodeUnauthorized, "unauthorized")
			return
		}
		cl := claimsI.(*auth.Claims)

		var user models.User
		if err := db.Preload("Roles").
			Where("id = ? AND org_id = ?", cl.UserID, cl.OrgID).
			First(&user).Error; err != nil {
			response.Fail(c, response.CodeNotFound, "user not found")
			return
		}
		response.OK(c, user)
	}
}
