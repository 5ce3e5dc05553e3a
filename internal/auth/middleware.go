package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"ktadmin/internal/http/response"
	"ktadmin/internal/models"
)

// Claims represents the JWT claims structure.
type Claims struct {
	UserID string `json:"uid"`
	OrgID  string `json:"oid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWT returns a Gin middleware that validates JWT tokens from
// either the Authorization header or a "token" cookie and verifies
// that the user is still active in the database.
func JWT(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.GetHeader("Authorization")

		// Fallback: read from cookie if no Authorization header
		if tokenStr == "" {
			if cookie, err := c.Cookie("token"); err == nil {
				tokenStr = "Bearer " + cookie
			}
		}

		if tokenStr == "" {
			response.Abort(c, http.StatusUnauthorized, response.CodeUnauthorized, "missing bearer token")
			return
		}

		// Trim "Bearer " prefix
		tokenStr = strings.TrimPrefix(tokenStr, "Bearer ")
		tokenStr = strings.TrimSpace(tokenStr)

		// Parse the JWT
		token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			response.Abort(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid or expired token")
			return
		}

		claims, ok := token.Claims.(*Claims)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid claims")
			return
		}

		// Verify user still exists and is active
		var user models.User
		if err := db.First(&user, "id = ?", claims.UserID).Error; err != nil {
			response.Abort(c, http.StatusUnauthorized, response.CodeUnauthorized, "user not found")
			return
		}
		if user.Status != models.UserActive {
			response.Abort(c, http.StatusForbidden, response.CodeForbidden, "account suspended")
			return
		}

		// Set claims in context and proceed
		c.Set("claims", claims)
		c.Next()
	}
}
