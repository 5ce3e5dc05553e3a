package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"ktadmin/internal/http/response"
)

const testSecret = "test-secret"

func newGuardedRouter(t *testing.T) (sqlmock.Sqlmock, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	r := gin.New()
	r.GET("/guarded", JWT(gdb, testSecret), func(c *gin.Context) {
		cl := c.MustGet("claims").(*Claims)
		c.String(http.StatusOK, cl.UserID)
	})
	return mock, r
}

func signToken(t *testing.T, userID string, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: userID,
		OrgID:  "org-1",
		Email:  "u@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	signed, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func envelopeCode(t *testing.T, w *httptest.ResponseRecorder) int {
	t.Helper()
	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Code
}

var userCols = []string{"id", "email", "name", "password_hash", "status", "org_id", "created_at", "updated_at"}

func TestJWTMissingToken(t *testing.T) {
	_, r := newGuardedRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/guarded", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, response.CodeUnauthorized, envelopeCode(t, w))
}

func TestJWTExpiredToken(t *testing.T) {
	_, r := newGuardedRouter(t)

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "u1", time.Now().Add(-time.Hour)))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, response.CodeUnauthorized, envelopeCode(t, w))
}

func TestJWTActiveUserPasses(t *testing.T) {
	mock, r := newGuardedRouter(t)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow("u1", "u@example.com", "U", "x", 1, "org-1", now, now))

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "u1", time.Now().Add(time.Hour)))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", w.Body.String())
}

func TestJWTSuspendedUserForbidden(t *testing.T) {
	mock, r := newGuardedRouter(t)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow("u1", "u@example.com", "U", "x", 0, "org-1", now, now))

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "u1", time.Now().Add(time.Hour)))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, response.CodeForbidden, envelopeCode(t, w))
}

func TestJWTCookieFallback(t *testing.T) {
	mock, r := newGuardedRouter(t)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow("u1", "u@example.com", "U", "x", 1, "org-1", now, now))

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: signToken(t, "u1", time.Now().Add(time.Hour))})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
