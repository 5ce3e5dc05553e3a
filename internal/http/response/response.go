package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform wrapper every API response is carried in.
// Code 0 means success; anything else is an application-level failure the
// caller interprets.
type Envelope struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

const (
	CodeOK            = 0
	CodeInvalidParams = 40001
	CodeUnauthorized  = 40100
	CodeForbidden     = 40300
	CodeNotFound      = 40400
	CodeServerError   = 50000
)

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Code: CodeOK, Msg: "ok", Data: data})
}

// Fail reports an application-level failure inside a successfully
// transported response.
func Fail(c *gin.Context, code int, msg string) {
	c.JSON(http.StatusOK, Envelope{Code: code, Msg: msg})
}

// Abort ends the request with a transport-level status, still carrying the
// envelope so callers see one shape everywhere.
func Abort(c *gin.Context, status, code int, msg string) {
	c.AbortWithStatusJSON(status, Envelope{Code: code, Msg: msg})
}
