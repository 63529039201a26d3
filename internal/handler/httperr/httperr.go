package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	MsgInvalidRequest = "Invalid request"
	MsgInternal       = "Internal error"
	MsgInternalServer = "Internal server error"
)

// Response is the JSON error envelope every endpoint answers with.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// AbortWithError answers with the envelope and keeps err on the gin context
// so the error middleware can log it.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortInvalidRequest is the 400 used for bodies or parameters that do not bind.
func AbortInvalidRequest(c *gin.Context, err error) {
	AbortWithError(c, http.StatusBadRequest, err, MsgInvalidRequest, nil)
}
