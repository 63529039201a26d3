package api

import (
	"net/http"

	"autoparts-pos/internal/handler/httperr"
	"autoparts-pos/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUsecaseError sends domain validation failures as 400 with the
// domain message as detail. Anything else is a 500.
func abortWithUsecaseError(c *gin.Context, err error) {
	if errs.Is(err, errs.ErrDomainValidation) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.MsgInvalidRequest, err.Error())
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
}
