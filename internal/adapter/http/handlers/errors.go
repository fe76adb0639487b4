package handlers

import (
	"errors"
	"io"
	"net/http"

	"parlamento/pkg"
	"parlamento/pkg/logger"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request body", http.StatusBadRequest)
	errInvalidID      = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid id", http.StatusBadRequest)
)

// bindJSON decodes the body into dst. A missing body leaves dst empty, as if
// "{}" had been sent.
func bindJSON(c *gin.Context, dst interface{}) error {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return nil
	}
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Recovery answers a recovered panic with the usual error body.
func Recovery(log *logger.Logger) gin.RecoveryFunc {
	return func(c *gin.Context, recovered interface{}) {
		log.Error("[app][handler] recovered from panic", "panic", recovered, "path", c.Request.URL.Path)
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func validationError(err error) *pkg.AppError {
	return pkg.NewDomainError("VALIDATION_FAILED", err.Error(), err, http.StatusBadRequest)
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
