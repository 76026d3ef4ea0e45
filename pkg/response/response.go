package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "transaction-coordinator/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, NewOKResp(data))
}

// Error sends the status carried by an *errors.HTTPError, or 500 for anything else.
// Unmapped errors never leak their message to the client.
func Error(c *gin.Context, err error) {
	httpErr, ok := pkgErrors.AsHTTPError(err)
	if !ok {
		InternalError(c, err)
		return
	}

	c.AbortWithStatusJSON(httpErr.Code, Resp{
		ErrorCode: httpErr.Code,
		Message:   httpErr.Message,
	})
}

// BadRequest sends 400 with the validation message.
func BadRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Resp{
		ErrorCode: http.StatusBadRequest,
		Message:   err.Error(),
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, Resp{
		ErrorCode: http.StatusForbidden,
		Message:   "Forbidden",
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   "Too many requests",
	})
}
