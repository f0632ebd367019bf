package util

import (
	"errors"
	"net/http"

	"github.com/AtharvaZ/Portfolio-website/internal/apperr"

	"github.com/gin-gonic/gin"
)

// Response 通用返回结构里的 data 使用 map
type Response map[string]interface{}

// Success 统一成功返回: {"success": true, ...fields}，与旧前端约定一致
func Success(c *gin.Context, data Response) {
	body := gin.H{"success": true}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Error 统一错误返回: {"detail": msg}
func Error(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, gin.H{"detail": msg})
}

// ErrorFrom maps a domain error kind to its transport status:
// Unauthorized → 401, NotFound → 404, Validation → 400, everything
// else (configuration, storage, decode, delivery) → 500.
func ErrorFrom(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrUnauthorized):
		Error(c, http.StatusUnauthorized, userMessage(err))
	case errors.Is(err, apperr.ErrNotFound):
		Error(c, http.StatusNotFound, userMessage(err))
	case errors.Is(err, apperr.ErrValidation):
		Error(c, http.StatusBadRequest, userMessage(err))
	default:
		Error(c, http.StatusInternalServerError, userMessage(err))
	}
}

// userMessage flattens an error for the response body. Storage causes
// stay server-side; the client only sees the generic kind.
func userMessage(err error) string {
	if errors.Is(err, apperr.ErrStorage) {
		return apperr.ErrStorage.Error()
	}
	return err.Error()
}
