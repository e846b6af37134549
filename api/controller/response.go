package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stagearchive/catalogue/domain"
)

// ErrorResponse 统一错误结构 {code, message}
func ErrorResponse(ctx *gin.Context, status int, code, message string) {
	ctx.AbortWithStatusJSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}

// SuccessResponse 统一成功结构 {<key>: data, count}
func SuccessResponse(ctx *gin.Context, key string, data interface{}, count int) {
	ctx.JSON(http.StatusOK, gin.H{
		key:     data,
		"count": count,
	})
}

// CreatedResponse 与 SuccessResponse 相同结构，状态码 201
func CreatedResponse(ctx *gin.Context, key string, data interface{}) {
	ctx.JSON(http.StatusCreated, gin.H{
		key:     data,
		"count": 1,
	})
}

// HandleError 按错误分类映射 HTTP 状态码
func HandleError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		ErrorResponse(ctx, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrInvalidID), errors.Is(err, domain.ErrValidation):
		ErrorResponse(ctx, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		ErrorResponse(ctx, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	case errors.Is(err, domain.ErrForbidden):
		ErrorResponse(ctx, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, domain.ErrUploadFailure):
		ErrorResponse(ctx, http.StatusUnprocessableEntity, "UPLOAD_FAILED", err.Error())
	default:
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
	}
}
