package response

import (
	"Amity/internal/api/dto"
	"Amity/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Success 成功返回封装
func Success(ctx *gin.Context, message string, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Response{
		Code:    service.CodeOK,
		Message: message,
		Data:    data,
	})
}

// Created 创建成功返回封装
func Created(ctx *gin.Context, message string, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Response{
		Code:    service.CodeCreated,
		Message: message,
		Data:    data,
	})
}

// NoContent 无响应体
func NoContent(ctx *gin.Context) {
	ctx.Status(http.StatusNoContent)
}

// Fail 失败返回封装
func Fail(c *gin.Context, status int, businessCode int, message string, data interface{}) {
	c.JSON(status, dto.Response{
		Code:    businessCode,
		Message: message,
		Data:    data,
	})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, http.StatusBadRequest, service.CodeBadRequest, service.ErrInvalidRequest.Error(), nil)
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, http.StatusBadRequest, service.CodeBadRequest, service.ErrInvalidRequest.Error(), nil)
		return
	}

	ec, ok := service.ErrorMap[err]
	if !ok {
		log.ErrorContext(c.Request.Context(), "Unhandled Error",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"err", err,
		)
		Fail(c, http.StatusInternalServerError, service.CodeServerError, "请求处理失败", nil)
		return
	}
	Fail(c, ec.Status, ec.Code, err.Error(), nil)
}
