package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the uniform envelope. Data is omitted when absent.
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

// Success writes a successful envelope carrying data.
func Success[T any](ctx *gin.Context, status int, data T, message string) APIResponse[T] {
	if status == 0 {
		status = http.StatusOK
	}
	resp := APIResponse[T]{Success: true, Message: message, Data: data}
	ctx.JSON(status, resp)
	return resp
}

// SuccessWithoutData writes a successful envelope without a data field.
func SuccessWithoutData(ctx *gin.Context, status int, message string) APIResponse[any] {
	if status == 0 {
		status = http.StatusOK
	}
	resp := APIResponse[any]{Success: true, Message: message}
	ctx.JSON(status, resp)
	return resp
}

// Error writes a failed envelope and aborts the handler chain. details, when not nil,
// is sent as data.
func Error(ctx *gin.Context, status int, message string, details any) APIResponse[any] {
	if status == 0 {
		status = http.StatusBadRequest
	}
	resp := APIResponse[any]{Success: false, Message: message, Data: details}
	ctx.AbortWithStatusJSON(status, resp)
	return resp
}
