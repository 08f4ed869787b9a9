package response

import (
	"net/http"

	"hotel-management/errors"

	"github.com/gin-gonic/gin"
)

// ErrorBody là cấu trúc JSON cho mọi response lỗi
type ErrorBody struct {
	Error  string            `json:"error"`
	Code   errors.ErrorCode  `json:"code,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// HealthBody trả về từ /health
type HealthBody struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Text trả về thông báo dạng text/plain
func Text(c *gin.Context, message string) {
	c.String(http.StatusOK, message)
}

// Success trả về data dạng JSON
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// StatusFor ánh xạ mã lỗi sang HTTP status
func StatusFor(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeNotFound, errors.ErrCodeGuestNotFound, errors.ErrCodeBookingNotFound, errors.ErrCodeReservationNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidState, errors.ErrCodeDBDuplicate, errors.ErrCodeUserExists:
		return http.StatusConflict
	case errors.ErrCodeValidation, errors.ErrCodeRequiredField, errors.ErrCodeInvalidFormat:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeUnauthorized, errors.ErrCodeInvalidToken, errors.ErrCodeMissingToken:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Error ghi lỗi vào context (để middleware log) và trả về JSON tương ứng.
// Lỗi 500 chỉ trả thông báo chung, chi tiết nằm trong log.
func Error(c *gin.Context, err error) {
	_ = c.Error(err)

	appErr := errors.GetAppError(err)
	if appErr == nil {
		ServerError(c)
		return
	}

	status := StatusFor(appErr.Code)
	switch status {
	case http.StatusInternalServerError:
		ServerError(c)
		return
	case http.StatusUnauthorized:
		if appErr.Code != errors.ErrCodeUnauthorized || appErr.Message == "" {
			Unauthorized(c)
			return
		}
	}

	c.AbortWithStatusJSON(status, ErrorBody{
		Error:  appErr.Message,
		Code:   appErr.Code,
		Fields: appErr.Fields,
	})
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorBody{
		Error: "Internal server error",
		Code:  errors.ErrCodeDBError,
	})
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorBody{
		Error: "Unauthorized",
	})
}

// BadRequest trả về lỗi validate với một thông báo
func BadRequest(c *gin.Context, message string) {
	Error(c, errors.NewAppError(errors.ErrCodeValidation, message, nil))
}
