package middleware

import (
	"context"
	"strings"

	"hotel-management/constants"
	"hotel-management/errors"
	"hotel-management/response"
	"hotel-management/services"
	"hotel-management/services/logger"

	"github.com/gin-gonic/gin"
)

// Authenticator xác thực access token và trả về danh tính operator
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*services.Identity, error)
}

// AuthMiddleware xử lý authentication. Token lấy từ header Authorization (Bearer) hoặc cookie access_token.
func AuthMiddleware(auth Authenticator, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			response.Unauthorized(c)
			return
		}

		identity, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			log.WithFields(logger.Fields{
				"path":      c.FullPath(),
				"requestId": c.GetString(constants.ContextRequestIDKey),
			}).Warn("authentication failed: %v", err)
			if errors.HasCode(err, errors.ErrCodeDBError) {
				response.Error(c, err)
				return
			}
			response.Unauthorized(c)
			return
		}

		// Lưu danh tính vào context
		c.Set(constants.ContextIdentityKey, *identity)
		c.Set(constants.ContextOperatorKey, identity.OperatorID)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if header := c.GetHeader(constants.HeaderAuthorization); strings.HasPrefix(header, constants.BearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, constants.BearerPrefix))
	}
	if cookie, err := c.Cookie(constants.AccessTokenCookie); err == nil {
		return cookie
	}
	return ""
}

// CurrentIdentity trả về danh tính đã xác thực của request
func CurrentIdentity(c *gin.Context) (services.Identity, bool) {
	v, ok := c.Get(constants.ContextIdentityKey)
	if !ok {
		return services.Identity{}, false
	}
	identity, ok := v.(services.Identity)
	return identity, ok
}

// Operator trả về operator id của request, rỗng nếu chưa xác thực
func Operator(c *gin.Context) string {
	return c.GetString(constants.ContextOperatorKey)
}

// ErrorHandler trả lỗi cho những handler chỉ gọi c.Error mà chưa ghi response
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			response.Error(c, c.Errors.Last().Err)
		}
	}
}
