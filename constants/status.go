package constants

// Cookie chứa access token sau khi login bằng form
const AccessTokenCookie = "access_token"

// Header
const (
	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "X-Request-ID"
	BearerPrefix        = "Bearer "
)

// Key lưu trong gin.Context
const (
	ContextOperatorKey  = "operatorId"
	ContextIdentityKey  = "identity"
	ContextRequestIDKey = "requestId"
)
