package config

import (
	"hotel-management/middleware"
	"hotel-management/services/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// InitApp tạo gin engine với CORS và các middleware chung
func InitApp(settings *Settings, log logger.Logger) *gin.Engine {
	if settings.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization", "X-Request-ID")
	configCors.AddExposeHeaders("X-Request-ID")
	configCors.AllowCredentials = true
	if len(settings.CORSOrigins) > 0 {
		configCors.AllowOrigins = settings.CORSOrigins
	} else {
		configCors.AllowOriginFunc = func(origin string) bool {
			return settings.Env != "prod"
		}
	}

	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.RequestLogger(log),
		middleware.MetricsMiddleware(),
		cors.New(configCors),
		middleware.ErrorHandler(),
	)

	_ = router.SetTrustedProxies(nil)
	return router
}
