package routes

import (
	"net/http"

	"hotel-management/controllers"
	_ "hotel-management/docs"
	"hotel-management/middleware"
	"hotel-management/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies gom những gì router cần để dựng các controller
type Dependencies struct {
	Hotel  controllers.HotelAPI
	Auth   controllers.AuthAPI
	Tokens middleware.Authenticator
	Health map[string]controllers.Pinger
	Logger logger.Logger

	CookieSecure bool
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	hotelController := controllers.NewHotelController(deps.Hotel)
	authController := controllers.NewAuthController(deps.Auth, deps.CookieSecure)
	healthController := controllers.NewHealthController(deps.Health)

	// open
	router.PUT("/user/register", authController.Register)
	router.POST("/login", authController.Login)
	router.GET("/health", healthController.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	auth := router.Group("/", middleware.AuthMiddleware(deps.Tokens, deps.Logger))
	auth.POST("/logout", authController.Logout)

	auth.GET("/guests", hotelController.GetAllGuests)
	auth.GET("/bookings", hotelController.GetAllBookings)
	auth.GET("/guests/check-in-today", hotelController.GetCheckInToday)
	auth.GET("/guests/stay", hotelController.GetStaying)
	auth.GET("/guests/check-out-today", hotelController.GetCheckOutToday)
	auth.GET("/guest/:id", hotelController.GetGuest)
	auth.GET("/reservation/:id", hotelController.GetReservation)
	auth.POST("/guest/search", hotelController.SearchGuests)
	auth.POST("/guest/match", hotelController.MatchGuest)

	auth.PUT("/guest/register", hotelController.RegisterGuest)
	auth.PUT("/booking/register", hotelController.RegisterBooking)
	auth.PUT("/guest/update", hotelController.UpdateGuest)
	auth.PUT("/reservation/update", hotelController.UpdateReservation)
	auth.PUT("/guest/delete", hotelController.DeleteGuest)
	auth.PUT("/guest/checkIn", hotelController.CheckIn)
	auth.PUT("/checkOut", hotelController.CheckOut)
}
