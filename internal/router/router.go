package router

import (
	"fmt"
	"strings"

	"github.com/crave-wave/cravewave/internal/cache"
	"github.com/crave-wave/cravewave/internal/config"
	publichandlers "github.com/crave-wave/cravewave/internal/http/handlers/public"
	"github.com/crave-wave/cravewave/internal/logger"
	"github.com/crave-wave/cravewave/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires middleware and routes
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "cw"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		Message:       "too many login attempts",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		// Browsing needs no account.
		public := apiV1.Group("/public")
		{
			public.GET("/foods/home-made", publicHandler.ListHomeMadeFoods)
			public.GET("/foods/restaurant", publicHandler.ListRestaurantFoods)
			public.GET("/foods/:source/:id", publicHandler.GetFood)
		}

		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.UserRegister)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.UserLogin)
		}

		user := apiV1.Group("")
		user.Use(UserJWTAuthMiddleware(cfg.UserJWT.SecretKey, c.UserRepo))
		{
			user.POST("/auth/logout", publicHandler.UserLogout)
			user.GET("/me/profile", publicHandler.UserProfile)
			user.PUT("/me/profile", publicHandler.UserProfileUpdate)
			user.PUT("/me/password", publicHandler.UserChangePassword)

			user.GET("/cart", publicHandler.GetCart)
			user.POST("/cart/items", publicHandler.AddCartItem)
			user.PUT("/cart/items/:id", publicHandler.SetCartItemQuantity)
			user.DELETE("/cart/items/:id", publicHandler.RemoveCartItem)

			user.POST("/checkout/begin", publicHandler.BeginCheckout)
			user.POST("/checkout/confirm", publicHandler.ConfirmCheckout)
			user.POST("/checkout/cancel", publicHandler.CancelCheckout)

			user.GET("/orders", publicHandler.ListOrders)
			user.GET("/orders/:ref", publicHandler.GetOrder)
		}
	}

	return r
}
