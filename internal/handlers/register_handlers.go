package handlers

import (
	"github.com/arsipku/arsip_backend/cmd/docs"
	portssvc "github.com/arsipku/arsip_backend/internal/core/ports/services"
	"github.com/arsipku/arsip_backend/internal/middleware"
	"github.com/arsipku/arsip_backend/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// using the service interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	// Session check runs on every route; the middleware's public path
	// allow-list exempts login/register/me, health and swagger.
	r.Use(middleware.CookieAuthMiddleware(cfg.AuthCookieName, cfg.JWTSecret))

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerAuthRoutes(r, cfg, services.User)
	registerArchiveRoutes(r, services.Archive, services.Import)
	registerLoanRoutes(r, services.Loan)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
