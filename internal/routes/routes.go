package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/naebak/banner-backend/internal/handler"
	"github.com/naebak/banner-backend/internal/middleware"
	"github.com/naebak/banner-backend/pkg/jwt"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	bannerHandler *handler.BannerHandler,
	recommendationHandler *handler.RecommendationHandler,
	analyticsHandler *handler.AnalyticsHandler,
	userBannerHandler *handler.UserBannerHandler,
	pageBannerHandler *handler.PageBannerHandler,
	taxonomyHandler *handler.TaxonomyHandler,
	settingHandler *handler.SettingHandler,
	jwtManager *jwt.Manager,
) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")

	// Public display endpoints
	banners := api.Group("/banners")
	banners.GET("/position/:position", bannerHandler.DisplayBanners)
	banners.GET("/position/:position/recommended", recommendationHandler.Recommend)
	banners.GET("/:id", bannerHandler.GetBanner)
	banners.POST("/:id/view", bannerHandler.TrackView)
	banners.POST("/:id/click", middleware.OptionalAuth(jwtManager), bannerHandler.TrackClick)
	banners.GET("/:id/click", middleware.OptionalAuth(jwtManager), bannerHandler.ClickRedirect)

	api.GET("/page-banners/:page_key", pageBannerHandler.Display)
	api.GET("/taxonomy", taxonomyHandler.GetTaxonomy)

	// User submissions (auth required)
	userBanners := api.Group("/user-banners", middleware.JWTAuth(jwtManager))
	userBanners.POST("", userBannerHandler.Submit)
	userBanners.GET("/mine", userBannerHandler.ListMine)
	userBanners.GET("/:id", userBannerHandler.Get)
	userBanners.PUT("/:id", userBannerHandler.Update)
	userBanners.DELETE("/:id", userBannerHandler.Withdraw)

	// Admin endpoints (auth required; capability checks live in the services)
	admin := api.Group("/admin", middleware.JWTAuth(jwtManager))

	adminBanners := admin.Group("/banners")
	adminBanners.GET("", bannerHandler.ListBanners)
	adminBanners.POST("", bannerHandler.CreateBanner)
	adminBanners.PUT("/:id", bannerHandler.UpdateBanner)
	adminBanners.DELETE("/:id", bannerHandler.DeleteBanner)
	adminBanners.POST("/:id/publish", bannerHandler.PublishBanner)
	adminBanners.POST("/:id/unpublish", bannerHandler.UnpublishBanner)
	adminBanners.GET("/:id/analytics", analyticsHandler.GetSummary)

	admin.GET("/analytics/top", analyticsHandler.GetTopBanners)

	adminUserBanners := admin.Group("/user-banners")
	adminUserBanners.GET("/pending", userBannerHandler.ListPending)
	adminUserBanners.POST("/:id/review", userBannerHandler.Review)

	adminPageBanners := admin.Group("/page-banners")
	adminPageBanners.GET("", pageBannerHandler.List)
	adminPageBanners.POST("", pageBannerHandler.Create)
	adminPageBanners.PUT("/:id", pageBannerHandler.Update)
	adminPageBanners.DELETE("/:id", pageBannerHandler.Delete)
	adminPageBanners.POST("/:id/publish", pageBannerHandler.Publish)
	adminPageBanners.POST("/:id/unpublish", pageBannerHandler.Unpublish)

	admin.POST("/taxonomy/reload", taxonomyHandler.Reload)
	admin.GET("/settings", settingHandler.ListSettings)
	admin.PUT("/settings/:key", settingHandler.UpdateSetting)
	admin.GET("/permissions", settingHandler.ListPermissions)
	admin.PUT("/permissions", settingHandler.UpsertPermission)
}
