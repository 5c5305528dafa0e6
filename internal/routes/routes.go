package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sanashahul/GamiSMS-sub000/internal/config"
	"github.com/sanashahul/GamiSMS-sub000/internal/geo"
	"github.com/sanashahul/GamiSMS-sub000/internal/handlers"
	"github.com/sanashahul/GamiSMS-sub000/internal/i18n"
	"github.com/sanashahul/GamiSMS-sub000/internal/middleware"
	"github.com/sanashahul/GamiSMS-sub000/internal/resources"
	"github.com/sanashahul/GamiSMS-sub000/internal/storage"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, store storage.Store, dir *resources.Directory, places geo.PlaceSearch, catalog *i18n.Catalog, cfg *config.Config) {
	// Initialize handlers
	installHandler := handlers.NewInstallHandler(cfg)
	onboardingHandler := handlers.NewOnboardingHandler(store)
	profileHandler := handlers.NewProfileHandler(store)
	recommendationHandler := handlers.NewRecommendationHandler(store)
	appointmentHandler := handlers.NewAppointmentHandler(store)
	resourceHandler := handlers.NewResourceHandler(dir, places)
	checkInHandler := handlers.NewCheckInHandler(store)
	dashboardHandler := handlers.NewDashboardHandler(store, catalog)
	languageHandler := handlers.NewLanguageHandler(catalog)

	// Public routes (no installation token required)
	public := router.Group("/api/v1")
	{
		public.POST("/install", installHandler.Register)
		public.GET("/languages", languageHandler.GetLanguages)
		public.GET("/translations", languageHandler.Translate)
	}

	// Installation-scoped routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		onboardingRoutes := private.Group("/onboarding")
		{
			// The client owns the step counter; these endpoints just resolve it.
			onboardingRoutes.GET("/screen", onboardingHandler.GetScreen)
			onboardingRoutes.GET("/state", onboardingHandler.GetState)
			onboardingRoutes.POST("/complete", onboardingHandler.Complete)
		}

		profileRoutes := private.Group("/profile")
		{
			profileRoutes.GET("", profileHandler.GetProfile)
			profileRoutes.PUT("", profileHandler.UpdateProfile)
			profileRoutes.PATCH("", profileHandler.PatchProfile)
			profileRoutes.POST("/language", profileHandler.SetLanguage)
		}

		recommendationRoutes := private.Group("/recommendations")
		{
			recommendationRoutes.GET("", recommendationHandler.GetAll)
			recommendationRoutes.GET("/:area", recommendationHandler.GetByArea)
		}

		appointmentRoutes := private.Group("/appointments")
		{
			appointmentRoutes.POST("", appointmentHandler.CreateAppointment)
			appointmentRoutes.GET("", appointmentHandler.GetAppointments)
			appointmentRoutes.GET("/upcoming", appointmentHandler.GetUpcoming)
			appointmentRoutes.GET("/past", appointmentHandler.GetPast)
			appointmentRoutes.PUT("/:id", appointmentHandler.UpdateAppointment)
			appointmentRoutes.POST("/:id/cancel", appointmentHandler.CancelAppointment)
			appointmentRoutes.DELETE("/:id", appointmentHandler.DeleteAppointment)
		}

		resourceRoutes := private.Group("/resources")
		{
			resourceRoutes.GET("", resourceHandler.GetResources)
			resourceRoutes.GET("/nearby", resourceHandler.SearchNearby)
			resourceRoutes.GET("/:id", resourceHandler.GetResourceByID)
		}

		checkInRoutes := private.Group("/checkins")
		{
			checkInRoutes.POST("", checkInHandler.CreateCheckIn)
			checkInRoutes.GET("", checkInHandler.GetCheckIns)
		}

		private.GET("/dashboard", dashboardHandler.GetDashboard)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
