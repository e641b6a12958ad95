package routes

import (
	"github.com/amyssnippet/wavvy/config"
	"github.com/amyssnippet/wavvy/controllers"
	"github.com/amyssnippet/wavvy/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	api := r.Group("/api")
	{
		// Authentication / OTP routes
		api.POST("/send-otp/", controllers.SendOTP)
		api.POST("/verify-otp/", controllers.VerifyOTP)
		api.POST("/check-business/", controllers.CheckBusiness)
		api.POST("/set-password/", controllers.SetPassword)
		api.POST("/login/", controllers.BusinessLogin)

		// Business routes
		business := api.Group("/business")
		{
			business.POST("/", controllers.CreateBusiness)
			business.GET("/", controllers.GetBusinesses)
			business.GET("/:id", controllers.GetBusiness)
			business.PUT("/:id", controllers.UpdateBusiness)
			business.DELETE("/:id", controllers.DeleteBusiness)
			business.POST("/:id/profile-image", controllers.UploadBusinessImage)
		}

		// Service category routes
		categories := api.Group("/service-categories")
		{
			categories.POST("/", controllers.CreateCategory)
			categories.GET("/", controllers.GetCategories)
			categories.GET("/:id", controllers.GetCategory)
			categories.PUT("/:id", controllers.UpdateCategory)
			categories.DELETE("/:id", controllers.DeleteCategory)
		}

		// Service routes
		services := api.Group("/services")
		{
			services.POST("/", controllers.CreateService)
			services.GET("/", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)
			services.POST("/:id/profile-image", controllers.UploadServiceImage)
		}

		// Package routes
		packages := api.Group("/packages")
		{
			packages.POST("/", controllers.CreatePackage)
			packages.GET("/", controllers.GetPackages)
			packages.GET("/:id", controllers.GetPackage)
			packages.PUT("/:id", controllers.UpdatePackage)
			packages.DELETE("/:id", controllers.DeletePackage)
		}

		// Client routes
		clients := api.Group("/clients")
		{
			clients.POST("/", controllers.CreateClient)
			clients.GET("/", controllers.GetClients)
			clients.GET("/:id", controllers.GetClient)
			clients.PUT("/:id", controllers.UpdateClient)
			clients.DELETE("/:id", controllers.DeleteClient)
		}
		api.GET("/client-metadata/", controllers.GetClientMetadata)

		// Team member routes
		teamMembers := api.Group("/team-members")
		{
			teamMembers.POST("/", controllers.CreateTeamMember)
			teamMembers.GET("/", controllers.GetTeamMembers)
			teamMembers.GET("/:id", controllers.GetTeamMember)
			teamMembers.PUT("/:id", controllers.UpdateTeamMember)
			teamMembers.DELETE("/:id", controllers.DeleteTeamMember)
			teamMembers.POST("/:id/profile-image", controllers.UploadTeamMemberImage)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("/", controllers.CreateAppointment)
			appointments.GET("/", controllers.GetAppointments)
			appointments.GET("/:id", controllers.GetAppointment)
			appointments.PUT("/:id", controllers.UpdateAppointment)
			appointments.DELETE("/:id", controllers.DeleteAppointment)
		}

		// Dashboard
		api.GET("/dashboard", utils.AuthMiddleware(), controllers.GetDashboardOverview)
	}

	// Customer app surface
	app := r.Group("/app")
	{
		auth := app.Group("/auth")
		{
			auth.POST("/signup", controllers.Signup)
			auth.POST("/login", controllers.CustomerLogin)
		}

		app.GET("/salons/", controllers.GetNearbySalons)

		profile := app.Group("/profile", utils.CustomerAuthMiddleware())
		{
			profile.GET("/view", controllers.ViewProfile)
			profile.PUT("/update", controllers.UpdateProfile)
			profile.DELETE("/delete", controllers.DeleteProfile)
		}

		bookings := app.Group("/bookings", utils.CustomerAuthMiddleware())
		{
			bookings.POST("/create", controllers.CreateBooking)
			bookings.POST("/cancel", controllers.CancelBooking)
			bookings.GET("/status/:id", controllers.BookingStatus)
		}
	}

	return r
}
