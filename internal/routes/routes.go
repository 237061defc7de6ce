package routes

import (
	"github.com/gin-gonic/gin"

	"telemedicine-platform-server/internal/config"
	"telemedicine-platform-server/internal/handlers"
	"telemedicine-platform-server/internal/middleware"
	"telemedicine-platform-server/internal/models"
	"telemedicine-platform-server/internal/store"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, s *store.Store, cfg *config.Config) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(s, cfg)
	userHandler := handlers.NewUserHandler(s)
	appointmentHandler := handlers.NewAppointmentHandler(s)
	messageHandler := handlers.NewMessageHandler(s)
	prescriptionHandler := handlers.NewPrescriptionHandler(s)
	medicalRecordHandler := handlers.NewMedicalRecordHandler(s)
	fileHandler := handlers.NewFileHandler(s, cfg)
	doctorPatientHandler := handlers.NewDoctorPatientHandler(s)

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh-token", authHandler.RefreshToken)
		}
	}

	// Authenticated routes
	private := router.Group("/api")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		authRoutes := private.Group("/auth")
		{
			authRoutes.POST("/logout", authHandler.Logout)
			authRoutes.GET("/user", authHandler.GetCurrentUser)
			authRoutes.PUT("/user", authHandler.UpsertProfile)
		}

		// Role-filtered user listings
		private.GET("/doctors", userHandler.GetDoctors)
		private.GET("/patients", userHandler.GetPatients) // doctor check in handler

		// Appointment routes; per-resource access checks live in the handlers
		appointmentRoutes := private.Group("/appointments")
		{
			appointmentRoutes.POST("", appointmentHandler.CreateAppointment)
			appointmentRoutes.GET("", appointmentHandler.GetAppointments)
			appointmentRoutes.GET("/upcoming", appointmentHandler.GetUpcomingAppointments)
			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointmentByID)
			appointmentRoutes.PUT("/:id", appointmentHandler.UpdateAppointment)
			appointmentRoutes.DELETE("/:id", appointmentHandler.DeleteAppointment)
		}

		// Messaging routes
		messageRoutes := private.Group("/messages")
		{
			messageRoutes.POST("", messageHandler.SendMessage)
			messageRoutes.GET("", messageHandler.GetMessages)
			messageRoutes.GET("/conversation/:userId", messageHandler.GetConversation)
			messageRoutes.POST("/:id/read", messageHandler.MarkMessageAsRead)
		}

		// Prescription routes
		prescriptionRoutes := private.Group("/prescriptions")
		{
			prescriptionRoutes.POST("", prescriptionHandler.CreatePrescription)
			prescriptionRoutes.GET("", prescriptionHandler.GetPrescriptions)
			prescriptionRoutes.GET("/active", prescriptionHandler.GetActivePrescriptions)
		}

		// Medical record routes
		medicalRecordRoutes := private.Group("/medical-records")
		{
			medicalRecordRoutes.POST("", medicalRecordHandler.CreateMedicalRecord)
			medicalRecordRoutes.GET("", medicalRecordHandler.GetMedicalRecords)
		}

		// File routes; downloads are owner-gated instead of a public
		// static mount
		fileRoutes := private.Group("/files")
		{
			fileRoutes.POST("/upload", fileHandler.UploadFile)
			fileRoutes.GET("", fileHandler.GetFiles)
			fileRoutes.GET("/related/:type/:id", fileHandler.GetRelatedFiles)
			fileRoutes.GET("/:id/download", fileHandler.DownloadFile)
		}

		// Doctor-Patient relationship route
		private.POST("/doctor-patient/assign",
			middleware.RoleAuthMiddleware(models.RoleDoctor),
			doctorPatientHandler.AssignPatient)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
