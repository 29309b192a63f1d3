package routes

import (
	"net/http"
	"time"

	"medonrent/handlers"
	"medonrent/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the route registrations need.
type HandlerBundle struct {
	RentSession *handlers.RentSessionHandler
	Patient     *handlers.PatientHandler
	Device      *handlers.DeviceHandler
	Dashboard   *handlers.DashboardHandler
	Upload      *handlers.UploadHandler
}

// RegisterRentSessionRoutes sets up the rent session endpoints.
func RegisterRentSessionRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/rent-sessions")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.RentSession.Create)
		api.GET("", hb.RentSession.GetAll)
		api.GET("/conflict", hb.RentSession.CheckConflict)
		api.GET("/:id", hb.RentSession.GetByID)
		api.PUT("/:id", hb.RentSession.Update)
		api.DELETE("/:id", hb.RentSession.Delete)
		api.POST("/:id/invoice", hb.RentSession.GenerateInvoice)
	}
}

// RegisterPatientRoutes sets up the patient endpoints.
func RegisterPatientRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/patients")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Patient.Create)
		api.GET("", hb.Patient.GetAll)
		api.GET("/:id", hb.Patient.GetByID)
		api.PUT("/:id", hb.Patient.Update)
		api.DELETE("/:id", hb.Patient.Delete)
	}
}

// RegisterDeviceRoutes sets up the device inventory endpoints.
func RegisterDeviceRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/devices")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Device.Create)
		api.GET("", hb.Device.GetAll)
		api.GET("/:id", hb.Device.GetByID)
		api.PUT("/:id", hb.Device.Update)
		api.DELETE("/:id", hb.Device.Delete)
	}
}

// RegisterDashboardRoutes sets up the dashboard endpoint.
func RegisterDashboardRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/dashboard")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/stats", hb.Dashboard.Stats)
	}
}

// RegisterUploadRoutes sets up the file upload and download endpoints.
func RegisterUploadRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/uploads")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Upload.Upload)
		api.GET("/download", hb.Upload.Download)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm MedOnRent"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterRentSessionRoutes(r, hb)
	RegisterPatientRoutes(r, hb)
	RegisterDeviceRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterUploadRoutes(r, hb)
}
