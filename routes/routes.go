package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"medspa-backend/config"
	"medspa-backend/controllers"
	"medspa-backend/repository"
	"medspa-backend/utils"
)

func SetupRouter(cfg config.Config, store *repository.Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", utils.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", utils.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(utils.RequestID())
	r.Use(config.RequestLogger())

	api := controllers.NewAPI(store)

	r.GET("/healthz", api.Health)

	appointments := r.Group("/appointments")
	{
		appointments.GET("", api.GetAppointments)
		appointments.POST("", api.CreateAppointment)
		appointments.GET("/:id", api.GetAppointment)
		appointments.PUT("/:id", api.UpdateAppointment)
		appointments.DELETE("/:id", api.DeleteAppointment)
	}

	medspas := r.Group("/medspas")
	{
		medspas.GET("", api.GetMedspas)
		medspas.POST("", api.CreateMedspa)
		medspas.GET("/:id", api.GetMedspa)
		medspas.PUT("/:id", api.UpdateMedspa)
		medspas.DELETE("/:id", api.DeleteMedspa)
		medspas.GET("/:id/services", api.GetMedspaServices)
	}

	services := r.Group("/services")
	{
		services.POST("", api.CreateService)
		services.GET("/:id", api.GetService)
		services.PUT("/:id", api.UpdateService)
		services.DELETE("/:id", api.DeleteService)
		services.GET("/:id/upcoming-appointments", api.GetUpcomingAppointments)
	}

	r.GET("/service-categories", api.GetCategories)
	r.POST("/service-categories", api.CreateCategory)

	r.GET("/service-types", api.GetTypes)
	r.POST("/service-types", api.CreateType)

	r.GET("/service-products", api.GetProducts)
	r.POST("/service-products", api.CreateProduct)

	suppliers := r.Group("/service-product-suppliers")
	{
		suppliers.GET("", api.GetSuppliers)
		suppliers.POST("", api.CreateSupplier)
		suppliers.DELETE("/:id", api.DeleteSupplier)
	}

	return r
}
