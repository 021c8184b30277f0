package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwoo-dev/tripnote-backend/handlers"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine) {
	handlers.InitHandlers()

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"ok": false, "error": "Method not allowed"})
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "Route not found"})
	})

	// Unauthenticated endpoints
	router.GET("/health", handlers.HealthCheck)
	router.POST("/auth/verify", handlers.VerifyPassword)

	// Everything under /api requires the shared secret
	api := router.Group("/api", handlers.RequireAuth())
	{
		api.GET("/trips", handlers.ListTrips)
		api.POST("/trips", handlers.CreateTrip)
		api.GET("/trips/:id", handlers.GetTripDetail)
		api.PATCH("/trips/:id", handlers.PatchTrip)
		api.DELETE("/trips/:id", handlers.DeleteTrip)

		api.GET("/trips/:id/days", handlers.ListDays)
		api.POST("/trips/:id/days", handlers.CreateDay)
		api.GET("/trips/:id/plans", handlers.ListPlans)
		api.POST("/trips/:id/plans", handlers.CreatePlan)
		api.GET("/trips/:id/expenses", handlers.ListExpenses)
		api.POST("/trips/:id/expenses", handlers.CreateExpense)
		api.GET("/trips/:id/expenses/export", handlers.ExportExpenses)
		api.GET("/trips/:id/flights", handlers.ListFlights)
		api.POST("/trips/:id/flights", handlers.CreateFlight)
		api.GET("/trips/:id/hotels", handlers.ListHotels)
		api.POST("/trips/:id/hotels", handlers.CreateHotel)

		api.PATCH("/days/:itemId", handlers.PatchDay)
		api.DELETE("/days/:itemId", handlers.DeleteDay)
		api.PATCH("/plans/:itemId", handlers.PatchPlan)
		api.DELETE("/plans/:itemId", handlers.DeletePlan)
		api.PATCH("/expenses/:itemId", handlers.PatchExpense)
		api.DELETE("/expenses/:itemId", handlers.DeleteExpense)
		api.PATCH("/flights/:itemId", handlers.PatchFlight)
		api.DELETE("/flights/:itemId", handlers.DeleteFlight)
		api.PATCH("/hotels/:itemId", handlers.PatchHotel)
		api.DELETE("/hotels/:itemId", handlers.DeleteHotel)

		api.GET("/meta/:key", handlers.GetMeta)
		api.PUT("/meta/:key", handlers.PutMeta)

		api.GET("/flight-lookup", handlers.FlightLookup)
	}
}
