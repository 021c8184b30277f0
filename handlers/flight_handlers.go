package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwoo-dev/tripnote-backend/utils"
)

// ListFlights handles GET /api/trips/:id/flights
func ListFlights(c *gin.Context) {
	flights, err := handlerServices.FlightService.ListFlights(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "items": flights})
}

// CreateFlight handles POST /api/trips/:id/flights
func CreateFlight(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}

	flight, err := handlerServices.FlightService.CreateFlight(c.Param("id"), body)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "item": flight})
}

// PatchFlight handles PATCH /api/flights/:itemId
func PatchFlight(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}

	flight, err := handlerServices.FlightService.PatchFlight(c.Param("itemId"), body)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "item": flight})
}

// DeleteFlight handles DELETE /api/flights/:itemId
func DeleteFlight(c *gin.Context) {
	id := c.Param("itemId")
	if err := handlerServices.FlightService.DeleteFlight(id); err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "deleted": true, "id": id})
}

// FlightLookup handles GET /api/flight-lookup?flightIata=&date=
func FlightLookup(c *gin.Context) {
	result, err := handlerServices.FlightLookupService.Lookup(
		c.Query("flightIata"), c.Query("date"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "item": result})
}
