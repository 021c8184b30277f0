package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwoo-dev/tripnote-backend/utils"
)

// ListTrips handles GET /api/trips
func ListTrips(c *gin.Context) {
	trips, err := handlerServices.TripService.ListTrips()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "items": trips})
}

// CreateTrip handles POST /api/trips. The request is expanded into one
// atomic batch: the trip, a day per calendar date, and any nested flights
// and hotels.
func CreateTrip(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}

	aggregate, err := handlerServices.TripService.CreateTrip(body)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"trip":    aggregate.Trip,
		"days":    aggregate.Days,
		"flights": aggregate.Flights,
		"hotels":  aggregate.Hotels,
	})
}

// GetTripDetail handles GET /api/trips/:id
func GetTripDetail(c *gin.Context) {
	detail, err := handlerServices.TripService.GetTripDetail(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"trip":     detail.Trip,
		"days":     detail.Days,
		"plans":    detail.Plans,
		"expenses": detail.Expenses,
		"flights":  detail.Flights,
		"hotels":   detail.Hotels,
	})
}

// PatchTrip handles PATCH /api/trips/:id
func PatchTrip(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}

	trip, err := handlerServices.TripService.PatchTrip(c.Param("id"), body)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "trip": trip})
}

// DeleteTrip handles DELETE /api/trips/:id
func DeleteTrip(c *gin.Context) {
	id := c.Param("id")
	if err := handlerServices.TripService.DeleteTrip(id); err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "deleted": true, "id": id})
}
