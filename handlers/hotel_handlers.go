package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwoo-dev/tripnote-backend/utils"
)

// ListHotels handles GET /api/trips/:id/hotels
func ListHotels(c *gin.Context) {
	hotels, err := handlerServices.HotelService.ListHotels(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "items": hotels})
}

// CreateHotel handles POST /api/trips/:id/hotels
func CreateHotel(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}

	hotel, err := handlerServices.HotelService.CreateHotel(c.Param("id"), body)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "item": hotel})
}

// PatchHotel handles PATCH /api/hotels/:itemId
func PatchHotel(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}

	hotel, err := handlerServices.HotelService.PatchHotel(c.Param("itemId"), body)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "item": hotel})
}

// DeleteHotel handles DELETE /api/hotels/:itemId
func DeleteHotel(c *gin.Context) {
	id := c.Param("itemId")
	if err := handlerServices.HotelService.DeleteHotel(id); err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "deleted": true, "id": id})
}
