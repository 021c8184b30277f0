package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwoo-dev/tripnote-backend/utils"
)

// ListDays handles GET /api/trips/:id/days
func ListDays(c *gin.Context) {
	days, err := handlerServices.DayService.ListDays(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "items": days})
}

// CreateDay handles POST /api/trips/:id/days
func CreateDay(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}

	day, err := handlerServices.DayService.CreateDay(c.Param("id"), body)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "item": day})
}

// PatchDay handles PATCH /api/days/:itemId
func PatchDay(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}

	day, err := handlerServices.DayService.PatchDay(c.Param("itemId"), body)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "item": day})
}

// DeleteDay handles DELETE /api/days/:itemId
func DeleteDay(c *gin.Context) {
	id := c.Param("itemId")
	if err := handlerServices.DayService.DeleteDay(id); err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "deleted": true, "id": id})
}
