package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwoo-dev/tripnote-backend/utils"
)

// ListPlans handles GET /api/trips/:id/plans
func ListPlans(c *gin.Context) {
	plans, err := handlerServices.PlanService.ListPlans(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "items": plans})
}

// CreatePlan handles POST /api/trips/:id/plans
func CreatePlan(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}

	plan, err := handlerServices.PlanService.CreatePlan(c.Param("id"), body)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "item": plan})
}

// PatchPlan handles PATCH /api/plans/:itemId
func PatchPlan(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}

	plan, err := handlerServices.PlanService.PatchPlan(c.Param("itemId"), body)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "item": plan})
}

// DeletePlan handles DELETE /api/plans/:itemId
func DeletePlan(c *gin.Context) {
	id := c.Param("itemId")
	if err := handlerServices.PlanService.DeletePlan(id); err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "deleted": true, "id": id})
}
