package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwoo-dev/tripnote-backend/utils"
)

// GetMeta handles GET /api/meta/:key
func GetMeta(c *gin.Context) {
	item, err := handlerServices.MetaService.GetMeta(c.Param("key"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "item": item})
}

// PutMeta handles PUT /api/meta/:key
func PutMeta(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}

	item, err := handlerServices.MetaService.PutMeta(c.Param("key"), body)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "item": item})
}
