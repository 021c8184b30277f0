package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwoo-dev/tripnote-backend/utils"
)

// ListExpenses handles GET /api/trips/:id/expenses
func ListExpenses(c *gin.Context) {
	expenses, err := handlerServices.ExpenseService.ListExpenses(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "items": expenses})
}

// CreateExpense handles POST /api/trips/:id/expenses
func CreateExpense(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}

	expense, err := handlerServices.ExpenseService.CreateExpense(c.Param("id"), body)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "item": expense})
}

// PatchExpense handles PATCH /api/expenses/:itemId
func PatchExpense(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}

	expense, err := handlerServices.ExpenseService.PatchExpense(c.Param("itemId"), body)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "item": expense})
}

// DeleteExpense handles DELETE /api/expenses/:itemId
func DeleteExpense(c *gin.Context) {
	id := c.Param("itemId")
	if err := handlerServices.ExpenseService.DeleteExpense(id); err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "deleted": true, "id": id})
}

// ExportExpenses handles GET /api/trips/:id/expenses/export
func ExportExpenses(c *gin.Context) {
	excelFile, filename, err := handlerServices.ExcelService.ExportExpenses(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Content-Transfer-Encoding", "binary")

	if err := excelFile.Write(c.Writer); err != nil {
		utils.HandleError(c, utils.NewInternalError("Failed to write Excel file"))
		return
	}
}
