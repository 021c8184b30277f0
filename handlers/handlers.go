// Package handlers contains the Gin HTTP handlers. Each resource kind has its
// own file; all share the package-level service set wired by InitHandlers.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jwoo-dev/tripnote-backend/services"
	"github.com/jwoo-dev/tripnote-backend/utils"
)

// HandlerServices contains all service dependencies
type HandlerServices struct {
	TripService         *services.TripService
	DayService          *services.DayService
	PlanService         *services.PlanService
	ExpenseService      *services.ExpenseService
	FlightService       *services.FlightService
	HotelService        *services.HotelService
	MetaService         *services.MetaService
	FlightLookupService *services.FlightLookupService
	ExcelService        *services.ExcelService
}

// NewHandlerServices creates a new handler services instance
func NewHandlerServices() *HandlerServices {
	tripService := services.NewTripService()
	expenseService := services.NewExpenseService()
	return &HandlerServices{
		TripService:         tripService,
		DayService:          services.NewDayService(),
		PlanService:         services.NewPlanService(),
		ExpenseService:      expenseService,
		FlightService:       services.NewFlightService(),
		HotelService:        services.NewHotelService(),
		MetaService:         services.NewMetaService(),
		FlightLookupService: services.NewFlightLookupService(),
		ExcelService:        services.NewExcelService(tripService, expenseService),
	}
}

var handlerServices *HandlerServices

// InitHandlers initializes the handler services
func InitHandlers() {
	handlerServices = NewHandlerServices()
}

// bindBody decodes the JSON request body into the alias-aware map shape the
// field normalizer works on.
func bindBody(c *gin.Context) (utils.Body, bool) {
	var body utils.Body
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.HandleError(c, utils.NewValidationError(utils.ErrInvalidRequest))
		return nil, false
	}
	return body, true
}
