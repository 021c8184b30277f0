// Package services contains the validation and orchestration logic between
// the HTTP handlers and the repositories.
package services

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jwoo-dev/tripnote-backend/models"
	"github.com/jwoo-dev/tripnote-backend/repository"
	"github.com/jwoo-dev/tripnote-backend/utils"
)

// TripService orchestrates trip-level operations, including the aggregate
// create that expands a date range into day rows.
type TripService struct {
	tripRepo    *repository.TripRepository
	dayRepo     *repository.DayRepository
	planRepo    *repository.PlanRepository
	expenseRepo *repository.ExpenseRepository
	flightRepo  *repository.FlightRepository
	hotelRepo   *repository.HotelRepository
}

// NewTripService creates a new TripService
func NewTripService() *TripService {
	return &TripService{
		tripRepo:    repository.NewTripRepository(),
		dayRepo:     repository.NewDayRepository(),
		planRepo:    repository.NewPlanRepository(),
		expenseRepo: repository.NewExpenseRepository(),
		flightRepo:  repository.NewFlightRepository(),
		hotelRepo:   repository.NewHotelRepository(),
	}
}

// ExpandTripDates returns the inclusive list of YYYY-MM-DD dates between
// start and end. Inverted ranges and spans over the maximum are rejected.
func ExpandTripDates(startDate, endDate string) ([]string, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, utils.NewFieldError("startDate", "is not a valid calendar date")
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, utils.NewFieldError("endDate", "is not a valid calendar date")
	}

	if end.Before(start) {
		return nil, utils.NewValidationError("startDate must not be after endDate")
	}

	span := int(end.Sub(start).Hours()/24) + 1
	if span > utils.MaxTripDays {
		return nil, utils.NewValidationError(
			fmt.Sprintf("Trip span must not exceed %d days", utils.MaxTripDays))
	}

	dates := make([]string, 0, span)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format("2006-01-02"))
	}
	return dates, nil
}

// BuildTripCreate validates trip-level fields and returns the trip row to
// insert. Exported for tests; no database access happens here.
func BuildTripCreate(body utils.Body, now models.Timestamp) (*models.Trip, error) {
	title, err := utils.RequiredString(body, "title", "title")
	if err != nil {
		return nil, err
	}
	destination, err := utils.RequiredString(body, "destination", "destination")
	if err != nil {
		return nil, err
	}
	startDate, err := utils.RequiredDate(body, "startDate", "startDate", "start_date")
	if err != nil {
		return nil, err
	}
	endDate, err := utils.RequiredDate(body, "endDate", "endDate", "end_date")
	if err != nil {
		return nil, err
	}
	currency, err := utils.OptionalString(body, "currency", "currency")
	if err != nil {
		return nil, err
	}
	memo, err := utils.OptionalString(body, "memo", "memo")
	if err != nil {
		return nil, err
	}
	status, err := utils.OptionalString(body, "status", "status")
	if err != nil {
		return nil, err
	}

	trip := &models.Trip{
		ID:          utils.NewID(utils.TripIDPrefix),
		Title:       title,
		Destination: destination,
		StartDate:   startDate,
		EndDate:     endDate,
		Currency:    utils.DefaultCurrency,
		Memo:        memo,
		Status:      utils.StatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if currency != nil {
		trip.Currency = *currency
	}
	if status != nil {
		if err := validateStatus(*status); err != nil {
			return nil, err
		}
		trip.Status = *status
	}
	return trip, nil
}

// CreateTrip expands a trip-creation request into one atomic batch: the trip
// row, one day per calendar date, and any nested flights and hotels. All
// validation happens before the first insert.
func (s *TripService) CreateTrip(body utils.Body) (*models.TripAggregate, error) {
	now := models.Now()

	trip, err := BuildTripCreate(body, now)
	if err != nil {
		return nil, err
	}

	dates, err := ExpandTripDates(trip.StartDate, trip.EndDate)
	if err != nil {
		return nil, err
	}

	days := make([]*models.Day, len(dates))
	for i, date := range dates {
		days[i] = &models.Day{
			ID:        utils.NewID(utils.DayIDPrefix),
			TripID:    trip.ID,
			DayNo:     int64(i + 1),
			Date:      date,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	flights, err := buildNestedFlights(trip.ID, body, now)
	if err != nil {
		return nil, err
	}
	hotels, err := buildNestedHotels(trip.ID, body, now)
	if err != nil {
		return nil, err
	}

	if err := s.tripRepo.CreateTripAggregate(trip, days, flights, hotels); err != nil {
		return nil, utils.MapStorageError(err)
	}

	return s.readAggregate(trip.ID)
}

// readAggregate re-reads the trip and everything created alongside it.
func (s *TripService) readAggregate(tripID string) (*models.TripAggregate, error) {
	trip, err := s.tripRepo.GetTrip(tripID)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, utils.NewNotFoundError("Trip")
	}

	days, err := s.dayRepo.ListDays(tripID)
	if err != nil {
		return nil, err
	}
	flights, err := s.flightRepo.ListFlights(tripID)
	if err != nil {
		return nil, err
	}
	hotels, err := s.hotelRepo.ListHotels(tripID)
	if err != nil {
		return nil, err
	}

	return &models.TripAggregate{Trip: trip, Days: days, Flights: flights, Hotels: hotels}, nil
}

// buildNestedFlights validates an optional nested flight array on a trip
// creation body. Leg order defaults to the position in the array.
func buildNestedFlights(tripID string, body utils.Body, now models.Timestamp) ([]*models.Flight, error) {
	raw, ok := body["flights"]
	if !ok || raw == nil {
		return nil, nil
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, utils.NewFieldError("flights", "must be an array")
	}

	flights := make([]*models.Flight, 0, len(items))
	for i, item := range items {
		entry, ok := item.(map[string]interface{})
		if !ok {
			return nil, utils.NewFieldError("flights", "must be an array of objects")
		}
		flight, err := BuildFlightCreate(tripID, utils.Body(entry), int64(i+1), now)
		if err != nil {
			return nil, err
		}
		flights = append(flights, flight)
	}
	return flights, nil
}

// buildNestedHotels validates an optional nested hotel array.
func buildNestedHotels(tripID string, body utils.Body, now models.Timestamp) ([]*models.Hotel, error) {
	raw, ok := body["hotels"]
	if !ok || raw == nil {
		return nil, nil
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, utils.NewFieldError("hotels", "must be an array")
	}

	hotels := make([]*models.Hotel, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]interface{})
		if !ok {
			return nil, utils.NewFieldError("hotels", "must be an array of objects")
		}
		hotel, err := BuildHotelCreate(tripID, utils.Body(entry), now)
		if err != nil {
			return nil, err
		}
		hotels = append(hotels, hotel)
	}
	return hotels, nil
}

// ListTrips returns all trips, most recently updated first.
func (s *TripService) ListTrips() ([]*models.Trip, error) {
	return s.tripRepo.ListTrips()
}

// GetTripDetail fetches the trip and issues the five scoped child reads
// concurrently, joining them into one response.
func (s *TripService) GetTripDetail(tripID string) (*models.TripDetail, error) {
	trip, err := s.tripRepo.GetTrip(tripID)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, utils.NewNotFoundError("Trip")
	}

	detail := &models.TripDetail{Trip: trip}

	var g errgroup.Group
	g.Go(func() error {
		var err error
		detail.Days, err = s.dayRepo.ListDays(tripID)
		return err
	})
	g.Go(func() error {
		var err error
		detail.Plans, err = s.planRepo.ListPlans(tripID)
		return err
	})
	g.Go(func() error {
		var err error
		detail.Expenses, err = s.expenseRepo.ListExpenses(tripID)
		return err
	})
	g.Go(func() error {
		var err error
		detail.Flights, err = s.flightRepo.ListFlights(tripID)
		return err
	})
	g.Go(func() error {
		var err error
		detail.Hotels, err = s.hotelRepo.ListHotels(tripID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return detail, nil
}

// BuildTripPatch collects column assignments for the fields present in a
// trip patch body. Present fields are validated; absent ones are ignored.
func BuildTripPatch(body utils.Body) ([]repository.Assignment, error) {
	assigns := []repository.Assignment{}

	if utils.HasField(body, "title") {
		title, err := utils.RequiredString(body, "title", "title")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "title", Value: title})
	}
	if utils.HasField(body, "destination") {
		destination, err := utils.RequiredString(body, "destination", "destination")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "destination", Value: destination})
	}
	if utils.HasField(body, "startDate", "start_date") {
		startDate, err := utils.RequiredDate(body, "startDate", "startDate", "start_date")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "start_date", Value: startDate})
	}
	if utils.HasField(body, "endDate", "end_date") {
		endDate, err := utils.RequiredDate(body, "endDate", "endDate", "end_date")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "end_date", Value: endDate})
	}
	if utils.HasField(body, "currency") {
		currency, err := utils.RequiredString(body, "currency", "currency")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "currency", Value: currency})
	}
	if utils.HasField(body, "memo") {
		memo, err := utils.OptionalString(body, "memo", "memo")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "memo", Value: memo})
	}
	if utils.HasField(body, "status") {
		status, err := utils.RequiredString(body, "status", "status")
		if err != nil {
			return nil, err
		}
		if err := validateStatus(status); err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "status", Value: status})
	}

	return assigns, nil
}

// PatchTrip applies a partial update and returns the refreshed row.
func (s *TripService) PatchTrip(tripID string, body utils.Body) (*models.Trip, error) {
	assigns, err := BuildTripPatch(body)
	if err != nil {
		return nil, err
	}
	if len(assigns) == 0 {
		return nil, utils.NewValidationError(utils.ErrNoFields)
	}

	found, err := s.tripRepo.PatchTrip(tripID, assigns, models.Now())
	if err != nil {
		return nil, utils.MapStorageError(err)
	}
	if !found {
		return nil, utils.NewNotFoundError("Trip")
	}

	trip, err := s.tripRepo.GetTrip(tripID)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, utils.NewNotFoundError("Trip")
	}
	return trip, nil
}

// DeleteTrip removes a trip; owned resources cascade.
func (s *TripService) DeleteTrip(tripID string) error {
	found, err := s.tripRepo.DeleteTrip(tripID)
	if err != nil {
		return utils.MapStorageError(err)
	}
	if !found {
		return utils.NewNotFoundError("Trip")
	}
	return nil
}

// requireTrip returns a 404 error when the trip does not exist. Shared by the
// child-resource services for their list and create paths.
func requireTrip(tripRepo *repository.TripRepository, tripID string) error {
	exists, err := tripRepo.TripExists(tripID)
	if err != nil {
		return err
	}
	if !exists {
		return utils.NewNotFoundError("Trip")
	}
	return nil
}

func validateStatus(status string) error {
	for _, valid := range utils.ValidStatuses {
		if status == valid {
			return nil
		}
	}
	return utils.NewFieldError("status", "must be one of draft, active, done")
}
