package services

import (
	"github.com/jwoo-dev/tripnote-backend/models"
	"github.com/jwoo-dev/tripnote-backend/repository"
	"github.com/jwoo-dev/tripnote-backend/utils"
)

// FlightService handles flight-leg operations
type FlightService struct {
	flightRepo *repository.FlightRepository
	tripRepo   *repository.TripRepository
}

// NewFlightService creates a new FlightService
func NewFlightService() *FlightService {
	return &FlightService{
		flightRepo: repository.NewFlightRepository(),
		tripRepo:   repository.NewTripRepository(),
	}
}

// ListFlights returns all flights of a trip in leg order.
func (s *FlightService) ListFlights(tripID string) ([]*models.Flight, error) {
	if err := requireTrip(s.tripRepo, tripID); err != nil {
		return nil, err
	}
	return s.flightRepo.ListFlights(tripID)
}

// BuildFlightCreate validates the fields of one flight leg. defaultLegOrder
// is used when the body carries no explicit leg order: the array position for
// nested creation, max+1 for standalone creation.
func BuildFlightCreate(tripID string, body utils.Body, defaultLegOrder int64, now models.Timestamp) (*models.Flight, error) {
	depAirport, err := utils.RequiredString(body, "depAirport", "depAirport", "dep_airport", "from")
	if err != nil {
		return nil, err
	}
	arrAirport, err := utils.RequiredString(body, "arrAirport", "arrAirport", "arr_airport", "to")
	if err != nil {
		return nil, err
	}
	depTime, err := utils.RequiredTime(body, "depTime", "depTime", "dep_time")
	if err != nil {
		return nil, err
	}
	arrTime, err := utils.RequiredTime(body, "arrTime", "arrTime", "arr_time")
	if err != nil {
		return nil, err
	}
	airline, err := utils.RequiredString(body, "airline", "airline")
	if err != nil {
		return nil, err
	}
	flightNo, err := utils.RequiredString(body, "flightNo", "flightNo", "flight_no")
	if err != nil {
		return nil, err
	}
	legType, err := utils.OptionalString(body, "legType", "legType", "leg_type")
	if err != nil {
		return nil, err
	}
	legOrder, err := utils.OptionalInt(body, "legOrder", "legOrder", "leg_order")
	if err != nil {
		return nil, err
	}
	depName, err := utils.OptionalString(body, "depAirportName", "depAirportName", "dep_airport_name")
	if err != nil {
		return nil, err
	}
	arrName, err := utils.OptionalString(body, "arrAirportName", "arrAirportName", "arr_airport_name")
	if err != nil {
		return nil, err
	}
	price, err := utils.OptionalInt(body, "price", "price")
	if err != nil {
		return nil, err
	}
	currency, err := utils.OptionalString(body, "currency", "currency")
	if err != nil {
		return nil, err
	}
	note, err := utils.OptionalString(body, "note", "note")
	if err != nil {
		return nil, err
	}

	flight := &models.Flight{
		ID:             utils.NewID(utils.FlightIDPrefix),
		TripID:         tripID,
		LegType:        utils.LegMulti,
		LegOrder:       defaultLegOrder,
		Airline:        airline,
		FlightNo:       flightNo,
		DepAirport:     depAirport,
		ArrAirport:     arrAirport,
		DepAirportName: depName,
		ArrAirportName: arrName,
		DepTime:        models.NewTimestamp(depTime),
		ArrTime:        models.NewTimestamp(arrTime),
		Price:          price,
		Currency:       utils.DefaultCurrency,
		Note:           note,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if legType != nil {
		if err := validateLegType(*legType); err != nil {
			return nil, err
		}
		flight.LegType = *legType
	}
	if legOrder != nil {
		flight.LegOrder = *legOrder
	}
	if currency != nil {
		flight.Currency = *currency
	}
	return flight, nil
}

// CreateFlight adds a flight leg to a trip. Leg order defaults to the next
// sequential position for the trip.
func (s *FlightService) CreateFlight(tripID string, body utils.Body) (*models.Flight, error) {
	if err := requireTrip(s.tripRepo, tripID); err != nil {
		return nil, err
	}

	nextOrder, err := s.flightRepo.NextLegOrder(tripID)
	if err != nil {
		return nil, err
	}

	flight, err := BuildFlightCreate(tripID, body, nextOrder, models.Now())
	if err != nil {
		return nil, err
	}

	if err := s.flightRepo.StoreFlight(flight); err != nil {
		return nil, utils.MapStorageError(err)
	}
	return s.flightRepo.GetFlight(flight.ID)
}

// BuildFlightPatch collects column assignments for the fields present in a
// flight patch body.
func BuildFlightPatch(body utils.Body) ([]repository.Assignment, error) {
	assigns := []repository.Assignment{}

	if utils.HasField(body, "legType", "leg_type") {
		legType, err := utils.RequiredString(body, "legType", "legType", "leg_type")
		if err != nil {
			return nil, err
		}
		if err := validateLegType(legType); err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "leg_type", Value: legType})
	}
	if utils.HasField(body, "legOrder", "leg_order") {
		legOrder, err := utils.RequiredInt(body, "legOrder", "legOrder", "leg_order")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "leg_order", Value: legOrder})
	}
	if utils.HasField(body, "airline") {
		airline, err := utils.RequiredString(body, "airline", "airline")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "airline", Value: airline})
	}
	if utils.HasField(body, "flightNo", "flight_no") {
		flightNo, err := utils.RequiredString(body, "flightNo", "flightNo", "flight_no")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "flight_no", Value: flightNo})
	}
	if utils.HasField(body, "depAirport", "dep_airport", "from") {
		depAirport, err := utils.RequiredString(body, "depAirport", "depAirport", "dep_airport", "from")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "dep_airport", Value: depAirport})
	}
	if utils.HasField(body, "arrAirport", "arr_airport", "to") {
		arrAirport, err := utils.RequiredString(body, "arrAirport", "arrAirport", "arr_airport", "to")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "arr_airport", Value: arrAirport})
	}
	if utils.HasField(body, "depAirportName", "dep_airport_name") {
		depName, err := utils.OptionalString(body, "depAirportName", "depAirportName", "dep_airport_name")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "dep_airport_name", Value: depName})
	}
	if utils.HasField(body, "arrAirportName", "arr_airport_name") {
		arrName, err := utils.OptionalString(body, "arrAirportName", "arrAirportName", "arr_airport_name")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "arr_airport_name", Value: arrName})
	}
	if utils.HasField(body, "depTime", "dep_time") {
		depTime, err := utils.RequiredTime(body, "depTime", "depTime", "dep_time")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "dep_time", Value: models.NewTimestamp(depTime)})
	}
	if utils.HasField(body, "arrTime", "arr_time") {
		arrTime, err := utils.RequiredTime(body, "arrTime", "arrTime", "arr_time")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "arr_time", Value: models.NewTimestamp(arrTime)})
	}
	if utils.HasField(body, "price") {
		price, err := utils.OptionalInt(body, "price", "price")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "price", Value: price})
	}
	if utils.HasField(body, "currency") {
		currency, err := utils.RequiredString(body, "currency", "currency")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "currency", Value: currency})
	}
	if utils.HasField(body, "note") {
		note, err := utils.OptionalString(body, "note", "note")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "note", Value: note})
	}

	return assigns, nil
}

// PatchFlight applies a partial update and returns the refreshed row.
func (s *FlightService) PatchFlight(flightID string, body utils.Body) (*models.Flight, error) {
	assigns, err := BuildFlightPatch(body)
	if err != nil {
		return nil, err
	}
	if len(assigns) == 0 {
		return nil, utils.NewValidationError(utils.ErrNoFields)
	}

	found, err := s.flightRepo.PatchFlight(flightID, assigns, models.Now())
	if err != nil {
		return nil, utils.MapStorageError(err)
	}
	if !found {
		return nil, utils.NewNotFoundError("Flight")
	}

	flight, err := s.flightRepo.GetFlight(flightID)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, utils.NewNotFoundError("Flight")
	}
	return flight, nil
}

// DeleteFlight removes a flight by ID.
func (s *FlightService) DeleteFlight(flightID string) error {
	found, err := s.flightRepo.DeleteFlight(flightID)
	if err != nil {
		return utils.MapStorageError(err)
	}
	if !found {
		return utils.NewNotFoundError("Flight")
	}
	return nil
}

func validateLegType(legType string) error {
	for _, valid := range utils.ValidLegTypes {
		if legType == valid {
			return nil
		}
	}
	return utils.NewFieldError("legType", "must be one of outbound, inbound, multi")
}
