package repository

import (
	"database/sql"
	"fmt"

	"github.com/jwoo-dev/tripnote-backend/models"
)

const flightColumns = `id, trip_id, leg_type, leg_order, airline, flight_no, dep_airport, arr_airport,
	dep_airport_name, arr_airport_name, dep_time, arr_time, price, currency, note, created_at, updated_at`

// FlightRepository handles database operations for flights
type FlightRepository struct {
	DB *sql.DB
}

// NewFlightRepository creates a new FlightRepository
func NewFlightRepository() *FlightRepository {
	return &FlightRepository{DB: GetDB()}
}

// StoreFlight inserts a single flight row.
func (r *FlightRepository) StoreFlight(flight *models.Flight) error {
	_, err := r.DB.Exec(
		`INSERT INTO flights (id, trip_id, leg_type, leg_order, airline, flight_no, dep_airport, arr_airport,
		                      dep_airport_name, arr_airport_name, dep_time, arr_time, price, currency, note,
		                      created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		flight.ID, flight.TripID, flight.LegType, flight.LegOrder, flight.Airline, flight.FlightNo,
		flight.DepAirport, flight.ArrAirport, flight.DepAirportName, flight.ArrAirportName,
		flight.DepTime, flight.ArrTime, flight.Price, flight.Currency, flight.Note,
		flight.CreatedAt, flight.UpdatedAt,
	)
	return err
}

// GetFlight retrieves a flight by ID. Returns (nil, nil) when it does not exist.
func (r *FlightRepository) GetFlight(id string) (*models.Flight, error) {
	row := r.DB.QueryRow("SELECT "+flightColumns+" FROM flights WHERE id = $1", id)
	flight, err := scanFlight(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get flight: %v", err)
	}
	return flight, nil
}

// ListFlights returns all flights of a trip in leg order.
func (r *FlightRepository) ListFlights(tripID string) ([]*models.Flight, error) {
	rows, err := r.DB.Query(
		"SELECT "+flightColumns+" FROM flights WHERE trip_id = $1 ORDER BY leg_order ASC, dep_time ASC, id ASC",
		tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list flights: %v", err)
	}
	defer rows.Close()

	flights := []*models.Flight{}
	for rows.Next() {
		flight, err := scanFlight(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan flight: %v", err)
		}
		flights = append(flights, flight)
	}
	return flights, rows.Err()
}

// NextLegOrder computes max(leg_order)+1 for a trip. Same read-then-insert
// semantics as DayRepository.NextDayNo.
func (r *FlightRepository) NextLegOrder(tripID string) (int64, error) {
	var next int64
	err := r.DB.QueryRow(
		"SELECT COALESCE(MAX(leg_order), 0) + 1 FROM flights WHERE trip_id = $1", tripID).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("failed to compute next leg order: %v", err)
	}
	return next, nil
}

// PatchFlight applies a dynamic column-assignment list to one flight.
func (r *FlightRepository) PatchFlight(id string, assigns []Assignment, updatedAt models.Timestamp) (bool, error) {
	return patchByID("flights", id, assigns, updatedAt)
}

// DeleteFlight removes a flight by ID.
func (r *FlightRepository) DeleteFlight(id string) (bool, error) {
	return deleteByID("flights", id)
}

func scanFlight(s scanner) (*models.Flight, error) {
	var (
		flight                 models.Flight
		depName, arrName, note sql.NullString
		price                  sql.NullInt64
	)

	err := s.Scan(&flight.ID, &flight.TripID, &flight.LegType, &flight.LegOrder,
		&flight.Airline, &flight.FlightNo, &flight.DepAirport, &flight.ArrAirport,
		&depName, &arrName, &flight.DepTime, &flight.ArrTime, &price,
		&flight.Currency, &note, &flight.CreatedAt, &flight.UpdatedAt)
	if err != nil {
		return nil, err
	}

	flight.DepAirportName = nullString(depName)
	flight.ArrAirportName = nullString(arrName)
	flight.Price = nullInt(price)
	flight.Note = nullString(note)
	return &flight, nil
}
