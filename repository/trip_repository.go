package repository

import (
	"database/sql"
	"fmt"

	"github.com/jwoo-dev/tripnote-backend/models"
)

const tripColumns = "id, title, destination, start_date, end_date, currency, memo, status, created_at, updated_at"

// TripRepository handles database operations for trips
type TripRepository struct {
	DB *sql.DB
}

// NewTripRepository creates a new TripRepository
func NewTripRepository() *TripRepository {
	return &TripRepository{DB: GetDB()}
}

// CreateTripAggregate inserts the trip, its generated days, and any nested
// flights and hotels in one transaction. Either everything commits or
// nothing does.
func (r *TripRepository) CreateTripAggregate(trip *models.Trip, days []*models.Day, flights []*models.Flight, hotels []*models.Hotel) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO trips (id, title, destination, start_date, end_date, currency, memo, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		trip.ID, trip.Title, trip.Destination, trip.StartDate, trip.EndDate,
		trip.Currency, trip.Memo, trip.Status, trip.CreatedAt, trip.UpdatedAt,
	)
	if err != nil {
		return err
	}

	for _, day := range days {
		_, err = tx.Exec(
			`INSERT INTO days (id, trip_id, day_no, date, title, note, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			day.ID, day.TripID, day.DayNo, day.Date, day.Title, day.Note, day.CreatedAt, day.UpdatedAt,
		)
		if err != nil {
			return err
		}
	}

	for _, flight := range flights {
		_, err = tx.Exec(
			`INSERT INTO flights (id, trip_id, leg_type, leg_order, airline, flight_no, dep_airport, arr_airport,
			                      dep_airport_name, arr_airport_name, dep_time, arr_time, price, currency, note,
			                      created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
			flight.ID, flight.TripID, flight.LegType, flight.LegOrder, flight.Airline, flight.FlightNo,
			flight.DepAirport, flight.ArrAirport, flight.DepAirportName, flight.ArrAirportName,
			flight.DepTime, flight.ArrTime, flight.Price, flight.Currency, flight.Note,
			flight.CreatedAt, flight.UpdatedAt,
		)
		if err != nil {
			return err
		}
	}

	for _, hotel := range hotels {
		_, err = tx.Exec(
			`INSERT INTO hotels (id, trip_id, name, city, checkin_date, checkout_date, confirmation_no,
			                     total_price, currency, note, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			hotel.ID, hotel.TripID, hotel.Name, hotel.City, hotel.CheckinDate, hotel.CheckoutDate,
			hotel.ConfirmationNo, hotel.TotalPrice, hotel.Currency, hotel.Note,
			hotel.CreatedAt, hotel.UpdatedAt,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetTrip retrieves a trip by ID. Returns (nil, nil) when it does not exist.
func (r *TripRepository) GetTrip(id string) (*models.Trip, error) {
	row := r.DB.QueryRow("SELECT "+tripColumns+" FROM trips WHERE id = $1", id)
	trip, err := scanTrip(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %v", err)
	}
	return trip, nil
}

// TripExists reports whether a trip row exists.
func (r *TripRepository) TripExists(id string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow("SELECT EXISTS (SELECT 1 FROM trips WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check trip: %v", err)
	}
	return exists, nil
}

// ListTrips returns all trips, most recently updated first.
func (r *TripRepository) ListTrips() ([]*models.Trip, error) {
	rows, err := r.DB.Query("SELECT " + tripColumns + " FROM trips ORDER BY updated_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %v", err)
	}
	defer rows.Close()

	trips := []*models.Trip{}
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %v", err)
		}
		trips = append(trips, trip)
	}
	return trips, rows.Err()
}

// PatchTrip applies a dynamic column-assignment list to one trip.
// Returns false when no row was affected.
func (r *TripRepository) PatchTrip(id string, assigns []Assignment, updatedAt models.Timestamp) (bool, error) {
	return patchByID("trips", id, assigns, updatedAt)
}

// DeleteTrip removes a trip; owned rows cascade at the schema level.
func (r *TripRepository) DeleteTrip(id string) (bool, error) {
	return deleteByID("trips", id)
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTrip(s scanner) (*models.Trip, error) {
	var (
		trip               models.Trip
		startDate, endDate sql.NullTime
		memo               sql.NullString
	)

	err := s.Scan(&trip.ID, &trip.Title, &trip.Destination, &startDate, &endDate,
		&trip.Currency, &memo, &trip.Status, &trip.CreatedAt, &trip.UpdatedAt)
	if err != nil {
		return nil, err
	}

	trip.StartDate = startDate.Time.Format("2006-01-02")
	trip.EndDate = endDate.Time.Format("2006-01-02")
	trip.Memo = nullString(memo)
	return &trip, nil
}
