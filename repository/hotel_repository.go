package repository

import (
	"database/sql"
	"fmt"

	"github.com/jwoo-dev/tripnote-backend/models"
)

const hotelColumns = `id, trip_id, name, city, checkin_date, checkout_date, confirmation_no,
	total_price, currency, note, created_at, updated_at`

// HotelRepository handles database operations for hotels
type HotelRepository struct {
	DB *sql.DB
}

// NewHotelRepository creates a new HotelRepository
func NewHotelRepository() *HotelRepository {
	return &HotelRepository{DB: GetDB()}
}

// StoreHotel inserts a single hotel row.
func (r *HotelRepository) StoreHotel(hotel *models.Hotel) error {
	_, err := r.DB.Exec(
		`INSERT INTO hotels (id, trip_id, name, city, checkin_date, checkout_date, confirmation_no,
		                     total_price, currency, note, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		hotel.ID, hotel.TripID, hotel.Name, hotel.City, hotel.CheckinDate, hotel.CheckoutDate,
		hotel.ConfirmationNo, hotel.TotalPrice, hotel.Currency, hotel.Note,
		hotel.CreatedAt, hotel.UpdatedAt,
	)
	return err
}

// GetHotel retrieves a hotel by ID. Returns (nil, nil) when it does not exist.
func (r *HotelRepository) GetHotel(id string) (*models.Hotel, error) {
	row := r.DB.QueryRow("SELECT "+hotelColumns+" FROM hotels WHERE id = $1", id)
	hotel, err := scanHotel(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get hotel: %v", err)
	}
	return hotel, nil
}

// ListHotels returns all hotels of a trip ordered by check-in date.
func (r *HotelRepository) ListHotels(tripID string) ([]*models.Hotel, error) {
	rows, err := r.DB.Query(
		"SELECT "+hotelColumns+" FROM hotels WHERE trip_id = $1 ORDER BY checkin_date ASC, id ASC",
		tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hotels: %v", err)
	}
	defer rows.Close()

	hotels := []*models.Hotel{}
	for rows.Next() {
		hotel, err := scanHotel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hotel: %v", err)
		}
		hotels = append(hotels, hotel)
	}
	return hotels, rows.Err()
}

// PatchHotel applies a dynamic column-assignment list to one hotel.
func (r *HotelRepository) PatchHotel(id string, assigns []Assignment, updatedAt models.Timestamp) (bool, error) {
	return patchByID("hotels", id, assigns, updatedAt)
}

// DeleteHotel removes a hotel by ID.
func (r *HotelRepository) DeleteHotel(id string) (bool, error) {
	return deleteByID("hotels", id)
}

func scanHotel(s scanner) (*models.Hotel, error) {
	var (
		hotel              models.Hotel
		checkin, checkout  sql.NullTime
		confirmation, note sql.NullString
		totalPrice         sql.NullInt64
	)

	err := s.Scan(&hotel.ID, &hotel.TripID, &hotel.Name, &hotel.City, &checkin, &checkout,
		&confirmation, &totalPrice, &hotel.Currency, &note, &hotel.CreatedAt, &hotel.UpdatedAt)
	if err != nil {
		return nil, err
	}

	hotel.CheckinDate = checkin.Time.Format("2006-01-02")
	hotel.CheckoutDate = checkout.Time.Format("2006-01-02")
	hotel.ConfirmationNo = nullString(confirmation)
	hotel.TotalPrice = nullInt(totalPrice)
	hotel.Note = nullString(note)
	return &hotel, nil
}
