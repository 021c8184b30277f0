package repository

import (
	"database/sql"
	"fmt"

	"github.com/jwoo-dev/tripnote-backend/models"
)

const dayColumns = "id, trip_id, day_no, date, title, note, created_at, updated_at"

// DayRepository handles database operations for days
type DayRepository struct {
	DB *sql.DB
}

// NewDayRepository creates a new DayRepository
func NewDayRepository() *DayRepository {
	return &DayRepository{DB: GetDB()}
}

// StoreDay inserts a single day row.
func (r *DayRepository) StoreDay(day *models.Day) error {
	_, err := r.DB.Exec(
		`INSERT INTO days (id, trip_id, day_no, date, title, note, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		day.ID, day.TripID, day.DayNo, day.Date, day.Title, day.Note, day.CreatedAt, day.UpdatedAt,
	)
	return err
}

// GetDay retrieves a day by ID. Returns (nil, nil) when it does not exist.
func (r *DayRepository) GetDay(id string) (*models.Day, error) {
	row := r.DB.QueryRow("SELECT "+dayColumns+" FROM days WHERE id = $1", id)
	day, err := scanDay(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get day: %v", err)
	}
	return day, nil
}

// ListDays returns all days of a trip in canonical order.
func (r *DayRepository) ListDays(tripID string) ([]*models.Day, error) {
	rows, err := r.DB.Query(
		"SELECT "+dayColumns+" FROM days WHERE trip_id = $1 ORDER BY day_no ASC, date ASC", tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list days: %v", err)
	}
	defer rows.Close()

	days := []*models.Day{}
	for rows.Next() {
		day, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan day: %v", err)
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

// NextDayNo computes max(day_no)+1 for a trip. Read-then-insert: concurrent
// callers may race and one of them hits the trip/day_no unique constraint.
func (r *DayRepository) NextDayNo(tripID string) (int64, error) {
	var next int64
	err := r.DB.QueryRow(
		"SELECT COALESCE(MAX(day_no), 0) + 1 FROM days WHERE trip_id = $1", tripID).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("failed to compute next day number: %v", err)
	}
	return next, nil
}

// DayTripID returns the owning trip of a day, or "" if the day is missing.
func (r *DayRepository) DayTripID(dayID string) (string, error) {
	var tripID string
	err := r.DB.QueryRow("SELECT trip_id FROM days WHERE id = $1", dayID).Scan(&tripID)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve day owner: %v", err)
	}
	return tripID, nil
}

// PatchDay applies a dynamic column-assignment list to one day.
func (r *DayRepository) PatchDay(id string, assigns []Assignment, updatedAt models.Timestamp) (bool, error) {
	return patchByID("days", id, assigns, updatedAt)
}

// DeleteDay removes a day; its plans cascade, expense references are nulled.
func (r *DayRepository) DeleteDay(id string) (bool, error) {
	return deleteByID("days", id)
}

func scanDay(s scanner) (*models.Day, error) {
	var (
		day         models.Day
		date        sql.NullTime
		title, note sql.NullString
	)

	err := s.Scan(&day.ID, &day.TripID, &day.DayNo, &date, &title, &note, &day.CreatedAt, &day.UpdatedAt)
	if err != nil {
		return nil, err
	}

	day.Date = date.Time.Format("2006-01-02")
	day.Title = nullString(title)
	day.Note = nullString(note)
	return &day, nil
}
