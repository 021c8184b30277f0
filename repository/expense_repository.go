package repository

import (
	"database/sql"
	"fmt"

	"github.com/jwoo-dev/tripnote-backend/models"
)

const expenseColumns = "id, trip_id, day_id, item, amount, currency, category, spent_at, note, created_at, updated_at"

// ExpenseRepository handles database operations for expenses
type ExpenseRepository struct {
	DB *sql.DB
}

// NewExpenseRepository creates a new ExpenseRepository
func NewExpenseRepository() *ExpenseRepository {
	return &ExpenseRepository{DB: GetDB()}
}

// StoreExpense inserts a single expense row.
func (r *ExpenseRepository) StoreExpense(expense *models.Expense) error {
	_, err := r.DB.Exec(
		`INSERT INTO expenses (id, trip_id, day_id, item, amount, currency, category, spent_at, note, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		expense.ID, expense.TripID, expense.DayID, expense.Item, expense.Amount,
		expense.Currency, expense.Category, expense.SpentAt, expense.Note,
		expense.CreatedAt, expense.UpdatedAt,
	)
	return err
}

// GetExpense retrieves an expense by ID. Returns (nil, nil) when it does not exist.
func (r *ExpenseRepository) GetExpense(id string) (*models.Expense, error) {
	row := r.DB.QueryRow("SELECT "+expenseColumns+" FROM expenses WHERE id = $1", id)
	expense, err := scanExpense(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %v", err)
	}
	return expense, nil
}

// ListExpenses returns all expenses of a trip, most recent spend first.
func (r *ExpenseRepository) ListExpenses(tripID string) ([]*models.Expense, error) {
	rows, err := r.DB.Query(
		"SELECT "+expenseColumns+" FROM expenses WHERE trip_id = $1 ORDER BY spent_at DESC, id DESC",
		tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %v", err)
	}
	defer rows.Close()

	expenses := []*models.Expense{}
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %v", err)
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

// PatchExpense applies a dynamic column-assignment list to one expense.
func (r *ExpenseRepository) PatchExpense(id string, assigns []Assignment, updatedAt models.Timestamp) (bool, error) {
	return patchByID("expenses", id, assigns, updatedAt)
}

// DeleteExpense removes an expense by ID.
func (r *ExpenseRepository) DeleteExpense(id string) (bool, error) {
	return deleteByID("expenses", id)
}

func scanExpense(s scanner) (*models.Expense, error) {
	var (
		expense               models.Expense
		dayID, category, note sql.NullString
	)

	err := s.Scan(&expense.ID, &expense.TripID, &dayID, &expense.Item, &expense.Amount,
		&expense.Currency, &category, &expense.SpentAt, &note,
		&expense.CreatedAt, &expense.UpdatedAt)
	if err != nil {
		return nil, err
	}

	expense.DayID = nullString(dayID)
	expense.Category = nullString(category)
	expense.Note = nullString(note)
	return &expense, nil
}
