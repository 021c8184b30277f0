package services

import (
	"github.com/jwoo-dev/tripnote-backend/models"
	"github.com/jwoo-dev/tripnote-backend/repository"
	"github.com/jwoo-dev/tripnote-backend/utils"
)

// ExpenseService handles expense operations
type ExpenseService struct {
	expenseRepo *repository.ExpenseRepository
	dayRepo     *repository.DayRepository
	tripRepo    *repository.TripRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService() *ExpenseService {
	return &ExpenseService{
		expenseRepo: repository.NewExpenseRepository(),
		dayRepo:     repository.NewDayRepository(),
		tripRepo:    repository.NewTripRepository(),
	}
}

// ListExpenses returns all expenses of a trip, most recent spend first.
func (s *ExpenseService) ListExpenses(tripID string) ([]*models.Expense, error) {
	if err := requireTrip(s.tripRepo, tripID); err != nil {
		return nil, err
	}
	return s.expenseRepo.ListExpenses(tripID)
}

// CreateExpense records a spend. A supplied day reference must belong to the
// same trip; the spend time defaults to now and the currency to the fixed
// fallback.
func (s *ExpenseService) CreateExpense(tripID string, body utils.Body) (*models.Expense, error) {
	if err := requireTrip(s.tripRepo, tripID); err != nil {
		return nil, err
	}

	item, err := utils.RequiredString(body, "item", "item", "name")
	if err != nil {
		return nil, err
	}
	amount, err := utils.RequiredInt(body, "amount", "amount")
	if err != nil {
		return nil, err
	}
	dayID, err := utils.OptionalString(body, "dayId", "dayId", "day_id")
	if err != nil {
		return nil, err
	}
	if dayID != nil {
		if err := requireDayInTrip(s.dayRepo, tripID, *dayID); err != nil {
			return nil, err
		}
	}
	currency, err := utils.OptionalString(body, "currency", "currency")
	if err != nil {
		return nil, err
	}
	category, err := utils.OptionalString(body, "category", "category")
	if err != nil {
		return nil, err
	}
	spentAt, err := utils.OptionalTime(body, "spentAt", "spentAt", "spent_at")
	if err != nil {
		return nil, err
	}
	note, err := utils.OptionalString(body, "note", "note")
	if err != nil {
		return nil, err
	}

	now := models.Now()
	expense := &models.Expense{
		ID:        utils.NewID(utils.ExpenseIDPrefix),
		TripID:    tripID,
		DayID:     dayID,
		Item:      item,
		Amount:    amount,
		Currency:  utils.DefaultCurrency,
		Category:  category,
		SpentAt:   now,
		Note:      note,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if currency != nil {
		expense.Currency = *currency
	}
	if spentAt != nil {
		expense.SpentAt = models.NewTimestamp(*spentAt)
	}

	if err := s.expenseRepo.StoreExpense(expense); err != nil {
		return nil, utils.MapStorageError(err)
	}
	return s.expenseRepo.GetExpense(expense.ID)
}

// BuildExpensePatch collects column assignments for the fields present in an
// expense patch body.
func BuildExpensePatch(body utils.Body) ([]repository.Assignment, error) {
	assigns := []repository.Assignment{}

	if utils.HasField(body, "item", "name") {
		item, err := utils.RequiredString(body, "item", "item", "name")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "item", Value: item})
	}
	if utils.HasField(body, "amount") {
		amount, err := utils.RequiredInt(body, "amount", "amount")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "amount", Value: amount})
	}
	if utils.HasField(body, "dayId", "day_id") {
		dayID, err := utils.OptionalString(body, "dayId", "dayId", "day_id")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "day_id", Value: dayID})
	}
	if utils.HasField(body, "currency") {
		currency, err := utils.RequiredString(body, "currency", "currency")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "currency", Value: currency})
	}
	if utils.HasField(body, "category") {
		category, err := utils.OptionalString(body, "category", "category")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "category", Value: category})
	}
	if utils.HasField(body, "spentAt", "spent_at") {
		spentAt, err := utils.RequiredTime(body, "spentAt", "spentAt", "spent_at")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "spent_at", Value: models.NewTimestamp(spentAt)})
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

// PatchExpense applies a partial update and returns the refreshed row.
func (s *ExpenseService) PatchExpense(expenseID string, body utils.Body) (*models.Expense, error) {
	assigns, err := BuildExpensePatch(body)
	if err != nil {
		return nil, err
	}
	if len(assigns) == 0 {
		return nil, utils.NewValidationError(utils.ErrNoFields)
	}

	found, err := s.expenseRepo.PatchExpense(expenseID, assigns, models.Now())
	if err != nil {
		return nil, utils.MapStorageError(err)
	}
	if !found {
		return nil, utils.NewNotFoundError("Expense")
	}

	expense, err := s.expenseRepo.GetExpense(expenseID)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, utils.NewNotFoundError("Expense")
	}
	return expense, nil
}

// DeleteExpense removes an expense by ID.
func (s *ExpenseService) DeleteExpense(expenseID string) error {
	found, err := s.expenseRepo.DeleteExpense(expenseID)
	if err != nil {
		return utils.MapStorageError(err)
	}
	if !found {
		return utils.NewNotFoundError("Expense")
	}
	return nil
}
