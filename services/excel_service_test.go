package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwoo-dev/tripnote-backend/models"
)

func TestBuildExpenseSheet_TotalsOrderedByCurrency(t *testing.T) {
	now := models.NewTimestamp(time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC))
	expenses := []*models.Expense{
		{ID: "exp_1", TripID: "trp_x", Item: "Ryokan", Amount: 48000, Currency: "JPY", SpentAt: now},
		{ID: "exp_2", TripID: "trp_x", Item: "Taxi", Amount: 15000, Currency: "KRW", SpentAt: now},
		{ID: "exp_3", TripID: "trp_x", Item: "Lunch", Amount: 2000, Currency: "JPY", SpentAt: now},
	}

	f := buildExpenseSheet(expenses)

	item, err := f.GetCellValue("Expenses", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Ryokan", item)

	label, err := f.GetCellValue("Expenses", "A5")
	require.NoError(t, err)
	assert.Equal(t, "Total", label)

	// Totals rows come out sorted by currency code: JPY before KRW
	currency, err := f.GetCellValue("Expenses", "E5")
	require.NoError(t, err)
	assert.Equal(t, "JPY", currency)
	total, err := f.GetCellValue("Expenses", "D5")
	require.NoError(t, err)
	assert.Equal(t, "50000", total)

	currency, err = f.GetCellValue("Expenses", "E6")
	require.NoError(t, err)
	assert.Equal(t, "KRW", currency)
	total, err = f.GetCellValue("Expenses", "D6")
	require.NoError(t, err)
	assert.Equal(t, "15000", total)
}

func TestBuildExpenseSheet_Empty(t *testing.T) {
	f := buildExpenseSheet(nil)

	header, err := f.GetCellValue("Expenses", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Spent At", header)

	label, err := f.GetCellValue("Expenses", "A3")
	require.NoError(t, err)
	assert.Equal(t, "Total", label)
}
