package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jwoo-dev/tripnote-backend/models"
	"github.com/jwoo-dev/tripnote-backend/utils"
)

// ExcelService exports a trip's expenses as a spreadsheet
type ExcelService struct {
	tripService    *TripService
	expenseService *ExpenseService
}

// NewExcelService creates a new Excel service
func NewExcelService(tripService *TripService, expenseService *ExpenseService) *ExcelService {
	return &ExcelService{
		tripService:    tripService,
		expenseService: expenseService,
	}
}

// ExportExpenses generates an Excel file with one row per expense plus a
// totals row per currency.
func (s *ExcelService) ExportExpenses(tripID string) (*excelize.File, string, error) {
	detail, err := s.tripService.GetTripDetail(tripID)
	if err != nil {
		return nil, "", err
	}

	f := buildExpenseSheet(detail.Expenses)

	filename := fmt.Sprintf("%s_Expenses_%s.xlsx",
		utils.CleanFileName(detail.Trip.Title),
		time.Now().Format("2006-01-02"))

	return f, filename, nil
}

// buildExpenseSheet renders the expense rows and per-currency totals.
// Totals are ordered by currency code so repeated exports are identical.
func buildExpenseSheet(expenses []*models.Expense) *excelize.File {
	f := excelize.NewFile()
	sheetName := "Expenses"
	f.NewSheet(sheetName)
	sheetIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIndex)
	f.DeleteSheet("Sheet1")

	headers := []string{"Spent At", "Item", "Category", "Amount", "Currency", "Note"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", string(rune('A'+len(headers)-1))), headerStyle)

	totals := map[string]int64{}
	for i, expense := range expenses {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), expense.SpentAt.UTC().Format(models.TimeFormat))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), expense.Item)
		if expense.Category != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), *expense.Category)
		}
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), expense.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), expense.Currency)
		if expense.Note != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), *expense.Note)
		}
		totals[expense.Currency] += expense.Amount
	}

	currencies := make([]string, 0, len(totals))
	for currency := range totals {
		currencies = append(currencies, currency)
	}
	sort.Strings(currencies)

	totalRow := len(expenses) + 3
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", totalRow), "Total")
	for _, currency := range currencies {
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", totalRow), totals[currency])
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", totalRow), currency)
		totalRow++
	}

	return f
}
