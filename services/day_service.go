package services

import (
	"github.com/jwoo-dev/tripnote-backend/models"
	"github.com/jwoo-dev/tripnote-backend/repository"
	"github.com/jwoo-dev/tripnote-backend/utils"
)

// DayService handles day operations
type DayService struct {
	dayRepo  *repository.DayRepository
	tripRepo *repository.TripRepository
}

// NewDayService creates a new DayService
func NewDayService() *DayService {
	return &DayService{
		dayRepo:  repository.NewDayRepository(),
		tripRepo: repository.NewTripRepository(),
	}
}

// ListDays returns all days of a trip in day-number order.
func (s *DayService) ListDays(tripID string) ([]*models.Day, error) {
	if err := requireTrip(s.tripRepo, tripID); err != nil {
		return nil, err
	}
	return s.dayRepo.ListDays(tripID)
}

// CreateDay adds a day to a trip. When no day number is supplied the next
// sequential number is computed at insert time; a concurrent blind append may
// collide on the unique constraint and surface as 409.
func (s *DayService) CreateDay(tripID string, body utils.Body) (*models.Day, error) {
	if err := requireTrip(s.tripRepo, tripID); err != nil {
		return nil, err
	}

	date, err := utils.RequiredDate(body, "date", "date")
	if err != nil {
		return nil, err
	}
	dayNo, err := utils.OptionalInt(body, "dayNo", "dayNo", "day_no")
	if err != nil {
		return nil, err
	}
	title, err := utils.OptionalString(body, "title", "title")
	if err != nil {
		return nil, err
	}
	note, err := utils.OptionalString(body, "note", "note")
	if err != nil {
		return nil, err
	}

	if dayNo == nil {
		next, err := s.dayRepo.NextDayNo(tripID)
		if err != nil {
			return nil, err
		}
		dayNo = &next
	}

	now := models.Now()
	day := &models.Day{
		ID:        utils.NewID(utils.DayIDPrefix),
		TripID:    tripID,
		DayNo:     *dayNo,
		Date:      date,
		Title:     title,
		Note:      note,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.dayRepo.StoreDay(day); err != nil {
		return nil, utils.MapStorageError(err)
	}
	return s.dayRepo.GetDay(day.ID)
}

// BuildDayPatch collects column assignments for the fields present in a day
// patch body.
func BuildDayPatch(body utils.Body) ([]repository.Assignment, error) {
	assigns := []repository.Assignment{}

	if utils.HasField(body, "date") {
		date, err := utils.RequiredDate(body, "date", "date")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "date", Value: date})
	}
	if utils.HasField(body, "dayNo", "day_no") {
		dayNo, err := utils.RequiredInt(body, "dayNo", "dayNo", "day_no")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "day_no", Value: dayNo})
	}
	if utils.HasField(body, "title") {
		title, err := utils.OptionalString(body, "title", "title")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "title", Value: title})
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

// PatchDay applies a partial update and returns the refreshed row.
func (s *DayService) PatchDay(dayID string, body utils.Body) (*models.Day, error) {
	assigns, err := BuildDayPatch(body)
	if err != nil {
		return nil, err
	}
	if len(assigns) == 0 {
		return nil, utils.NewValidationError(utils.ErrNoFields)
	}

	found, err := s.dayRepo.PatchDay(dayID, assigns, models.Now())
	if err != nil {
		return nil, utils.MapStorageError(err)
	}
	if !found {
		return nil, utils.NewNotFoundError("Day")
	}

	day, err := s.dayRepo.GetDay(dayID)
	if err != nil {
		return nil, err
	}
	if day == nil {
		return nil, utils.NewNotFoundError("Day")
	}
	return day, nil
}

// DeleteDay removes a day by ID.
func (s *DayService) DeleteDay(dayID string) error {
	found, err := s.dayRepo.DeleteDay(dayID)
	if err != nil {
		return utils.MapStorageError(err)
	}
	if !found {
		return utils.NewNotFoundError("Day")
	}
	return nil
}

// requireDayInTrip verifies that a day exists and belongs to the given trip.
// A missing day and a day from another trip both fail the same way.
func requireDayInTrip(dayRepo *repository.DayRepository, tripID, dayID string) error {
	ownerID, err := dayRepo.DayTripID(dayID)
	if err != nil {
		return err
	}
	if ownerID != tripID {
		return utils.NewValidationError("dayId does not belong to this trip")
	}
	return nil
}
