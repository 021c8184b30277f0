package services

import (
	"github.com/jwoo-dev/tripnote-backend/models"
	"github.com/jwoo-dev/tripnote-backend/repository"
	"github.com/jwoo-dev/tripnote-backend/utils"
)

// PlanService handles scheduled-plan operations
type PlanService struct {
	planRepo *repository.PlanRepository
	dayRepo  *repository.DayRepository
	tripRepo *repository.TripRepository
}

// NewPlanService creates a new PlanService
func NewPlanService() *PlanService {
	return &PlanService{
		planRepo: repository.NewPlanRepository(),
		dayRepo:  repository.NewDayRepository(),
		tripRepo: repository.NewTripRepository(),
	}
}

// ListPlans returns all plans of a trip in sort order.
func (s *PlanService) ListPlans(tripID string) ([]*models.Plan, error) {
	if err := requireTrip(s.tripRepo, tripID); err != nil {
		return nil, err
	}
	return s.planRepo.ListPlans(tripID)
}

// CreatePlan adds a plan to a day of the trip. The referenced day must belong
// to the same trip.
func (s *PlanService) CreatePlan(tripID string, body utils.Body) (*models.Plan, error) {
	if err := requireTrip(s.tripRepo, tripID); err != nil {
		return nil, err
	}

	dayID, err := utils.RequiredString(body, "dayId", "dayId", "day_id")
	if err != nil {
		return nil, err
	}
	if err := requireDayInTrip(s.dayRepo, tripID, dayID); err != nil {
		return nil, err
	}

	placeName, err := utils.RequiredString(body, "placeName", "placeName", "place_name", "name")
	if err != nil {
		return nil, err
	}
	startMin, err := utils.OptionalInt(body, "startMin", "startMin", "start_min")
	if err != nil {
		return nil, err
	}
	endMin, err := utils.OptionalInt(body, "endMin", "endMin", "end_min")
	if err != nil {
		return nil, err
	}
	detail, err := utils.OptionalString(body, "detail", "detail")
	if err != nil {
		return nil, err
	}
	mapURL, err := utils.OptionalString(body, "mapUrl", "mapUrl", "map_url")
	if err != nil {
		return nil, err
	}
	foodNote, err := utils.OptionalString(body, "foodNote", "foodNote", "food_note")
	if err != nil {
		return nil, err
	}
	transportNote, err := utils.OptionalString(body, "transportNote", "transportNote", "transport_note")
	if err != nil {
		return nil, err
	}
	costEstimate, err := utils.OptionalInt(body, "costEstimate", "costEstimate", "cost_estimate")
	if err != nil {
		return nil, err
	}
	sortNo, err := utils.OptionalInt(body, "sortNo", "sortNo", "sort_no")
	if err != nil {
		return nil, err
	}

	now := models.Now()
	plan := &models.Plan{
		ID:            utils.NewID(utils.PlanIDPrefix),
		TripID:        tripID,
		DayID:         dayID,
		PlaceName:     placeName,
		StartMin:      startMin,
		EndMin:        endMin,
		Detail:        detail,
		MapURL:        mapURL,
		FoodNote:      foodNote,
		TransportNote: transportNote,
		CostEstimate:  costEstimate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if sortNo != nil {
		plan.SortNo = *sortNo
	}

	if err := s.planRepo.StorePlan(plan); err != nil {
		return nil, utils.MapStorageError(err)
	}
	return s.planRepo.GetPlan(plan.ID)
}

// BuildPlanPatch collects column assignments for the fields present in a plan
// patch body. The day reference is not patchable; a plan stays on its day.
func BuildPlanPatch(body utils.Body) ([]repository.Assignment, error) {
	assigns := []repository.Assignment{}

	if utils.HasField(body, "placeName", "place_name", "name") {
		placeName, err := utils.RequiredString(body, "placeName", "placeName", "place_name", "name")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "place_name", Value: placeName})
	}
	if utils.HasField(body, "startMin", "start_min") {
		startMin, err := utils.OptionalInt(body, "startMin", "startMin", "start_min")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "start_min", Value: startMin})
	}
	if utils.HasField(body, "endMin", "end_min") {
		endMin, err := utils.OptionalInt(body, "endMin", "endMin", "end_min")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "end_min", Value: endMin})
	}
	if utils.HasField(body, "detail") {
		detail, err := utils.OptionalString(body, "detail", "detail")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "detail", Value: detail})
	}
	if utils.HasField(body, "mapUrl", "map_url") {
		mapURL, err := utils.OptionalString(body, "mapUrl", "mapUrl", "map_url")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "map_url", Value: mapURL})
	}
	if utils.HasField(body, "foodNote", "food_note") {
		foodNote, err := utils.OptionalString(body, "foodNote", "foodNote", "food_note")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "food_note", Value: foodNote})
	}
	if utils.HasField(body, "transportNote", "transport_note") {
		transportNote, err := utils.OptionalString(body, "transportNote", "transportNote", "transport_note")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "transport_note", Value: transportNote})
	}
	if utils.HasField(body, "costEstimate", "cost_estimate") {
		costEstimate, err := utils.OptionalInt(body, "costEstimate", "costEstimate", "cost_estimate")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "cost_estimate", Value: costEstimate})
	}
	if utils.HasField(body, "sortNo", "sort_no") {
		sortNo, err := utils.RequiredInt(body, "sortNo", "sortNo", "sort_no")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "sort_no", Value: sortNo})
	}

	return assigns, nil
}

// PatchPlan applies a partial update and returns the refreshed row.
func (s *PlanService) PatchPlan(planID string, body utils.Body) (*models.Plan, error) {
	assigns, err := BuildPlanPatch(body)
	if err != nil {
		return nil, err
	}
	if len(assigns) == 0 {
		return nil, utils.NewValidationError(utils.ErrNoFields)
	}

	found, err := s.planRepo.PatchPlan(planID, assigns, models.Now())
	if err != nil {
		return nil, utils.MapStorageError(err)
	}
	if !found {
		return nil, utils.NewNotFoundError("Plan")
	}

	plan, err := s.planRepo.GetPlan(planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, utils.NewNotFoundError("Plan")
	}
	return plan, nil
}

// DeletePlan removes a plan by ID.
func (s *PlanService) DeletePlan(planID string) error {
	found, err := s.planRepo.DeletePlan(planID)
	if err != nil {
		return utils.MapStorageError(err)
	}
	if !found {
		return utils.NewNotFoundError("Plan")
	}
	return nil
}
