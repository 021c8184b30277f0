package repository

import (
	"database/sql"
	"fmt"

	"github.com/jwoo-dev/tripnote-backend/models"
)

const planColumns = `id, trip_id, day_id, place_name, start_min, end_min, detail, map_url,
	food_note, transport_note, cost_estimate, sort_no, created_at, updated_at`

// PlanRepository handles database operations for plans
type PlanRepository struct {
	DB *sql.DB
}

// NewPlanRepository creates a new PlanRepository
func NewPlanRepository() *PlanRepository {
	return &PlanRepository{DB: GetDB()}
}

// StorePlan inserts a single plan row.
func (r *PlanRepository) StorePlan(plan *models.Plan) error {
	_, err := r.DB.Exec(
		`INSERT INTO plans (id, trip_id, day_id, place_name, start_min, end_min, detail, map_url,
		                    food_note, transport_note, cost_estimate, sort_no, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		plan.ID, plan.TripID, plan.DayID, plan.PlaceName, plan.StartMin, plan.EndMin,
		plan.Detail, plan.MapURL, plan.FoodNote, plan.TransportNote, plan.CostEstimate,
		plan.SortNo, plan.CreatedAt, plan.UpdatedAt,
	)
	return err
}

// GetPlan retrieves a plan by ID. Returns (nil, nil) when it does not exist.
func (r *PlanRepository) GetPlan(id string) (*models.Plan, error) {
	row := r.DB.QueryRow("SELECT "+planColumns+" FROM plans WHERE id = $1", id)
	plan, err := scanPlan(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %v", err)
	}
	return plan, nil
}

// ListPlans returns all plans of a trip in canonical order.
func (r *PlanRepository) ListPlans(tripID string) ([]*models.Plan, error) {
	rows, err := r.DB.Query(
		"SELECT "+planColumns+" FROM plans WHERE trip_id = $1 ORDER BY sort_no ASC, start_min ASC, id ASC",
		tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %v", err)
	}
	defer rows.Close()

	plans := []*models.Plan{}
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plan: %v", err)
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

// PatchPlan applies a dynamic column-assignment list to one plan.
func (r *PlanRepository) PatchPlan(id string, assigns []Assignment, updatedAt models.Timestamp) (bool, error) {
	return patchByID("plans", id, assigns, updatedAt)
}

// DeletePlan removes a plan by ID.
func (r *PlanRepository) DeletePlan(id string) (bool, error) {
	return deleteByID("plans", id)
}

func scanPlan(s scanner) (*models.Plan, error) {
	var (
		plan                                models.Plan
		startMin, endMin, costEstimate      sql.NullInt64
		detail, mapURL, foodNote, transNote sql.NullString
	)

	err := s.Scan(&plan.ID, &plan.TripID, &plan.DayID, &plan.PlaceName, &startMin, &endMin,
		&detail, &mapURL, &foodNote, &transNote, &costEstimate, &plan.SortNo,
		&plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		return nil, err
	}

	plan.StartMin = nullInt(startMin)
	plan.EndMin = nullInt(endMin)
	plan.CostEstimate = nullInt(costEstimate)
	plan.Detail = nullString(detail)
	plan.MapURL = nullString(mapURL)
	plan.FoodNote = nullString(foodNote)
	plan.TransportNote = nullString(transNote)
	return &plan, nil
}
