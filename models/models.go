// Package models contains the entity and response types for the trip planner.
package models

import "encoding/json"

// Trip is the aggregate root. Days, plans, expenses, flights and hotels all
// belong to a trip and are removed with it.
type Trip struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Currency    string    `json:"currency"`
	Memo        *string   `json:"memo"`
	Status      string    `json:"status"`
	CreatedAt   Timestamp `json:"createdAt"`
	UpdatedAt   Timestamp `json:"updatedAt"`
}

// Day is one calendar day of a trip. DayNo and Date are derived from the
// trip's date range at creation time but editable afterward.
type Day struct {
	ID        string    `json:"id"`
	TripID    string    `json:"tripId"`
	DayNo     int64     `json:"dayNo"`
	Date      string    `json:"date"`
	Title     *string   `json:"title"`
	Note      *string   `json:"note"`
	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

// Plan is a scheduled activity within a day, ordered by SortNo then start time.
type Plan struct {
	ID            string    `json:"id"`
	TripID        string    `json:"tripId"`
	DayID         string    `json:"dayId"`
	PlaceName     string    `json:"placeName"`
	StartMin      *int64    `json:"startMin"`
	EndMin        *int64    `json:"endMin"`
	Detail        *string   `json:"detail"`
	MapURL        *string   `json:"mapUrl"`
	FoodNote      *string   `json:"foodNote"`
	TransportNote *string   `json:"transportNote"`
	CostEstimate  *int64    `json:"costEstimate"`
	SortNo        int64     `json:"sortNo"`
	CreatedAt     Timestamp `json:"createdAt"`
	UpdatedAt     Timestamp `json:"updatedAt"`
}

// Expense is a single spend. Amount is in whole currency units.
type Expense struct {
	ID        string    `json:"id"`
	TripID    string    `json:"tripId"`
	DayID     *string   `json:"dayId"`
	Item      string    `json:"item"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Category  *string   `json:"category"`
	SpentAt   Timestamp `json:"spentAt"`
	Note      *string   `json:"note"`
	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

// Flight is one leg of a journey.
type Flight struct {
	ID             string    `json:"id"`
	TripID         string    `json:"tripId"`
	LegType        string    `json:"legType"`
	LegOrder       int64     `json:"legOrder"`
	Airline        string    `json:"airline"`
	FlightNo       string    `json:"flightNo"`
	DepAirport     string    `json:"depAirport"`
	ArrAirport     string    `json:"arrAirport"`
	DepAirportName *string   `json:"depAirportName"`
	ArrAirportName *string   `json:"arrAirportName"`
	DepTime        Timestamp `json:"depTime"`
	ArrTime        Timestamp `json:"arrTime"`
	Price          *int64    `json:"price"`
	Currency       string    `json:"currency"`
	Note           *string   `json:"note"`
	CreatedAt      Timestamp `json:"createdAt"`
	UpdatedAt      Timestamp `json:"updatedAt"`
}

// Hotel is a lodging booking for a trip.
type Hotel struct {
	ID             string    `json:"id"`
	TripID         string    `json:"tripId"`
	Name           string    `json:"name"`
	City           string    `json:"city"`
	CheckinDate    string    `json:"checkinDate"`
	CheckoutDate   string    `json:"checkoutDate"`
	ConfirmationNo *string   `json:"confirmationNo"`
	TotalPrice     *int64    `json:"totalPrice"`
	Currency       string    `json:"currency"`
	Note           *string   `json:"note"`
	CreatedAt      Timestamp `json:"createdAt"`
	UpdatedAt      Timestamp `json:"updatedAt"`
}

// MetaItem is one entry in the application-wide key/value store. Value holds
// arbitrary JSON.
type MetaItem struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt Timestamp       `json:"updatedAt"`
}

// TripAggregate is the response for trip creation: the trip plus everything
// generated alongside it in the same transaction.
type TripAggregate struct {
	Trip    *Trip     `json:"trip"`
	Days    []*Day    `json:"days"`
	Flights []*Flight `json:"flights"`
	Hotels  []*Hotel  `json:"hotels"`
}

// TripDetail is the response for a trip detail fetch.
type TripDetail struct {
	Trip     *Trip      `json:"trip"`
	Days     []*Day     `json:"days"`
	Plans    []*Plan    `json:"plans"`
	Expenses []*Expense `json:"expenses"`
	Flights  []*Flight  `json:"flights"`
	Hotels   []*Hotel   `json:"hotels"`
}

// FlightLookupResult is the local shape a provider response is mapped into.
type FlightLookupResult struct {
	FlightNo       string  `json:"flightNo"`
	Airline        string  `json:"airline"`
	DepAirport     string  `json:"depAirport"`
	ArrAirport     string  `json:"arrAirport"`
	DepAirportName *string `json:"depAirportName"`
	ArrAirportName *string `json:"arrAirportName"`
	DepTime        *string `json:"depTime"`
	ArrTime        *string `json:"arrTime"`
	Status         *string `json:"status"`
}
