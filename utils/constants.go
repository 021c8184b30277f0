package utils

const (
	// Entity ID prefixes
	TripIDPrefix    = "trp"
	DayIDPrefix     = "day"
	PlanIDPrefix    = "pln"
	ExpenseIDPrefix = "exp"
	FlightIDPrefix  = "flt"
	HotelIDPrefix   = "htl"

	// Trip statuses
	StatusDraft  = "draft"
	StatusActive = "active"
	StatusDone   = "done"

	// Flight leg types
	LegOutbound = "outbound"
	LegInbound  = "inbound"
	LegMulti    = "multi"

	// DefaultCurrency is used whenever no currency is supplied
	DefaultCurrency = "KRW"

	// MaxTripDays is the longest allowed inclusive trip span
	MaxTripDays = 120

	// Common error messages
	ErrInvalidRequest = "Invalid request body"
	ErrNoFields       = "No recognized fields to update"
)

// ValidStatuses lists the accepted trip status values.
var ValidStatuses = []string{StatusDraft, StatusActive, StatusDone}

// ValidLegTypes lists the accepted flight leg classifications.
var ValidLegTypes = []string{LegOutbound, LegInbound, LegMulti}
