package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwoo-dev/tripnote-backend/models"
	"github.com/jwoo-dev/tripnote-backend/utils"
)

func TestExpandTripDates(t *testing.T) {
	dates, err := ExpandTripDates("2026-04-10", "2026-04-12")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-04-10", "2026-04-11", "2026-04-12"}, dates)

	// Single-day trip
	dates, err = ExpandTripDates("2026-04-10", "2026-04-10")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-04-10"}, dates)

	// Month boundary
	dates, err = ExpandTripDates("2026-04-29", "2026-05-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-04-29", "2026-04-30", "2026-05-01", "2026-05-02"}, dates)
}

func TestExpandTripDates_InvertedRange(t *testing.T) {
	_, err := ExpandTripDates("2026-04-12", "2026-04-10")
	assert.EqualError(t, err, "startDate must not be after endDate")
}

func TestExpandTripDates_SpanLimit(t *testing.T) {
	// 120 inclusive days is the ceiling
	dates, err := ExpandTripDates("2026-01-01", "2026-04-30")
	require.NoError(t, err)
	assert.Len(t, dates, 120)

	_, err = ExpandTripDates("2026-01-01", "2026-05-01")
	assert.EqualError(t, err, "Trip span must not exceed 120 days")
}

func TestBuildTripCreate(t *testing.T) {
	now := models.Now()
	trip, err := BuildTripCreate(utils.Body{
		"title":       "Kyoto",
		"destination": "Kyoto",
		"startDate":   "2026-04-10",
		"endDate":     "2026-04-12",
		"currency":    "JPY",
	}, now)
	require.NoError(t, err)

	assert.Contains(t, trip.ID, "trp_")
	assert.Equal(t, "Kyoto", trip.Title)
	assert.Equal(t, "2026-04-10", trip.StartDate)
	assert.Equal(t, "2026-04-12", trip.EndDate)
	assert.Equal(t, "JPY", trip.Currency)
	assert.Equal(t, utils.StatusDraft, trip.Status)
	assert.Nil(t, trip.Memo)
	assert.Equal(t, now, trip.CreatedAt)
	assert.Equal(t, now, trip.UpdatedAt)
}

func TestBuildTripCreate_Defaults(t *testing.T) {
	trip, err := BuildTripCreate(utils.Body{
		"title":       "Jeju",
		"destination": "Jeju",
		"start_date":  "2026-06-01",
		"end_date":    "2026-06-03",
	}, models.Now())
	require.NoError(t, err)

	// snake_case aliases are accepted; currency falls back
	assert.Equal(t, "2026-06-01", trip.StartDate)
	assert.Equal(t, utils.DefaultCurrency, trip.Currency)
}

func TestBuildTripCreate_Validation(t *testing.T) {
	_, err := BuildTripCreate(utils.Body{
		"destination": "Kyoto",
		"startDate":   "2026-04-10",
		"endDate":     "2026-04-12",
	}, models.Now())
	assert.EqualError(t, err, "title is required")

	_, err = BuildTripCreate(utils.Body{
		"title":       "Kyoto",
		"destination": "Kyoto",
		"startDate":   "2026-04-10",
		"endDate":     "2026-04-31",
	}, models.Now())
	assert.Error(t, err)

	_, err = BuildTripCreate(utils.Body{
		"title":       "Kyoto",
		"destination": "Kyoto",
		"startDate":   "2026-04-10",
		"endDate":     "2026-04-12",
		"status":      "shipped",
	}, models.Now())
	assert.EqualError(t, err, "status must be one of draft, active, done")
}

func TestBuildTripPatch(t *testing.T) {
	assigns, err := BuildTripPatch(utils.Body{"status": "done", "memo": nil})
	require.NoError(t, err)
	require.Len(t, assigns, 2)
	assert.Equal(t, "status", assigns[0].Column)
	assert.Equal(t, "done", assigns[0].Value)
	assert.Equal(t, "memo", assigns[1].Column)

	// Unrecognized keys do not contribute assignments
	assigns, err = BuildTripPatch(utils.Body{"foo": "bar"})
	require.NoError(t, err)
	assert.Empty(t, assigns)

	// A present field with a bad value fails even in a patch
	_, err = BuildTripPatch(utils.Body{"status": "shipped"})
	assert.EqualError(t, err, "status must be one of draft, active, done")

	_, err = BuildTripPatch(utils.Body{"startDate": "2026-02-30"})
	assert.Error(t, err)
}

func TestPatchTrip_NoRecognizedFields(t *testing.T) {
	service := NewTripService()

	// An empty body and a body of only unknown keys both fail before any
	// database access.
	for _, body := range []utils.Body{{}, {"foo": "bar"}} {
		_, err := service.PatchTrip("trp_x", body)
		appErr, ok := err.(*utils.AppError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Equal(t, utils.ErrNoFields, appErr.Message)
	}
}

func TestBuildNestedFlights(t *testing.T) {
	now := models.Now()
	body := utils.Body{
		"flights": []interface{}{
			map[string]interface{}{
				"from":     "ICN",
				"to":       "KIX",
				"depTime":  "2026-04-10T09:00:00+09:00",
				"arrTime":  "2026-04-10T11:00:00+09:00",
				"airline":  "Korean Air",
				"flightNo": "KE723",
			},
			map[string]interface{}{
				"from":     "KIX",
				"to":       "ICN",
				"depTime":  "2026-04-12T18:00:00+09:00",
				"arrTime":  "2026-04-12T20:00:00+09:00",
				"airline":  "Korean Air",
				"flightNo": "KE724",
				"legType":  "inbound",
			},
		},
	}

	flights, err := buildNestedFlights("trp_x", body, now)
	require.NoError(t, err)
	require.Len(t, flights, 2)

	// Leg order defaults to array position
	assert.Equal(t, int64(1), flights[0].LegOrder)
	assert.Equal(t, int64(2), flights[1].LegOrder)
	assert.Equal(t, utils.LegMulti, flights[0].LegType)
	assert.Equal(t, utils.LegInbound, flights[1].LegType)
	assert.Equal(t, "ICN", flights[0].DepAirport)
	assert.Equal(t, "2026-04-10T00:00:00.000Z", flights[0].DepTime.UTC().Format(models.TimeFormat))
}

func TestBuildNestedFlights_ValidationAborts(t *testing.T) {
	_, err := buildNestedFlights("trp_x", utils.Body{
		"flights": []interface{}{
			map[string]interface{}{"from": "ICN"},
		},
	}, models.Now())
	assert.Error(t, err)

	_, err = buildNestedFlights("trp_x", utils.Body{"flights": "not an array"}, models.Now())
	assert.EqualError(t, err, "flights must be an array")
}

func TestBuildNestedHotels(t *testing.T) {
	hotels, err := buildNestedHotels("trp_x", utils.Body{
		"hotels": []interface{}{
			map[string]interface{}{
				"name":         "Gion Ryokan",
				"city":         "Kyoto",
				"checkinDate":  "2026-04-10",
				"checkoutDate": "2026-04-12",
				"totalPrice":   float64(48000),
				"currency":     "JPY",
			},
		},
	}, models.Now())
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, "Gion Ryokan", hotels[0].Name)
	assert.Equal(t, "2026-04-10", hotels[0].CheckinDate)
	require.NotNil(t, hotels[0].TotalPrice)
	assert.Equal(t, int64(48000), *hotels[0].TotalPrice)

	// Absent nested arrays are fine
	hotels, err = buildNestedHotels("trp_x", utils.Body{}, models.Now())
	require.NoError(t, err)
	assert.Nil(t, hotels)
}
