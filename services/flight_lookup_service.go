package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/jwoo-dev/tripnote-backend/config"
	"github.com/jwoo-dev/tripnote-backend/models"
	"github.com/jwoo-dev/tripnote-backend/utils"
)

var flightNumberPattern = regexp.MustCompile(`^[A-Z0-9]{3,8}$`)

// FlightLookupService queries the third-party flight-data provider and
// reshapes its response into the local flight shape.
type FlightLookupService struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

// NewFlightLookupService creates a FlightLookupService from configuration
func NewFlightLookupService() *FlightLookupService {
	cfg := config.Get()
	return &FlightLookupService{
		APIKey:  cfg.FlightAPIKey,
		BaseURL: strings.TrimRight(cfg.FlightAPIBaseURL, "/"),
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// providerResponse mirrors the subset of the provider payload we consume.
type providerResponse struct {
	Data []providerFlight `json:"data"`
}

type providerFlight struct {
	FlightStatus string `json:"flight_status"`
	Departure    struct {
		Airport   string `json:"airport"`
		IATA      string `json:"iata"`
		Scheduled string `json:"scheduled"`
	} `json:"departure"`
	Arrival struct {
		Airport   string `json:"airport"`
		IATA      string `json:"iata"`
		Scheduled string `json:"scheduled"`
	} `json:"arrival"`
	Airline struct {
		Name string `json:"name"`
	} `json:"airline"`
	Flight struct {
		IATA string `json:"iata"`
	} `json:"flight"`
}

// NormalizeFlightNumber trims and uppercases a flight number and checks it
// against the accepted alphanumeric pattern.
func NormalizeFlightNumber(flightIata string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(flightIata))
	if !flightNumberPattern.MatchString(normalized) {
		return "", utils.NewFieldError("flightIata", "must be 3-8 alphanumeric characters")
	}
	return normalized, nil
}

// Lookup queries the provider for a flight number on an optional date.
// Returns 501 without a configured credential, 502 when the provider call
// fails, and 404 when the provider has no rows.
func (s *FlightLookupService) Lookup(flightIata, date string) (*models.FlightLookupResult, error) {
	flightNo, err := NormalizeFlightNumber(flightIata)
	if err != nil {
		return nil, err
	}
	if date != "" {
		if _, err := utils.CanonicalDate(date, "date"); err != nil {
			return nil, err
		}
	}

	if s.APIKey == "" {
		return nil, utils.NewNotImplementedError("Flight lookup provider is not configured")
	}

	query := url.Values{}
	query.Set("access_key", s.APIKey)
	query.Set("flight_iata", flightNo)
	if date != "" {
		query.Set("flight_date", date)
	}

	resp, err := s.Client.Get(s.BaseURL + "/v1/flights?" + query.Encode())
	if err != nil {
		return nil, utils.NewBadGatewayError("Flight data provider is unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, utils.NewBadGatewayError(
			fmt.Sprintf("Flight data provider returned status %d", resp.StatusCode))
	}

	var payload providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, utils.NewBadGatewayError("Failed to decode flight data provider response")
	}

	if len(payload.Data) == 0 {
		return nil, utils.NewNotFoundError("Flight")
	}

	// Prefer the entry whose flight number matches exactly; the provider may
	// return codeshare rows first.
	selected := payload.Data[0]
	for _, entry := range payload.Data {
		if strings.EqualFold(entry.Flight.IATA, flightNo) {
			selected = entry
			break
		}
	}

	return mapProviderFlight(flightNo, selected), nil
}

func mapProviderFlight(flightNo string, entry providerFlight) *models.FlightLookupResult {
	result := &models.FlightLookupResult{
		FlightNo:   flightNo,
		Airline:    entry.Airline.Name,
		DepAirport: entry.Departure.IATA,
		ArrAirport: entry.Arrival.IATA,
	}
	if entry.Flight.IATA != "" {
		result.FlightNo = strings.ToUpper(entry.Flight.IATA)
	}
	if entry.Departure.Airport != "" {
		name := entry.Departure.Airport
		result.DepAirportName = &name
	}
	if entry.Arrival.Airport != "" {
		name := entry.Arrival.Airport
		result.ArrAirportName = &name
	}
	if t := canonicalProviderTime(entry.Departure.Scheduled); t != "" {
		result.DepTime = &t
	}
	if t := canonicalProviderTime(entry.Arrival.Scheduled); t != "" {
		result.ArrTime = &t
	}
	if entry.FlightStatus != "" {
		status := entry.FlightStatus
		result.Status = &status
	}
	return result
}

// canonicalProviderTime reformats a provider timestamp into the canonical
// UTC representation, or "" when it does not parse.
func canonicalProviderTime(s string) string {
	if s == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format(models.TimeFormat)
		}
	}
	return ""
}
