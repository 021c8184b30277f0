package services

import (
	"github.com/jwoo-dev/tripnote-backend/models"
	"github.com/jwoo-dev/tripnote-backend/repository"
	"github.com/jwoo-dev/tripnote-backend/utils"
)

// HotelService handles hotel-booking operations
type HotelService struct {
	hotelRepo *repository.HotelRepository
	tripRepo  *repository.TripRepository
}

// NewHotelService creates a new HotelService
func NewHotelService() *HotelService {
	return &HotelService{
		hotelRepo: repository.NewHotelRepository(),
		tripRepo:  repository.NewTripRepository(),
	}
}

// ListHotels returns all hotels of a trip ordered by check-in date.
func (s *HotelService) ListHotels(tripID string) ([]*models.Hotel, error) {
	if err := requireTrip(s.tripRepo, tripID); err != nil {
		return nil, err
	}
	return s.hotelRepo.ListHotels(tripID)
}

// BuildHotelCreate validates the fields of one hotel booking.
func BuildHotelCreate(tripID string, body utils.Body, now models.Timestamp) (*models.Hotel, error) {
	name, err := utils.RequiredString(body, "name", "name")
	if err != nil {
		return nil, err
	}
	city, err := utils.RequiredString(body, "city", "city")
	if err != nil {
		return nil, err
	}
	checkin, err := utils.RequiredDate(body, "checkinDate", "checkinDate", "checkin_date", "checkIn")
	if err != nil {
		return nil, err
	}
	checkout, err := utils.RequiredDate(body, "checkoutDate", "checkoutDate", "checkout_date", "checkOut")
	if err != nil {
		return nil, err
	}
	confirmation, err := utils.OptionalString(body, "confirmationNo", "confirmationNo", "confirmation_no")
	if err != nil {
		return nil, err
	}
	totalPrice, err := utils.OptionalInt(body, "totalPrice", "totalPrice", "total_price")
	if err != nil {
		return nil, err
	}
	currency, err := utils.OptionalString(body, "currency", "currency")
	if err != nil {
		return nil, err
	}
	note, err := utils.OptionalString(body, "note", "note")
	if err != nil {
		return nil, err
	}

	hotel := &models.Hotel{
		ID:             utils.NewID(utils.HotelIDPrefix),
		TripID:         tripID,
		Name:           name,
		City:           city,
		CheckinDate:    checkin,
		CheckoutDate:   checkout,
		ConfirmationNo: confirmation,
		TotalPrice:     totalPrice,
		Currency:       utils.DefaultCurrency,
		Note:           note,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if currency != nil {
		hotel.Currency = *currency
	}
	return hotel, nil
}

// CreateHotel adds a hotel booking to a trip.
func (s *HotelService) CreateHotel(tripID string, body utils.Body) (*models.Hotel, error) {
	if err := requireTrip(s.tripRepo, tripID); err != nil {
		return nil, err
	}

	hotel, err := BuildHotelCreate(tripID, body, models.Now())
	if err != nil {
		return nil, err
	}

	if err := s.hotelRepo.StoreHotel(hotel); err != nil {
		return nil, utils.MapStorageError(err)
	}
	return s.hotelRepo.GetHotel(hotel.ID)
}

// BuildHotelPatch collects column assignments for the fields present in a
// hotel patch body.
func BuildHotelPatch(body utils.Body) ([]repository.Assignment, error) {
	assigns := []repository.Assignment{}

	if utils.HasField(body, "name") {
		name, err := utils.RequiredString(body, "name", "name")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "name", Value: name})
	}
	if utils.HasField(body, "city") {
		city, err := utils.RequiredString(body, "city", "city")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "city", Value: city})
	}
	if utils.HasField(body, "checkinDate", "checkin_date", "checkIn") {
		checkin, err := utils.RequiredDate(body, "checkinDate", "checkinDate", "checkin_date", "checkIn")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "checkin_date", Value: checkin})
	}
	if utils.HasField(body, "checkoutDate", "checkout_date", "checkOut") {
		checkout, err := utils.RequiredDate(body, "checkoutDate", "checkoutDate", "checkout_date", "checkOut")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "checkout_date", Value: checkout})
	}
	if utils.HasField(body, "confirmationNo", "confirmation_no") {
		confirmation, err := utils.OptionalString(body, "confirmationNo", "confirmationNo", "confirmation_no")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "confirmation_no", Value: confirmation})
	}
	if utils.HasField(body, "totalPrice", "total_price") {
		totalPrice, err := utils.OptionalInt(body, "totalPrice", "totalPrice", "total_price")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "total_price", Value: totalPrice})
	}
	if utils.HasField(body, "currency") {
		currency, err := utils.RequiredString(body, "currency", "currency")
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, repository.Assignment{Column: "currency", Value: currency})
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

// PatchHotel applies a partial update and returns the refreshed row.
func (s *HotelService) PatchHotel(hotelID string, body utils.Body) (*models.Hotel, error) {
	assigns, err := BuildHotelPatch(body)
	if err != nil {
		return nil, err
	}
	if len(assigns) == 0 {
		return nil, utils.NewValidationError(utils.ErrNoFields)
	}

	found, err := s.hotelRepo.PatchHotel(hotelID, assigns, models.Now())
	if err != nil {
		return nil, utils.MapStorageError(err)
	}
	if !found {
		return nil, utils.NewNotFoundError("Hotel")
	}

	hotel, err := s.hotelRepo.GetHotel(hotelID)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, utils.NewNotFoundError("Hotel")
	}
	return hotel, nil
}

// DeleteHotel removes a hotel by ID.
func (s *HotelService) DeleteHotel(hotelID string) error {
	found, err := s.hotelRepo.DeleteHotel(hotelID)
	if err != nil {
		return utils.MapStorageError(err)
	}
	if !found {
		return utils.NewNotFoundError("Hotel")
	}
	return nil
}
