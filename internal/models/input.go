package models

import "fmt"

const defaultDriverRating = 4.5

// OfferInput is the create-ride request body. Numeric fields are pointers so
// an absent field can be told apart from a legitimate zero (a 0.0 latitude is
// valid, a missing one is not).
type OfferInput struct {
	DriverName     string   `json:"driverName"`
	DriverImage    string   `json:"driverImage"`
	DriverRating   *float64 `json:"driverRating"`
	From           string   `json:"from"`
	To             string   `json:"to"`
	FromLat        *float64 `json:"fromLat"`
	FromLng        *float64 `json:"fromLng"`
	ToLat          *float64 `json:"toLat"`
	ToLng          *float64 `json:"toLng"`
	Price          *float64 `json:"price"`
	AvailableSeats *int     `json:"availableSeats"`
	DepartureTime  string   `json:"departureTime"`
	DepartureDate  string   `json:"departureDate"`
}

// Validate checks the payload and converts it into a RideOffer ready for the
// store. ID and CreatedAt are left zero; the store assigns them.
func (in OfferInput) Validate() (RideOffer, error) {
	type req struct {
		name string
		ok   bool
	}
	checks := []req{
		{"driverName", in.DriverName != ""},
		{"from", in.From != ""},
		{"to", in.To != ""},
		{"fromLat", in.FromLat != nil},
		{"fromLng", in.FromLng != nil},
		{"toLat", in.ToLat != nil},
		{"toLng", in.ToLng != nil},
		{"price", in.Price != nil},
		{"availableSeats", in.AvailableSeats != nil},
		{"departureTime", in.DepartureTime != ""},
		{"departureDate", in.DepartureDate != ""},
	}
	for _, c := range checks {
		if !c.ok {
			return RideOffer{}, fmt.Errorf("%w: %s is required", ErrValidation, c.name)
		}
	}
	if *in.AvailableSeats < 1 {
		return RideOffer{}, fmt.Errorf("%w: availableSeats must be at least 1", ErrValidation)
	}

	rating := defaultDriverRating
	if in.DriverRating != nil {
		rating = *in.DriverRating
		if rating < 0 || rating > 5 {
			return RideOffer{}, fmt.Errorf("%w: driverRating must be between 0 and 5", ErrValidation)
		}
	}

	return RideOffer{
		DriverName:     in.DriverName,
		DriverImage:    in.DriverImage,
		DriverRating:   rating,
		From:           in.From,
		To:             in.To,
		FromLat:        *in.FromLat,
		FromLng:        *in.FromLng,
		ToLat:          *in.ToLat,
		ToLng:          *in.ToLng,
		Price:          *in.Price,
		AvailableSeats: *in.AvailableSeats,
		DepartureTime:  in.DepartureTime,
		DepartureDate:  in.DepartureDate,
	}, nil
}
