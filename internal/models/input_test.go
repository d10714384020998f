package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }
func i(v int) *int           { return &v }

func validInput() OfferInput {
	return OfferInput{
		DriverName: "Rajesh Kumar",
		From:       "Bangalore",
		To:         "Mysore",
		FromLat:    f64(12.9716), FromLng: f64(77.5946),
		ToLat: f64(12.2958), ToLng: f64(76.6394),
		Price:          f64(350),
		AvailableSeats: i(3),
		DepartureTime:  "09:00 AM",
		DepartureDate:  "2024-01-01",
	}
}

func TestOfferInputValidate_OK(t *testing.T) {
	o, err := validInput().Validate()
	require.NoError(t, err)
	assert.Equal(t, "Bangalore", o.From)
	assert.Equal(t, 3, o.AvailableSeats)
	assert.Empty(t, o.ID, "store assigns identity, not the payload")
	assert.True(t, o.CreatedAt.IsZero())
}

func TestOfferInputValidate_MissingFields(t *testing.T) {
	cases := map[string]func(*OfferInput){
		"driverName":     func(in *OfferInput) { in.DriverName = "" },
		"from":           func(in *OfferInput) { in.From = "" },
		"to":             func(in *OfferInput) { in.To = "" },
		"fromLat":        func(in *OfferInput) { in.FromLat = nil },
		"fromLng":        func(in *OfferInput) { in.FromLng = nil },
		"toLat":          func(in *OfferInput) { in.ToLat = nil },
		"toLng":          func(in *OfferInput) { in.ToLng = nil },
		"price":          func(in *OfferInput) { in.Price = nil },
		"availableSeats": func(in *OfferInput) { in.AvailableSeats = nil },
		"departureTime":  func(in *OfferInput) { in.DepartureTime = "" },
		"departureDate":  func(in *OfferInput) { in.DepartureDate = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validInput()
			mutate(&in)
			_, err := in.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestOfferInputValidate_Seats(t *testing.T) {
	in := validInput()
	in.AvailableSeats = i(0)
	_, err := in.Validate()
	require.ErrorIs(t, err, ErrValidation)

	in.AvailableSeats = i(1)
	o, err := in.Validate()
	require.NoError(t, err)
	assert.Equal(t, 1, o.AvailableSeats)
}

func TestOfferInputValidate_RatingDefaultAndBounds(t *testing.T) {
	in := validInput()
	o, err := in.Validate()
	require.NoError(t, err)
	assert.Equal(t, 4.5, o.DriverRating, "rating defaults when absent")

	in.DriverRating = f64(5.1)
	_, err = in.Validate()
	require.ErrorIs(t, err, ErrValidation)

	in.DriverRating = f64(-0.1)
	_, err = in.Validate()
	require.ErrorIs(t, err, ErrValidation)

	in.DriverRating = f64(0)
	o, err = in.Validate()
	require.NoError(t, err)
	assert.Equal(t, 0.0, o.DriverRating)
}

func TestOfferInputValidate_ImageDefaultsEmpty(t *testing.T) {
	o, err := validInput().Validate()
	require.NoError(t, err)
	assert.Equal(t, "", o.DriverImage)
}

func TestSearchCriteriaValidate(t *testing.T) {
	assert.NoError(t, SearchCriteria{From: "a", To: "b"}.Validate())
	assert.ErrorIs(t, SearchCriteria{To: "b"}.Validate(), ErrInvalidQuery)
	assert.ErrorIs(t, SearchCriteria{From: "a"}.Validate(), ErrInvalidQuery)
	assert.ErrorIs(t, SearchCriteria{}.Validate(), ErrInvalidQuery)
}
