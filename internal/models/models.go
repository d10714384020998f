package models

import "time"

// RideOffer is a single driver's posted journey. Field names follow the wire
// format consumed by the browser client; the identifier travels as "_id".
type RideOffer struct {
	ID             string    `json:"_id"`
	DriverName     string    `json:"driverName"`
	DriverImage    string    `json:"driverImage"`
	DriverRating   float64   `json:"driverRating"` // 0..5
	From           string    `json:"from"`
	To             string    `json:"to"`
	FromLat        float64   `json:"fromLat"`
	FromLng        float64   `json:"fromLng"`
	ToLat          float64   `json:"toLat"`
	ToLng          float64   `json:"toLng"`
	Price          float64   `json:"price"`
	AvailableSeats int       `json:"availableSeats"`
	DepartureTime  string    `json:"departureTime"` // free-form, e.g. "09:00 AM"
	DepartureDate  string    `json:"departureDate"` // YYYY-MM-DD, compared as a string
	CreatedAt      time.Time `json:"createdAt"`
}

// SearchCriteria is the parsed search query. From and To are required;
// Date and MinPassengers are optional (zero value means unfiltered).
type SearchCriteria struct {
	From          string
	To            string
	Date          string
	MinPassengers int
}

// Validate reports whether the criteria can be evaluated at all.
// The store must not be touched when this fails.
func (c SearchCriteria) Validate() error {
	if c.From == "" || c.To == "" {
		return ErrInvalidQuery
	}
	return nil
}
