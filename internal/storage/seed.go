package storage

import (
	"time"

	"github.com/example/ride-board/internal/models"
)

// SampleOffers returns the fixed demonstration dataset: six offers between
// south-Indian cities, all departing on the given day. IDs and creation times
// are left for the store to assign.
func SampleOffers(day time.Time) []models.RideOffer {
	date := day.Format("2006-01-02")
	return []models.RideOffer{
		{
			DriverName:   "Rajesh Kumar",
			DriverImage:  "https://api.dicebear.com/7.x/avataaars/svg?seed=Rajesh",
			DriverRating: 4.8,
			From:         "Bangalore", To: "Mysore",
			FromLat: 12.9716, FromLng: 77.5946,
			ToLat: 12.2958, ToLng: 76.6394,
			Price: 350, AvailableSeats: 3,
			DepartureTime: "09:00 AM", DepartureDate: date,
		},
		{
			DriverName:   "Priya Singh",
			DriverImage:  "https://api.dicebear.com/7.x/avataaars/svg?seed=Priya",
			DriverRating: 4.9,
			From:         "Bangalore", To: "Hyderabad",
			FromLat: 12.9716, FromLng: 77.5946,
			ToLat: 17.3850, ToLng: 78.4867,
			Price: 450, AvailableSeats: 2,
			DepartureTime: "03:30 PM", DepartureDate: date,
		},
		{
			DriverName:   "Amit Patel",
			DriverImage:  "https://api.dicebear.com/7.x/avataaars/svg?seed=Amit",
			DriverRating: 4.7,
			From:         "Bangalore", To: "Chennai",
			FromLat: 12.9716, FromLng: 77.5946,
			ToLat: 13.0827, ToLng: 80.2707,
			Price: 500, AvailableSeats: 4,
			DepartureTime: "04:00 PM", DepartureDate: date,
		},
		{
			DriverName:   "Neha Gupta",
			DriverImage:  "https://api.dicebear.com/7.x/avataaars/svg?seed=Neha",
			DriverRating: 4.6,
			From:         "Bangalore", To: "Pune",
			FromLat: 12.9716, FromLng: 77.5946,
			ToLat: 18.5204, ToLng: 73.8567,
			Price: 650, AvailableSeats: 3,
			DepartureTime: "10:00 AM", DepartureDate: date,
		},
		{
			DriverName:   "Vikram Reddy",
			DriverImage:  "https://api.dicebear.com/7.x/avataaars/svg?seed=Vikram",
			DriverRating: 4.8,
			From:         "Bangalore", To: "Coimbatore",
			FromLat: 12.9716, FromLng: 77.5946,
			ToLat: 11.0081, ToLng: 76.9875,
			Price: 400, AvailableSeats: 2,
			DepartureTime: "02:00 PM", DepartureDate: date,
		},
		{
			DriverName:   "Sneha Sharma",
			DriverImage:  "https://api.dicebear.com/7.x/avataaars/svg?seed=Sneha",
			DriverRating: 4.9,
			From:         "Mysore", To: "Bangalore",
			FromLat: 12.2958, FromLng: 76.6394,
			ToLat: 12.9716, ToLng: 77.5946,
			Price: 350, AvailableSeats: 3,
			DepartureTime: "11:00 AM", DepartureDate: date,
		},
	}
}
