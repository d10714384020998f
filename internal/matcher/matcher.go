package matcher

import (
	"strings"

	"github.com/example/ride-board/internal/models"
)

// Matches reports whether a single offer satisfies the criteria. Route text is
// matched as a literal case-insensitive substring: the query text may appear
// anywhere in the offer's from/to fields, and characters like '(' or '.' carry
// no pattern meaning. Date is exact string equality; MinPassengers <= 0 means
// no seat filter.
func Matches(o models.RideOffer, c models.SearchCriteria) bool {
	if !containsFold(o.From, c.From) || !containsFold(o.To, c.To) {
		return false
	}
	if c.Date != "" && o.DepartureDate != c.Date {
		return false
	}
	if c.MinPassengers > 0 && o.AvailableSeats < c.MinPassengers {
		return false
	}
	return true
}

// Filter evaluates the criteria against offers in order and returns the first
// max matches. max <= 0 means unbounded.
func Filter(offers []models.RideOffer, c models.SearchCriteria, max int) []models.RideOffer {
	out := []models.RideOffer{}
	for _, o := range offers {
		if !Matches(o, c) {
			continue
		}
		out = append(out, o)
		if max > 0 && len(out) == max {
			break
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
