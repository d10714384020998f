package matcher

import (
	"fmt"
	"testing"

	"github.com/example/ride-board/internal/models"
)

func offer(from, to, date string, seats int) models.RideOffer {
	return models.RideOffer{From: from, To: to, DepartureDate: date, AvailableSeats: seats}
}

func TestMatches_ExactRoute(t *testing.T) {
	o := offer("Bangalore", "Chennai", "2024-01-01", 4)
	if !Matches(o, models.SearchCriteria{From: "Bangalore", To: "Chennai"}) {
		t.Fatal("exact route should match")
	}
}

func TestMatches_CaseInsensitive(t *testing.T) {
	o := offer("Bangalore", "Mysore", "2024-01-01", 2)
	if !Matches(o, models.SearchCriteria{From: "bangalore", To: "MYSORE"}) {
		t.Fatal("case should not matter")
	}
}

func TestMatches_Substring(t *testing.T) {
	o := offer("Bangalore", "Mysore", "2024-01-01", 2)
	if !Matches(o, models.SearchCriteria{From: "Bang", To: "Mys"}) {
		t.Fatal("substring should match anywhere")
	}
	if Matches(o, models.SearchCriteria{From: "Pune", To: "Mys"}) {
		t.Fatal("non-substring must not match")
	}
}

func TestMatches_ReversedRouteDoesNotMatch(t *testing.T) {
	o := offer("Bangalore", "Pune", "2024-01-01", 3)
	if Matches(o, models.SearchCriteria{From: "Pune", To: "Bangalore"}) {
		t.Fatal("reversed route must not match")
	}
}

func TestMatches_LiteralSpecialCharacters(t *testing.T) {
	// pattern metacharacters in user text match themselves, nothing more
	o := offer("Bangalore", "Mysore", "2024-01-01", 2)
	if Matches(o, models.SearchCriteria{From: "B.ng", To: "Mys"}) {
		t.Fatal("dot must not act as a wildcard")
	}
	withParen := offer("Bangalore (Whitefield)", "Mysore", "2024-01-01", 2)
	if !Matches(withParen, models.SearchCriteria{From: "(Whitefield)", To: "Mysore"}) {
		t.Fatal("parentheses should match literally")
	}
}

func TestMatches_DateExactEquality(t *testing.T) {
	o := offer("Bangalore", "Chennai", "2024-01-01", 4)
	if !Matches(o, models.SearchCriteria{From: "Bangalore", To: "Chennai", Date: "2024-01-01"}) {
		t.Fatal("same date should match")
	}
	if Matches(o, models.SearchCriteria{From: "Bangalore", To: "Chennai", Date: "2024-01-02"}) {
		t.Fatal("one character off must not match")
	}
	// no date means no date filter
	if !Matches(o, models.SearchCriteria{From: "Bangalore", To: "Chennai"}) {
		t.Fatal("absent date should not filter")
	}
}

func TestMatches_SeatFilter(t *testing.T) {
	two := offer("Bangalore", "Chennai", "2024-01-01", 2)
	four := offer("Bangalore", "Chennai", "2024-01-01", 4)
	c := models.SearchCriteria{From: "Bangalore", To: "Chennai", MinPassengers: 3}
	if Matches(two, c) {
		t.Fatal("2 seats must not satisfy 3 passengers")
	}
	if !Matches(four, c) {
		t.Fatal("4 seats should satisfy 3 passengers")
	}
	c.MinPassengers = 4
	if !Matches(four, c) {
		t.Fatal("boundary: 4 seats should satisfy exactly 4")
	}
}

func TestFilter_Cap(t *testing.T) {
	offers := make([]models.RideOffer, 0, 25)
	for i := 0; i < 25; i++ {
		offers = append(offers, offer("Bangalore", fmt.Sprintf("Chennai %d", i), "2024-01-01", 3))
	}
	got := Filter(offers, models.SearchCriteria{From: "Bangalore", To: "Chennai"}, 20)
	if len(got) != 20 {
		t.Fatalf("expected 20, got %d", len(got))
	}
}

func TestFilter_EmptyResultIsNotNil(t *testing.T) {
	got := Filter(nil, models.SearchCriteria{From: "Pune", To: "Bangalore"}, 20)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}
