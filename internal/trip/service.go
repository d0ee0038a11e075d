// Package trip serves the hand-authored trip data: the day-by-day itinerary,
// travel essentials, and the phrasebook. Everything here is read-only.
package trip

import (
	apperrors "github.com/kuanensn/italy/internal/errors"
	"github.com/kuanensn/italy/internal/models"
)

// Service provides read access to the trip data.
type Service struct {
	trip           models.Trip
	flights        []models.Flight
	accommodations []models.Accommodation
	contacts       []models.EmergencyContact
	phrases        []models.PhraseCategory
}

// NewService creates a Service over the built-in trip data.
func NewService() *Service {
	return &Service{
		trip:           seedTrip,
		flights:        seedFlights,
		accommodations: seedAccommodations,
		contacts:       seedContacts,
		phrases:        seedPhrases,
	}
}

// Trip returns the whole trip including every day plan.
func (s *Service) Trip() models.Trip {
	return s.trip
}

// Days returns all day plans in order.
func (s *Service) Days() []models.DayPlan {
	return s.trip.Days
}

// Day returns the plan for the given day number (1-based).
func (s *Service) Day(day int) (models.DayPlan, error) {
	for _, d := range s.trip.Days {
		if d.Day == day {
			return d, nil
		}
	}
	return models.DayPlan{}, apperrors.ErrDayNotFound
}

// Flights returns the booked transport legs.
func (s *Service) Flights() []models.Flight {
	return s.flights
}

// Accommodations returns the booked stays.
func (s *Service) Accommodations() []models.Accommodation {
	return s.accommodations
}

// Contacts returns the destination's emergency contacts.
func (s *Service) Contacts() []models.EmergencyContact {
	return s.contacts
}

// Phrases returns the phrasebook grouped by situation.
func (s *Service) Phrases() []models.PhraseCategory {
	return s.phrases
}
