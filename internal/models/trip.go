package models

// ItineraryType distinguishes what kind of stop an itinerary item is.
type ItineraryType string

const (
	ItineraryAttraction ItineraryType = "ATTRACTION"
	ItineraryRestaurant ItineraryType = "RESTAURANT"
	ItineraryTransport  ItineraryType = "TRANSPORT"
)

// Valid reports whether t is a member of the itinerary type set.
func (t ItineraryType) Valid() bool {
	switch t {
	case ItineraryAttraction, ItineraryRestaurant, ItineraryTransport:
		return true
	}
	return false
}

// ItineraryItem is a single scheduled activity within a day.
type ItineraryItem struct {
	ID          string        `json:"id"`
	Type        ItineraryType `json:"type"`
	Time        string        `json:"time"`
	Name        string        `json:"name"`
	Location    string        `json:"location"`
	Description string        `json:"description"`

	// Guide fields, present only where the curators filled them in.
	MustEat         []string `json:"must_eat,omitempty"`
	MustBuy         []string `json:"must_buy,omitempty"`
	Tips            []string `json:"tips,omitempty"`
	ReservationCode string   `json:"reservation_code,omitempty"`

	// Transport fields.
	TransportCode string `json:"transport_code,omitempty"`
	Terminal      string `json:"terminal,omitempty"`
	Status        string `json:"status,omitempty"`
}

// Weather is the forecast summary attached to a day plan.
type Weather struct {
	Temp          string `json:"temp"`
	Condition     string `json:"condition"`
	Icon          string `json:"icon"`
	RainProb      string `json:"rain_prob,omitempty"`
	UVIndex       string `json:"uv_index,omitempty"`
	OutfitAdvice  string `json:"outfit_advice,omitempty"`
	SunProtection string `json:"sun_protection,omitempty"`
}

// DayPlan is one day of the trip: where we are, the forecast, and the schedule.
type DayPlan struct {
	Day      int             `json:"day"`
	Date     string          `json:"date,omitempty"`
	Location string          `json:"location"`
	Weather  Weather         `json:"weather"`
	Items    []ItineraryItem `json:"items"`
}

// Trip is the whole multi-city journey.
type Trip struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"start_date"`
	Days        []DayPlan `json:"days"`
}

// Flight is one leg of the booked transport (flights and long-distance rail).
type Flight struct {
	Date     string `json:"date"`
	Origin   string `json:"origin"`
	Dest     string `json:"dest"`
	Airline  string `json:"airline"`
	Code     string `json:"code,omitempty"`
	Time     string `json:"time"`
	Terminal string `json:"terminal,omitempty"`
	Gate     string `json:"gate,omitempty"`
	Baggage  string `json:"baggage,omitempty"`
}

// Accommodation is a booked stay.
type Accommodation struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Dates   string `json:"dates"`
	Area    string `json:"area"`
}

// EmergencyContact is an emergency phone number for the destination.
type EmergencyContact struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

// Phrase is one phrasebook entry with a mandarin pronunciation guide.
type Phrase struct {
	Italian       string `json:"italian"`
	Chinese       string `json:"chinese"`
	Pronunciation string `json:"pronunciation"`
}

// PhraseCategory groups phrasebook entries by situation.
type PhraseCategory struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Phrases []Phrase `json:"phrases"`
}
