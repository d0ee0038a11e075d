package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kuanensn/italy/internal/trip"
)

// TripHandler serves the read-only trip data.
type TripHandler struct {
	trips *trip.Service
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(trips *trip.Service) *TripHandler {
	return &TripHandler{trips: trips}
}

// GetTrip returns the whole trip.
// @Summary     Get the trip
// @Description Trip metadata plus every day plan
// @Tags        trip
// @Produce     json
// @Success     200 {object} models.Trip "The trip"
// @Router      /trip [get]
func (h *TripHandler) GetTrip(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"trip": h.trips.Trip()})
}

// GetDays returns all day plans.
// @Summary     List day plans
// @Tags        trip
// @Produce     json
// @Success     200 {object} map[string]interface{} "Day plans in order"
// @Router      /trip/days [get]
func (h *TripHandler) GetDays(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"days": h.trips.Days()})
}

// GetDay returns one day plan by its day number.
// @Summary     Get a day plan
// @Tags        trip
// @Produce     json
// @Param       day path int true "Day number (1-based)"
// @Success     200 {object} models.DayPlan "The day plan"
// @Failure     400 {object} ErrorResponse "Invalid day"
// @Failure     404 {object} ErrorResponse "No plan for that day"
// @Router      /trip/days/{day} [get]
func (h *TripHandler) GetDay(c *gin.Context) {
	day, err := parsePathInt(c, "day")
	if err != nil {
		respondWithError(c, err)
		return
	}

	plan, err := h.trips.Day(day)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"day": plan})
}

// GetFlights returns the booked transport legs.
// @Summary     List flights
// @Tags        essentials
// @Produce     json
// @Success     200 {object} map[string]interface{} "Booked legs"
// @Router      /essentials/flights [get]
func (h *TripHandler) GetFlights(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"flights": h.trips.Flights()})
}

// GetAccommodations returns the booked stays.
// @Summary     List accommodation
// @Tags        essentials
// @Produce     json
// @Success     200 {object} map[string]interface{} "Booked stays"
// @Router      /essentials/accommodation [get]
func (h *TripHandler) GetAccommodations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"accommodation": h.trips.Accommodations()})
}

// GetContacts returns the emergency contacts.
// @Summary     List emergency contacts
// @Tags        essentials
// @Produce     json
// @Success     200 {object} map[string]interface{} "Emergency contacts"
// @Router      /essentials/contacts [get]
func (h *TripHandler) GetContacts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"contacts": h.trips.Contacts()})
}

// GetPhrases returns the phrasebook.
// @Summary     List phrases
// @Tags        phrases
// @Produce     json
// @Success     200 {object} map[string]interface{} "Phrase categories"
// @Router      /phrases [get]
func (h *TripHandler) GetPhrases(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"phrases": h.trips.Phrases()})
}
