package models

import "time"

// Trip is the top-level travel itinerary document. Locations, hotels and
// events are embedded day-by-day data, persisted as one record.
type Trip struct {
	TripID      string  `json:"tripid" bson:"tripid,omitempty"`
	UserID      string  `json:"user_id" bson:"user_id"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description" bson:"description"`
	StartDate   string  `json:"start_date" bson:"start_date"`
	EndDate     string  `json:"end_date" bson:"end_date"`
	Status      string  `json:"status" bson:"status"` // Draft/Confirmed
	Published   bool    `json:"published" bson:"published"`
	ForkedFrom  *string `json:"forked_from,omitempty" bson:"forked_from,omitempty"`
	Deleted     bool    `json:"-" bson:"deleted,omitempty"` // Internal use only

	// Display the trip as "Day N" instead of calendar dates. Does not
	// change how days, cities or hotels resolve.
	UseLengthOfStay bool `json:"use_length_of_stay" bson:"use_length_of_stay"`
	MultiCity       bool `json:"multi_city" bson:"multi_city"`

	Locations []Location     `json:"locations" bson:"locations"`
	Hotels    []HotelBooking `json:"hotels" bson:"hotels"`
	Events    []TripEvent    `json:"events" bson:"events"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Location is a city segment of a multi-city trip. A segment with both
// dates set is active for days inside the inclusive range; a segment
// without dates is never matched by day.
type Location struct {
	Name      string `json:"name" bson:"name"`
	StartDate string `json:"start_date,omitempty" bson:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty" bson:"end_date,omitempty"`
}

// HotelBooking covers days in [CheckIn, CheckOut) — the checkout day
// itself is not part of the stay.
type HotelBooking struct {
	HotelID        string  `json:"hotelid" bson:"hotelid"`
	Name           string  `json:"name" bson:"name"`
	Address        string  `json:"address,omitempty" bson:"address,omitempty"`
	CheckIn        string  `json:"check_in,omitempty" bson:"check_in,omitempty"`
	CheckOut       string  `json:"check_out,omitempty" bson:"check_out,omitempty"`
	ConfirmationNo string  `json:"confirmation_no,omitempty" bson:"confirmation_no,omitempty"`
	Price          float64 `json:"price,omitempty" bson:"price,omitempty"`
}

// Event types
const (
	EventRestaurant    = "restaurant"
	EventHotel         = "hotel"
	EventAttraction    = "attraction"
	EventMuseum        = "museum"
	EventPark          = "park"
	EventMonument      = "monument"
	EventShopping      = "shopping"
	EventEntertainment = "entertainment"
	EventOther         = "other"
)

// TripEvent is a single dated itinerary entry. Time is either the
// "All day" sentinel or a composed 12/24-hour string; Date is a
// yyyy-MM-dd calendar key.
type TripEvent struct {
	EventID     string  `json:"eventid" bson:"eventid"`
	Title       string  `json:"title" bson:"title"`
	Time        string  `json:"time" bson:"time"`
	Date        string  `json:"date" bson:"date"`
	Type        string  `json:"type" bson:"type"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64 `json:"price,omitempty" bson:"price,omitempty"`
	// Free-text spot for "other"-type events; opaque to the engine.
	Location string `json:"location,omitempty" bson:"location,omitempty"`

	RestaurantData *RestaurantData `json:"restaurant_data,omitempty" bson:"restaurant_data,omitempty"`
	AttractionData *AttractionData `json:"attraction_data,omitempty" bson:"attraction_data,omitempty"`
}

// RestaurantData is the structured payload attached to restaurant events.
type RestaurantData struct {
	Name     string  `json:"name" bson:"name"`
	Address  string  `json:"address,omitempty" bson:"address,omitempty"`
	Cuisine  string  `json:"cuisine,omitempty" bson:"cuisine,omitempty"`
	Rating   float64 `json:"rating,omitempty" bson:"rating,omitempty"`
	PhotoURL string  `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
}

// AttractionData is the structured payload attached to attraction-family
// events (attraction, museum, park, monument, ...).
type AttractionData struct {
	Name     string  `json:"name" bson:"name"`
	Address  string  `json:"address,omitempty" bson:"address,omitempty"`
	Category string  `json:"category,omitempty" bson:"category,omitempty"`
	Rating   float64 `json:"rating,omitempty" bson:"rating,omitempty"`
	PhotoURL string  `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
}

// PlaceSuggestion is the narrow view of a location-search result. Only
// these two fields ever reach the engine; provider-specific shapes stay
// with the provider.
type PlaceSuggestion struct {
	Name             string `json:"name" bson:"name"`
	FormattedAddress string `json:"formatted_address" bson:"formatted_address"`
}

// Label flattens a suggestion into the free-text location string stored
// on an event.
func (s PlaceSuggestion) Label() string {
	if s.FormattedAddress == "" {
		return s.Name
	}
	if s.Name == "" {
		return s.FormattedAddress
	}
	return s.Name + ", " + s.FormattedAddress
}

// DayView is one assembled calendar day: the resolved city and hotel plus
// that day's events in display order. Derived, never stored.
type DayView struct {
	Date      string        `json:"date"`
	DayNumber int           `json:"day_number"`
	City      string        `json:"city,omitempty"`
	Hotel     *HotelBooking `json:"hotel,omitempty"`
	Events    []TripEvent   `json:"events"`
}
