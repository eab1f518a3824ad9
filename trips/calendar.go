package trips

import (
	"context"
	"net/http"
	"time"

	"wander/db"
	"wander/models"
	"wander/rdx"
	"wander/schedule"
	"wander/tripdays"
	"wander/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// BuildCalendar assembles the per-day view of a trip: every calendar day
// in order, each with its resolved city segment, hotel stay, and that
// day's events in display order.
func BuildCalendar(trip models.Trip) ([]models.DayView, error) {
	days, err := tripdays.Days(trip.StartDate, trip.EndDate)
	if err != nil {
		return nil, err
	}

	views := make([]models.DayView, 0, len(days))
	for _, day := range days {
		views = append(views, models.DayView{
			Date:      day,
			DayNumber: tripdays.DayNumber(day, trip.StartDate),
			City:      tripdays.ActiveCity(day, trip.Locations, trip.MultiCity),
			Hotel:     tripdays.ActiveHotel(day, trip.Hotels),
			Events:    schedule.EventsForDay(day, trip.Events),
		})
	}
	return views, nil
}

// GET /api/trips/:id/calendar
func GetCalendar(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("id")

	if cached := rdx.GetCachedCalendar(tripID); cached != nil {
		utils.RespondWithJSON(w, http.StatusOK, cached)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{"tripid": tripID, "deleted": bson.M{"$ne": true}}

	var trip models.Trip
	if err := db.TripsCollection.FindOne(ctx, filter).Decode(&trip); err != nil {
		http.Error(w, "Trip not found", http.StatusNotFound)
		return
	}

	views, err := BuildCalendar(trip)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid trip date range")
		return
	}

	rdx.SetCachedCalendar(tripID, views)

	utils.RespondWithJSON(w, http.StatusOK, views)
}
