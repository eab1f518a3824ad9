package trips

import (
	"context"
	"net/http"
	"time"

	"wander/db"
	"wander/globals"
	"wander/models"
	"wander/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// ownerTripsFilter scopes a listing to the caller's own live trips.
func ownerTripsFilter(userID string) bson.M {
	return bson.M{"user_id": userID, "deleted": bson.M{"$ne": true}}
}

// searchTripsFilter scopes the unauthenticated search surface to
// published, live trips only; drafts stay private to their owner.
func searchTripsFilter(query map[string]string) bson.M {
	filter := bson.M{"published": true, "deleted": bson.M{"$ne": true}}
	if start := query["start_date"]; start != "" {
		filter["start_date"] = start
	}
	if location := query["location"]; location != "" {
		filter["locations.name"] = bson.M{"$in": []string{location}}
	}
	if status := query["status"]; status != "" {
		filter["status"] = status
	}
	return filter
}

// GET /api/trips — the caller's own trips
func GetTrips(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	trips, err := utils.FindAndDecode[models.Trip](ctx, db.TripsCollection, ownerTripsFilter(userID))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching trips")
		return
	}

	for i := range trips {
		if trips[i].Locations == nil {
			trips[i].Locations = []models.Location{}
		}
		if trips[i].Hotels == nil {
			trips[i].Hotels = []models.HotelBooking{}
		}
		if trips[i].Events == nil {
			trips[i].Events = []models.TripEvent{}
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, trips)
}

// GET /api/trips/search — public, published trips only
func SearchTrips(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	filter := searchTripsFilter(map[string]string{
		"start_date": query.Get("start_date"),
		"location":   query.Get("location"),
		"status":     query.Get("status"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	trips, err := utils.FindAndDecode[models.Trip](ctx, db.TripsCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching trips")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, trips)
}
