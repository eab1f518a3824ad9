// trips.go
package trips

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"wander/db"
	"wander/middleware"
	"wander/models"
	"wander/rdx"
	"wander/tripdays"
	"wander/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// Utility function to extract user ID from JWT
func GetRequestingUserID(w http.ResponseWriter, r *http.Request) string {
	tokenString := r.Header.Get("Authorization")
	claims, err := middleware.ValidateJWT(tokenString)
	if err != nil {
		log.Printf("JWT validation error: %v", err)
		return ""
	}
	return claims.UserID
}

// POST /api/trips
func CreateTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var trip models.Trip
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	userID := GetRequestingUserID(w, r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	// The date range must expand to at least one day before anything
	// downstream can resolve against it.
	if _, err := tripdays.Days(trip.StartDate, trip.EndDate); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid trip date range")
		return
	}

	trip.UserID = userID
	trip.TripID = utils.GenerateRandomString(13)
	if trip.Status == "" {
		trip.Status = "Draft"
	}
	if trip.Locations == nil {
		trip.Locations = []models.Location{}
	}
	if trip.Hotels == nil {
		trip.Hotels = []models.HotelBooking{}
	}
	if trip.Events == nil {
		trip.Events = []models.TripEvent{}
	}
	trip.CreatedAt = time.Now().UTC()
	trip.UpdatedAt = trip.CreatedAt

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.TripsCollection.InsertOne(ctx, trip)
	if err != nil {
		http.Error(w, "Error inserting trip", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// GET /api/trips/all/:id
func GetTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"tripid": tripID, "deleted": bson.M{"$ne": true}}

	var trip models.Trip
	err := db.TripsCollection.FindOne(ctx, filter).Decode(&trip)
	if err != nil {
		http.Error(w, "Trip not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, trip)
}

// PUT /api/trips/:id
func UpdateTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := GetRequestingUserID(w, r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	tripID := ps.ByName("id")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var existing models.Trip
	err := db.TripsCollection.FindOne(ctx, bson.M{"tripid": tripID}).Decode(&existing)
	if err != nil {
		http.Error(w, "Trip not found", http.StatusNotFound)
		return
	}

	if existing.UserID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var updated models.Trip
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if _, err := tripdays.Days(updated.StartDate, updated.EndDate); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid trip date range")
		return
	}

	update := bson.M{"$set": bson.M{
		"name":               updated.Name,
		"description":        updated.Description,
		"start_date":         updated.StartDate,
		"end_date":           updated.EndDate,
		"status":             updated.Status,
		"published":          updated.Published,
		"use_length_of_stay": updated.UseLengthOfStay,
		"multi_city":         updated.MultiCity,
		"locations":          updated.Locations,
		"hotels":             updated.Hotels,
		"updated_at":         time.Now().UTC(),
	}}

	_, err = db.TripsCollection.UpdateOne(ctx, bson.M{"tripid": tripID}, update)
	if err != nil {
		http.Error(w, "Error updating trip", http.StatusInternalServerError)
		return
	}

	rdx.InvalidateCalendar(tripID)

	utils.RespondWithJSON(w, http.StatusOK, bson.M{"message": "Trip updated successfully"})
}

// DELETE /api/trips/:id
func DeleteTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := GetRequestingUserID(w, r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	tripID := ps.ByName("id")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var trip models.Trip
	err := db.TripsCollection.FindOne(ctx, bson.M{"tripid": tripID}).Decode(&trip)
	if err != nil {
		http.Error(w, "Trip not found", http.StatusNotFound)
		return
	}

	if trip.UserID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	update := bson.M{"$set": bson.M{"deleted": true}}
	_, err = db.TripsCollection.UpdateOne(ctx, bson.M{"tripid": tripID}, update)
	if err != nil {
		http.Error(w, "Error deleting trip", http.StatusInternalServerError)
		return
	}

	rdx.InvalidateCalendar(tripID)

	utils.RespondWithJSON(w, http.StatusOK, bson.M{"message": "Trip deleted successfully"})
}

// POST /api/trips/:id/fork
func ForkTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := GetRequestingUserID(w, r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	originalID := ps.ByName("id")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var original models.Trip
	err := db.TripsCollection.FindOne(ctx, bson.M{"tripid": originalID}).Decode(&original)
	if err != nil {
		http.Error(w, "Original trip not found", http.StatusNotFound)
		return
	}

	newTrip := models.Trip{
		TripID:          utils.GenerateRandomString(13),
		UserID:          userID,
		Name:            "Forked - " + original.Name,
		Description:     original.Description,
		StartDate:       original.StartDate,
		EndDate:         original.EndDate,
		UseLengthOfStay: original.UseLengthOfStay,
		MultiCity:       original.MultiCity,
		Locations:       original.Locations,
		Hotels:          original.Hotels,
		Events:          original.Events,
		Status:          "Draft",
		Published:       false,
		ForkedFrom:      &originalID,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}

	result, err := db.TripsCollection.InsertOne(ctx, newTrip)
	if err != nil {
		http.Error(w, "Error forking trip", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// PUT /api/trips/:id/publish
func PublishTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := GetRequestingUserID(w, r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := ps.ByName("id")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"tripid": id, "user_id": userID}
	update := bson.M{"$set": bson.M{"published": true}}

	result, err := db.TripsCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		http.Error(w, "Error publishing trip", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, result)
}
