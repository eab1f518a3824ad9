// Package tripevents exposes the HTTP operations on a trip's events:
// add (with multi-day fan-out), edit, move and delete. The pure
// scheduling logic lives in wander/schedule; handlers here load the trip
// snapshot, run one engine call, and persist the returned collection in
// a single $set.
package tripevents

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"wander/db"
	"wander/models"
	"wander/notelinks"
	"wander/rdx"
	"wander/schedule"
	"wander/tripdays"
	"wander/trips"
	"wander/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateEventRequest carries the reusable template plus the target days.
// TargetDates entries are either yyyy-MM-dd keys or day-N tokens when
// the trip displays day numbers.
type CreateEventRequest struct {
	models.TripEvent
	Note        string   `json:"note"`
	Links       []string `json:"links"`
	TargetDates []string `json:"target_dates"`
	// Picked from the location-search widget; only the narrow fields
	// reach this server.
	Suggestion *models.PlaceSuggestion `json:"suggestion,omitempty"`
}

// applySuggestion fills the free-text location from a picked suggestion
// when the caller did not type one.
func (req *CreateEventRequest) applySuggestion() {
	if req.Suggestion != nil && req.TripEvent.Location == "" {
		req.TripEvent.Location = req.Suggestion.Label()
	}
}

type moveEventRequest struct {
	NewDate string `json:"new_date"`
}

func loadOwnedTrip(ctx context.Context, w http.ResponseWriter, r *http.Request, tripID string) (models.Trip, bool) {
	var trip models.Trip

	userID := trips.GetRequestingUserID(w, r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return trip, false
	}

	filter := bson.M{"tripid": tripID, "deleted": bson.M{"$ne": true}}
	if err := db.TripsCollection.FindOne(ctx, filter).Decode(&trip); err != nil {
		http.Error(w, "Trip not found", http.StatusNotFound)
		return trip, false
	}

	if trip.UserID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return trip, false
	}
	return trip, true
}

func persistEvents(ctx context.Context, tripID string, events []models.TripEvent) error {
	update := bson.M{"$set": bson.M{
		"events":     events,
		"updated_at": time.Now().UTC(),
	}}
	_, err := db.TripsCollection.UpdateOne(ctx, bson.M{"tripid": tripID}, update)
	if err == nil {
		rdx.InvalidateCalendar(tripID)
	}
	return err
}

// resolveTargetDate maps a caller-supplied date or day-N token onto a
// calendar key and enforces the write-side range check: every event
// write lands inside the trip's own days.
func resolveTargetDate(token string, trip models.Trip) (string, error) {
	date, err := tripdays.ResolveDateToken(token, trip.StartDate)
	if err != nil {
		return "", err
	}
	if date < trip.StartDate || date > trip.EndDate {
		return "", fmt.Errorf("date %s outside trip range", date)
	}
	return date, nil
}

// composeDescription packs the free-text note and validated links into
// the stored description. A bad link blocks the whole save.
func composeDescription(note string, links []string) (string, bool) {
	for _, l := range links {
		if !notelinks.IsValidLink(l) {
			return "", false
		}
	}
	return notelinks.Encode(note, links), true
}

// POST /api/trips/:id/events
func CreateEvents(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("id")

	var req CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	trip, ok := loadOwnedTrip(ctx, w, r, tripID)
	if !ok {
		return
	}

	if len(req.TargetDates) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "At least one target date is required")
		return
	}

	targetDates := make([]string, 0, len(req.TargetDates))
	for _, token := range req.TargetDates {
		date, err := resolveTargetDate(token, trip)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid target date: "+err.Error())
			return
		}
		targetDates = append(targetDates, date)
	}

	req.applySuggestion()

	if req.Note != "" || len(req.Links) > 0 {
		desc, ok := composeDescription(req.Note, req.Links)
		if !ok {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid link")
			return
		}
		req.TripEvent.Description = desc
	}

	created, err := schedule.CreateEvents(req.TripEvent, targetDates)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := persistEvents(ctx, tripID, append(trip.Events, created...)); err != nil {
		http.Error(w, "Error saving events", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// PUT /api/trips/:id/events/:eventid
func EditEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("id")
	eventID := ps.ByName("eventid")

	var req CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	trip, ok := loadOwnedTrip(ctx, w, r, tripID)
	if !ok {
		return
	}

	req.applySuggestion()

	if req.Note != "" || len(req.Links) > 0 {
		desc, ok := composeDescription(req.Note, req.Links)
		if !ok {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid link")
			return
		}
		req.TripEvent.Description = desc
	}

	updated, err := schedule.EditEvent(trip.Events, eventID, req.TripEvent)
	if err != nil {
		code := http.StatusBadRequest
		if err == schedule.ErrNotFound {
			code = http.StatusNotFound
		}
		utils.RespondWithError(w, code, err.Error())
		return
	}

	if err := persistEvents(ctx, tripID, updated); err != nil {
		http.Error(w, "Error saving event", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, bson.M{"message": "Event updated successfully"})
}

// POST /api/trips/:id/events/:eventid/move
func MoveEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("id")
	eventID := ps.ByName("eventid")

	var req moveEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	trip, ok := loadOwnedTrip(ctx, w, r, tripID)
	if !ok {
		return
	}

	newDate, err := resolveTargetDate(req.NewDate, trip)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid target date: "+err.Error())
		return
	}

	updated, err := schedule.MoveEvent(trip.Events, eventID, newDate)
	if err != nil {
		code := http.StatusBadRequest
		if err == schedule.ErrNotFound {
			code = http.StatusNotFound
		}
		utils.RespondWithError(w, code, err.Error())
		return
	}

	if err := persistEvents(ctx, tripID, updated); err != nil {
		http.Error(w, "Error saving event", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, bson.M{"message": "Event moved successfully"})
}

// DELETE /api/trips/:id/events/:eventid
func DeleteEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("id")
	eventID := ps.ByName("eventid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	trip, ok := loadOwnedTrip(ctx, w, r, tripID)
	if !ok {
		return
	}

	updated := schedule.DeleteEvent(trip.Events, eventID)

	if err := persistEvents(ctx, tripID, updated); err != nil {
		http.Error(w, "Error deleting event", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, bson.M{"message": "Event deleted successfully"})
}
