package rdx

import (
	"encoding/json"
	"log"
	"time"

	"wander/globals"
	"wander/models"
)

const calendarTTL = 10 * time.Minute

func calendarKey(tripID string) string {
	return "calendar:" + tripID
}

// GetCachedCalendar returns the cached day views for a trip, or nil on a
// miss. Cache trouble is logged, never surfaced.
func GetCachedCalendar(tripID string) []models.DayView {
	raw, err := Conn.Get(globals.Ctx, calendarKey(tripID)).Result()
	if err != nil {
		return nil
	}
	var days []models.DayView
	if err := json.Unmarshal([]byte(raw), &days); err != nil {
		log.Println("Calendar cache unmarshal error:", err)
		return nil
	}
	return days
}

func SetCachedCalendar(tripID string, days []models.DayView) {
	data, err := json.Marshal(days)
	if err != nil {
		log.Println("Calendar cache marshal error:", err)
		return
	}
	if err := Conn.Set(globals.Ctx, calendarKey(tripID), data, calendarTTL).Err(); err != nil {
		log.Println("Calendar cache set error:", err)
	}
}

// InvalidateCalendar drops the cached view; called on every trip write.
func InvalidateCalendar(tripID string) {
	if err := Conn.Del(globals.Ctx, calendarKey(tripID)).Err(); err != nil {
		log.Println("Calendar cache delete error:", err)
	}
}
