// Package schedule orders a trip's events within a day and implements
// the create/edit/move/delete operations. Every operation is a pure
// function over an immutable snapshot: callers get a fresh collection
// back and persist it themselves.
package schedule

import (
	"errors"
	"sort"

	"wander/models"
	"wander/timefmt"
	"wander/utils"
)

var (
	ErrEmptyTitle   = errors.New("event title is required")
	ErrEmptyTime    = errors.New("event time is required")
	ErrNoTargetDate = errors.New("at least one target date is required")
	ErrNotFound     = errors.New("event not found")
	ErrSameDate     = errors.New("event is already on that date")
)

// EventsForDay returns the events dated on day, ordered by their time
// sort key. The sort is stable, so same-time events keep insertion order.
// All-day events lead. Permissive on read: a day outside the trip range
// still returns whatever matches it.
func EventsForDay(day string, events []models.TripEvent) []models.TripEvent {
	result := []models.TripEvent{}
	for _, ev := range events {
		if ev.Date == day {
			result = append(result, ev)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return timefmt.SortKey(result[i].Time) < timefmt.SortKey(result[j].Time)
	})
	return result
}

// CreateEvents fans one template out across the target dates: one event
// per date, each with a fresh id. Single-day creation is the one-date
// case. On a validation error nothing is created.
func CreateEvents(tmpl models.TripEvent, targetDates []string) ([]models.TripEvent, error) {
	if err := validate(tmpl); err != nil {
		return nil, err
	}
	if len(targetDates) == 0 {
		return nil, ErrNoTargetDate
	}

	created := make([]models.TripEvent, 0, len(targetDates))
	for _, date := range targetDates {
		ev := tmpl
		ev.EventID = utils.GetUUID()
		ev.Date = date
		created = append(created, ev)
	}
	return created, nil
}

// EditEvent applies the patch to the one event with the given id. Edits
// never fan out, even for events created via multi-day fan-out. The
// patch's EventID and Date are ignored; moving is MoveEvent's job.
func EditEvent(events []models.TripEvent, id string, patch models.TripEvent) ([]models.TripEvent, error) {
	if err := validate(patch); err != nil {
		return nil, err
	}

	idx := indexOf(events, id)
	if idx < 0 {
		return nil, ErrNotFound
	}

	updated := append([]models.TripEvent(nil), events...)
	patch.EventID = id
	patch.Date = events[idx].Date
	updated[idx] = patch
	return updated, nil
}

// MoveEvent reassigns one event to a new day; every other event is left
// alone. Moving an event onto its current date is rejected.
func MoveEvent(events []models.TripEvent, id, newDate string) ([]models.TripEvent, error) {
	idx := indexOf(events, id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	if events[idx].Date == newDate {
		return nil, ErrSameDate
	}

	updated := append([]models.TripEvent(nil), events...)
	updated[idx].Date = newDate
	return updated, nil
}

// DeleteEvent removes the event with the given id. A missing id leaves
// the collection as it was.
func DeleteEvent(events []models.TripEvent, id string) []models.TripEvent {
	updated := make([]models.TripEvent, 0, len(events))
	for _, ev := range events {
		if ev.EventID != id {
			updated = append(updated, ev)
		}
	}
	return updated
}

func validate(ev models.TripEvent) error {
	if ev.Title == "" {
		return ErrEmptyTitle
	}
	if ev.Time == "" {
		return ErrEmptyTime
	}
	return nil
}

func indexOf(events []models.TripEvent, id string) int {
	for i := range events {
		if events[i].EventID == id {
			return i
		}
	}
	return -1
}
