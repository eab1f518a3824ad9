package trips

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestOwnerTripsFilterScopesToCaller(t *testing.T) {
	filter := ownerTripsFilter("u1")

	if filter["user_id"] != "u1" {
		t.Fatalf("filter user_id = %v, want u1", filter["user_id"])
	}
	deleted, ok := filter["deleted"].(bson.M)
	if !ok || deleted["$ne"] != true {
		t.Fatalf("filter deleted = %v, want {$ne: true}", filter["deleted"])
	}
}

func TestSearchTripsFilterPublishedOnly(t *testing.T) {
	filter := searchTripsFilter(map[string]string{
		"start_date": "2024-06-01",
		"location":   "Rome",
	})

	if filter["published"] != true {
		t.Fatalf("search must be scoped to published trips, got %v", filter["published"])
	}
	if filter["start_date"] != "2024-06-01" {
		t.Errorf("start_date = %v", filter["start_date"])
	}
	loc, ok := filter["locations.name"].(bson.M)
	if !ok {
		t.Fatalf("locations.name = %v", filter["locations.name"])
	}
	in, ok := loc["$in"].([]string)
	if !ok || len(in) != 1 || in[0] != "Rome" {
		t.Errorf("location filter = %v", loc)
	}
	if _, present := filter["status"]; present {
		t.Error("empty status must not constrain the query")
	}
}
