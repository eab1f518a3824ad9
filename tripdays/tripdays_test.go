package tripdays

import (
	"errors"
	"reflect"
	"testing"

	"wander/models"
)

func TestDays(t *testing.T) {
	days, err := Days("2024-06-01", "2024-06-03")
	if err != nil {
		t.Fatalf("Days: %v", err)
	}
	want := []string{"2024-06-01", "2024-06-02", "2024-06-03"}
	if !reflect.DeepEqual(days, want) {
		t.Fatalf("days = %v, want %v", days, want)
	}
}

func TestDaysSingleDay(t *testing.T) {
	days, err := Days("2024-06-01", "2024-06-01")
	if err != nil || len(days) != 1 || days[0] != "2024-06-01" {
		t.Fatalf("days = %v, err = %v", days, err)
	}
}

func TestDaysAcrossMonthBoundary(t *testing.T) {
	days, err := Days("2024-02-28", "2024-03-01")
	if err != nil {
		t.Fatalf("Days: %v", err)
	}
	// 2024 is a leap year
	want := []string{"2024-02-28", "2024-02-29", "2024-03-01"}
	if !reflect.DeepEqual(days, want) {
		t.Fatalf("days = %v, want %v", days, want)
	}
}

func TestDaysInvertedRange(t *testing.T) {
	if _, err := Days("2024-06-03", "2024-06-01"); !errors.Is(err, ErrBadRange) {
		t.Fatalf("err = %v, want ErrBadRange", err)
	}
}

func TestDaysBadInput(t *testing.T) {
	if _, err := Days("June 1", "2024-06-03"); err == nil {
		t.Fatal("expected error for unparsable start date")
	}
}

func TestDayNumber(t *testing.T) {
	if n := DayNumber("2024-06-01", "2024-06-01"); n != 1 {
		t.Errorf("day 1 = %d", n)
	}
	if n := DayNumber("2024-06-05", "2024-06-01"); n != 5 {
		t.Errorf("day 5 = %d", n)
	}
	if n := DayNumber("2024-05-31", "2024-06-01"); n != 0 {
		t.Errorf("before trip = %d", n)
	}
}

func TestResolveDateToken(t *testing.T) {
	got, err := ResolveDateToken("day-3", "2024-06-01")
	if err != nil || got != "2024-06-03" {
		t.Fatalf("day-3 = %q, err = %v", got, err)
	}

	got, err = ResolveDateToken("2024-06-02", "2024-06-01")
	if err != nil || got != "2024-06-02" {
		t.Fatalf("passthrough = %q, err = %v", got, err)
	}

	if _, err := ResolveDateToken("day-0", "2024-06-01"); err == nil {
		t.Fatal("day-0 should be rejected")
	}
	if _, err := ResolveDateToken("yesterday", "2024-06-01"); err == nil {
		t.Fatal("arbitrary token should be rejected")
	}
}

func TestActiveCity(t *testing.T) {
	locations := []models.Location{
		{Name: "Rome", StartDate: "2024-06-01", EndDate: "2024-06-03"},
		{Name: "Florence", StartDate: "2024-06-04", EndDate: "2024-06-06"},
	}

	if got := ActiveCity("2024-06-02", locations, true); got != "Rome" {
		t.Errorf("06-02 = %q, want Rome", got)
	}
	if got := ActiveCity("2024-06-04", locations, true); got != "Florence" {
		t.Errorf("06-04 = %q, want Florence", got)
	}
	if got := ActiveCity("2024-06-07", locations, true); got != "" {
		t.Errorf("outside all ranges = %q, want empty", got)
	}
	if got := ActiveCity("2024-06-02", locations, false); got != "" {
		t.Errorf("single-city trip = %q, want empty", got)
	}
	if got := ActiveCity("2024-06-02", nil, true); got != "" {
		t.Errorf("no locations = %q, want empty", got)
	}
}

func TestActiveCityRangeBounds(t *testing.T) {
	locations := []models.Location{
		{Name: "Rome", StartDate: "2024-06-01", EndDate: "2024-06-03"},
	}
	// inclusive both ends
	for _, day := range []string{"2024-06-01", "2024-06-03"} {
		if got := ActiveCity(day, locations, true); got != "Rome" {
			t.Errorf("%s = %q, want Rome", day, got)
		}
	}
}

func TestActiveCityUndatedSegmentNeverMatches(t *testing.T) {
	locations := []models.Location{{Name: "Rome"}}
	if got := ActiveCity("2024-06-01", locations, true); got != "" {
		t.Fatalf("undated segment matched: %q", got)
	}
}

func TestActiveCityFirstMatchWins(t *testing.T) {
	locations := []models.Location{
		{Name: "Rome", StartDate: "2024-06-01", EndDate: "2024-06-05"},
		{Name: "Florence", StartDate: "2024-06-03", EndDate: "2024-06-06"},
	}
	if got := ActiveCity("2024-06-03", locations, true); got != "Rome" {
		t.Fatalf("overlap resolved to %q, want Rome", got)
	}
}

func TestActiveHotelSingleUndated(t *testing.T) {
	hotels := []models.HotelBooking{{HotelID: "h1", Name: "Hotel Roma"}}
	for _, day := range []string{"2024-06-01", "2024-06-02", "2024-06-03"} {
		got := ActiveHotel(day, hotels)
		if got == nil || got.HotelID != "h1" {
			t.Errorf("%s: got %v, want Hotel Roma", day, got)
		}
	}
}

func TestActiveHotelCheckoutExclusive(t *testing.T) {
	hotels := []models.HotelBooking{
		{HotelID: "h1", Name: "Hotel Roma", CheckIn: "2024-06-01", CheckOut: "2024-06-03"},
		{HotelID: "h2", Name: "Hotel Firenze", CheckIn: "2024-06-03", CheckOut: "2024-06-05"},
	}

	if got := ActiveHotel("2024-06-01", hotels); got == nil || got.HotelID != "h1" {
		t.Errorf("06-01 = %v, want h1", got)
	}
	if got := ActiveHotel("2024-06-02", hotels); got == nil || got.HotelID != "h1" {
		t.Errorf("06-02 = %v, want h1", got)
	}
	// checkout day belongs to the next stay
	if got := ActiveHotel("2024-06-03", hotels); got == nil || got.HotelID != "h2" {
		t.Errorf("06-03 = %v, want h2", got)
	}
	if got := ActiveHotel("2024-06-05", hotels); got != nil {
		t.Errorf("after last checkout = %v, want nil", got)
	}
}

func TestActiveHotelSingleRangedFallback(t *testing.T) {
	hotels := []models.HotelBooking{
		{HotelID: "h1", CheckIn: "2024-06-01", CheckOut: "2024-06-03"},
	}
	// a lone hotel still wins on days its own range does not cover
	if got := ActiveHotel("2024-06-10", hotels); got == nil || got.HotelID != "h1" {
		t.Fatalf("fallback = %v, want h1", got)
	}
}

func TestActiveHotelNoMatch(t *testing.T) {
	if got := ActiveHotel("2024-06-01", nil); got != nil {
		t.Fatalf("no hotels = %v, want nil", got)
	}
	hotels := []models.HotelBooking{
		{HotelID: "h1", CheckIn: "2024-06-01", CheckOut: "2024-06-02"},
		{HotelID: "h2", CheckIn: "2024-06-02", CheckOut: "2024-06-03"},
	}
	if got := ActiveHotel("2024-06-10", hotels); got != nil {
		t.Fatalf("multi-hotel no match = %v, want nil", got)
	}
}
