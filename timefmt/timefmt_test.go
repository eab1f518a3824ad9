package timefmt

import (
	"sort"
	"testing"
)

func TestSortKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12:30 PM", "12:30"},
		{"12:30 AM", "00:30"},
		{"3:00 PM", "15:00"},
		{"09:00 AM", "09:00"},
		{"11:59 PM", "23:59"},
		{"15:00", "15:00"},
		{"00:30", "00:30"},
		{"All day", "!all-day"},
		{"all day", "!all-day"},
		{"", "!all-day"},
	}
	for _, c := range cases {
		if got := SortKey(c.in); got != c.want {
			t.Errorf("SortKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestAllDaySortsFirst(t *testing.T) {
	if SortKey("All day") >= SortKey("00:00") {
		t.Fatalf("All day must sort before midnight, got %q vs %q",
			SortKey("All day"), SortKey("00:00"))
	}
}

func TestSortKeyWallClockOrder(t *testing.T) {
	times := []string{"2:00 PM", "All day", "9:00 AM", "12:15 AM", "11:00 PM"}
	sort.Slice(times, func(i, j int) bool {
		return SortKey(times[i]) < SortKey(times[j])
	})
	want := []string{"All day", "12:15 AM", "9:00 AM", "2:00 PM", "11:00 PM"}
	for i := range want {
		if times[i] != want[i] {
			t.Fatalf("order = %v, want %v", times, want)
		}
	}
}

func TestToggleFormat(t *testing.T) {
	cases := []struct {
		hour       int
		period     string
		to24       bool
		wantHour   int
		wantPeriod string
	}{
		{3, "PM", true, 15, ""},
		{12, "AM", true, 0, ""},
		{12, "PM", true, 12, ""},
		{9, "AM", true, 9, ""},
		{15, "", false, 3, "PM"},
		{0, "", false, 12, "AM"},
		{12, "", false, 12, "PM"},
		{9, "", false, 9, "AM"},
	}
	for _, c := range cases {
		h, m, p := ToggleFormat(c.hour, 30, c.period, c.to24)
		if h != c.wantHour || m != 30 || p != c.wantPeriod {
			t.Errorf("ToggleFormat(%d, %q, %v) = (%d, %d, %q), want (%d, 30, %q)",
				c.hour, c.period, c.to24, h, m, p, c.wantHour, c.wantPeriod)
		}
	}
}

func TestToggleFormatRoundTrip(t *testing.T) {
	for hh := 0; hh < 24; hh++ {
		h12, _, period := ToggleFormat(hh, 0, "", false)
		h24, _, _ := ToggleFormat(h12, 0, period, true)
		if h24 != hh {
			t.Fatalf("hour %d round-tripped to %d via (%d %s)", hh, h24, h12, period)
		}
	}
}

func TestCompose(t *testing.T) {
	if got := Compose(15, 5, "", true); got != "15:05" {
		t.Errorf("Compose 24h = %q, want 15:05", got)
	}
	if got := Compose(3, 0, "pm", false); got != "03:00 PM" {
		t.Errorf("Compose 12h = %q, want 03:00 PM", got)
	}
}

func TestComposeThenSortKey(t *testing.T) {
	if got := SortKey(Compose(3, 0, "PM", false)); got != "15:00" {
		t.Errorf("SortKey(Compose(3PM)) = %q, want 15:00", got)
	}
	if got := SortKey(Compose(12, 30, "AM", false)); got != "00:30" {
		t.Errorf("SortKey(Compose(12:30AM)) = %q, want 00:30", got)
	}
}

func TestPickerAllDayClosesImmediately(t *testing.T) {
	p := Open()
	p.SetAllDay()
	if p.IsOpen() {
		t.Fatal("picker still open after SetAllDay")
	}
	if p.Time != AllDay {
		t.Fatalf("Time = %q, want %q", p.Time, AllDay)
	}
}

func TestPickerToggleKeepsMoment(t *testing.T) {
	p := Open()
	p.Hour, p.Minute, p.Period = 3, 30, "PM"

	p.ToggleIs24()
	if p.Hour != 15 || p.Period != "" {
		t.Fatalf("after toggle to 24h: hour=%d period=%q", p.Hour, p.Period)
	}

	p.ToggleIs24()
	if p.Hour != 3 || p.Period != "PM" {
		t.Fatalf("after toggle back: hour=%d period=%q", p.Hour, p.Period)
	}
}

func TestPickerSetComposes(t *testing.T) {
	p := Open()
	p.Hour, p.Minute, p.Period = 10, 0, "AM"
	p.Set()
	if p.IsOpen() {
		t.Fatal("picker still open after Set")
	}
	if p.Time != "10:00 AM" {
		t.Fatalf("Time = %q, want 10:00 AM", p.Time)
	}
}

func TestPickerClear(t *testing.T) {
	p := OpenAt("All day", false)
	if !p.AllDay {
		t.Fatal("OpenAt(All day) did not set AllDay")
	}
	p.Clear()
	if p.Time != "" || p.IsOpen() || p.AllDay {
		t.Fatalf("after Clear: time=%q open=%v allday=%v", p.Time, p.IsOpen(), p.AllDay)
	}
}

func TestPickerOpenAtStoredTime(t *testing.T) {
	p := OpenAt("2:45 PM", false)
	if p.Hour != 2 || p.Minute != 45 || p.Period != "PM" {
		t.Fatalf("OpenAt(2:45 PM) = %d:%d %s", p.Hour, p.Minute, p.Period)
	}

	p24 := OpenAt("2:45 PM", true)
	if p24.Hour != 14 || p24.Minute != 45 {
		t.Fatalf("OpenAt(2:45 PM, 24h) = %d:%d", p24.Hour, p24.Minute)
	}
}
