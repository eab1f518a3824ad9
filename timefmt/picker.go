package timefmt

// Picker models the time-picker interaction: opened with the current
// field values, mutated by the toggle transitions, and closed by
// SetAllDay, Clear or Set. Every closing transition leaves Time
// consistent with the selected fields.
type Picker struct {
	open   bool
	AllDay bool
	Hour   int
	Minute int
	Period string
	Is24   bool

	// Time is the committed value once the picker closes.
	Time string
}

// Open starts an interaction at sensible defaults (9:00 AM, 12-hour).
func Open() *Picker {
	return &Picker{open: true, Hour: 9, Minute: 0, Period: "AM"}
}

// OpenAt starts an interaction pre-filled from an existing stored time.
func OpenAt(stored string, is24 bool) *Picker {
	p := Open()
	p.Is24 = is24
	if stored == "" {
		if is24 {
			p.Hour, p.Period = 9, ""
		}
		return p
	}
	if key := SortKey(stored); key == allDaySortKey {
		p.AllDay = true
		return p
	}
	hh, mm, ok := splitClock(SortKey(stored))
	if !ok {
		return p
	}
	p.Minute = mm
	if is24 {
		p.Hour, p.Period = hh, ""
	} else {
		p.Hour, p.Minute, p.Period = ToggleFormat(hh, mm, "", false)
	}
	return p
}

func (p *Picker) IsOpen() bool { return p.open }

// SetAllDay commits the sentinel and closes immediately.
func (p *Picker) SetAllDay() {
	p.AllDay = true
	p.Time = AllDay
	p.open = false
}

// ToggleIs24 switches the hour format, recomputing Hour/Period so the
// selected moment is unchanged.
func (p *Picker) ToggleIs24() {
	p.Is24 = !p.Is24
	p.Hour, p.Minute, p.Period = ToggleFormat(p.Hour, p.Minute, p.Period, p.Is24)
}

// Clear resets to an empty time and closes.
func (p *Picker) Clear() {
	p.AllDay = false
	p.Time = ""
	p.open = false
}

// Set composes the final string from the selected fields and closes.
func (p *Picker) Set() {
	if p.AllDay {
		p.Time = AllDay
	} else {
		p.Time = Compose(p.Hour, p.Minute, p.Period, p.Is24)
	}
	p.open = false
}
