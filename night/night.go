// Package night splits the night shared by two consecutive calendar days into
// windows lit by the Sun, lit by the Moon, or fully dark.
//
// All positions are minutes on a noon-to-noon timeline: minute 0 is the first
// day's 12:00 wall clock, 720 is the midnight between the two days and 1440
// is the second day's 12:00. Inputs are wall-clock times in the observer's
// zone; nothing here converts time zones.
package night

import (
	"fmt"
	"time"
)

const (
	// DayMinutes is the length of the timeline.
	DayMinutes = 1440

	halfDay = 720
)

// EventKind identifies a point on the timeline.
type EventKind int

const (
	StartOfDay EventKind = iota
	Sunrise
	Sunset
	Moonrise
	Moonset
	EndOfDay
)

var kindNames = [...]string{
	StartOfDay: "startOfDay",
	Sunrise:    "sunrise",
	Sunset:     "sunset",
	Moonrise:   "moonrise",
	Moonset:    "moonset",
	EndOfDay:   "endOfDay",
}

func (k EventKind) String() string {
	if k < StartOfDay || k > EndOfDay {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText lets events render as their names in JSON.
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Illumination is the state of the sky during a window.
type Illumination int

const (
	// Daylight means the Sun is above the horizon.
	Daylight Illumination = iota
	// Moonlight means the Moon is up and the Sun is not.
	Moonlight
	// Dark means neither is up.
	Dark
)

func (s Illumination) String() string {
	switch s {
	case Daylight:
		return "daylight"
	case Moonlight:
		return "moonlight"
	case Dark:
		return "dark"
	default:
		return fmt.Sprintf("Illumination(%d)", int(s))
	}
}

func (s Illumination) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// DayAstroEvents holds the rise and set times of one calendar day as supplied
// by an ephemeris provider. Sunrise and Sunset are required. Moonrise and
// Moonset are nil when the Moon does not rise or set on that day.
type DayAstroEvents struct {
	Date     time.Time
	Sunrise  time.Time
	Sunset   time.Time
	Moonrise *time.Time
	Moonset  *time.Time
	// NewMoon is the next new moon. It does not take part in classification.
	NewMoon time.Time
}

// TimelineEvent is an event placed on the timeline. Order is its rank among
// all events of the night; the sentinels take the first and last rank.
type TimelineEvent struct {
	Kind   EventKind `json:"kind"`
	Minute int       `json:"minute"`
	Order  int       `json:"order"`
}

// Window is a stretch of the timeline with a single illumination state.
type Window struct {
	Start int          `json:"start"`
	End   int          `json:"end"`
	State Illumination `json:"state"`
}

// Minutes returns the length of the window.
func (w Window) Minutes() int {
	return w.End - w.Start
}

// Night is the classified timeline of one pair of consecutive days.
type Night struct {
	// Date is the calendar date of the earlier day.
	Date    time.Time       `json:"date"`
	Prior   Prior           `json:"-"`
	Events  []TimelineEvent `json:"events"`
	Windows []Window        `json:"windows"`
}

// Calculate classifies the night between dayA and the day that follows it.
func Calculate(dayA, dayB DayAstroEvents) Night {
	events := Sequence(Normalize(dayA, dayB))
	prior := PriorState(dayA)

	return Night{
		Date:    dayA.Date,
		Prior:   prior,
		Events:  events,
		Windows: BuildWindows(events, Classify(events, prior)),
	}
}

// Plan classifies every adjacent pair of days. days must be consecutive and
// in ascending order; the result has one Night per pair.
func Plan(days []DayAstroEvents) []Night {
	if len(days) < 2 {
		return nil
	}

	nights := make([]Night, 0, len(days)-1)
	for i := 0; i+1 < len(days); i++ {
		nights = append(nights, Calculate(days[i], days[i+1]))
	}

	return nights
}

// At returns the wall-clock time of a timeline minute of this night. Minutes
// count on the wall clock, so a DST change inside the night does not shift
// the result away from ClockLabel.
func (n Night) At(minute int) time.Time {
	y, m, d := n.Date.Date()
	return time.Date(y, m, d, 12, minute, 0, 0, n.Date.Location())
}

// Dark returns the dark windows in timeline order.
func (n Night) Dark() []Window {
	var dark []Window
	for _, w := range n.Windows {
		if w.State == Dark {
			dark = append(dark, w)
		}
	}
	return dark
}

// DarkMinutes is the total length of the dark windows.
func (n Night) DarkMinutes() int {
	total := 0
	for _, w := range n.Dark() {
		total += w.Minutes()
	}
	return total
}

// LongestDark returns the longest dark window. The earliest one wins a tie.
func (n Night) LongestDark() (Window, bool) {
	var (
		best  Window
		found bool
	)
	for _, w := range n.Dark() {
		if !found || w.Minutes() > best.Minutes() {
			best, found = w, true
		}
	}
	return best, found
}

// ClockLabel formats a timeline minute as the "HH:MM" wall clock it stands for.
func ClockLabel(minute int) string {
	m := (minute + halfDay) % DayMinutes
	if m < 0 {
		m += DayMinutes
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
