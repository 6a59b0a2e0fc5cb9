package night

import "time"

// Offset is an optional minute on the timeline. Valid is false when the event
// has no occurrence to place. A zero Minute with Valid set is a real event at
// the timeline's start.
type Offset struct {
	Minute int
	Valid  bool
}

// Offsets are the four events of a night placed on the timeline. Values may
// fall outside [0, DayMinutes]; Sequence drops those.
type Offsets struct {
	Sunrise  int
	Sunset   int
	Moonrise Offset
	Moonset  Offset
}

// Normalize places the events of dayA and dayB on the shared timeline.
//
// dayA's times are shifted back by half a day so its noon becomes minute 0,
// dayB's are shifted forward by half a day. An event that happened before
// dayA's noon belongs to the previous night, so dayB's occurrence is used.
func Normalize(dayA, dayB DayAstroEvents) Offsets {
	return Offsets{
		Sunrise:  pickSun(dayA.Sunrise, dayB.Sunrise),
		Sunset:   pickSun(dayA.Sunset, dayB.Sunset),
		Moonrise: pickMoon(dayA.Moonrise, dayB.Moonrise),
		Moonset:  pickMoon(dayA.Moonset, dayB.Moonset),
	}
}

func clockMinutes(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func pickSun(a, b time.Time) int {
	if m := clockMinutes(a) - halfDay; m >= 0 {
		return m
	}
	return clockMinutes(b) + halfDay
}

// pickMoon prefers dayA's occurrence unless it lies before dayA's noon and
// dayB has one. A missing occurrence on one day falls back to the other.
func pickMoon(a, b *time.Time) Offset {
	switch {
	case a == nil && b == nil:
		return Offset{}
	case a == nil:
		return Offset{Minute: clockMinutes(*b) + halfDay, Valid: true}
	}

	m := clockMinutes(*a) - halfDay
	if m < 0 && b != nil {
		return Offset{Minute: clockMinutes(*b) + halfDay, Valid: true}
	}
	return Offset{Minute: m, Valid: true}
}
