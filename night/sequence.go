package night

import (
	"sort"
	"time"
)

// Prior is the optional event that last changed the sky before dayA's noon.
type Prior struct {
	Kind  EventKind
	Valid bool
}

// Sequence orders the events that fall inside the timeline and brackets them
// with the StartOfDay and EndOfDay sentinels. Orders are dense, 0 through N+1.
func Sequence(o Offsets) []TimelineEvent {
	candidates := []TimelineEvent{
		{Kind: Sunrise, Minute: o.Sunrise},
		{Kind: Sunset, Minute: o.Sunset},
	}
	if o.Moonrise.Valid {
		candidates = append(candidates, TimelineEvent{Kind: Moonrise, Minute: o.Moonrise.Minute})
	}
	if o.Moonset.Valid {
		candidates = append(candidates, TimelineEvent{Kind: Moonset, Minute: o.Moonset.Minute})
	}

	inWindow := candidates[:0]
	for _, e := range candidates {
		if e.Minute >= 0 && e.Minute <= DayMinutes {
			inWindow = append(inWindow, e)
		}
	}

	// Stable: equal minutes keep sunrise, sunset, moonrise, moonset order.
	sort.SliceStable(inWindow, func(i, j int) bool {
		return inWindow[i].Minute < inWindow[j].Minute
	})

	events := make([]TimelineEvent, 0, len(inWindow)+2)
	events = append(events, TimelineEvent{Kind: StartOfDay, Minute: 0, Order: 0})
	for i, e := range inWindow {
		e.Order = i + 1
		events = append(events, e)
	}
	events = append(events, TimelineEvent{Kind: EndOfDay, Minute: DayMinutes, Order: len(inWindow) + 1})

	return events
}

// PriorState returns the latest of day's events that happened before noon.
// Equal clock times resolve to the later of sunrise, sunset, moonrise,
// moonset. The new moon is ignored.
func PriorState(day DayAstroEvents) Prior {
	var (
		prior  Prior
		latest int
	)

	consider := func(kind EventKind, t *time.Time) {
		if t == nil || t.Hour() >= 12 {
			return
		}
		if m := clockMinutes(*t); !prior.Valid || m >= latest {
			prior = Prior{Kind: kind, Valid: true}
			latest = m
		}
	}

	consider(Sunrise, &day.Sunrise)
	consider(Sunset, &day.Sunset)
	consider(Moonrise, day.Moonrise)
	consider(Moonset, day.Moonset)

	return prior
}
