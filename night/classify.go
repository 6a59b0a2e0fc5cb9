package night

// ordinals maps an event kind to its order in the night. Events that are not
// on the timeline have order -1.
type ordinals [EndOfDay + 1]int

func ordinalsOf(events []TimelineEvent) ordinals {
	var ord ordinals
	for k := range ord {
		ord[k] = -1
	}
	for _, e := range events {
		if ord[e.Kind] == -1 {
			ord[e.Kind] = e.Order
		}
	}
	return ord
}

// Classify returns the illumination of each pair of adjacent events, so the
// result has one element fewer than events.
//
// The rules reason on event orders rather than minutes. Whether sunset comes
// before sunrise on the timeline (dusk first) or after it (dawn first) decides
// which side of the sequence is night, so each case has its own rule table.
func Classify(events []TimelineEvent, prior Prior) []Illumination {
	if len(events) < 2 {
		return nil
	}

	ord := ordinalsOf(events)
	states := make([]Illumination, 0, len(events)-1)
	for i := 0; i+1 < len(events); i++ {
		states = append(states, classifyPair(events[i].Kind, events[i+1].Kind, ord, prior))
	}
	return states
}

func classifyPair(start, end EventKind, ord ordinals, prior Prior) Illumination {
	sunrise, sunset := ord[Sunrise], ord[Sunset]

	switch {
	case sunset < sunrise:
		return duskFirst(start, end, ord)
	case sunrise < sunset:
		return dawnFirst(start, end, ord, prior)
	}
	return Dark
}

func duskFirst(start, end EventKind, ord ordinals) Illumination {
	sunrise, sunset := ord[Sunrise], ord[Sunset]
	moonrise, moonset := ord[Moonrise], ord[Moonset]
	betweenSunsetAndSunrise := func(o int) bool {
		return sunset < o && o < sunrise
	}

	switch {
	case start == StartOfDay || end == EndOfDay:
		return Daylight
	case start == Sunrise || end == Sunset:
		return Daylight
	case start == Moonrise:
		if betweenSunsetAndSunrise(moonrise) {
			return Moonlight
		}
		return Daylight
	case end == Moonset:
		if betweenSunsetAndSunrise(moonset) {
			return Moonlight
		}
		return Daylight
	case start == Sunset && end == Sunrise && moonrise < sunset && moonset > sunrise:
		// The Moon rose before sunset and sets after sunrise.
		return Moonlight
	}
	// A Moon that is up for only part of sunset..sunrise without an event in
	// between is reported dark.
	return Dark
}

func dawnFirst(start, end EventKind, ord ordinals, prior Prior) Illumination {
	sunrise, sunset := ord[Sunrise], ord[Sunset]
	moonrise, moonset := ord[Moonrise], ord[Moonset]
	outsideDaylight := func(o int) bool {
		return o > sunset || o < sunrise
	}

	switch {
	case start == StartOfDay && prior.Valid && prior.Kind == Moonrise:
		return Moonlight
	case start == StartOfDay && prior.Valid && prior.Kind == Sunrise:
		return Daylight
	case start == Sunrise || end == Sunset:
		return Daylight
	case start == Moonrise:
		if outsideDaylight(moonrise) {
			return Moonlight
		}
		return Daylight
	case end == Moonset:
		if outsideDaylight(moonset) {
			return Moonlight
		}
		return Daylight
	case end == EndOfDay && moonrise > moonset:
		// Risen and not set again before the timeline ends.
		return Moonlight
	}
	return Dark
}
