package night

// BuildWindows pairs adjacent events into windows carrying the state
// classified for that pair. states must hold one entry per pair.
func BuildWindows(events []TimelineEvent, states []Illumination) []Window {
	if len(events) < 2 {
		return nil
	}

	windows := make([]Window, 0, len(events)-1)
	for i := 0; i+1 < len(events) && i < len(states); i++ {
		windows = append(windows, Window{
			Start: wrap(events[i].Minute),
			End:   wrap(events[i+1].Minute),
			State: states[i],
		})
	}
	return windows
}

// wrap folds a minute onto [0, DayMinutes). DayMinutes itself is kept so the
// last window ends on the timeline's end.
func wrap(minute int) int {
	if minute == DayMinutes {
		return DayMinutes
	}
	return minute % DayMinutes
}
