package main

import (
	"darksky/config"
	"darksky/night"
	"fmt"
	"strings"
	"time"
)

// Forecast is one classified night plus what the report shows next to it
type Forecast struct {
	night.Night
	MoonIllum int64     `json:"moon_illumination"`
	NewMoon   time.Time `json:"new_moon"`
}

type Nights []Forecast

// isGood() returns true if the night has a dark window at least minDark minutes long
func (f Forecast) isGood(minDark int) bool {
	longest, ok := f.LongestDark()
	return ok && longest.Minutes() >= minDark
}

// Good() returns the nights with a long enough dark window
func (ns Nights) Good(minDark int) Nights {
	good := Nights{}
	for _, f := range ns {
		if f.isGood(minDark) {
			good = append(good, f)
		}
	}

	return good
}

// tonight() returns the night that starts on now's calendar date in the
// night's own zone, if present
func (ns Nights) tonight(now time.Time) Nights {
	for _, f := range ns {
		y, m, d := now.In(f.Date.Location()).Date()
		fy, fm, fd := f.Date.Date()
		if fy == y && fm == m && fd == d {
			return Nights{f}
		}
	}

	return Nights{}
}

// setMoonIllumination() sets MoonIllum to the illumination at each night's midnight
func (ns Nights) setMoonIllumination() Nights {
	updated := Nights{}

	for _, f := range ns {
		f.MoonIllum = int64(moonIllumination(f.At(night.DayMinutes / 2)))
		updated = append(updated, f)
	}

	return updated
}

// span() formats a window as wall-clock times and length
func span(w night.Window) string {
	return fmt.Sprintf("%s-%s %2dh%02dm", night.ClockLabel(w.Start), night.ClockLabel(w.End), w.Minutes()/60, w.Minutes()%60)
}

// Print() returns one line per night: moon illumination, date, longest dark window and total darkness
func (ns Nights) Print() string {
	out := ""
	for _, f := range ns {
		longest, ok := f.LongestDark()
		if !ok {
			out += fmt.Sprintf("%3d%% | %s | %-18s |%4d\n", f.MoonIllum, f.Date.Format("Mon - 02 Jan"), "-", 0)
			continue
		}
		out += fmt.Sprintf("%3d%% | %s | %s |%4d\n", f.MoonIllum, f.Date.Format("Mon - 02 Jan"), span(longest), f.DarkMinutes())
	}

	return out
}

// Timeline() returns every window and event of every night
func (ns Nights) Timeline() string {
	var b strings.Builder
	for _, f := range ns {
		fmt.Fprintf(&b, "%s (moon %d%%)\n", f.Date.Format("Mon 02 Jan 2006"), f.MoonIllum)
		for _, w := range f.Windows {
			fmt.Fprintf(&b, "  %s %s\n", span(w), w.State)
		}
		for _, e := range f.Events {
			if e.Kind == night.StartOfDay || e.Kind == night.EndOfDay {
				continue
			}
			fmt.Fprintf(&b, "  %-8s %s\n", e.Kind, night.ClockLabel(e.Minute))
		}
	}

	return b.String()
}

// nextNewMoon() returns the first known upcoming new moon
func (ns Nights) nextNewMoon(now time.Time) (time.Time, bool) {
	for _, f := range ns {
		if _, ok := untilNewMoon(now, f.NewMoon); ok {
			return f.NewMoon, true
		}
	}

	return time.Time{}, false
}

// planNights() classifies days and pairs every night with its moon data
func planNights(days []night.DayAstroEvents) Nights {
	ns := Nights{}
	for i, n := range night.Plan(days) {
		ns = append(ns, Forecast{Night: n, NewMoon: days[i].NewMoon})
	}

	return ns.setMoonIllumination()
}

// buildNights() loads the ephemeris file and plans ForecastDays nights from now
func buildNights(cfg config.Config, now time.Time) (Nights, error) {
	days, err := LoadEphemeris(cfg.EphemerisFile, cfg.Location())
	if err != nil {
		return nil, err
	}

	selected := upcoming(days, now.In(cfg.Location()), cfg.ForecastDays)
	if len(selected) < 2 {
		return Nights{}, nil
	}

	return planNights(selected), nil
}
