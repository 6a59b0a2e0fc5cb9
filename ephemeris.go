package main

import (
	"darksky/night"
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingSun is returned when a day lacks sunrise or sunset. The
	// provider must always supply both.
	ErrMissingSun = errors.New("sunrise and sunset are required")

	// ErrDuplicateDay is returned when two records share a date.
	ErrDuplicateDay = errors.New("duplicate day")
)

// timestampLayouts are tried in order. Only RFC 3339 carries an offset; the
// others are labelled with the configured zone.
var timestampLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.RFC3339,
}

// EphemerisFile is the document an ephemeris provider drops for the bot
type EphemerisFile struct {
	Location string            `yaml:"location,omitempty"`
	Days     []EphemerisRecord `yaml:"days"`
}

// EphemerisRecord is one calendar day of the provider's output
type EphemerisRecord struct {
	Date     string `yaml:"date"`
	Sunrise  string `yaml:"sunrise"`
	Sunset   string `yaml:"sunset"`
	Moonrise string `yaml:"moonrise,omitempty"`
	Moonset  string `yaml:"moonset,omitempty"`
	NewMoon  string `yaml:"newmoon,omitempty"`
}

// LoadEphemeris() reads the provider file and returns its days sorted by date
func LoadEphemeris(path string, loc *time.Location) ([]night.DayAstroEvents, error) {
	log.Println("INFO: Reading ephemeris file", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ephemeris: %w", err)
	}

	return parseEphemeris(data, loc)
}

func parseEphemeris(data []byte, loc *time.Location) ([]night.DayAstroEvents, error) {
	var file EphemerisFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode ephemeris: %w", err)
	}

	days := make([]night.DayAstroEvents, 0, len(file.Days))
	seen := map[string]bool{}
	for _, record := range file.Days {
		day, err := record.Day(loc)
		if err != nil {
			return nil, err
		}

		key := day.Date.Format(time.DateOnly)
		if seen[key] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDay, key)
		}
		seen[key] = true

		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	return days, nil
}

// Day() converts the record into engine input. Wall-clock values are taken as
// written; nothing is converted between zones.
func (r EphemerisRecord) Day(loc *time.Location) (night.DayAstroEvents, error) {
	date, err := time.ParseInLocation(time.DateOnly, r.Date, loc)
	if err != nil {
		return night.DayAstroEvents{}, fmt.Errorf("day %q: bad date: %w", r.Date, err)
	}
	if r.Sunrise == "" || r.Sunset == "" {
		return night.DayAstroEvents{}, fmt.Errorf("day %s: %w", r.Date, ErrMissingSun)
	}

	day := night.DayAstroEvents{Date: date}

	fields := []struct {
		name  string
		value string
		set   func(time.Time)
	}{
		{"sunrise", r.Sunrise, func(t time.Time) { day.Sunrise = t }},
		{"sunset", r.Sunset, func(t time.Time) { day.Sunset = t }},
		{"moonrise", r.Moonrise, func(t time.Time) { day.Moonrise = &t }},
		{"moonset", r.Moonset, func(t time.Time) { day.Moonset = &t }},
		{"newmoon", r.NewMoon, func(t time.Time) { day.NewMoon = t }},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		t, err := parseTimestamp(f.value, loc)
		if err != nil {
			return night.DayAstroEvents{}, fmt.Errorf("day %s: %s: %w", r.Date, f.name, err)
		}
		f.set(t)
	}

	return day, nil
}

func parseTimestamp(s string, loc *time.Location) (time.Time, error) {
	var firstErr error
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// upcoming() returns consecutive days from from's calendar date onwards, enough for n nights
func upcoming(days []night.DayAstroEvents, from time.Time, n int) []night.DayAstroEvents {
	y, m, d := from.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, from.Location())

	var selected []night.DayAstroEvents
	for _, day := range days {
		if day.Date.Before(today) {
			continue
		}
		// A missing day ends the run; nights only pair consecutive days.
		if len(selected) > 0 && !nextDay(selected[len(selected)-1].Date, day.Date) {
			break
		}
		selected = append(selected, day)
		if len(selected) == n+1 {
			break
		}
	}

	return selected
}

func nextDay(prev, next time.Time) bool {
	y, m, d := prev.AddDate(0, 0, 1).Date()
	ny, nm, nd := next.Date()
	return y == ny && m == nm && d == nd
}
