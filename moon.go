package main

import (
	"math"
	"time"
)

const (
	synodicMonth     float64 = 29.53059  // Average length of a synodic month in days
	newMoonReference float64 = 2451549.5 // Julian date for a known new moon (Jan 6, 2000 18:14 UTC)
)

// moonIllumination() returns the lit percentage of the Moon's disc at t
func moonIllumination(t time.Time) float64 {
	return (1.0 - math.Cos(2.0*math.Pi*moonAge(t))) / 2.0 * 100.0
}

// moonAge() returns the fraction of the synodic month elapsed at t, 0 at new moon
func moonAge(t time.Time) float64 {
	daysSinceNewMoon := julianDate(t.UTC()) - newMoonReference

	age := math.Mod(daysSinceNewMoon/synodicMonth, 1.0)
	if age < 0 {
		age += 1.0
	}
	return age
}

// julianDate() converts a time.Time to Julian Date
func julianDate(t time.Time) float64 {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	// January and February count as months 13 and 14 of the previous year
	if month <= 2 {
		year--
		month += 12
	}

	a := int(float64(year) / 100.0)
	b := 2 - a + int(float64(a)/4.0)
	jdn := int(365.25*float64(year)) + int(30.6001*float64(month+1)) + day + 1720994 + b

	fracDay := (float64(hour) + float64(min)/60.0 + float64(sec)/3600.0) / 24.0

	return float64(jdn) + fracDay
}

// untilNewMoon() returns the time left before newMoon, or false when it is unknown or past
func untilNewMoon(now, newMoon time.Time) (time.Duration, bool) {
	if newMoon.IsZero() || newMoon.Before(now) {
		return 0, false
	}
	return newMoon.Sub(now), true
}
