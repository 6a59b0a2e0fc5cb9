package main

import (
	"darksky/night"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// calendarNamespace scopes the name-based UIDs of exported windows
var calendarNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("darksky/dark-window"))

// windowUID() derives a stable UID, so re-exporting a night updates the same entry
func windowUID(f Forecast, w night.Window) string {
	name := fmt.Sprintf("%s/%d", f.Date.Format(time.DateOnly), w.Start)
	return uuid.NewSHA1(calendarNamespace, []byte(name)).String() + "@darksky"
}

// Calendar() returns the dark windows of the nights as an iCalendar document
func (ns Nights) Calendar(now time.Time) []byte {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//darksky//dark sky windows//EN")

	for _, f := range ns {
		for _, w := range f.Dark() {
			event := cal.AddEvent(windowUID(f, w))
			event.SetDtStampTime(now)
			event.SetStartAt(f.At(w.Start))
			event.SetEndAt(f.At(w.End))
			event.SetSummary(fmt.Sprintf("Dark sky %s-%s", night.ClockLabel(w.Start), night.ClockLabel(w.End)))
			event.SetDescription(fmt.Sprintf("%d min of dark sky, moon %d%% illuminated", w.Minutes(), f.MoonIllum))
		}
	}

	return []byte(cal.Serialize())
}
