package night_test

import (
	"darksky/night"
	"fmt"
	"time"
)

// ExampleCalculate classifies the night of 1 May with a Moon that rises
// after dusk and sets the next morning.
func ExampleCalculate() {
	at := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02 15:04", s)
		return t
	}
	ptr := func(t time.Time) *time.Time { return &t }

	may1 := night.DayAstroEvents{
		Date:     at("2024-05-01 00:00"),
		Sunrise:  at("2024-05-01 05:58"),
		Sunset:   at("2024-05-01 20:00"),
		Moonrise: ptr(at("2024-05-01 22:30")),
		Moonset:  ptr(at("2024-05-01 09:20")),
	}
	may2 := night.DayAstroEvents{
		Date:     at("2024-05-02 00:00"),
		Sunrise:  at("2024-05-02 06:05"),
		Sunset:   at("2024-05-02 20:02"),
		Moonrise: ptr(at("2024-05-02 23:10")),
		Moonset:  ptr(at("2024-05-02 10:15")),
	}

	n := night.Calculate(may1, may2)
	for _, w := range n.Windows {
		fmt.Printf("%s-%s %s\n", night.ClockLabel(w.Start), night.ClockLabel(w.End), w.State)
	}
	// Output:
	// 12:00-20:00 daylight
	// 20:00-22:30 dark
	// 22:30-06:05 moonlight
	// 06:05-10:15 daylight
	// 10:15-12:00 daylight
}
