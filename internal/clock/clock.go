// Package clock computes analog clock readings for named time zones and
// draws them as small character dials.
package clock

import (
	"fmt"
	"math"
	"strings"
	"time"
	_ "time/tzdata" // zone names resolve without a system zoneinfo database
)

// Hand and face glyphs
const (
	HourHand   = '#'
	MinuteHand = '*'
	SecondHand = '.'
	Marker     = '·'
	Center     = 'o'
)

// Zone is a labeled location
type Zone struct {
	Label    string
	Location *time.Location
}

// LoadZone resolves an IANA zone name
func LoadZone(label, tz string) (Zone, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return Zone{}, fmt.Errorf("unknown time zone %q: %w", tz, err)
	}
	if label == "" {
		label = tz
	}
	return Zone{Label: label, Location: loc}, nil
}

// Reading is the state of one clock at an instant. Angles are degrees
// clockwise from twelve o'clock.
type Reading struct {
	Label  string
	Hour   float64
	Minute float64
	Second float64
	Time   string // e.g. "Mon 15:04:05"
}

// Read computes the hand angles and time label of z at now
func Read(z Zone, now time.Time) Reading {
	local := now.In(z.Location)
	h, m, s := float64(local.Hour()%12), float64(local.Minute()), float64(local.Second())
	return Reading{
		Label:  z.Label,
		Hour:   h*30 + m*0.5,
		Minute: m*6 + s*0.1,
		Second: s * 6,
		Time:   local.Format("Mon 15:04:05"),
	}
}

// Face draws a dial of the given radius in rows. Columns are doubled so the
// dial looks round in a terminal cell grid.
func Face(r Reading, radius int) []string {
	if radius < 2 {
		radius = 2
	}
	rows, cols := 2*radius+1, 4*radius+1
	cx, cy := 2*radius, radius

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols))
	}
	set := func(x, y int, ch rune) {
		if y >= 0 && y < rows && x >= 0 && x < cols {
			grid[y][x] = ch
		}
	}
	plot := func(angle, length float64, ch rune) {
		rad := angle * math.Pi / 180
		for d := 0.5; d <= length; d += 0.5 {
			x := cx + int(math.Round(2*d*math.Sin(rad)))
			y := cy - int(math.Round(d*math.Cos(rad)))
			set(x, y, ch)
		}
	}

	rim := float64(radius)
	plot(r.Second, rim*0.9, SecondHand)
	plot(r.Minute, rim*0.8, MinuteHand)
	plot(r.Hour, rim*0.5, HourHand)

	// rim goes on top of the hands
	for h := 1; h <= 12; h++ {
		if h%3 == 0 {
			continue
		}
		rad := float64(h) * 30 * math.Pi / 180
		set(cx+int(math.Round(2*rim*math.Sin(rad))), cy-int(math.Round(rim*math.Cos(rad))), Marker)
	}
	set(cx-1, 0, '1')
	set(cx, 0, '2')
	set(cols-1, cy, '3')
	set(cx, rows-1, '6')
	set(0, cy, '9')
	set(cx, cy, Center)

	lines := make([]string, rows)
	for i, row := range grid {
		lines[i] = string(row)
	}
	return lines
}
