package checker

import (
	"fmt"
	"time"
)

// Clock supplies the current instant and the operator's local timezone.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

// SystemClock reads the wall clock. A nil Loc means time.Local.
type SystemClock struct {
	Loc *time.Location
}

func (c SystemClock) Now() time.Time {
	return time.Now()
}

func (c SystemClock) Location() *time.Location {
	if c.Loc == nil {
		return time.Local
	}
	return c.Loc
}

// FixedClock always reports the same instant.
type FixedClock struct {
	At  time.Time
	Loc *time.Location
}

func (c FixedClock) Now() time.Time {
	return c.At
}

func (c FixedClock) Location() *time.Location {
	if c.Loc == nil {
		return time.UTC
	}
	return c.Loc
}

// LocalHourToUTC converts a wall-clock hour on today's local date into the
// matching UTC hour of day. Offset rules are taken from today's date, not
// from the date being checked.
func LocalHourToUTC(clock Clock, hour int) (int, error) {
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %d is not between 0 and 23", ErrInvalidHour, hour)
	}

	loc := clock.Location()
	today := clock.Now().In(loc)
	y, m, d := today.Date()

	instants := resolveLocal(y, m, d, hour, loc)
	if len(instants) != 1 {
		return 0, fmt.Errorf("%w: %04d-%02d-%02d %02d:00 in %s maps to %d instants",
			ErrAmbiguousLocalTime, y, m, d, hour, loc, len(instants))
	}
	return instants[0].UTC().Hour(), nil
}

// resolveLocal returns every instant whose wall clock in loc reads
// y-m-d hour:00:00. A DST gap yields none, an overlap yields two.
func resolveLocal(y int, m time.Month, d, hour int, loc *time.Location) []time.Time {
	wall := time.Date(y, m, d, hour, 0, 0, 0, time.UTC)

	// Offsets in force around the wall time. Transitions are at most a day
	// apart from the probe points, so these cover both sides of one.
	offsets := map[int]struct{}{}
	for _, probe := range []time.Duration{-24 * time.Hour, 0, 24 * time.Hour} {
		_, off := wall.Add(probe).In(loc).Zone()
		offsets[off] = struct{}{}
	}

	var out []time.Time
	for off := range offsets {
		candidate := wall.Add(-time.Duration(off) * time.Second)
		local := candidate.In(loc)
		ly, lm, ld := local.Date()
		if ly == y && lm == m && ld == d && local.Hour() == hour && local.Minute() == 0 {
			out = append(out, candidate)
		}
	}
	return out
}
