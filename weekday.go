package checker

import (
	"fmt"
	"time"
)

// Weekday is a day of the week numbered the ISO way: 1=Monday ... 7=Sunday.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var finnishWeekdays = [...]string{
	Monday:    "maanantai",
	Tuesday:   "tiistai",
	Wednesday: "keskiviikko",
	Thursday:  "torstai",
	Friday:    "perjantai",
	Saturday:  "lauantai",
	Sunday:    "sunnuntai",
}

var englishWeekdays = [...]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// ParseWeekday converts 1..7 into a Weekday.
func ParseWeekday(n int) (Weekday, error) {
	wd := Weekday(n)
	if !wd.Valid() {
		return 0, fmt.Errorf("%w: weekday must be between 1 and 7, got %d", ErrInvalidArgument, n)
	}
	return wd, nil
}

// WeekdayFromTime converts a time.Weekday (Sunday=0) into a Weekday.
func WeekdayFromTime(d time.Weekday) Weekday {
	if d == time.Sunday {
		return Sunday
	}
	return Weekday(d)
}

func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

func (w Weekday) Int() int {
	return int(w)
}

// Time converts to the standard library representation.
func (w Weekday) Time() time.Weekday {
	return time.Weekday(int(w) % 7)
}

// Finnish returns the lowercase Finnish name of the day.
func (w Weekday) Finnish() string {
	if !w.Valid() {
		return ""
	}
	return finnishWeekdays[w]
}

func (w Weekday) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return englishWeekdays[w]
}

// NextDate returns the nearest date, today included, that falls on wd.
// Both now and the result are in UTC. A matching today is returned even if
// the slot hour has already passed.
func NextDate(now time.Time, wd Weekday) time.Time {
	now = now.UTC()
	current := WeekdayFromTime(now.Weekday()).Int()
	diff := (wd.Int() + 7 - current) % 7
	return now.AddDate(0, 0, diff)
}

// DateString formats t as YYYY-MM-DD from its UTC date fields.
func DateString(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
