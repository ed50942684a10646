package checker

import (
	"fmt"
	"strings"

	"kalsabot.dev/checker/scraper"
)

// Outcome is the result of checking a day's slots for one hour.
type Outcome int

const (
	NoData   Outcome = iota // the API returned no slots
	NotFound                // slots exist, none ends at the hour
	Found                   // a slot ends at the hour
)

func (o Outcome) String() string {
	switch o {
	case NoData:
		return "no_data"
	case NotFound:
		return "not_found"
	case Found:
		return "found"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// MatchStrategy decides whether a slot satisfies the target UTC hour.
type MatchStrategy interface {
	Match(slot scraper.Slot, hourUTC int) bool
	Name() string
}

// MatchEndHour matches on the hour of the slot's end time only. A slot
// ending at 18:30 matches 18 just like one ending at 18:00.
type MatchEndHour struct{}

func (MatchEndHour) Match(slot scraper.Slot, hourUTC int) bool {
	return slot.End.UTC().Hour() == hourUTC
}

func (MatchEndHour) Name() string { return "hour" }

// MatchEndHourExact requires the slot to end exactly on the hour.
type MatchEndHourExact struct{}

func (MatchEndHourExact) Match(slot scraper.Slot, hourUTC int) bool {
	end := slot.End.UTC()
	return end.Hour() == hourUTC && end.Minute() == 0 && end.Second() == 0
}

func (MatchEndHourExact) Name() string { return "exact" }

// ParseMatchStrategy maps a strategy name to its implementation.
// The empty name selects MatchEndHour.
func ParseMatchStrategy(name string) (MatchStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "hour":
		return MatchEndHour{}, nil
	case "exact":
		return MatchEndHourExact{}, nil
	}
	return nil, fmt.Errorf("%w: unknown match strategy %q (want hour or exact)", ErrInvalidArgument, name)
}

// Check scans slots in order for the first one that matches hourUTC.
// A nil strategy means MatchEndHour.
func Check(slots []scraper.Slot, hourUTC int, m MatchStrategy) Outcome {
	if len(slots) == 0 {
		return NoData
	}
	if m == nil {
		m = MatchEndHour{}
	}
	for _, slot := range slots {
		if m.Match(slot, hourUTC) {
			return Found
		}
	}
	return NotFound
}
