package checker

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"
)

func helsinki(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Helsinki")
	if err != nil {
		t.Fatalf("load Europe/Helsinki: %v", err)
	}
	return loc
}

func TestLocalHourToUTC(t *testing.T) {
	loc := helsinki(t)

	tests := []struct {
		name     string
		now      time.Time
		hour     int
		expected int
	}{
		{"winter", time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC), 18, 16},
		{"summer", time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC), 18, 15},
		{"midnight rolls back a day", time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC), 0, 22},
		{"day after spring forward", time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC), 3, 0},
		{"before the gap on transition day", time.Date(2024, 3, 31, 10, 0, 0, 0, time.UTC), 2, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := LocalHourToUTC(FixedClock{At: test.now, Loc: loc}, test.hour)
			if err != nil {
				t.Fatalf("LocalHourToUTC returned error: %v", err)
			}
			if got != test.expected {
				t.Errorf("LocalHourToUTC(%d) = %d, expected %d", test.hour, got, test.expected)
			}
		})
	}
}

func TestLocalHourToUTCInUTC(t *testing.T) {
	clock := FixedClock{At: time.Date(2024, 4, 24, 6, 0, 0, 0, time.UTC)}
	for hour := 0; hour < 24; hour++ {
		got, err := LocalHourToUTC(clock, hour)
		if err != nil {
			t.Fatalf("LocalHourToUTC(%d) returned error: %v", hour, err)
		}
		if got != hour {
			t.Errorf("LocalHourToUTC(%d) = %d in UTC", hour, got)
		}
	}
}

func TestLocalHourToUTCInvalidHour(t *testing.T) {
	clock := FixedClock{At: time.Date(2024, 4, 24, 6, 0, 0, 0, time.UTC)}
	for _, hour := range []int{-1, 24, 25} {
		if _, err := LocalHourToUTC(clock, hour); !errors.Is(err, ErrInvalidHour) {
			t.Errorf("LocalHourToUTC(%d) error = %v, expected ErrInvalidHour", hour, err)
		}
	}
}

func TestLocalHourToUTCDSTTransitions(t *testing.T) {
	loc := helsinki(t)

	t.Run("gap", func(t *testing.T) {
		// 03:00 does not exist on 2024-03-31 in Helsinki.
		clock := FixedClock{At: time.Date(2024, 3, 31, 10, 0, 0, 0, time.UTC), Loc: loc}
		if _, err := LocalHourToUTC(clock, 3); !errors.Is(err, ErrAmbiguousLocalTime) {
			t.Errorf("error = %v, expected ErrAmbiguousLocalTime", err)
		}
	})

	t.Run("overlap", func(t *testing.T) {
		// 03:00 happens twice on 2024-10-27 in Helsinki.
		clock := FixedClock{At: time.Date(2024, 10, 27, 10, 0, 0, 0, time.UTC), Loc: loc}
		if _, err := LocalHourToUTC(clock, 3); !errors.Is(err, ErrAmbiguousLocalTime) {
			t.Errorf("error = %v, expected ErrAmbiguousLocalTime", err)
		}
	})
}
