package checker

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"kalsabot.dev/checker/scraper"
)

type fakeScraper struct {
	queries []scraper.Params
	slots   []scraper.Slot
	err     error
}

func (f *fakeScraper) Slots(ctx context.Context, q scraper.Params) ([]scraper.Slot, error) {
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	return f.slots, nil
}

// Monday 2024-04-22 11:00 in Helsinki (EEST, UTC+3).
func testClock(t *testing.T) Clock {
	return FixedClock{At: time.Date(2024, 4, 22, 8, 0, 0, 0, time.UTC), Loc: helsinki(t)}
}

func TestCheckCourt(t *testing.T) {
	registry := DefaultRegistry()
	hakis, _ := registry.Get("hakis")

	t.Run("defaults", func(t *testing.T) {
		fs := &fakeScraper{slots: []scraper.Slot{{
			ID:    "P",
			Start: time.Date(2024, 4, 24, 14, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 4, 24, 15, 0, 0, 0, time.UTC),
		}}}
		c := NewChecker(fs, testClock(t), zap.NewNop())

		res, err := c.CheckCourt(context.Background(), hakis, Override{})
		if err != nil {
			t.Fatalf("CheckCourt returned error: %v", err)
		}
		if res.Date != "2024-04-24" || res.Day != Wednesday {
			t.Errorf("date = %s %s, expected Wednesday 2024-04-24", res.Day, res.Date)
		}
		if res.Hour != 18 || res.HourUTC != 15 {
			t.Errorf("hour = %d (utc %d), expected 18 (utc 15)", res.Hour, res.HourUTC)
		}
		if res.Outcome != Found {
			t.Errorf("outcome = %s, expected found", res.Outcome)
		}
		if res.Match != "hour" {
			t.Errorf("match = %q, expected hour", res.Match)
		}

		if len(fs.queries) != 1 {
			t.Fatalf("scraper called %d times, expected 1", len(fs.queries))
		}
		q := fs.queries[0]
		if q.Get("filter[user_id]") != hakis.UserID {
			t.Errorf("filter[user_id] = %q", q.Get("filter[user_id]"))
		}
		for _, key := range []string{"filter[date]", "filter[start]", "filter[end]"} {
			if q.Get(key) != "2024-04-24" {
				t.Errorf("%s = %q, expected 2024-04-24", key, q.Get(key))
			}
		}
	})

	t.Run("override", func(t *testing.T) {
		fs := &fakeScraper{}
		c := NewChecker(fs, testClock(t), nil)
		day := Friday
		hour := 20

		res, err := c.CheckCourt(context.Background(), hakis, Override{Day: &day, Hour: &hour})
		if err != nil {
			t.Fatalf("CheckCourt returned error: %v", err)
		}
		if res.Date != "2024-04-26" || res.HourUTC != 17 {
			t.Errorf("got %s utc hour %d, expected 2024-04-26 utc hour 17", res.Date, res.HourUTC)
		}
		if res.Outcome != NoData {
			t.Errorf("outcome = %s, expected no_data", res.Outcome)
		}
	})

	t.Run("invalid hour", func(t *testing.T) {
		fs := &fakeScraper{}
		c := NewChecker(fs, testClock(t), nil)
		hour := 25

		_, err := c.CheckCourt(context.Background(), hakis, Override{Hour: &hour})
		if !errors.Is(err, ErrInvalidHour) {
			t.Errorf("error = %v, expected ErrInvalidHour", err)
		}
		if len(fs.queries) != 0 {
			t.Error("scraper called for an invalid hour")
		}
	})

	t.Run("fetch error is wrapped", func(t *testing.T) {
		fs := &fakeScraper{err: &scraper.RequestFailedError{StatusCode: 503}}
		c := NewChecker(fs, testClock(t), nil)

		_, err := c.CheckCourt(context.Background(), hakis, Override{})
		var rf *scraper.RequestFailedError
		if !errors.As(err, &rf) || rf.StatusCode != 503 {
			t.Errorf("error = %v, expected RequestFailedError 503", err)
		}
	})
}

func TestCheckCourts(t *testing.T) {
	courts := DefaultRegistry().All()

	t.Run("checks every court in order", func(t *testing.T) {
		fs := &fakeScraper{}
		c := NewChecker(fs, testClock(t), nil)

		var results []Result
		err := c.CheckCourts(context.Background(), courts, Override{}, func(r Result) error {
			results = append(results, r)
			return nil
		})
		if err != nil {
			t.Fatalf("CheckCourts returned error: %v", err)
		}
		if len(results) != 2 {
			t.Fatalf("got %d results, expected 2", len(results))
		}
		if results[0].Court.Name != "Hakis" || results[0].Date != "2024-04-24" || results[0].Hour != 18 {
			t.Errorf("first result = %s %s %d", results[0].Court.Name, results[0].Date, results[0].Hour)
		}
		if results[1].Court.Name != "Delsu" || results[1].Date != "2024-04-23" || results[1].Hour != 19 {
			t.Errorf("second result = %s %s %d", results[1].Court.Name, results[1].Date, results[1].Hour)
		}
	})

	t.Run("first error stops the run", func(t *testing.T) {
		fs := &fakeScraper{err: scraper.ErrTransport}
		c := NewChecker(fs, testClock(t), nil)

		emitted := 0
		err := c.CheckCourts(context.Background(), courts, Override{}, func(Result) error {
			emitted++
			return nil
		})
		if !errors.Is(err, scraper.ErrTransport) {
			t.Errorf("error = %v, expected ErrTransport", err)
		}
		if len(fs.queries) != 1 || emitted != 0 {
			t.Errorf("queries = %d, emitted = %d, expected 1 and 0", len(fs.queries), emitted)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		fs := &fakeScraper{}
		c := NewChecker(fs, testClock(t), nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := c.CheckCourts(ctx, courts, Override{}, func(Result) error { return nil })
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, expected context.Canceled", err)
		}
	})
}
