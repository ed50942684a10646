package checker

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"kalsabot.dev/checker/scraper"
)

// Override replaces a court's default day and hour. Nil fields keep the
// default.
type Override struct {
	Day  *Weekday
	Hour *int
}

// Result is the outcome of checking one court.
type Result struct {
	Court   Court
	Day     Weekday
	Date    string // YYYY-MM-DD
	Hour    int    // local hour asked for
	HourUTC int
	Match   string
	Outcome Outcome
	Slots   []scraper.Slot
}

// Checker runs the fetch, extract and check pipeline for courts.
type Checker struct {
	Scraper scraper.Scraper
	Clock   Clock
	Match   MatchStrategy
	Log     *zap.Logger
}

// NewChecker creates a Checker with the hour-of-end-time strategy.
func NewChecker(s scraper.Scraper, clock Clock, log *zap.Logger) *Checker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Checker{
		Scraper: s,
		Clock:   clock,
		Match:   MatchEndHour{},
		Log:     log,
	}
}

// CheckCourt checks a single court.
func (c *Checker) CheckCourt(ctx context.Context, court Court, ov Override) (Result, error) {
	day := court.DefaultDay
	if ov.Day != nil {
		day = *ov.Day
	}
	if !day.Valid() {
		return Result{}, fmt.Errorf("%w: weekday %d", ErrInvalidArgument, int(day))
	}
	hour := court.DefaultHour
	if ov.Hour != nil {
		hour = *ov.Hour
	}

	hourUTC, err := LocalHourToUTC(c.Clock, hour)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", court.Name, err)
	}

	date := DateString(NextDate(c.Clock.Now(), day))
	q := scraper.BuildQuery(scraper.CourtIDs{
		BranchID:  court.BranchID,
		GroupID:   court.GroupID,
		ProductID: court.ProductID,
		UserID:    court.UserID,
	}, date)

	c.Log.Info("checking court",
		zap.String("court", court.Name),
		zap.String("date", date),
		zap.Stringer("day", day),
		zap.Int("hour", hour),
		zap.Int("hour_utc", hourUTC))

	slots, err := c.Scraper.Slots(ctx, q)
	if err != nil {
		return Result{}, fmt.Errorf("fetch slots for %s: %w", court.Name, err)
	}

	m := c.Match
	if m == nil {
		m = MatchEndHour{}
	}
	outcome := Check(slots, hourUTC, m)

	c.Log.Info("court checked",
		zap.String("court", court.Name),
		zap.Int("slots", len(slots)),
		zap.Stringer("outcome", outcome))

	return Result{
		Court:   court,
		Day:     day,
		Date:    date,
		Hour:    hour,
		HourUTC: hourUTC,
		Match:   m.Name(),
		Outcome: outcome,
		Slots:   slots,
	}, nil
}

// CheckCourts checks courts one after another and hands each result to
// emit before moving on. The first error stops the run.
func (c *Checker) CheckCourts(ctx context.Context, courts []Court, ov Override, emit func(Result) error) error {
	for _, court := range courts {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := c.CheckCourt(ctx, court, ov)
		if err != nil {
			return err
		}
		if err := emit(res); err != nil {
			return fmt.Errorf("present %s: %w", court.Name, err)
		}
	}
	return nil
}
