package presenter

import (
	"encoding/json"
	"io"

	"kalsabot.dev/checker"
	"kalsabot.dev/checker/scraper"
)

// JSON writes one object per result, one per line.
type JSON struct {
	Verbose bool
}

type jsonResult struct {
	Court   string          `json:"court"`
	Day     int             `json:"day"`
	Date    string          `json:"date"`
	Hour    int             `json:"hour"`
	HourUTC int             `json:"hour_utc"`
	Match   string          `json:"match"`
	Outcome checker.Outcome `json:"outcome"`
	Message string          `json:"message"`
	Slots   []scraper.Slot  `json:"slots,omitempty"`
}

func (j *JSON) Format() string { return FormatJSON }

func (j *JSON) Present(w io.Writer, r checker.Result) error {
	msg, _ := Summary(r)
	out := jsonResult{
		Court:   r.Court.Name,
		Day:     r.Day.Int(),
		Date:    r.Date,
		Hour:    r.Hour,
		HourUTC: r.HourUTC,
		Match:   r.Match,
		Outcome: r.Outcome,
		Message: msg,
	}
	if j.Verbose {
		out.Slots = r.Slots
	}
	return json.NewEncoder(w).Encode(out)
}
