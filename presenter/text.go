package presenter

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"kalsabot.dev/checker"
)

// Severity selects the color of a summary line.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeveritySuccess
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

func (s Severity) color() string {
	switch s {
	case SeveritySuccess:
		return ansiGreen
	case SeverityWarning:
		return ansiYellow
	}
	return ansiRed
}

// Text prints the Finnish summary sentence, optionally preceded by the slot
// list.
type Text struct {
	Color    bool
	Verbose  bool
	Location *time.Location // slot times are shown in this zone
}

func (t *Text) Format() string { return FormatText }

func (t *Text) Present(w io.Writer, r checker.Result) error {
	if _, err := fmt.Fprintf(w, "%s:\n", r.Court.Name); err != nil {
		return err
	}

	if t.Verbose {
		loc := t.Location
		if loc == nil {
			loc = time.Local
		}
		for i, slot := range r.Slots {
			start := slot.Start.In(loc)
			end := slot.End.In(loc)
			_, err := fmt.Fprintf(w, "  %d. %s %s %s-%s\n",
				i+1,
				start.Format(checker.DateLayout),
				checker.WeekdayFromTime(start.Weekday()).Finnish(),
				start.Format("15:04"),
				end.Format("15:04"))
			if err != nil {
				return err
			}
		}
	}

	msg, sev := Summary(r)
	if t.Color {
		msg = sev.color() + msg + ansiReset
	}
	_, err := fmt.Fprintln(w, msg)
	return err
}

// Summary returns the summary sentence for a result and its severity.
func Summary(r checker.Result) (string, Severity) {
	switch r.Outcome {
	case checker.Found:
		return fmt.Sprintf("Päivälle %s on vapaana vuoro joka loppuu tunnilla %d", r.Date, r.Hour), SeveritySuccess
	case checker.NotFound:
		return fmt.Sprintf("Päivälle %s EI OLE vapaata vuoroa joka loppuu tunnilla %d", r.Date, r.Hour), SeverityWarning
	}
	return fmt.Sprintf("Päivälle %s ei löytynyt yhtään vapaata vuoroa / dataa ei löytynyt", r.Date), SeverityError
}

// ColorEnabled reports whether ANSI colors should be written to f.
func ColorEnabled(f *os.File, disabled bool) bool {
	if disabled || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
