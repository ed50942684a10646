// Package presenter renders check results for the operator.
package presenter

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"kalsabot.dev/checker"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Presenter writes one court's result.
type Presenter interface {
	Present(w io.Writer, r checker.Result) error
	Format() string
}

// Registry looks presenters up by format name.
type Registry struct {
	presenters map[string]Presenter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		presenters: make(map[string]Presenter),
	}
}

// Register adds a presenter under its format name. Formats must be unique.
func (r *Registry) Register(p Presenter) error {
	format := strings.ToLower(p.Format())
	if _, ok := r.presenters[format]; ok {
		return fmt.Errorf("%w: presenter for format %q registered twice", checker.ErrInvalidArgument, format)
	}
	r.presenters[format] = p
	return nil
}

// Get returns the presenter for format.
func (r *Registry) Get(format string) (Presenter, error) {
	p, ok := r.presenters[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("%w: no presenter for format %q (known: %s)",
			checker.ErrInvalidArgument, format, strings.Join(r.Formats(), ", "))
	}
	return p, nil
}

// Formats returns the registered format names, sorted.
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.presenters))
	for name := range r.presenters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
