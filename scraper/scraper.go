// Package scraper fetches slot availability from the avoinna24.fi booking API.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Slot represents a bookable interval. Times are UTC.
type Slot struct {
	ID    string    `json:"id"`
	Start time.Time `json:"start_time"`
	End   time.Time `json:"end_time"`
}

// CourtIDs are the opaque platform identifiers used as query filters.
type CourtIDs struct {
	BranchID  string
	GroupID   string
	ProductID string
	UserID    string
}

// Param is a single query parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered query string.
type Params []Param

// Encode renders the params in order. url.Values would sort the keys.
func (p Params) Encode() string {
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.Value))
	}
	return b.String()
}

// Get returns the first value for key.
func (p Params) Get(key string) string {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value
		}
	}
	return ""
}

// BuildQuery returns the slot filter for one court on one date (YYYY-MM-DD).
// The key set and order are what the API expects.
func BuildQuery(ids CourtIDs, date string) Params {
	return Params{
		{"filter[ismultibooking]", "false"},
		{"filter[branch_id]", ids.BranchID},
		{"filter[group_id]", ids.GroupID},
		{"filter[product_id]", ids.ProductID},
		{"filter[user_id]", ids.UserID},
		{"filter[date]", date},
		{"filter[start]", date},
		{"filter[end]", date},
	}
}

// Scraper defines the interface for slot sources.
type Scraper interface {
	// Slots fetches and extracts the slots matching the query.
	Slots(ctx context.Context, q Params) ([]Slot, error)
}

// Error kinds for fetch failures.
var (
	ErrTransport     = errors.New("transport error")
	ErrRequestFailed = errors.New("request failed")
	ErrDecode        = errors.New("decode error")
)

// RequestFailedError reports a non-2xx response.
type RequestFailedError struct {
	StatusCode int
	Status     string
}

func (e *RequestFailedError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("request failed: %s", e.Status)
	}
	return fmt.Sprintf("request failed: status %d", e.StatusCode)
}

func (e *RequestFailedError) Is(target error) bool {
	return target == ErrRequestFailed
}
