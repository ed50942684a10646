package scraper

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Response is the JSON envelope returned by the slot endpoint.
type Response struct {
	Data []Record `json:"data"`
}

// Record is one entry of the data list. Only records of type "slot" with
// attributes describe bookable slots.
type Record struct {
	ID         *string     `json:"id"`
	Type       string      `json:"type"`
	Attributes *Attributes `json:"attributes"`
}

type Attributes struct {
	ProductID *string `json:"product_id"`
	StartTime APITime `json:"starttime"`
	EndTime   APITime `json:"endtime"`
}

// APITime accepts RFC 3339 timestamps and the bare "2006-01-02 15:04:05"
// form, which is read as UTC. Valid is false for null or missing values.
type APITime struct {
	time.Time
	Valid bool
}

var apiTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

func (t *APITime) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	for _, layout := range apiTimeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed.UTC()
			t.Valid = true
			return nil
		}
	}
	return fmt.Errorf("unrecognised timestamp %q", s)
}

// DecodeResponse parses a response body. A slot record with attributes must
// carry both timestamps.
func DecodeResponse(body []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	for i, rec := range resp.Data {
		if rec.Type != "slot" || rec.Attributes == nil {
			continue
		}
		if !rec.Attributes.StartTime.Valid || !rec.Attributes.EndTime.Valid {
			return nil, fmt.Errorf("%w: slot record %d has no starttime or endtime", ErrDecode, i)
		}
	}
	return &resp, nil
}

// ExtractSlots keeps the slot records, in API order. Other record types and
// records without attributes are dropped.
func ExtractSlots(resp *Response) []Slot {
	if resp == nil {
		return nil
	}
	slots := make([]Slot, 0, len(resp.Data))
	for _, rec := range resp.Data {
		if rec.Type != "slot" || rec.Attributes == nil {
			continue
		}
		id := ""
		if rec.Attributes.ProductID != nil {
			id = *rec.Attributes.ProductID
		}
		slots = append(slots, Slot{
			ID:    id,
			Start: rec.Attributes.StartTime.Time,
			End:   rec.Attributes.EndTime.Time,
		})
	}
	return slots
}
