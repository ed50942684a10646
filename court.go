package checker

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Court identifies one bookable court on the booking platform.
type Court struct {
	Key         string // lookup key, lowercase
	Name        string // display name
	BranchID    string
	GroupID     string
	ProductID   string
	UserID      string
	DefaultDay  Weekday
	DefaultHour int
}

// Validate checks the platform IDs are UUIDs and the defaults are in range.
func (c Court) Validate() error {
	if c.Key == "" || c.Name == "" {
		return fmt.Errorf("%w: court key and name are required", ErrInvalidArgument)
	}
	ids := []struct {
		field string
		value string
	}{
		{"branch_id", c.BranchID},
		{"group_id", c.GroupID},
		{"product_id", c.ProductID},
		{"user_id", c.UserID},
	}
	for _, id := range ids {
		if _, err := uuid.Parse(id.value); err != nil {
			return fmt.Errorf("%w: court %s %s %q: %v", ErrInvalidArgument, c.Name, id.field, id.value, err)
		}
	}
	if !c.DefaultDay.Valid() {
		return fmt.Errorf("%w: court %s default day %d", ErrInvalidArgument, c.Name, c.DefaultDay)
	}
	if c.DefaultHour < 0 || c.DefaultHour > 23 {
		return fmt.Errorf("%w: court %s default hour %d", ErrInvalidHour, c.Name, c.DefaultHour)
	}
	return nil
}

// Registry holds the known courts in registration order.
type Registry struct {
	courts map[string]Court
	order  []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		courts: make(map[string]Court),
	}
}

// DefaultRegistry returns the registry of the arenacenter courts.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, c := range defaultCourts {
		if err := r.Register(c); err != nil {
			panic(err)
		}
	}
	return r
}

var defaultCourts = []Court{
	{
		Key:         "hakis",
		Name:        "Hakis",
		BranchID:    "2b325906-5b7a-11e9-8370-fa163e3c66dd",
		GroupID:     "a17ccc08-838a-11e9-8fd9-fa163e3c66dd",
		ProductID:   "59305e30-8b49-11e9-800b-fa163e3c66dd",
		UserID:      "d7c92d04-807b-11e9-b480-fa163e3c66dd", // kenttä 2
		DefaultDay:  Wednesday,
		DefaultHour: 18,
	},
	{
		Key:         "delsu",
		Name:        "Delsu",
		BranchID:    "2b325906-5b7a-11e9-8370-fa163e3c66dd",
		GroupID:     "a17ccc08-838a-11e9-8fd9-fa163e3c66dd",
		ProductID:   "59305e30-8b49-11e9-800b-fa163e3c66dd",
		UserID:      "ea8b1cf4-807b-11e9-93b7-fa163e3c66dd", // kenttä 3
		DefaultDay:  Tuesday,
		DefaultHour: 19,
	},
}

// Register adds a court. Keys are case-insensitive and must be unique.
func (r *Registry) Register(c Court) error {
	c.Key = strings.ToLower(c.Key)
	if err := c.Validate(); err != nil {
		return err
	}
	if _, ok := r.courts[c.Key]; ok {
		return fmt.Errorf("%w: court %q registered twice", ErrInvalidArgument, c.Key)
	}
	r.courts[c.Key] = c
	r.order = append(r.order, c.Key)
	return nil
}

// Get looks a court up by name, ignoring case.
func (r *Registry) Get(name string) (Court, error) {
	c, ok := r.courts[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Court{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownCourt, name, strings.Join(r.Names(), ", "))
	}
	return c, nil
}

// All returns every court in registration order.
func (r *Registry) All() []Court {
	out := make([]Court, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.courts[key])
	}
	return out
}

// Names returns the court keys in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}
