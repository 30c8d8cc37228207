// Package catalog loads the fixed list of drinks offered for logging.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/segmentio/encoding/json"
	"github.com/xolan/sip/internal/entry"
)

// EmbeddedSource names the built-in catalog in errors and listings.
const EmbeddedSource = "built-in"

//go:embed default_drinks.json
var defaultDrinks []byte

// Drink is one catalog record.
type Drink struct {
	Name     string  `json:"drink_name"`
	Category string  `json:"drink_category"`
	Units    float64 `json:"units"`
}

// Entry builds a log entry for the drink, copying its fields verbatim.
func (d Drink) Entry(loggedAt, occurredAt time.Time) entry.Entry {
	return entry.Entry{
		LoggedAt:   loggedAt,
		OccurredAt: occurredAt,
		Category:   d.Category,
		Name:       d.Name,
		Units:      d.Units,
	}
}

// Catalog is the ordered drink list and where it came from.
type Catalog struct {
	Drinks []Drink
	Source string
}

// LoadError reports a catalog that could not be read or parsed.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load drink catalog %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads the catalog at path, or the built-in one when path is empty.
// Failures are returned as *LoadError.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(defaultDrinks, EmbeddedSource)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return Parse(data, path)
}

// Parse decodes a JSON array of drinks. Every drink needs a name and
// non-negative units; names must be unique ignoring case.
func Parse(data []byte, source string) (*Catalog, error) {
	var drinks []Drink
	if err := json.Unmarshal(data, &drinks); err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	if len(drinks) == 0 {
		return nil, &LoadError{Source: source, Err: errors.New("catalog is empty")}
	}

	seen := make(map[string]bool, len(drinks))
	for i := range drinks {
		d := &drinks[i]
		d.Name = strings.TrimSpace(d.Name)
		d.Category = strings.TrimSpace(d.Category)

		probe := d.Entry(time.Unix(1, 0), time.Unix(1, 0))
		if err := probe.Validate(); err != nil {
			return nil, &LoadError{Source: source, Err: fmt.Errorf("drink %d: %w", i+1, err)}
		}

		key := strings.ToLower(d.Name)
		if seen[key] {
			return nil, &LoadError{Source: source, Err: fmt.Errorf("drink %d: duplicate name %q", i+1, d.Name)}
		}
		seen[key] = true
	}

	return &Catalog{Drinks: drinks, Source: source}, nil
}

// Find returns the drink with the given name, ignoring case.
func (c *Catalog) Find(name string) (Drink, bool) {
	name = strings.TrimSpace(name)
	for _, d := range c.Drinks {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return Drink{}, false
}

// Categories lists distinct categories in first-seen order. Categories that
// differ only in case count once, spelled as first seen, matching ByCategory.
func (c *Catalog) Categories() []string {
	var cats []string
	seen := make(map[string]bool)
	for _, d := range c.Drinks {
		key := strings.ToLower(d.Category)
		if !seen[key] {
			seen[key] = true
			cats = append(cats, d.Category)
		}
	}
	return cats
}

// ByCategory returns the drinks in category, in catalog order.
func (c *Catalog) ByCategory(category string) []Drink {
	var out []Drink
	for _, d := range c.Drinks {
		if strings.EqualFold(d.Category, category) {
			out = append(out, d)
		}
	}
	return out
}
