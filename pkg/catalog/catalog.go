// Package catalog holds the meal categories a picker can draw from.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

var (
	// ErrUnknownCategory is returned when a name matches no category.
	ErrUnknownCategory = errors.New("catalog: unknown category")
	// ErrShadowsBuiltin is returned when a preset reuses a built-in key or alias.
	ErrShadowsBuiltin = errors.New("catalog: preset shadows a built-in category")
)

// Built-in category keys.
const (
	FastFood = "fastFood"
	Hawker   = "hawker"
	Japanese = "japanese"
	Western  = "western"
)

// Category is a named, ordered list of canonical meal names.
type Category struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Aliases []string `json:"aliases,omitempty"`
	Meals   []string `json:"meals"`
	Preset  bool     `json:"preset,omitempty"`
}

// First returns the first meal of the category, or "" when it has none.
func (c Category) First() string {
	if len(c.Meals) == 0 {
		return ""
	}
	return c.Meals[0]
}

func (c Category) clone() Category {
	c.Aliases = append([]string(nil), c.Aliases...)
	c.Meals = append([]string(nil), c.Meals...)
	return c
}

func (c Category) matches(name string) bool {
	if strings.EqualFold(c.Key, name) || strings.EqualFold(c.Label, name) {
		return true
	}
	return lo.ContainsBy(c.Aliases, func(a string) bool {
		return strings.EqualFold(a, name)
	})
}

func builtins() []Category {
	return []Category{{
		Key:     FastFood,
		Label:   "Fast Food",
		Aliases: []string{"fast-food", "fastfood", "ff"},
		Meals:   []string{"KFC", "Mcdonalds", "Subway", "Long John Silvers", "Popeyes"},
	}, {
		Key:   Hawker,
		Label: "Hawker",
		Meals: []string{"Chicken Rice", "Duck Rice", "Mala Xiang Guo", "Pepper Lunch", "Cai Fan", "Zhi Char"},
	}, {
		Key:     Japanese,
		Label:   "Japanese",
		Aliases: []string{"jap"},
		Meals:   []string{"Tonkatsu", "Sushi", "Tori Q", "Ramen"},
	}, {
		Key:   Western,
		Label: "Western",
		Meals: []string{"Spaghetti", "Chicken Chop", "Pork Chop", "Fish and Chips"},
	}}
}

// Catalog is an immutable, ordered set of categories. Built-ins come first,
// followed by any presets in the order they were added.
type Catalog struct {
	categories []Category
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{categories: builtins()}
}

// With returns a new catalog that has the presets appended after the
// categories of c. The receiver is left untouched.
func (c *Catalog) With(presets ...Preset) (*Catalog, error) {
	next := &Catalog{categories: c.Categories()}
	for _, p := range presets {
		cat := p.Category()
		for _, existing := range next.categories {
			if existing.Preset {
				continue
			}
			if existing.matches(cat.Key) {
				return nil, fmt.Errorf("%w: %q", ErrShadowsBuiltin, cat.Key)
			}
		}
		// A later preset with the same key replaces the earlier one in place.
		if i := next.index(cat.Key); i >= 0 {
			next.categories[i] = cat
			continue
		}
		next.categories = append(next.categories, cat)
	}
	return next, nil
}

// Categories returns a copy of every category in display order.
func (c *Catalog) Categories() []Category {
	return lo.Map(c.categories, func(cat Category, _ int) Category {
		return cat.clone()
	})
}

// Keys returns the category keys in display order.
func (c *Catalog) Keys() []string {
	return lo.Map(c.categories, func(cat Category, _ int) string {
		return cat.Key
	})
}

// Len reports the number of categories.
func (c *Catalog) Len() int {
	return len(c.categories)
}

// At returns the category at position i in display order.
func (c *Catalog) At(i int) (Category, bool) {
	if i < 0 || i >= len(c.categories) {
		return Category{}, false
	}
	return c.categories[i].clone(), true
}

// Lookup resolves a key, label or alias, ignoring case.
func (c *Catalog) Lookup(name string) (Category, error) {
	name = strings.TrimSpace(name)
	for _, cat := range c.categories {
		if cat.matches(name) {
			return cat.clone(), nil
		}
	}
	return Category{}, fmt.Errorf("%w %q (expected one of %s)", ErrUnknownCategory, name, strings.Join(c.Keys(), ", "))
}

func (c *Catalog) index(key string) int {
	for i, cat := range c.categories {
		if cat.Key == key {
			return i
		}
	}
	return -1
}
