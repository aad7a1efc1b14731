// Package mcp provides the Model Context Protocol server integration for lunch.
package mcp

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/branyzp/whatsforlunch/pkg/app"
	"github.com/branyzp/whatsforlunch/pkg/catalog"
	"github.com/branyzp/whatsforlunch/pkg/picker"
)

// Service holds one picker session shared by every MCP client. Calls are
// serialized so each tool sees the result of the previous one.
type Service struct {
	app *app.Service
	id  string

	mu     sync.Mutex
	picker *picker.Picker
}

// StateDTO is the transport projection of the picker state.
type StateDTO struct {
	Session     string   `json:"session"`
	Entry       string   `json:"entry"`
	Pool        []string `json:"pool"`
	Selection   string   `json:"selection,omitempty"`
	Celebrating bool     `json:"celebrating"`
	Phase       string   `json:"phase"`
	Count       int      `json:"count"`
}

// ActionResult reports whether a mutation changed the session.
type ActionResult struct {
	Applied bool     `json:"applied"`
	Reason  string   `json:"reason,omitempty"`
	State   StateDTO `json:"state"`
}

// NewService builds a session using the app service configuration.
func NewService(a *app.Service, opts ...picker.Option) *Service {
	if a == nil {
		a = &app.Service{Policy: picker.DefaultPolicy()}
	}
	return &Service{app: a, id: uuid.NewString(), picker: a.NewPicker(opts...)}
}

// Catalog returns the categories available to add_category.
func (s *Service) Catalog(ctx context.Context) ([]catalog.Category, error) {
	cat, err := s.app.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return cat.Categories(), nil
}

// State returns the current session.
func (s *Service) State() StateDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// AddCategory appends the named category's meals to the pool.
func (s *Service) AddCategory(ctx context.Context, name string) (ActionResult, error) {
	cat, err := s.app.Catalog(ctx)
	if err != nil {
		return ActionResult{}, err
	}
	c, err := cat.Lookup(name)
	if err != nil {
		return ActionResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	res := ActionResult{Applied: s.picker.AddCategory(c)}
	if !res.Applied {
		res.Reason = c.Label + " is already in the pool"
	}
	res.State = s.snapshot()
	return res, nil
}

// AddMeal types the meal into the entry and submits it. The text is pooled
// exactly as given, blank included.
func (s *Service) AddMeal(_ context.Context, meal string) ActionResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.picker.SetEntry(meal)
	s.picker.AddCustomMeal()
	return ActionResult{Applied: true, State: s.snapshot()}
}

// Randomize draws a meal from the pool.
func (s *Service) Randomize(context.Context) ActionResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.picker.Randomize()
	res := ActionResult{Applied: ok, State: s.snapshot()}
	if !ok {
		res.Reason = "the meal pool is empty"
	}
	return res
}

// Reset empties the pool and ends the celebration.
func (s *Service) Reset(context.Context) ActionResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.picker.Reset()
	return ActionResult{Applied: true, State: s.snapshot()}
}

// snapshot must be called with mu held.
func (s *Service) snapshot() StateDTO {
	st := s.picker.Snapshot()
	return StateDTO{
		Session:     s.id,
		Entry:       st.Entry,
		Pool:        st.Pool,
		Selection:   st.Selection,
		Celebrating: st.Celebrating,
		Phase:       st.Phase().String(),
		Count:       len(st.Pool),
	}
}
