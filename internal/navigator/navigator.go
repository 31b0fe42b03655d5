// Package navigator keeps the list/detail navigation stack used by interactive clients.
//
// The bottom of the stack is the root route and is never popped. Selecting a
// reference row pushes the route it points at.
package navigator

import (
	"errors"
	"sync"

	"jediarchives/internal/model"
)

var (
	// ErrNotSelectable is returned when the chosen row is an info row or the screen has no references.
	ErrNotSelectable = errors.New("row is not selectable")
	// ErrOutOfRange is returned when the row number does not exist on the screen.
	ErrOutOfRange = errors.New("row out of range")
)

// Navigator is a stack of routes. It is safe for concurrent use.
type Navigator struct {
	mu    sync.Mutex
	stack []model.Route
}

// New returns a navigator positioned at root.
func New(root model.Route) *Navigator {
	return &Navigator{stack: []model.Route{root}}
}

// Current returns the route on top of the stack.
func (n *Navigator) Current() model.Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack[len(n.stack)-1]
}

// Push navigates forward to route.
func (n *Navigator) Push(route model.Route) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stack = append(n.stack, route)
}

// Back pops the current route and reports whether it did. The root stays.
func (n *Navigator) Back() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.stack) == 1 {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	return true
}

// Depth is the number of routes on the stack, 1 at the root.
func (n *Navigator) Depth() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.stack)
}

// Routes returns a copy of the stack, root first.
func (n *Navigator) Routes() []model.Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]model.Route(nil), n.stack...)
}

// Select pushes the route of the n-th reference row of screen, counting from 1
// across all reference sections in display order.
func (n *Navigator) Select(screen *model.Screen, row int) (model.Route, error) {
	refs := screen.References()
	if len(refs) == 0 {
		return model.Route{}, ErrNotSelectable
	}
	if row < 1 || row > len(refs) {
		return model.Route{}, ErrOutOfRange
	}
	route := refs[row-1].Route
	n.Push(route)
	return route, nil
}
