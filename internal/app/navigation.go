// internal/app/navigation.go
package app

import (
	"github.com/llehouerou/marquee/internal/orientation"
)

// Screen identifies a screen of the application.
type Screen int

const (
	ScreenDetails Screen = iota
	ScreenPlayer
)

func (s Screen) String() string {
	switch s {
	case ScreenDetails:
		return "details"
	case ScreenPlayer:
		return "player"
	}
	return "unknown"
}

// Stack is the screen history. Every screen on it is a Route carrying its own
// focus, blur and back-press handlers.
type Stack struct {
	routes []*Route
}

// NewStack creates a stack with root as its only, focused screen.
func NewStack(root Screen) *Stack {
	s := &Stack{}
	s.routes = []*Route{newRoute(s, root)}
	s.routes[0].focused = true
	return s
}

// Top returns the focused route.
func (s *Stack) Top() *Route {
	return s.routes[len(s.routes)-1]
}

// Depth returns the number of routes on the stack.
func (s *Stack) Depth() int {
	return len(s.routes)
}

// Push blurs the current route and focuses a new one for screen.
func (s *Stack) Push(screen Screen) *Route {
	prev := s.Top()
	r := newRoute(s, screen)
	s.routes = append(s.routes, r)
	prev.setFocused(false)
	r.setFocused(true)
	return r
}

// Pop blurs and removes the top route, then focuses the one below it.
// The root route is never popped.
func (s *Stack) Pop() bool {
	if len(s.routes) < 2 {
		return false
	}
	top := s.Top()
	s.routes = s.routes[:len(s.routes)-1]
	top.setFocused(false)
	s.Top().setFocused(true)
	return true
}

// Back delivers a back press to the top route. Handlers run newest first
// until one consumes the press; otherwise the route is popped. It returns
// false when nothing handled the press, i.e. at the root.
func (s *Stack) Back() bool {
	top := s.Top()
	for i := len(top.back) - 1; i >= 0; i-- {
		if fn := top.back[i].fn; fn != nil && fn() {
			return true
		}
	}
	return s.Pop()
}

type handler[F any] struct {
	id int
	fn F
}

// Route is one screen on the stack. It implements orientation.Navigation.
type Route struct {
	stack   *Stack
	Screen  Screen
	focused bool
	nextID  int

	focus []handler[func()]
	blur  []handler[func()]
	back  []handler[func() bool]
}

var _ orientation.Navigation = (*Route)(nil)

func newRoute(s *Stack, screen Screen) *Route {
	return &Route{stack: s, Screen: screen}
}

// Focused reports whether the route is on top of the stack.
func (r *Route) Focused() bool {
	return r.focused
}

func (r *Route) setFocused(focused bool) {
	if r.focused == focused {
		return
	}
	r.focused = focused
	list := r.blur
	if focused {
		list = r.focus
	}
	for _, h := range append([]handler[func()](nil), list...) {
		h.fn()
	}
}

// OnFocus registers fn to run whenever the route gains focus.
func (r *Route) OnFocus(fn func()) func() {
	id := r.register()
	r.focus = append(r.focus, handler[func()]{id, fn})
	return func() { r.focus = remove(r.focus, id) }
}

// OnBlur registers fn to run whenever the route loses focus.
func (r *Route) OnBlur(fn func()) func() {
	id := r.register()
	r.blur = append(r.blur, handler[func()]{id, fn})
	return func() { r.blur = remove(r.blur, id) }
}

// OnBackPressed registers fn to intercept back presses on this route.
func (r *Route) OnBackPressed(fn func() bool) func() {
	id := r.register()
	r.back = append(r.back, handler[func() bool]{id, fn})
	return func() { r.back = remove(r.back, id) }
}

// GoBack pops the route if it is still on top.
func (r *Route) GoBack() {
	if r.stack.Top() == r {
		r.stack.Pop()
	}
}

func (r *Route) register() int {
	r.nextID++
	return r.nextID
}

func remove[F any](list []handler[F], id int) []handler[F] {
	for i, h := range list {
		if h.id == id {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}
