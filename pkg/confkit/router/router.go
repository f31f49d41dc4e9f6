package router

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/confkit/pkg/confkit/internal"
)

// Screen identifies a registered screen. Applications declare their own
// values with iota.
type Screen int

// ScreenExit stops the router when returned by a transition.
const ScreenExit Screen = -1

var (
	// ErrNoTransition is returned by Run when OnTransition was never called.
	ErrNoTransition = errors.New("router: no transition function set")
	// ErrNotRegistered is returned when a transition names an unknown screen.
	ErrNotRegistered = errors.New("router: screen not registered")
	// ErrBack may be returned by a screen to resume the entry on top of the stack.
	// With an empty stack the router exits.
	ErrBack = errors.New("router: back")
)

// ScreenFunc runs one screen to completion.
type ScreenFunc func(input any) (result any, err error)

// TransitionFunc picks the next screen from the finished screen and its result.
type TransitionFunc func(from Screen, result any, stack *Stack) (next Screen, input any)

// Router runs registered screens in the order its transition function decides.
type Router struct {
	screens    map[Screen]ScreenFunc
	names      map[Screen]string
	transition TransitionFunc
	stack      *Stack
}

func New() *Router {
	return &Router{
		screens: make(map[Screen]ScreenFunc),
		names:   make(map[Screen]string),
		stack:   NewStack(),
	}
}

// Register adds a screen.
func (r *Router) Register(screen Screen, fn ScreenFunc) *Router {
	r.screens[screen] = fn
	return r
}

// Name attaches a readable name used in logs and errors.
func (r *Router) Name(screen Screen, name string) *Router {
	r.names[screen] = name
	return r
}

func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// Stack exposes the back stack, mainly for tests and for seeding history before Run.
func (r *Router) Stack() *Stack {
	return r.stack
}

func (r *Router) label(s Screen) string {
	if name, ok := r.names[s]; ok {
		return name
	}
	return fmt.Sprintf("%d", int(s))
}

// Run executes screens starting at start until a transition returns
// ScreenExit, a screen fails, or ErrBack empties the stack.
func (r *Router) Run(start Screen, input any) error {
	if r.transition == nil {
		return ErrNoTransition
	}

	logger := internal.GetInternalLogger()
	current, currentInput := start, input

	for {
		fn, ok := r.screens[current]
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotRegistered, r.label(current))
		}

		logger.Debug("router: entering screen", "screen", r.label(current), "depth", r.stack.Len())

		result, err := fn(currentInput)
		if errors.Is(err, ErrBack) {
			entry := r.stack.Pop()
			if entry == nil {
				return nil
			}
			current, currentInput = entry.Screen, entry.Restore()
			continue
		}
		if err != nil {
			return fmt.Errorf("router: screen %s: %w", r.label(current), err)
		}

		next, nextInput := r.transition(current, result, r.stack)
		if next == ScreenExit {
			logger.Debug("router: exit", "from", r.label(current))
			return nil
		}
		current, currentInput = next, nextInput
	}
}
