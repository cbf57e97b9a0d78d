// Package session owns per-user view state: which screen is showing, whether a
// generation is in flight, the submitted profile, the generated journey and the
// last failure. State changes only through Controller's transition methods.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"donorjourney/internal/journey"
	"donorjourney/internal/logging"
	"donorjourney/internal/types"
)

// UserMessage is the only failure text shown to donors.
const UserMessage = "We couldn't generate your personalized journey at this time. Please try again later."

var (
	// ErrBusy is returned for transitions attempted while a generation is in flight.
	ErrBusy = errors.New("a journey is already being generated")

	// ErrUnknownView is returned by Navigate and ParseView for unrecognised views.
	ErrUnknownView = errors.New("unknown view")
)

// View is the screen the user asked for.
type View string

const (
	ViewOnboarding View = "onboarding"
	ViewJourney    View = "journey"
	ViewDashboard  View = "dashboard"
)

// Valid reports whether v is a known view.
func (v View) Valid() bool {
	switch v {
	case ViewOnboarding, ViewJourney, ViewDashboard:
		return true
	}
	return false
}

// ParseView converts a path segment or flag value into a View.
func ParseView(s string) (View, error) {
	v := View(s)
	if !v.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
	}
	return v, nil
}

// Screen is what should actually be rendered after applying precedence
// loading > error > view.
type Screen string

const (
	ScreenOnboarding Screen = "onboarding"
	ScreenLoading    Screen = "loading"
	ScreenError      Screen = "error"
	ScreenJourney    Screen = "journey"
	ScreenDashboard  Screen = "dashboard"
)

// Failure records the last generation failure.
type Failure struct {
	Kind    journey.Kind
	Message string
	Err     error
}

// State is a point-in-time copy of a controller's state.
type State struct {
	View    View
	Loading bool
	Profile *types.DonorProfile
	Journey *types.PersonalizedJourney
	Failure *Failure
}

// Screen resolves which screen to render for this state.
func (s State) Screen() Screen {
	switch {
	case s.Loading:
		return ScreenLoading
	case s.Failure != nil:
		return ScreenError
	}
	switch s.View {
	case ViewJourney:
		if s.Journey == nil {
			return ScreenOnboarding
		}
		return ScreenJourney
	case ViewDashboard:
		return ScreenDashboard
	default:
		return ScreenOnboarding
	}
}

// Generator produces a journey for a validated profile.
type Generator interface {
	Generate(ctx context.Context, profile types.DonorProfile) (*types.PersonalizedJourney, error)
}

// Controller is a mutex-guarded state container. At most one generation is in
// flight per controller; the loading flag enforces it.
type Controller struct {
	mu    sync.Mutex
	gen   Generator
	state State

	lastActive time.Time
	now        func() time.Time
}

// NewController creates a controller on the onboarding view.
func NewController(gen Generator) *Controller {
	c := &Controller{
		gen:   gen,
		state: State{View: ViewOnboarding},
		now:   time.Now,
	}
	c.lastActive = c.now()
	return c
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastActive = c.now()

	s := c.state
	if s.Profile != nil {
		p := s.Profile.Clone()
		s.Profile = &p
	}
	if s.Failure != nil {
		f := *s.Failure
		s.Failure = &f
	}
	return s
}

// Screen resolves the screen for the current state.
func (c *Controller) Screen() Screen {
	return c.Snapshot().Screen()
}

// Submit validates profile and runs generation synchronously. Validation
// failures return *types.ValidationError and leave state untouched. A failed
// generation keeps the profile, clears the journey and records a Failure; the
// view does not change.
func (c *Controller) Submit(ctx context.Context, profile types.DonorProfile) error {
	p, err := c.begin(profile)
	if err != nil {
		return err
	}
	j, err := c.gen.Generate(ctx, p)
	c.finish(j, err)
	return err
}

// Start is Submit without blocking: generation runs in its own goroutine and
// the returned Task completes after the state has been updated.
func (c *Controller) Start(ctx context.Context, profile types.DonorProfile) (*journey.Task, error) {
	p, err := c.begin(profile)
	if err != nil {
		return nil, err
	}
	return journey.Run(func() (*types.PersonalizedJourney, error) {
		j, err := c.gen.Generate(ctx, p)
		c.finish(j, err)
		return j, err
	}), nil
}

func (c *Controller) begin(profile types.DonorProfile) (types.DonorProfile, error) {
	p := profile.WithDefaults().Clone()
	if err := p.Validate(); err != nil {
		logging.SessionDebug("Submission rejected: %v", err)
		return p, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastActive = c.now()

	if c.state.Loading {
		return p, ErrBusy
	}
	c.state.Loading = true
	c.state.Failure = nil
	stored := p.Clone()
	c.state.Profile = &stored

	logging.Session("Generation started for %q", p.Name)
	return p, nil
}

func (c *Controller) finish(j *types.PersonalizedJourney, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastActive = c.now()
	c.state.Loading = false

	if err != nil {
		kind, ok := journey.KindOf(err)
		if !ok {
			kind = journey.KindService
		}
		c.state.Journey = nil
		c.state.Failure = &Failure{Kind: kind, Message: UserMessage, Err: err}
		logging.Session("Generation failed (%s): %v", kind, err)
		return
	}

	c.state.Journey = j
	c.state.View = ViewJourney
	logging.Session("Generation succeeded: %d campaigns", len(j.RecommendedCampaigns))
}

// Reset discards profile, journey and failure and returns to onboarding.
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastActive = c.now()

	if c.state.Loading {
		return ErrBusy
	}
	c.state = State{View: ViewOnboarding}
	logging.SessionDebug("Session reset")
	return nil
}

// Navigate switches the requested view.
func (c *Controller) Navigate(v View) error {
	if !v.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownView, v)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastActive = c.now()

	if c.state.Loading {
		return ErrBusy
	}
	c.state.View = v
	return nil
}

// idleSince reports when the controller was last used and whether it is busy.
func (c *Controller) idleSince() (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastActive, c.state.Loading
}
