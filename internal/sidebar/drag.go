package sidebar

import (
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/llehouerou/parley/internal/input"
	"github.com/llehouerou/parley/internal/prefs"
)

// Timing holds the time constants of the drag controller.
type Timing struct {
	// Throttle is the minimum gap between accepted move updates.
	Throttle time.Duration
	// ClickThreshold is the session duration under which a press/release
	// pair also toggles the panel.
	ClickThreshold time.Duration
	// MaxSessionIdle bounds how long a session may go without pointer
	// events before Reap releases it.
	MaxSessionIdle time.Duration
}

// DefaultTiming returns the built-in timing.
func DefaultTiming() Timing {
	return Timing{
		Throttle:       20 * time.Millisecond,
		ClickThreshold: 300 * time.Millisecond,
		MaxSessionIdle: 30 * time.Second,
	}
}

// WidthStore is the persisted width cell the controller mutates.
type WidthStore interface {
	Read() prefs.Prefs
	Update(fn func(p *prefs.Prefs))
}

// PointerSource registers application-scoped pointer listeners.
type PointerSource interface {
	ListenPointer(h input.PointerHandler) input.Registration
}

// DragSession is the snapshot taken when a drag starts.
type DragSession struct {
	StartX       int
	StartWidth   int
	StartTime    time.Time
	LastMoveTime time.Time
	lastSeen     time.Time
	reg          input.Registration
}

// ControllerConfig wires a Controller.
type ControllerConfig struct {
	Policy Policy
	Timing Timing
	Store  WidthStore
	Input  PointerSource
	Clock  clockwork.Clock
	Logger *slog.Logger
}

// Controller turns a press/move/release sequence on the drag handle into
// width updates, or into a toggle when the press was a click.
type Controller struct {
	policy  Policy
	timing  Timing
	store   WidthStore
	input   PointerSource
	clock   clockwork.Clock
	logger  *slog.Logger
	session *DragSession
}

// NewController creates an idle controller. A nil Clock uses the real clock.
func NewController(cfg ControllerConfig) *Controller {
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		policy: cfg.Policy,
		timing: cfg.Timing,
		store:  cfg.Store,
		input:  cfg.Input,
		clock:  clock,
		logger: logger.With("component", "sidebar.drag"),
	}
}

// Dragging reports whether a session is active.
func (c *Controller) Dragging() bool {
	return c.session != nil
}

// Session returns a copy of the active session.
func (c *Controller) Session() (DragSession, bool) {
	if c.session == nil {
		return DragSession{}, false
	}
	return *c.session, true
}

// Start begins a drag session at pointer column x.
//
// A press while a session is already active means the release of the
// previous one was lost (the button went up outside the terminal). The
// stale session is dropped without a toggle and a new one starts.
func (c *Controller) Start(x int) {
	if c.session != nil {
		c.logger.Debug("restarting drag, previous release lost", "startX", c.session.StartX)
		c.release()
	}

	now := c.clock.Now()
	s := &DragSession{
		StartX:       x,
		StartWidth:   c.store.Read().SidebarWidth,
		StartTime:    now,
		LastMoveTime: now,
		lastSeen:     now,
	}
	c.session = s
	s.reg = c.input.ListenPointer(func(ev input.PointerEvent) {
		// Events queued for an older session must not touch this one.
		if c.session != s {
			return
		}
		c.handlePointer(ev)
	})
	c.logger.Debug("drag started", "x", x, "width", s.StartWidth)
}

func (c *Controller) handlePointer(ev input.PointerEvent) {
	switch ev.Kind {
	case input.PointerMove:
		if !ev.Pressed {
			c.logger.Debug("unpressed motion during drag, dropping session")
			c.release()
			return
		}
		c.Move(ev.X)
	case input.PointerUp:
		c.End()
	case input.PointerDown:
		// Presses are routed through Start by the owner of the handle.
	}
}

// Move applies a pointer move at column x. Moves closer than the throttle
// window to the previous accepted move are dropped.
func (c *Controller) Move(x int) {
	s := c.session
	if s == nil {
		return
	}
	now := c.clock.Now()
	s.lastSeen = now
	if now.Sub(s.LastMoveTime) < c.timing.Throttle {
		return
	}
	s.LastMoveTime = now

	candidate := c.policy.Clamp(s.StartWidth + x - s.StartX)
	width := c.policy.Snap(candidate)
	c.store.Update(func(p *prefs.Prefs) {
		p.SidebarWidth = width
	})
}

// End finishes the session. A session shorter than the click threshold is
// also treated as a click and toggles the panel, even if moves already
// changed the width.
func (c *Controller) End() {
	s := c.session
	if s == nil {
		return
	}
	c.release()

	elapsed := c.clock.Since(s.StartTime)
	if elapsed < c.timing.ClickThreshold {
		c.logger.Debug("drag classified as click", "elapsed", elapsed)
		c.Toggle()
		return
	}
	c.logger.Debug("drag ended", "elapsed", elapsed, "width", c.store.Read().SidebarWidth)
}

// Toggle collapses a wide panel to the narrow marker and expands a narrow
// one to the default width. A custom width is not remembered.
func (c *Controller) Toggle() {
	c.store.Update(func(p *prefs.Prefs) {
		if p.SidebarWidth < c.policy.MinWidth {
			p.SidebarWidth = c.policy.DefaultWidth
		} else {
			p.SidebarWidth = c.policy.NarrowWidth
		}
	})
}

// Reap drops a session that has seen no pointer event for MaxSessionIdle.
// It reports whether a session was dropped. Reaped sessions never toggle.
func (c *Controller) Reap() bool {
	s := c.session
	if s == nil || c.timing.MaxSessionIdle <= 0 {
		return false
	}
	if c.clock.Since(s.lastSeen) < c.timing.MaxSessionIdle {
		return false
	}
	c.logger.Warn("reaping idle drag session", "idle", c.clock.Since(s.lastSeen))
	c.release()
	return true
}

// Cancel drops the active session without click classification.
func (c *Controller) Cancel() {
	if c.session != nil {
		c.logger.Debug("drag cancelled")
	}
	c.release()
}

func (c *Controller) release() {
	if c.session == nil {
		return
	}
	if c.session.reg != nil {
		c.session.reg.Release()
	}
	c.session = nil
}
