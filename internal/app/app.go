// Package app wires the chat shell: the navigation sidebar, its resize
// controller and the chat pane.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/parley/internal/config"
	"github.com/llehouerou/parley/internal/errmsg"
	"github.com/llehouerou/parley/internal/input"
	"github.com/llehouerou/parley/internal/keymap"
	"github.com/llehouerou/parley/internal/logging"
	"github.com/llehouerou/parley/internal/prefs"
	"github.com/llehouerou/parley/internal/session"
	"github.com/llehouerou/parley/internal/sidebar"
	"github.com/llehouerou/parley/internal/state"
	"github.com/llehouerou/parley/internal/ui/sidebarview"
)

// Model is the root application model.
type Model struct {
	StateMgr state.Interface
	Logger   *slog.Logger
	Clock    clockwork.Clock

	Policy            sidebar.Policy
	Timing            sidebar.Timing
	CompactBreakpoint int

	Input    *input.Bus
	Keys     *keymap.Resolver
	Confirm  *keymap.Resolver
	Prefs    *prefs.Store
	Drag     *sidebar.Controller
	Binder   *sidebar.Binder
	Hotkeys  *sidebar.HotkeyNavigator
	Sessions *session.Collection
	Sidebar  *sidebarview.Model
	Zones    *zone.Manager
	Chat     viewport.Model
	Status   *StatusLine

	reapVersion   int
	pendingDelete bool
	Width       int
	Height      int
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForWidthSaveError(m.StateMgr.WidthSaveErrors())
}

// New creates the application model. A nil clock uses the real clock.
func New(cfg *config.Config, stateMgr state.Interface, logger *slog.Logger, clock clockwork.Clock) (Model, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	sc := cfg.GetSidebarConfig()
	policy := sidebar.Policy{
		DefaultWidth: sc.DefaultWidth,
		MinWidth:     sc.MinWidth,
		MaxWidth:     sc.MaxWidth,
		NarrowWidth:  sc.NarrowWidth,
	}
	if err := policy.Validate(); err != nil {
		return Model{}, fmt.Errorf("sidebar settings: %w", err)
	}
	timing := sidebar.Timing{
		Throttle:       time.Duration(sc.ThrottleMS) * time.Millisecond,
		ClickThreshold: time.Duration(sc.ClickThresholdMS) * time.Millisecond,
		MaxSessionIdle: time.Duration(sc.MaxSessionIdleMS) * time.Millisecond,
	}

	status := &StatusLine{}

	width := policy.DefaultWidth
	if w, ok, err := stateMgr.GetSidebarWidth(); err != nil {
		logger.Error("load sidebar width", "error", err)
		status.Set(errmsg.Format(errmsg.OpSidebarLoad, err))
	} else if ok {
		width = w
	}
	store := prefs.New(prefs.Prefs{SidebarWidth: width}, stateMgr)

	var saved []session.Session
	active := 0
	if st, err := stateMgr.GetSessions(); err != nil {
		logger.Error("load sessions", "error", err)
		status.Set(errmsg.Format(errmsg.OpSessionsLoad, err))
	} else if st != nil {
		saved = fromSaved(st.Sessions)
		active = st.ActiveIndex
	}
	coll := session.NewCollection(clock, saved, active)

	bus := input.NewBus()
	keys := keymap.Default()
	zones := zone.New()

	view := sidebarview.New(zones, clock, cfg.GetTitle(), cfg.Subtitle)
	view.SetSessions(coll.Sessions(), coll.ActiveIndex())

	coll.SetOnChange(func() {
		view.SetSessions(coll.Sessions(), coll.ActiveIndex())
		if err := saveSessions(stateMgr, coll); err != nil {
			logger.Error("save sessions", "error", err)
			status.Set(errmsg.Format(errmsg.OpSessionsSave, err))
		}
	})

	binder := sidebar.Bind(policy, store, sidebar.Desktop, sidebar.SinkFunc(func(d sidebar.DisplayWidth, narrow bool) {
		logger.Debug("sidebar width published", "width", d.String(), "narrow", narrow)
		view.PublishDisplayWidth(d, narrow)
	}))

	drag := sidebar.NewController(sidebar.ControllerConfig{
		Policy: policy,
		Timing: timing,
		Store:  store,
		Input:  bus,
		Clock:  clock,
		Logger: logger,
	})

	return Model{
		StateMgr:          stateMgr,
		Logger:            logger,
		Clock:             clock,
		Policy:            policy,
		Timing:            timing,
		CompactBreakpoint: sc.CompactBreakpoint,
		Input:             bus,
		Keys:              keys,
		Confirm:           keymap.Confirm(),
		Prefs:             store,
		Drag:              drag,
		Binder:            binder,
		Hotkeys:           sidebar.NewHotkeyNavigator(bus, keys, coll),
		Sessions:          coll,
		Sidebar:           view,
		Zones:             zones,
		Chat:              viewport.New(0, 0),
		Status:            status,
	}, nil
}

// Close releases every listener the model registered.
func (m Model) Close() {
	m.Drag.Cancel()
	m.Hotkeys.Close()
	m.Binder.Close()
}

// StatusLine holds the message shown in the status bar. It is shared by
// pointer so callbacks registered at construction can set it.
type StatusLine struct {
	msg string
}

// Set replaces the message.
func (s *StatusLine) Set(msg string) {
	s.msg = msg
}

// Clear removes the message.
func (s *StatusLine) Clear() {
	s.msg = ""
}

// Message returns the current message.
func (s *StatusLine) Message() string {
	return s.msg
}
