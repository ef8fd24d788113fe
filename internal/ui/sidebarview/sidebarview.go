// Package sidebarview renders the chat navigation sidebar and maps mouse
// positions back to its parts.
package sidebarview

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/jonboulle/clockwork"
	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/parley/internal/icons"
	"github.com/llehouerou/parley/internal/session"
	"github.com/llehouerou/parley/internal/sidebar"
	"github.com/llehouerou/parley/internal/ui/render"
	"github.com/llehouerou/parley/internal/ui/styles"
)

// HandleWidth is the width of the resize handle column.
const HandleWidth = 1

// HitKind identifies the part of the sidebar under the pointer.
type HitKind int

const (
	HitNone HitKind = iota
	HitHandle
	HitToggle
	HitRow
	HitNewChat
	HitDeleteChat
)

// Hit is the result of a hit test. Row is set for HitRow.
type Hit struct {
	Kind HitKind
	Row  int
}

// Model is the sidebar view. It implements sidebar.Sink.
type Model struct {
	zones  *zone.Manager
	prefix string
	clock  clockwork.Clock

	title    string
	subtitle string

	display sidebar.DisplayWidth
	narrow  bool
	cols    int
	height  int

	sessions []session.Session
	active   int
	dragging bool

	// rows drawn by the last View, [firstRow, firstRow+rowCount)
	firstRow int
	rowCount int
}

// New creates a sidebar view. zones must be the manager that scans the
// final program output.
func New(zones *zone.Manager, clock clockwork.Clock, title, subtitle string) *Model {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Model{
		zones:    zones,
		prefix:   zones.NewPrefix(),
		clock:    clock,
		title:    title,
		subtitle: subtitle,
	}
}

// PublishDisplayWidth implements sidebar.Sink.
func (m *Model) PublishDisplayWidth(width sidebar.DisplayWidth, narrow bool) {
	m.display = width
	m.narrow = narrow
}

// DisplayWidth returns the last published width.
func (m *Model) DisplayWidth() sidebar.DisplayWidth {
	return m.display
}

// Narrow reports whether the sidebar renders in its collapsed form.
func (m *Model) Narrow() bool {
	return m.narrow
}

// SetSize sets the columns allotted to the sidebar and the panel height.
func (m *Model) SetSize(cols, height int) {
	m.cols = cols
	m.height = height
}

// Width returns the allotted columns.
func (m *Model) Width() int {
	return m.cols
}

// SetSessions replaces the listed sessions.
func (m *Model) SetSessions(list []session.Session, active int) {
	m.sessions = list
	m.active = active
}

// SetDragging highlights the handle while a resize is in progress.
func (m *Model) SetDragging(dragging bool) {
	m.dragging = dragging
}

// showHandle reports whether the resize handle is drawn. A full-width
// sidebar has nothing to resize against.
func (m *Model) showHandle() bool {
	return !m.display.Full && m.cols > HandleWidth
}

// View renders the sidebar at exactly cols x height cells.
func (m *Model) View() string {
	if m.cols <= 0 || m.height <= 0 {
		return ""
	}

	contentW := m.cols
	if m.showHandle() {
		contentW -= HandleWidth
	}

	header := m.renderHeader(contentW)
	tail := m.renderTail(contentW)
	rowsHeight := max(m.height-len(header)-len(tail), 0)
	rows := m.renderRows(contentW, rowsHeight)

	lines := make([]string, 0, m.height)
	lines = append(lines, header...)
	lines = append(lines, rows...)
	lines = append(lines, tail...)
	if len(lines) > m.height {
		lines = lines[:m.height]
	}

	content := strings.Join(lines, "\n")
	if !m.showHandle() {
		return content
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, content, m.renderHandle())
}

func (m *Model) renderHeader(width int) []string {
	s := styles.Sidebar()
	toggle := m.zones.Mark(m.id("toggle"), s.Toggle.Render(icons.Toggle(m.narrow)))

	if m.narrow {
		return []string{
			render.Center(toggle, width),
			s.Separator.Render(render.Separator(width)),
		}
	}

	title := styles.TitleGradient(render.Truncate(m.title, max(width-4, 0)))
	lines := []string{render.PadStyled(render.Row(" "+title, toggle+" ", width), width)}
	if m.subtitle != "" {
		lines = append(lines, render.PadStyled(" "+s.Subtitle.Render(render.Truncate(m.subtitle, max(width-2, 0))), width))
	}
	return append(lines, s.Separator.Render(render.Separator(width)))
}

func (m *Model) renderTail(width int) []string {
	s := styles.Sidebar()
	sep := s.Separator.Render(render.Separator(width))

	if m.narrow {
		return []string{
			sep,
			m.zones.Mark(m.id("new"), render.Center(icons.NewChat(), width)),
			m.zones.Mark(m.id("delete"), render.Center(icons.Delete(), width)),
		}
	}

	action := func(id, icon, label, key string) string {
		left := " " + render.Truncate(icon+" "+label, max(width-len(key)-3, 0))
		return m.zones.Mark(m.id(id), render.PadStyled(render.Row(left, s.ActionKey.Render(key)+" ", width), width))
	}
	return []string{
		sep,
		action("new", icons.NewChat(), "New chat", "n"),
		action("delete", icons.Delete(), "Delete chat", "ctrl+d"),
	}
}

func (m *Model) rowHeight() int {
	if m.narrow {
		return 1
	}
	return 2
}

func (m *Model) renderRows(width, height int) []string {
	rowH := m.rowHeight()
	capacity := height / rowH
	m.firstRow = 0
	if m.active >= capacity {
		m.firstRow = m.active - capacity + 1
	}
	m.rowCount = max(min(capacity, len(m.sessions)-m.firstRow), 0)

	lines := make([]string, 0, height)
	for i := m.firstRow; i < m.firstRow+m.rowCount; i++ {
		var row string
		if m.narrow {
			row = m.renderNarrowRow(i, width)
		} else {
			row = m.renderRow(i, width)
		}
		lines = append(lines, strings.Split(m.zones.Mark(m.rowID(i), row), "\n")...)
	}
	for len(lines) < height {
		lines = append(lines, render.EmptyLine(width))
	}
	return lines
}

func (m *Model) renderRow(i, width int) string {
	s := styles.Sidebar()
	sess := m.sessions[i]
	isActive := i == m.active

	marker := " "
	if isActive {
		marker = icons.Active()
	}

	title := render.Fit(" "+marker+" "+icons.FormatChat(sess.Title), width)
	meta := humanize.RelTime(sess.UpdatedAt, m.clock.Now(), "ago", "from now")
	if sess.MessageCount > 0 {
		meta += " · " + humanize.Comma(int64(sess.MessageCount)) + " msgs"
	}
	detail := render.Fit("   "+meta, width)

	if isActive {
		return s.ActiveRow.Render(title) + "\n" + s.ActiveRowMeta.Render(detail)
	}
	return s.Row.Render(title) + "\n" + s.RowMeta.Render(detail)
}

func (m *Model) renderNarrowRow(i, width int) string {
	s := styles.Sidebar()
	label := render.Center(strconv.Itoa(i+1), width)
	if i == m.active {
		return s.ActiveIndex.Render(label)
	}
	return s.Index.Render(label)
}

func (m *Model) renderHandle() string {
	s := styles.Sidebar()
	glyph := s.Handle.Render("│")
	if m.dragging {
		glyph = s.HandleDragging.Render("┃")
	}
	col := make([]string, m.height)
	for i := range col {
		col[i] = glyph
	}
	return m.zones.Mark(m.id("handle"), strings.Join(col, "\n"))
}

// HitTest maps a mouse event to the sidebar part under it. It relies on the
// zones recorded when the program output containing View was scanned.
func (m *Model) HitTest(msg tea.MouseMsg) Hit {
	if m.showHandle() && m.inZone("handle", msg) {
		return Hit{Kind: HitHandle}
	}
	if m.inZone("toggle", msg) {
		return Hit{Kind: HitToggle}
	}
	if m.inZone("new", msg) {
		return Hit{Kind: HitNewChat}
	}
	if m.inZone("delete", msg) {
		return Hit{Kind: HitDeleteChat}
	}
	for i := m.firstRow; i < m.firstRow+m.rowCount; i++ {
		if z := m.zones.Get(m.rowID(i)); z != nil && !z.IsZero() && z.InBounds(msg) {
			return Hit{Kind: HitRow, Row: i}
		}
	}
	return Hit{}
}

func (m *Model) inZone(name string, msg tea.MouseMsg) bool {
	z := m.zones.Get(m.id(name))
	return z != nil && !z.IsZero() && z.InBounds(msg)
}

func (m *Model) id(name string) string {
	return m.prefix + name
}

func (m *Model) rowID(i int) string {
	return m.prefix + "row:" + strconv.Itoa(i)
}
