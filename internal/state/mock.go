// internal/state/mock.go
package state

// Mock is a test double for Manager.
type Mock struct {
	width       int
	hasWidth    bool
	savedWidths []int
	sessions    *SessionsState
	saveErr     error
	closed      bool
	widthErrs   chan WidthSaveError
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{widthErrs: make(chan WidthSaveError, 4)}
}

func (m *Mock) GetSidebarWidth() (int, bool, error) {
	return m.width, m.hasWidth, nil
}

func (m *Mock) SaveSidebarWidth(width int) {
	m.width = width
	m.hasWidth = true
	m.savedWidths = append(m.savedWidths, width)
}

func (m *Mock) WidthSaveErrors() <-chan WidthSaveError {
	return m.widthErrs
}

func (m *Mock) GetSessions() (*SessionsState, error) {
	return m.sessions, nil
}

func (m *Mock) SaveSessions(state SessionsState) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.sessions = &state
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetSidebarWidth(width int) {
	m.width = width
	m.hasWidth = true
}

func (m *Mock) SetSessions(state *SessionsState) { m.sessions = state }

func (m *Mock) SetSaveError(err error) { m.saveErr = err }

// FailWidthSave reports a failed width write as the debounced writer would.
func (m *Mock) FailWidthSave(width int, err error) {
	m.widthErrs <- WidthSaveError{Width: width, Err: err}
}

func (m *Mock) SavedWidths() []int { return m.savedWidths }

func (m *Mock) Sessions() *SessionsState { return m.sessions }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
