// internal/state/interface.go
package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	GetSidebarWidth() (int, bool, error)
	SaveSidebarWidth(width int)
	WidthSaveErrors() <-chan WidthSaveError
	GetSessions() (*SessionsState, error)
	SaveSessions(state SessionsState) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
