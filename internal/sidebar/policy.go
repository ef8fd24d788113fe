// Package sidebar implements the resize and collapse behaviour of the chat
// navigation panel: width policy, the drag state machine, the compact
// terminal override and the binder that publishes the final display width.
package sidebar

import (
	"errors"
	"fmt"
)

// ErrInvalidPolicy is wrapped by the error Validate returns.
var ErrInvalidPolicy = errors.New("invalid sidebar policy")

// Policy holds the width constants, in terminal cells.
type Policy struct {
	DefaultWidth int
	MinWidth     int
	MaxWidth     int
	// NarrowWidth is the collapsed marker width. It is stored as the
	// persisted width while the panel is collapsed.
	NarrowWidth int
}

// DefaultPolicy returns the built-in widths.
func DefaultPolicy() Policy {
	return Policy{
		DefaultWidth: 32,
		MinWidth:     20,
		MaxWidth:     60,
		NarrowWidth:  6,
	}
}

// Clamp caps x at MaxWidth. It applies no floor; Snap handles small values.
func (p Policy) Clamp(x int) int {
	return min(p.MaxWidth, x)
}

// IsNarrow reports whether width renders as the collapsed panel.
// Compact terminals are never narrow.
func (p Policy) IsNarrow(width int, compact bool) bool {
	return !compact && width < p.MinWidth
}

// Snap maps a candidate width below MinWidth to the narrow marker.
func (p Policy) Snap(candidate int) int {
	if candidate < p.MinWidth {
		return p.NarrowWidth
	}
	return candidate
}

// Validate checks that the widths are ordered
// 0 < NarrowWidth < MinWidth <= DefaultWidth <= MaxWidth.
func (p Policy) Validate() error {
	var errs []error
	if p.NarrowWidth <= 0 {
		errs = append(errs, fmt.Errorf("narrow width must be positive, got %d", p.NarrowWidth))
	}
	if p.NarrowWidth >= p.MinWidth {
		errs = append(errs, fmt.Errorf("narrow width %d must be below min width %d", p.NarrowWidth, p.MinWidth))
	}
	if p.MinWidth > p.DefaultWidth {
		errs = append(errs, fmt.Errorf("min width %d exceeds default width %d", p.MinWidth, p.DefaultWidth))
	}
	if p.DefaultWidth > p.MaxWidth {
		errs = append(errs, fmt.Errorf("default width %d exceeds max width %d", p.DefaultWidth, p.MaxWidth))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidPolicy, errors.Join(errs...))
	}
	return nil
}
