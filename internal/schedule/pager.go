package schedule

import "github.com/cashforcars/CFC-AppointmentService/internal/domain"

// maxOffset is the largest valid starting offset for the visible window.
// With MaxDaysAhead=10 and WindowSize=7 the only reachable offsets are 0
// and 3; widening the horizon is a product decision, not a code change
// beyond the constants.
const maxOffset = domain.MaxDaysAhead - domain.WindowSize

// Pager tracks the visible date-window offset, advancing and retreating in
// WindowSize strides clamped to [0, MaxDaysAhead-WindowSize]
type Pager struct {
	offset int
}

// NewPager starts a pager at the given offset, clamped into range
func NewPager(offset int) *Pager {
	return &Pager{offset: ClampOffset(offset)}
}

// ClampOffset forces an arbitrary offset into the valid pagination range
func ClampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > maxOffset {
		return maxOffset
	}
	return offset
}

// Offset returns the current window offset
func (p *Pager) Offset() int {
	return p.offset
}

// CanAdvance reports whether a later window exists
func (p *Pager) CanAdvance() bool {
	return p.offset+domain.WindowSize < domain.MaxDaysAhead
}

// CanRetreat reports whether an earlier window exists
func (p *Pager) CanRetreat() bool {
	return p.offset > 0
}

// Advance moves the window one stride later, clamping rather than
// overshooting the horizon. No-op at the upper bound.
func (p *Pager) Advance() int {
	if p.CanAdvance() {
		p.offset = min(p.offset+domain.WindowSize, maxOffset)
	}
	return p.offset
}

// Retreat moves the window one stride earlier, clamping at today.
// No-op at offset 0.
func (p *Pager) Retreat() int {
	if p.CanRetreat() {
		p.offset = max(p.offset-domain.WindowSize, 0)
	}
	return p.offset
}
