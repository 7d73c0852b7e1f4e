package packet

import "sync/atomic"

// IdentifierSource hands out RADIUS packet identifiers. Next is safe for
// concurrent use and wraps after 255.
type IdentifierSource struct {
	next atomic.Uint32
}

// DefaultIdentifiers is the process-wide source used by NewRequest. It starts at 0.
var DefaultIdentifiers = NewIdentifierSource(0)

// NewIdentifierSource creates a source whose first identifier is seed
func NewIdentifierSource(seed uint8) *IdentifierSource {
	s := &IdentifierSource{}
	s.next.Store(uint32(seed))
	return s
}

// Next returns the next identifier
func (s *IdentifierSource) Next() uint8 {
	return uint8(s.next.Add(1) - 1)
}
