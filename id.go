package bramble

import (
	"fmt"
	"sync/atomic"
)

// NodeID identifies a built element. IDs are non-zero and ordered by
// creation; they are used for correlation and debugging, never for
// addressing (use tree handles for that).
type NodeID uint64

// String returns a short, readable form such as "#002A".
func (id NodeID) String() string {
	return fmt.Sprintf("#%04X", uint64(id))
}

// IDSource hands out node identities. A Builder draws one ID per element.
type IDSource interface {
	Next() NodeID
}

// Counter is a monotonic IDSource. The zero value is ready to use and
// starts at 1. Safe for concurrent use.
type Counter struct {
	n atomic.Uint64
}

// NewCounter returns a counter whose first ID is 1.
func NewCounter() *Counter {
	return &Counter{}
}

// Next returns the next identity. Values are strictly increasing and never
// repeat for the lifetime of the counter.
func (c *Counter) Next() NodeID {
	return NodeID(c.n.Add(1))
}

// Reset rewinds the counter so the next ID is 1 again. Only meant for tests
// that need deterministic IDs; IDs issued before a reset may be reissued.
func (c *Counter) Reset() {
	c.n.Store(0)
}

// DefaultIDs is the process-wide counter used by Element.Build and NextID.
var DefaultIDs = NewCounter()

// NextID draws an identity from DefaultIDs.
func NextID() NodeID {
	return DefaultIDs.Next()
}
