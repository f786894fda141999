package test

import (
	"fmt"
	"sync/atomic"
)

// SequentialIDs issues deterministic UUID-shaped identifiers.
type SequentialIDs struct {
	next atomic.Int64
}

// NewID returns the next identifier in sequence.
func (g *SequentialIDs) NewID() string {
	n := g.next.Add(1)
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", n)
}
