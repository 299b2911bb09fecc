package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces a fresh opaque identifier per call, unique within the
// process lifetime.
type Generator interface {
	NextID() string
}

type UUID struct{}

func NewUUID() UUID {
	return UUID{}
}

func (UUID) NextID() string {
	return uuid.NewString()
}

// Sequence hands out prefixed monotonically increasing ids. Used for seed
// data and tests where readable, stable ids matter.
type Sequence struct {
	prefix string
	n      atomic.Int64
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

func (s *Sequence) NextID() string {
	return fmt.Sprintf("%s%d", s.prefix, s.n.Add(1))
}
