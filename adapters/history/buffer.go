package history

import (
	"sync"

	"github.com/DUBIX17/Dubix-sophia/domain"
)

var _ domain.History = (*Buffer)(nil)

// DefaultCapacity is how many exchanges the relay remembers.
const DefaultCapacity = 5

// Buffer implements domain.History as a fixed-size FIFO of turns.
// One lock guards every access, so concurrent requests cannot lose turns.
type Buffer struct {
	mu       sync.RWMutex
	turns    []domain.Turn
	capacity int
}

// NewBuffer creates an empty buffer holding at most capacity turns.
// A non-positive capacity falls back to DefaultCapacity.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{
		turns:    make([]domain.Turn, 0, capacity),
		capacity: capacity,
	}
}

// Append adds turn at the end and evicts from the front until the buffer
// is back within capacity.
func (b *Buffer) Append(turn domain.Turn) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.turns = append(b.turns, turn)
	if over := len(b.turns) - b.capacity; over > 0 {
		// shift in place so the backing array is reused
		n := copy(b.turns, b.turns[over:])
		clear(b.turns[n:])
		b.turns = b.turns[:n]
	}
}

// Snapshot returns a copy of the retained turns, oldest first.
func (b *Buffer) Snapshot() []domain.Turn {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]domain.Turn, len(b.turns))
	copy(out, b.turns)
	return out
}

// Len returns the number of retained turns.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.turns)
}

func (b *Buffer) limit() int {
	return b.capacity
}
