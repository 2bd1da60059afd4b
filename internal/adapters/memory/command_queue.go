package memory

import (
	"fmt"
	"sync"

	"satd/internal/domain"
	"satd/internal/logging"
	"satd/internal/ports"
)

// DefaultCapacity is the number of proactive commands that may be outstanding at once
const DefaultCapacity = 10

// CommandQueue implements ports.CommandQueue as a fixed table of slots
type CommandQueue struct {
	mu    sync.Mutex
	slots []*domain.QueueEntry
}

// Verify interface compliance at compile time
var _ ports.CommandQueue = (*CommandQueue)(nil)

// NewCommandQueue creates a queue with the given number of slots.
// A non-positive capacity falls back to DefaultCapacity.
func NewCommandQueue(capacity int) *CommandQueue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &CommandQueue{slots: make([]*domain.QueueEntry, capacity)}
}

// Reserve implements ports.CommandQueue.Reserve
func (q *CommandQueue) Reserve(kind domain.CommandKind, cmd domain.ProactiveCommand) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, slot := range q.slots {
		if slot != nil {
			continue
		}
		q.slots[i] = &domain.QueueEntry{
			Command: cmd,
			ID:      i,
			Kind:    kind,
		}
		logging.Logger.Debug("Command queued", "command_id", i, "kind", kind)
		return i, nil
	}

	logging.Logger.Warn("Command queue full", "kind", kind, "capacity", len(q.slots))
	return -1, domain.ErrQueueFull
}

// Peek implements ports.CommandQueue.Peek
func (q *CommandQueue) Peek(id int) (domain.QueueEntry, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	entry, err := q.lookup(id)
	if err != nil {
		return domain.QueueEntry{}, err
	}
	return *entry, nil
}

// Take implements ports.CommandQueue.Take
func (q *CommandQueue) Take(id int) (domain.QueueEntry, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	entry, err := q.lookup(id)
	if err != nil {
		return domain.QueueEntry{}, err
	}
	q.slots[id] = nil
	logging.Logger.Debug("Command dequeued", "command_id", id, "kind", entry.Kind)
	return *entry, nil
}

// MarkResponded implements ports.CommandQueue.MarkResponded
func (q *CommandQueue) MarkResponded(id int) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	entry, err := q.lookup(id)
	if err != nil {
		return err
	}
	entry.Responded = true
	return nil
}

// MarkLaunched implements ports.CommandQueue.MarkLaunched
func (q *CommandQueue) MarkLaunched(id int) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	entry, err := q.lookup(id)
	if err != nil {
		return err
	}
	entry.Launched = true
	return nil
}

// ClearAll implements ports.CommandQueue.ClearAll
func (q *CommandQueue) ClearAll() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i := range q.slots {
		q.slots[i] = nil
	}
	logging.Logger.Debug("Command queue cleared")
}

// Len implements ports.CommandQueue.Len
func (q *CommandQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := 0
	for _, slot := range q.slots {
		if slot != nil {
			n++
		}
	}
	return n
}

// Capacity implements ports.CommandQueue.Capacity
func (q *CommandQueue) Capacity() int {
	return len(q.slots)
}

// lookup must be called with q.mu held
func (q *CommandQueue) lookup(id int) (*domain.QueueEntry, error) {
	if id < 0 || id >= len(q.slots) || q.slots[id] == nil {
		return nil, fmt.Errorf("%w: command id %d", domain.ErrCommandNotFound, id)
	}
	return q.slots[id], nil
}
