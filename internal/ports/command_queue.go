package ports

import "satd/internal/domain"

// CommandQueue holds outstanding proactive commands keyed by a small integer id.
// Ids are slot indexes and are reused as soon as a slot is released.
type CommandQueue interface {
	// Reserve stores the command in the lowest free slot and returns its index
	Reserve(kind domain.CommandKind, cmd domain.ProactiveCommand) (int, error)
	// Peek returns the entry without releasing it
	Peek(id int) (domain.QueueEntry, error)
	// Take returns the entry and releases its slot
	Take(id int) (domain.QueueEntry, error)
	// MarkResponded flags that a terminal response was already sent for the entry
	MarkResponded(id int) error
	// MarkLaunched flags that the accepted command is executing
	MarkLaunched(id int) error
	ClearAll()
	Len() int
	Capacity() int
}
