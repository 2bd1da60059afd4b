package domain

// QueueEntry is an outstanding proactive command held by the command queue
type QueueEntry struct {
	Command ProactiveCommand
	ID      int
	Kind    CommandKind
	// Launched is set once an accepted command was handed to its launcher
	Launched bool
	// Responded is set once a terminal response was already sent for the entry
	Responded bool
}
