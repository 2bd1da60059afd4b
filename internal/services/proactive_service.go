package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"satd/internal/domain"
	"satd/internal/logging"
	"satd/internal/ports"
)

// ProactiveService tracks in-flight proactive commands from the card.
// It encodes each command into a notification, correlates the application's
// outcome with the stored command and builds the terminal response.
// Every public method holds the service lock for its whole duration.
type ProactiveService struct {
	mu sync.Mutex

	browser    ports.BrowserLauncher
	calls      ports.CallLauncher
	channels   ports.ChannelManager
	codec      ports.TextCodec
	dispatcher ports.ResponseDispatcher
	emitter    ports.NotificationEmitter
	queue      ports.CommandQueue
	settings   ports.SettingsStore

	// events is the event list installed by the last successful setup event list
	events map[domain.EventType]bool
	// menu is the main menu installed by the last successful setup menu
	menu      []domain.Item
	sessionID string
}

// ProactiveServiceDeps groups the collaborators of a ProactiveService
type ProactiveServiceDeps struct {
	Browser    ports.BrowserLauncher
	Calls      ports.CallLauncher
	Channels   ports.ChannelManager
	Codec      ports.TextCodec
	Dispatcher ports.ResponseDispatcher
	Emitter    ports.NotificationEmitter
	Queue      ports.CommandQueue
	Settings   ports.SettingsStore
}

// NewProactiveService creates a new ProactiveService
func NewProactiveService(deps ProactiveServiceDeps) *ProactiveService {
	return &ProactiveService{
		browser:    deps.Browser,
		calls:      deps.Calls,
		channels:   deps.Channels,
		codec:      deps.Codec,
		dispatcher: deps.Dispatcher,
		emitter:    deps.Emitter,
		events:     map[domain.EventType]bool{},
		queue:      deps.Queue,
		sessionID:  uuid.New().String(),
		settings:   deps.Settings,
	}
}

// SessionID identifies the current card proactive session. It changes on EndSession.
func (s *ProactiveService) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}

// HandleCommand encodes a decoded card command and emits its notification.
// It returns nil when the command was answered at once with a terminal response.
// When the queue is full the command is dropped: the error wraps domain.ErrQueueFull
// and no terminal response is sent.
func (s *ProactiveService) HandleCommand(ctx context.Context, cmd domain.ProactiveCommand) (domain.Notification, error) {
	if cmd == nil {
		return nil, fmt.Errorf("%w: nil command", domain.ErrUnsupportedCommand)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	header := cmd.Header()
	kind := cmd.Kind()
	logging.Logger.Info("Proactive command received",
		"kind", kind,
		"number", header.Details.Number,
		"session_id", s.sessionID)

	enc, err := s.encode(cmd)
	if errors.Is(err, domain.ErrUnsupportedCommand) {
		logging.Logger.Warn("Unsupported proactive command", "kind", kind)
		return nil, err
	}
	if err != nil {
		logging.Logger.Warn("Failed to decode command text", "kind", kind, "error", err)
		enc = rejectWith(domain.ResultCommandDataNotUnderstood)
	}

	if enc.reject != nil {
		return nil, s.respondImmediately(ctx, header, *enc.reject)
	}

	id, err := s.queue.Reserve(kind, cmd)
	if err != nil {
		logging.Logger.Error("Dropping proactive command, no terminal response sent",
			"kind", kind,
			"capacity", s.queue.Capacity(),
			"error", err)
		return nil, fmt.Errorf("failed to reserve %s command: %w", kind, err)
	}

	logging.Logger.Debug("Command reserved", "command_id", id, "kind", kind, "outstanding", s.queue.Len())

	n := enc.notify(domain.NotificationHeader{CommandID: id})
	if err := s.emitter.Emit(ctx, n); err != nil {
		logging.Logger.Error("Failed to emit notification", "command_id", id, "kind", kind, "error", err)
		if _, ferr := s.finalizeAndSend(ctx, id, domain.DisplayFailure{}); ferr != nil {
			logging.Logger.Error("Failed to answer unnotified command", "command_id", id, "error", ferr)
		}
		return nil, fmt.Errorf("failed to emit %s notification: %w", kind, err)
	}

	if dt, ok := cmd.(domain.DisplayText); ok && dt.ImmediateResponse {
		if err := s.respondEarly(ctx, id); err != nil {
			return n, err
		}
	}

	return n, nil
}

// EndSession drops every outstanding command. It is called when the card ends
// its proactive session, so that no id outlives the session it was issued in.
func (s *ProactiveService) EndSession(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dropped := s.queue.Len()
	s.queue.ClearAll()

	previous := s.sessionID
	s.sessionID = uuid.New().String()

	logging.Logger.Info("Proactive session ended",
		"dropped", dropped,
		"session_id", previous,
		"next_session_id", s.sessionID)
}

// respondImmediately answers a command that never entered the queue
func (s *ProactiveService) respondImmediately(ctx context.Context, header domain.CommandHeader, result domain.Result) error {
	tr := domain.TerminalResponse{
		Details: header.Details,
		Devices: header.Devices.Swap(),
		Result:  result,
	}

	logging.Logger.Info("Answering command without notification",
		"kind", header.Details.Kind,
		"result", result)

	if err := s.dispatcher.SendTerminalResponse(ctx, tr); err != nil {
		return fmt.Errorf("failed to send terminal response: %w", err)
	}
	return nil
}

// respondEarly sends a success for a display text with the immediate response
// qualifier. The entry stays queued until the application reports on it.
func (s *ProactiveService) respondEarly(ctx context.Context, id int) error {
	entry, err := s.queue.Peek(id)
	if err != nil {
		return fmt.Errorf("failed to load command %d: %w", id, err)
	}

	tr := s.finalize(entry, domain.ExecutionResult{General: domain.ResultSuccess})
	if err := s.dispatcher.SendTerminalResponse(ctx, tr); err != nil {
		return fmt.Errorf("failed to send terminal response: %w", err)
	}

	if err := s.queue.MarkResponded(id); err != nil {
		return fmt.Errorf("failed to mark command %d responded: %w", id, err)
	}

	logging.Logger.Debug("Immediate response sent", "command_id", id, "result", tr.Result)
	return nil
}

// finalizeAndSend removes the entry, builds its terminal response and dispatches it.
// Entries that were already answered are released without a second response.
func (s *ProactiveService) finalizeAndSend(ctx context.Context, id int, outcome domain.Outcome) (*domain.TerminalResponse, error) {
	entry, err := s.queue.Take(id)
	if err != nil {
		return nil, fmt.Errorf("failed to finalize command: %w", err)
	}

	if entry.Responded {
		logging.Logger.Debug("Releasing answered command", "command_id", id, "kind", entry.Kind)
		return nil, nil
	}

	tr := s.finalize(entry, outcome)
	if err := s.dispatcher.SendTerminalResponse(ctx, tr); err != nil {
		return &tr, fmt.Errorf("failed to send terminal response: %w", err)
	}

	logging.Logger.Info("Terminal response sent",
		"command_id", id,
		"kind", entry.Kind,
		"result", tr.Result,
		"session_id", s.sessionID)
	return &tr, nil
}
