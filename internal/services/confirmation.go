package services

import (
	"context"
	"fmt"

	"satd/internal/domain"
	"satd/internal/logging"
)

// confirmable lists the kinds the user interacts with
var confirmable = map[domain.CommandKind]bool{
	domain.KindDisplayText:   true,
	domain.KindGetInkey:      true,
	domain.KindGetInput:      true,
	domain.KindLaunchBrowser: true,
	domain.KindOpenChannel:   true,
	domain.KindSelectItem:    true,
	domain.KindSendDTMF:      true,
	domain.KindSetupCall:     true,
}

// HandleConfirmation applies the user's reaction to a prompt.
// Accepting a setup call, launch browser or open channel keeps the command
// outstanding: the notification is emitted again for execution and the matching
// launcher is started. The terminal response then follows the execution result,
// and further confirmations for the launched command are rejected.
// Every other confirmation finalizes the command.
func (s *ProactiveService) HandleConfirmation(ctx context.Context, id int, c domain.Confirmation) (*domain.TerminalResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.queue.Peek(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load command: %w", err)
	}

	logging.Logger.Debug("Confirmation received",
		"command_id", id,
		"kind", entry.Kind,
		"confirmation", c.Kind)

	if !confirmable[entry.Kind] {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedConfirmation, entry.Kind)
	}
	if entry.Launched {
		logging.Logger.Warn("Confirmation for a command already executing", "command_id", id, "kind", entry.Kind)
		return nil, fmt.Errorf("%w: %s %d is already executing", domain.ErrUnsupportedConfirmation, entry.Kind, id)
	}

	if c.Kind == domain.ConfirmAccept && !entry.Responded {
		switch cmd := entry.Command.(type) {
		case domain.SetupCall:
			return s.execute(ctx, entry, func() error { return s.calls.LaunchCall(ctx, id, cmd) })
		case domain.LaunchBrowser:
			return s.execute(ctx, entry, func() error { return s.browser.LaunchBrowser(ctx, id, cmd) })
		case domain.OpenChannel:
			return s.execute(ctx, entry, func() error { return s.channels.OpenChannel(ctx, id, cmd) })
		}
	}

	return s.finalizeAndSend(ctx, id, c)
}

// execute turns an accepted prompt into an action. A launch failure finalizes
// the command with ME currently unable to process command.
func (s *ProactiveService) execute(ctx context.Context, entry domain.QueueEntry, launch func() error) (*domain.TerminalResponse, error) {
	enc, err := s.encode(entry.Command)
	if err != nil || enc.notify == nil {
		logging.Logger.Error("Failed to encode command for execution", "command_id", entry.ID, "error", err)
		return s.finalizeAndSend(ctx, entry.ID, domain.DisplayFailure{})
	}

	n := asExecution(enc.notify(domain.NotificationHeader{CommandID: entry.ID}))
	if err := s.emitter.Emit(ctx, n); err != nil {
		logging.Logger.Error("Failed to emit execution notification", "command_id", entry.ID, "error", err)
		return s.finalizeAndSend(ctx, entry.ID, domain.DisplayFailure{})
	}

	if err := launch(); err != nil {
		logging.Logger.Error("Failed to launch command",
			"command_id", entry.ID,
			"kind", entry.Kind,
			"error", err)
		return s.finalizeAndSend(ctx, entry.ID, domain.ExecutionResult{General: domain.ResultMEUnableToProcess})
	}

	if err := s.queue.MarkLaunched(entry.ID); err != nil {
		return nil, fmt.Errorf("failed to mark command launched: %w", err)
	}

	logging.Logger.Info("Command launched", "command_id", entry.ID, "kind", entry.Kind)
	return nil, nil
}

// asExecution marks a prompt notification as a command to execute
func asExecution(n domain.Notification) domain.Notification {
	switch v := n.(type) {
	case domain.SetupCallNotification:
		v.Execute = true
		return v
	case domain.LaunchBrowserNotification:
		v.Execute = true
		return v
	case domain.OpenChannelNotification:
		v.Execute = true
		return v
	default:
		return n
	}
}
