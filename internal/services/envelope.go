package services

import (
	"context"
	"fmt"
	"slices"

	"satd/internal/domain"
	"satd/internal/logging"
)

// ComposeEnvelope builds the event download envelope for a runtime event.
// Only the field matching the event type is filled. It reports false and an
// empty envelope for event types it cannot report.
func ComposeEnvelope(event domain.RuntimeEvent) (domain.EventDownloadEnvelope, bool) {
	env := domain.EventDownloadEnvelope{
		Devices: event.Devices,
		Event:   event.Type,
	}

	switch event.Type {
	case domain.EventIdleScreenAvailable:
		env.IdleScreenAvailable = true
	case domain.EventUserActivity:
		env.UserActivity = true
	case domain.EventLanguageSelection:
		env.Language = event.Language
	case domain.EventBrowserTermination:
		cause := event.BrowserCause
		env.BrowserCause = &cause
	case domain.EventDataAvailable:
		status := event.Channel
		length := event.DataLength
		env.ChannelStatus = &status
		env.ChannelDataLength = &length
	case domain.EventChannelStatus:
		status := event.Channel
		env.ChannelStatus = &status
	default:
		logging.Logger.Warn("Cannot compose envelope",
			"event", event.Type,
			"error", domain.ErrUnknownEventType)
		return domain.EventDownloadEnvelope{}, false
	}

	return env, true
}

// ComposeMenuSelection builds the envelope reporting a main menu choice
func ComposeMenuSelection(itemID uint8, help bool) domain.MenuSelectionEnvelope {
	return domain.MenuSelectionEnvelope{
		Devices:       domain.DeviceIdentities{Source: domain.DeviceKeypad, Destination: domain.DeviceUICC},
		HelpRequested: help,
		ItemID:        itemID,
	}
}

// DownloadEvent reports a runtime event to the card if the card subscribed to it.
// It returns whether an envelope was sent.
func (s *ProactiveService) DownloadEvent(ctx context.Context, event domain.RuntimeEvent) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.events[event.Type] {
		logging.Logger.Debug("Event not subscribed, skipping", "event", event.Type)
		return false, nil
	}

	env, ok := ComposeEnvelope(event)
	if !ok {
		return false, nil
	}

	if err := s.dispatcher.SendEnvelope(ctx, env); err != nil {
		return false, fmt.Errorf("failed to send %s envelope: %w", event.Type, err)
	}

	// Idle screen and user activity are reported once per subscription
	if event.Type == domain.EventIdleScreenAvailable || event.Type == domain.EventUserActivity {
		delete(s.events, event.Type)
	}

	logging.Logger.Info("Event downloaded", "event", event.Type)
	return true, nil
}

// SelectMenu reports the user's choice in the installed main menu
func (s *ProactiveService) SelectMenu(ctx context.Context, itemID uint8, help bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := slices.ContainsFunc(s.menu, func(item domain.Item) bool { return item.ID == itemID })
	if !found {
		return fmt.Errorf("%w: %d", domain.ErrMenuItemNotFound, itemID)
	}

	if err := s.dispatcher.SendMenuSelection(ctx, ComposeMenuSelection(itemID, help)); err != nil {
		return fmt.Errorf("failed to send menu selection: %w", err)
	}

	logging.Logger.Info("Menu item selected", "item_id", itemID, "help", help)
	return nil
}

// Menu returns the main menu installed by the card
func (s *ProactiveService) Menu() []domain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.menu)
}

// SubscribedEvents returns the event list installed by the card
func (s *ProactiveService) SubscribedEvents() []domain.EventType {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := make([]domain.EventType, 0, len(s.events))
	for e := range s.events {
		events = append(events, e)
	}
	slices.Sort(events)
	return events
}

// installEvents replaces the subscribed event list
func (s *ProactiveService) installEvents(events []domain.EventType) {
	s.events = make(map[domain.EventType]bool, len(events))
	for _, e := range events {
		s.events[e] = true
	}
	logging.Logger.Info("Event list installed", "events", len(events))
}
