package ports

import (
	"context"

	"satd/internal/domain"
)

// ResponseDispatcher hands finished messages to the modem stack
type ResponseDispatcher interface {
	SendTerminalResponse(ctx context.Context, tr domain.TerminalResponse) error
	SendEnvelope(ctx context.Context, env domain.EventDownloadEnvelope) error
	SendMenuSelection(ctx context.Context, env domain.MenuSelectionEnvelope) error
}

// NotificationEmitter publishes notifications to subscribed applications
type NotificationEmitter interface {
	Emit(ctx context.Context, n domain.Notification) error
}
