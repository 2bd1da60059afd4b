package ports

import (
	"context"

	"satd/internal/domain"
)

// CallLauncher places the call requested by setup call
type CallLauncher interface {
	LaunchCall(ctx context.Context, id int, cmd domain.SetupCall) error
}

// BrowserLauncher opens the URL requested by launch browser
type BrowserLauncher interface {
	LaunchBrowser(ctx context.Context, id int, cmd domain.LaunchBrowser) error
}

// ChannelManager executes BIP channel operations
type ChannelManager interface {
	OpenChannel(ctx context.Context, id int, cmd domain.OpenChannel) error
}
