package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"satd/internal/domain"
)

var meToUICC = domain.DeviceIdentities{Source: domain.DeviceME, Destination: domain.DeviceUICC}

func TestComposeEnvelope(t *testing.T) {
	cause := domain.BrowserTerminatedByError
	length := uint8(0xFF)
	channel := domain.ChannelStatus{ChannelID: 2, Established: true}

	tests := []struct {
		name     string
		event    domain.RuntimeEvent
		expected domain.EventDownloadEnvelope
	}{
		{
			name:     "idle screen",
			event:    domain.RuntimeEvent{Type: domain.EventIdleScreenAvailable, Devices: domain.DeviceIdentities{Source: domain.DeviceDisplay, Destination: domain.DeviceUICC}},
			expected: domain.EventDownloadEnvelope{Event: domain.EventIdleScreenAvailable, IdleScreenAvailable: true, Devices: domain.DeviceIdentities{Source: domain.DeviceDisplay, Destination: domain.DeviceUICC}},
		},
		{
			name:     "user activity",
			event:    domain.RuntimeEvent{Type: domain.EventUserActivity, Devices: meToUICC},
			expected: domain.EventDownloadEnvelope{Event: domain.EventUserActivity, UserActivity: true, Devices: meToUICC},
		},
		{
			name:     "language selection",
			event:    domain.RuntimeEvent{Type: domain.EventLanguageSelection, Devices: meToUICC, Language: "fr"},
			expected: domain.EventDownloadEnvelope{Event: domain.EventLanguageSelection, Language: "fr", Devices: meToUICC},
		},
		{
			name:     "browser termination",
			event:    domain.RuntimeEvent{Type: domain.EventBrowserTermination, Devices: meToUICC, BrowserCause: cause},
			expected: domain.EventDownloadEnvelope{Event: domain.EventBrowserTermination, BrowserCause: &cause, Devices: meToUICC},
		},
		{
			name:     "data available",
			event:    domain.RuntimeEvent{Type: domain.EventDataAvailable, Devices: meToUICC, Channel: channel, DataLength: length},
			expected: domain.EventDownloadEnvelope{Event: domain.EventDataAvailable, ChannelStatus: &channel, ChannelDataLength: &length, Devices: meToUICC},
		},
		{
			name:     "channel status",
			event:    domain.RuntimeEvent{Type: domain.EventChannelStatus, Devices: meToUICC, Channel: channel},
			expected: domain.EventDownloadEnvelope{Event: domain.EventChannelStatus, ChannelStatus: &channel, Devices: meToUICC},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, ok := ComposeEnvelope(tt.event)
			require.True(t, ok)
			assert.Equal(t, tt.expected, env)
		})
	}
}

func TestComposeEnvelope_Unknown(t *testing.T) {
	for _, eventType := range []domain.EventType{domain.EventMTCall, domain.EventCardReaderStatus, domain.EventType(0x7F)} {
		env, ok := ComposeEnvelope(domain.RuntimeEvent{Type: eventType, Devices: meToUICC})
		assert.False(t, ok)
		assert.Equal(t, domain.EventDownloadEnvelope{}, env)
	}
}

func TestDownloadEvent_RequiresSubscription(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	idle := domain.RuntimeEvent{Type: domain.EventIdleScreenAvailable, Devices: meToUICC}

	sent, err := h.service.DownloadEvent(ctx, idle)
	require.NoError(t, err)
	assert.False(t, sent)

	id := h.reserve(t, domain.SetupEventList{
		CommandHeader: header(domain.KindSetupEventList),
		Events:        []domain.EventType{domain.EventIdleScreenAvailable, domain.EventChannelStatus},
	})

	// Nothing is installed until the card gets its success response
	sent, err = h.service.DownloadEvent(ctx, idle)
	require.NoError(t, err)
	assert.False(t, sent)

	_, err = h.service.HandleExecutionResult(ctx, id, domain.ExecutionResult{General: domain.ResultSuccess})
	require.NoError(t, err)
	assert.Equal(t, []domain.EventType{domain.EventIdleScreenAvailable, domain.EventChannelStatus}, h.service.SubscribedEvents())

	sent, err = h.service.DownloadEvent(ctx, idle)
	require.NoError(t, err)
	assert.True(t, sent)
	require.Len(t, h.envelopes, 1)
	assert.True(t, h.envelopes[0].IdleScreenAvailable)

	// Idle screen is reported once
	sent, err = h.service.DownloadEvent(ctx, idle)
	require.NoError(t, err)
	assert.False(t, sent)

	sent, err = h.service.DownloadEvent(ctx, domain.RuntimeEvent{Type: domain.EventChannelStatus, Devices: meToUICC})
	require.NoError(t, err)
	assert.True(t, sent)

	sent, err = h.service.DownloadEvent(ctx, domain.RuntimeEvent{Type: domain.EventChannelStatus, Devices: meToUICC})
	require.NoError(t, err)
	assert.True(t, sent)
	assert.Len(t, h.envelopes, 3)
}

func TestDownloadEvent_FailedSetupKeepsPreviousList(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	id := h.reserve(t, domain.SetupEventList{
		CommandHeader: header(domain.KindSetupEventList),
		Events:        []domain.EventType{domain.EventUserActivity},
	})
	_, err := h.service.HandleExecutionResult(ctx, id, domain.ExecutionResult{General: domain.ResultMEUnableToProcess})
	require.NoError(t, err)

	assert.Empty(t, h.service.SubscribedEvents())
}

func TestSelectMenu(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	err := h.service.SelectMenu(ctx, 1, false)
	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)

	id := h.reserve(t, domain.SetupMenu{CommandHeader: header(domain.KindSetupMenu), Alpha: text("SIM"), Items: menuItems})
	_, err = h.service.HandleExecutionResult(ctx, id, domain.ExecutionResult{General: domain.ResultSuccess})
	require.NoError(t, err)
	assert.Equal(t, menuItems, h.service.Menu())

	h.dispatcher.EXPECT().SendMenuSelection(mock.Anything, domain.MenuSelectionEnvelope{
		Devices:       domain.DeviceIdentities{Source: domain.DeviceKeypad, Destination: domain.DeviceUICC},
		HelpRequested: true,
		ItemID:        2,
	}).Return(nil)

	require.NoError(t, h.service.SelectMenu(ctx, 2, true))
	assert.ErrorIs(t, h.service.SelectMenu(ctx, 9, false), domain.ErrMenuItemNotFound)

	// An empty setup menu removes the installed one
	_, err = h.service.HandleCommand(ctx, domain.SetupMenu{CommandHeader: header(domain.KindSetupMenu)})
	require.NoError(t, err)
	assert.Empty(t, h.service.Menu())
}
