package console

import (
	"bytes"
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"satd/internal/domain"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(b *bytes.Buffer) string {
	return ansi.ReplaceAllString(b.String(), "")
}

func TestConsole_SendTerminalResponse(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out)

	tr := domain.TerminalResponse{
		Data:    domain.ItemResponse{ItemID: 3},
		Details: domain.CommandDetails{Kind: domain.KindSelectItem, Number: 2},
		Result:  domain.MEUnable(domain.MEScreenBusy),
	}

	require.NoError(t, c.SendTerminalResponse(context.Background(), tr))

	got := plain(&out)
	assert.Contains(t, got, "#2 select_item me_unable_to_process")
	assert.Contains(t, got, "me=0x01")
	assert.Contains(t, got, "data=item(3)")
}

func TestConsole_SendEnvelope(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out)
	length := uint8(12)
	status := domain.ChannelStatus{ChannelID: 1, Established: true}

	require.NoError(t, c.SendEnvelope(context.Background(), domain.EventDownloadEnvelope{
		Event:             domain.EventDataAvailable,
		ChannelStatus:     &status,
		ChannelDataLength: &length,
	}))
	require.NoError(t, c.SendMenuSelection(context.Background(), domain.MenuSelectionEnvelope{ItemID: 4, HelpRequested: true}))

	got := plain(&out)
	assert.Contains(t, got, "event_download data_available status=8100 length=12")
	assert.Contains(t, got, "menu_selection item=4 help=true")
}

func TestConsole_Emit(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out)

	n := domain.DisplayTextNotification{
		NotificationHeader: domain.NotificationHeader{CommandID: 0},
		Text:               "Hello",
		TextLength:         5,
	}
	require.NoError(t, c.Emit(context.Background(), n))

	got := plain(&out)
	assert.Contains(t, got, "#0 display_text")
	assert.Contains(t, got, `"text":"Hello"`)
}

func TestConsole_Launches(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out)
	ctx := context.Background()

	require.NoError(t, c.LaunchCall(ctx, 1, domain.SetupCall{Address: "+441234"}))
	require.NoError(t, c.LaunchBrowser(ctx, 2, domain.LaunchBrowser{URL: "http://example.com"}))
	require.NoError(t, c.OpenChannel(ctx, 3, domain.OpenChannel{DestinationAddress: "10.0.0.1"}))

	got := plain(&out)
	assert.Contains(t, got, "#1 setup_call address=+441234")
	assert.Contains(t, got, "#2 launch_browser url=http://example.com")
	assert.Contains(t, got, "#3 open_channel address=10.0.0.1")

	c.FailLaunches(domain.KindLaunchBrowser)
	assert.Error(t, c.LaunchBrowser(ctx, 4, domain.LaunchBrowser{}))
	assert.NoError(t, c.LaunchCall(ctx, 5, domain.SetupCall{}))
}
