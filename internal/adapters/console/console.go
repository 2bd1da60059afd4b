package console

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"satd/internal/domain"
	"satd/internal/logging"
	"satd/internal/ports"
	"satd/internal/theme"
)

// Console prints every message leaving the session to a writer.
// The CLI uses it in place of the modem stack and the application transport.
type Console struct {
	mu  sync.Mutex
	out io.Writer

	fail map[domain.CommandKind]bool
}

var (
	_ ports.BrowserLauncher     = (*Console)(nil)
	_ ports.CallLauncher        = (*Console)(nil)
	_ ports.ChannelManager      = (*Console)(nil)
	_ ports.NotificationEmitter = (*Console)(nil)
	_ ports.ResponseDispatcher  = (*Console)(nil)
)

// NewConsole creates a console writing to out
func NewConsole(out io.Writer) *Console {
	return &Console{out: out, fail: map[domain.CommandKind]bool{}}
}

// FailLaunches makes later launches of the given kinds fail
func (c *Console) FailLaunches(kinds ...domain.CommandKind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range kinds {
		c.fail[k] = true
	}
}

// SendTerminalResponse prints a terminal response
func (c *Console) SendTerminalResponse(ctx context.Context, tr domain.TerminalResponse) error {
	general := tr.Result.General()

	var b strings.Builder
	fmt.Fprintf(&b, "%s #%d %s %s",
		theme.ResultStyle(general).Render("TR "),
		tr.Details.Number,
		tr.Details.Kind,
		theme.ResultStyle(general).Render(general.String()))
	if p := tr.Result.Problem(); p != nil {
		fmt.Fprintf(&b, " %s", field(p.Domain().String(), fmt.Sprintf("0x%02x", p.Code())))
	}
	if tr.Data != nil {
		fmt.Fprintf(&b, " %s", field("data", describeData(tr.Data)))
	}

	logging.Logger.Debug("Terminal response printed", "kind", tr.Details.Kind, "result", tr.Result.String())
	return c.println(b.String())
}

// SendEnvelope prints an event download envelope
func (c *Console) SendEnvelope(ctx context.Context, env domain.EventDownloadEnvelope) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s event_download %s", theme.EnvelopeLabelStyle.Render("ENV"), env.Event)
	switch {
	case env.Language != "":
		fmt.Fprintf(&b, " %s", field("language", env.Language))
	case env.BrowserCause != nil:
		fmt.Fprintf(&b, " %s", field("cause", fmt.Sprintf("%d", *env.BrowserCause)))
	case env.ChannelStatus != nil:
		status := env.ChannelStatus.Bytes()
		fmt.Fprintf(&b, " %s", field("status", fmt.Sprintf("%02x%02x", status[0], status[1])))
		if env.ChannelDataLength != nil {
			fmt.Fprintf(&b, " %s", field("length", fmt.Sprintf("%d", *env.ChannelDataLength)))
		}
	}
	return c.println(b.String())
}

// SendMenuSelection prints a menu selection envelope
func (c *Console) SendMenuSelection(ctx context.Context, env domain.MenuSelectionEnvelope) error {
	line := fmt.Sprintf("%s menu_selection %s", theme.EnvelopeLabelStyle.Render("ENV"), field("item", fmt.Sprintf("%d", env.ItemID)))
	if env.HelpRequested {
		line += " " + field("help", "true")
	}
	return c.println(line)
}

// Emit prints a notification as json
func (c *Console) Emit(ctx context.Context, n domain.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	return c.println(fmt.Sprintf("%s #%d %s %s",
		theme.NotificationLabelStyle.Render("NTF"),
		n.ID(),
		n.Kind(),
		theme.MutedStyle.Render(string(payload))))
}

// LaunchCall prints the call the ME would place
func (c *Console) LaunchCall(ctx context.Context, id int, cmd domain.SetupCall) error {
	return c.launch(domain.KindSetupCall, id, field("address", cmd.Address))
}

// LaunchBrowser prints the URL the ME would open
func (c *Console) LaunchBrowser(ctx context.Context, id int, cmd domain.LaunchBrowser) error {
	return c.launch(domain.KindLaunchBrowser, id, field("url", cmd.URL))
}

// OpenChannel prints the channel the ME would open
func (c *Console) OpenChannel(ctx context.Context, id int, cmd domain.OpenChannel) error {
	return c.launch(domain.KindOpenChannel, id, field("address", cmd.DestinationAddress))
}

func (c *Console) launch(kind domain.CommandKind, id int, detail string) error {
	c.mu.Lock()
	failing := c.fail[kind]
	c.mu.Unlock()

	if failing {
		return fmt.Errorf("failed to launch %s for command %d", kind, id)
	}
	return c.println(fmt.Sprintf("%s #%d %s %s", theme.LaunchLabelStyle.Render("RUN"), id, kind, detail))
}

func (c *Console) println(line string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := fmt.Fprintln(c.out, line); err != nil {
		return fmt.Errorf("failed to write to console: %w", err)
	}
	return nil
}

func field(label, value string) string {
	return theme.FieldLabelStyle.Render(label+"=") + theme.FieldValueStyle.Render(value)
}

func describeData(data domain.ResponseData) string {
	switch d := data.(type) {
	case domain.TextResponse:
		return fmt.Sprintf("text(%s,%x)", d.Text.Alphabet, d.Text.Data)
	case domain.ItemResponse:
		return fmt.Sprintf("item(%d)", d.ItemID)
	case domain.ChannelResponse:
		status := d.Status.Bytes()
		return fmt.Sprintf("channel(bearer=%d,buffer=%d,status=%02x%02x)", d.Bearer.Type, d.BufferSize, status[0], status[1])
	case domain.ChannelDataResponse:
		return fmt.Sprintf("channel_data(%x,remaining=%d)", d.Data, d.Remaining)
	case domain.ChannelLengthResponse:
		return fmt.Sprintf("channel_length(%d)", d.Available)
	case domain.ChannelStatusResponse:
		parts := make([]string, 0, len(d.Statuses))
		for _, s := range d.Statuses {
			b := s.Bytes()
			parts = append(parts, fmt.Sprintf("%02x%02x", b[0], b[1]))
		}
		return fmt.Sprintf("channel_status(%s)", strings.Join(parts, ","))
	case domain.LocalInfoResponse:
		return fmt.Sprintf("local_info(imei=%s,language=%s)", d.Info.IMEI, d.Info.Language)
	default:
		return fmt.Sprintf("%T", data)
	}
}
