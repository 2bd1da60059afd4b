package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"satd/internal/adapters/codec"
	"satd/internal/adapters/memory"
	"satd/internal/domain"
	portsmocks "satd/internal/ports/mocks"
)

type harness struct {
	browser    *portsmocks.MockBrowserLauncher
	calls      *portsmocks.MockCallLauncher
	channels   *portsmocks.MockChannelManager
	dispatcher *portsmocks.MockResponseDispatcher
	emitter    *portsmocks.MockNotificationEmitter
	queue      *memory.CommandQueue
	service    *ProactiveService
	settings   *portsmocks.MockSettingsStore

	emitted   []domain.Notification
	envelopes []domain.EventDownloadEnvelope
	responses []domain.TerminalResponse
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		browser:    portsmocks.NewMockBrowserLauncher(t),
		calls:      portsmocks.NewMockCallLauncher(t),
		channels:   portsmocks.NewMockChannelManager(t),
		dispatcher: portsmocks.NewMockResponseDispatcher(t),
		emitter:    portsmocks.NewMockNotificationEmitter(t),
		queue:      memory.NewCommandQueue(memory.DefaultCapacity),
		settings:   portsmocks.NewMockSettingsStore(t),
	}

	h.dispatcher.EXPECT().SendTerminalResponse(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, tr domain.TerminalResponse) error {
			h.responses = append(h.responses, tr)
			return nil
		}).Maybe()
	h.dispatcher.EXPECT().SendEnvelope(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, env domain.EventDownloadEnvelope) error {
			h.envelopes = append(h.envelopes, env)
			return nil
		}).Maybe()
	h.emitter.EXPECT().Emit(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, n domain.Notification) error {
			h.emitted = append(h.emitted, n)
			return nil
		}).Maybe()

	h.service = NewProactiveService(ProactiveServiceDeps{
		Browser:    h.browser,
		Calls:      h.calls,
		Channels:   h.channels,
		Codec:      codec.NewGSMCodec(),
		Dispatcher: h.dispatcher,
		Emitter:    h.emitter,
		Queue:      h.queue,
		Settings:   h.settings,
	})
	return h
}

// lastResponse returns the most recent terminal response sent to the card
func (h *harness) lastResponse(t *testing.T) domain.TerminalResponse {
	t.Helper()
	require.NotEmpty(t, h.responses, "no terminal response was sent")
	return h.responses[len(h.responses)-1]
}

func header(kind domain.CommandKind) domain.CommandHeader {
	return domain.CommandHeader{
		Details: domain.CommandDetails{Number: 1, Kind: kind},
		Devices: domain.DeviceIdentities{Source: domain.DeviceUICC, Destination: domain.DeviceDisplay},
	}
}

func channelHeader(kind domain.CommandKind) domain.CommandHeader {
	h := header(kind)
	h.Devices.Destination = domain.DeviceChannel1
	return h
}

func text(s string) domain.TextString {
	return domain.TextString{Alphabet: domain.Alphabet8BitData, Data: []byte(s)}
}

var (
	bareIcon   = domain.IconID{Present: true, Identifier: 1, Coding: domain.IconCodingBasic}
	colourIcon = domain.IconID{Present: true, SelfExplanatory: true, Identifier: 2, Coding: domain.IconCodingColour}
	menuItems  = []domain.Item{{ID: 1, Text: text("News")}, {ID: 2, Text: text("Games")}}
)

// validCommands holds one command of every kind that passes the encoder checks
func validCommands() []domain.ProactiveCommand {
	return []domain.ProactiveCommand{
		domain.Refresh{CommandHeader: header(domain.KindRefresh), Mode: domain.RefreshFileChange, Files: []string{"3F007F206F07"}},
		domain.MoreTime{CommandHeader: header(domain.KindMoreTime)},
		domain.SetupEventList{CommandHeader: header(domain.KindSetupEventList), Events: []domain.EventType{domain.EventIdleScreenAvailable}},
		domain.SetupCall{CommandHeader: header(domain.KindSetupCall), Address: "+441234567", ConfirmAlpha: text("Call?")},
		domain.SendSS{CommandHeader: header(domain.KindSendSS), SSString: "**21*0123#"},
		domain.SendUSSD{CommandHeader: header(domain.KindSendUSSD), USSD: text("*100#")},
		domain.SendSMS{CommandHeader: header(domain.KindSendSMS), Alpha: text("Sending"), TPDU: []byte{0x01, 0x00}},
		domain.SendDTMF{CommandHeader: header(domain.KindSendDTMF), DTMF: "1234"},
		domain.LaunchBrowser{CommandHeader: header(domain.KindLaunchBrowser), URL: "http://example.com", Alpha: text("Open?")},
		domain.PlayTone{CommandHeader: header(domain.KindPlayTone), Tone: 0x10},
		domain.DisplayText{CommandHeader: header(domain.KindDisplayText), Text: text("Hello")},
		domain.GetInkey{CommandHeader: header(domain.KindGetInkey), Text: text("Press a key")},
		domain.GetInput{CommandHeader: header(domain.KindGetInput), Text: text("PIN"), MinLength: 4, MaxLength: 8, DigitsOnly: true},
		domain.SelectItem{CommandHeader: header(domain.KindSelectItem), Alpha: text("Pick"), Items: menuItems},
		domain.SetupMenu{CommandHeader: header(domain.KindSetupMenu), Alpha: text("SIM"), Items: menuItems},
		domain.ProvideLocalInfo{CommandHeader: header(domain.KindProvideLocalInfo), Info: domain.LocalInfoIMEI},
		domain.SetupIdleModeText{CommandHeader: header(domain.KindSetupIdleModeText), Text: text("Operator")},
		domain.LanguageNotification{CommandHeader: header(domain.KindLanguageNotification), Language: domain.LanguageFrench, Specific: true},
		domain.OpenChannel{CommandHeader: header(domain.KindOpenChannel), BufferSize: 1400, Bearer: domain.BearerDescription{Type: 0x03}},
		domain.CloseChannel{CommandHeader: channelHeader(domain.KindCloseChannel)},
		domain.ReceiveData{CommandHeader: channelHeader(domain.KindReceiveData), Length: 200},
		domain.SendData{CommandHeader: channelHeader(domain.KindSendData), Data: []byte{0xCA, 0xFE}, Immediate: true},
		domain.GetChannelStatus{CommandHeader: header(domain.KindGetChannelStatus)},
	}
}

func TestHandleCommand_ReservesEveryKind(t *testing.T) {
	for _, cmd := range validCommands() {
		t.Run(cmd.Kind().String(), func(t *testing.T) {
			h := newHarness(t)

			n, err := h.service.HandleCommand(context.Background(), cmd)
			require.NoError(t, err)
			require.NotNil(t, n)

			assert.Equal(t, cmd.Kind(), n.Kind())
			entry, err := h.queue.Peek(n.ID())
			require.NoError(t, err)
			assert.Equal(t, cmd.Kind(), entry.Kind)
			assert.Equal(t, cmd, entry.Command)

			assert.Len(t, h.emitted, 1)
			assert.Empty(t, h.responses)
		})
	}
}

func TestHandleCommand_IconWithoutText(t *testing.T) {
	commands := []domain.ProactiveCommand{
		domain.DisplayText{CommandHeader: header(domain.KindDisplayText), Icon: bareIcon},
		domain.GetInkey{CommandHeader: header(domain.KindGetInkey), Icon: bareIcon},
		domain.GetInput{CommandHeader: header(domain.KindGetInput), Icon: bareIcon},
		domain.SelectItem{CommandHeader: header(domain.KindSelectItem), Icon: bareIcon, Items: menuItems},
		domain.SetupMenu{CommandHeader: header(domain.KindSetupMenu), Icon: bareIcon, Items: menuItems},
		domain.SetupCall{CommandHeader: header(domain.KindSetupCall), ConfirmIcon: bareIcon},
		domain.SetupCall{CommandHeader: header(domain.KindSetupCall), ConfirmAlpha: text("Call?"), SetupIcon: bareIcon},
		domain.SetupIdleModeText{CommandHeader: header(domain.KindSetupIdleModeText), Icon: bareIcon},
		domain.PlayTone{CommandHeader: header(domain.KindPlayTone), Icon: bareIcon},
		domain.SendSMS{CommandHeader: header(domain.KindSendSMS), Icon: bareIcon},
		domain.SendSS{CommandHeader: header(domain.KindSendSS), Icon: bareIcon},
		domain.SendUSSD{CommandHeader: header(domain.KindSendUSSD), Icon: bareIcon},
		domain.SendDTMF{CommandHeader: header(domain.KindSendDTMF), Icon: bareIcon},
		domain.LaunchBrowser{CommandHeader: header(domain.KindLaunchBrowser), Icon: bareIcon},
		domain.OpenChannel{CommandHeader: header(domain.KindOpenChannel), Icon: bareIcon},
		domain.CloseChannel{CommandHeader: channelHeader(domain.KindCloseChannel), Icon: bareIcon},
		domain.ReceiveData{CommandHeader: channelHeader(domain.KindReceiveData), Icon: bareIcon},
		domain.SendData{CommandHeader: channelHeader(domain.KindSendData), Icon: bareIcon},
		domain.Refresh{CommandHeader: header(domain.KindRefresh), Icon: bareIcon},
		domain.SelectItem{
			CommandHeader: header(domain.KindSelectItem),
			Alpha:         text("Pick"),
			ItemIcons:     []domain.IconID{bareIcon},
			Items:         []domain.Item{{ID: 1}},
		},
	}

	for _, cmd := range commands {
		t.Run(cmd.Kind().String(), func(t *testing.T) {
			h := newHarness(t)

			n, err := h.service.HandleCommand(context.Background(), cmd)
			require.NoError(t, err)
			assert.Nil(t, n)

			require.Len(t, h.responses, 1)
			tr := h.responses[0]
			assert.Equal(t, domain.ResultCommandDataNotUnderstood, tr.Result.General())
			assert.Equal(t, cmd.Header().Devices.Swap(), tr.Devices)
			assert.Equal(t, domain.DeviceUICC, tr.Devices.Destination)
			assert.Equal(t, cmd.Header().Details, tr.Details)

			assert.Empty(t, h.emitted)
			assert.Equal(t, 0, h.queue.Len())
		})
	}
}

func TestHandleCommand_SelfExplanatoryIconNeedsNoText(t *testing.T) {
	h := newHarness(t)
	icon := domain.IconID{Present: true, SelfExplanatory: true, Identifier: 3, Coding: domain.IconCodingBasic}

	n, err := h.service.HandleCommand(context.Background(), domain.DisplayText{
		CommandHeader: header(domain.KindDisplayText),
		Icon:          icon,
	})

	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, icon, n.(domain.DisplayTextNotification).Icon)
}

func TestHandleCommand_DisplayTextWaitForClear(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	n, err := h.service.HandleCommand(ctx, domain.DisplayText{
		CommandHeader:    header(domain.KindDisplayText),
		Text:             text("Hello"),
		WaitForUserClear: true,
	})
	require.NoError(t, err)

	notification, ok := n.(domain.DisplayTextNotification)
	require.True(t, ok)
	assert.True(t, notification.UserResponseRequired)
	assert.Equal(t, 30000, notification.Duration)
	assert.Equal(t, "Hello", notification.Text)
	assert.Equal(t, 5, notification.TextLength)

	tr, err := h.service.HandleConfirmation(ctx, n.ID(), domain.Confirmation{Kind: domain.ConfirmTimeout})
	require.NoError(t, err)
	require.NotNil(t, tr)
	assert.Equal(t, domain.ResultSuccess, tr.Result.General())
	assert.Equal(t, 0, h.queue.Len())
}

func TestHandleCommand_DisplayTextDurations(t *testing.T) {
	tests := []struct {
		name     string
		cmd      domain.DisplayText
		expected int
	}{
		{
			name:     "clear after delay",
			cmd:      domain.DisplayText{Text: text("Hi")},
			expected: 15000,
		},
		{
			name:     "explicit duration",
			cmd:      domain.DisplayText{Text: text("Hi"), WaitForUserClear: true, Duration: &domain.Duration{Unit: domain.UnitSeconds, Interval: 5}},
			expected: 5000,
		},
		{
			name:     "tenths of seconds",
			cmd:      domain.DisplayText{Text: text("Hi"), Duration: &domain.Duration{Unit: domain.UnitTenths, Interval: 25}},
			expected: 2500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			tt.cmd.CommandHeader = header(domain.KindDisplayText)

			n, err := h.service.HandleCommand(context.Background(), tt.cmd)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n.(domain.DisplayTextNotification).Duration)
		})
	}
}

func TestHandleCommand_DisplayTextImmediateResponse(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	n, err := h.service.HandleCommand(ctx, domain.DisplayText{
		CommandHeader:     header(domain.KindDisplayText),
		ImmediateResponse: true,
		Text:              text("Welcome"),
	})
	require.NoError(t, err)
	require.NotNil(t, n)

	require.Len(t, h.responses, 1)
	assert.Equal(t, domain.ResultSuccess, h.responses[0].Result.General())

	entry, err := h.queue.Peek(n.ID())
	require.NoError(t, err)
	assert.True(t, entry.Responded)

	tr, err := h.service.HandleConfirmation(ctx, n.ID(), domain.Confirmation{Kind: domain.ConfirmAccept})
	require.NoError(t, err)
	assert.Nil(t, tr)
	assert.Len(t, h.responses, 1)
	assert.Equal(t, 0, h.queue.Len())
}

func TestHandleCommand_SetupMenuRemoval(t *testing.T) {
	tests := []struct {
		name  string
		items []domain.Item
	}{
		{name: "zero items"},
		{name: "one empty item", items: []domain.Item{{ID: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			n, err := h.service.HandleCommand(context.Background(), domain.SetupMenu{
				CommandHeader: header(domain.KindSetupMenu),
				Items:         tt.items,
			})

			require.NoError(t, err)
			assert.Nil(t, n)
			assert.Empty(t, h.emitted)
			require.Len(t, h.responses, 1)
			assert.Equal(t, domain.ResultSuccess, h.responses[0].Result.General())
			assert.Equal(t, 0, h.queue.Len())
		})
	}
}

func TestHandleCommand_SetupCallUnsupportedFeatures(t *testing.T) {
	tests := []struct {
		name     string
		cmd      domain.SetupCall
		rejected bool
	}{
		{
			name:     "redial duration",
			cmd:      domain.SetupCall{Redial: &domain.Duration{Unit: domain.UnitSeconds, Interval: 30}},
			rejected: true,
		},
		{
			name:     "sub-address",
			cmd:      domain.SetupCall{SubAddress: []byte{0x80, 0x50}},
			rejected: true,
		},
		{
			name: "zero redial duration",
			cmd:  domain.SetupCall{Redial: &domain.Duration{Unit: domain.UnitSeconds}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			tt.cmd.CommandHeader = header(domain.KindSetupCall)
			tt.cmd.Address = "+441234567"

			n, err := h.service.HandleCommand(context.Background(), tt.cmd)
			require.NoError(t, err)

			if !tt.rejected {
				assert.NotNil(t, n)
				assert.Empty(t, h.responses)
				return
			}

			assert.Nil(t, n)
			require.Len(t, h.responses, 1)
			assert.Equal(t, domain.ResultBeyondMECapabilities, h.responses[0].Result.General())
			assert.Equal(t, 0, h.queue.Len())
		})
	}
}

func TestHandleCommand_QueueFull(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	for i := 0; i < memory.DefaultCapacity; i++ {
		_, err := h.service.HandleCommand(ctx, domain.MoreTime{CommandHeader: header(domain.KindMoreTime)})
		require.NoError(t, err)
	}

	n, err := h.service.HandleCommand(ctx, domain.MoreTime{CommandHeader: header(domain.KindMoreTime)})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrQueueFull)
	assert.Nil(t, n)
	assert.Empty(t, h.responses)
	assert.Len(t, h.emitted, memory.DefaultCapacity)
}

func TestHandleCommand_Unsupported(t *testing.T) {
	h := newHarness(t)

	_, err := h.service.HandleCommand(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrUnsupportedCommand)

	_, err = h.service.HandleCommand(context.Background(), &domain.MoreTime{CommandHeader: header(domain.KindMoreTime)})
	assert.ErrorIs(t, err, domain.ErrUnsupportedCommand)
	assert.Empty(t, h.responses)
}

func TestHandleCommand_DecodeFailure(t *testing.T) {
	dispatcher := portsmocks.NewMockResponseDispatcher(t)
	textCodec := portsmocks.NewMockTextCodec(t)
	queue := memory.NewCommandQueue(0)

	textCodec.EXPECT().Decode(domain.AlphabetUCS2, []byte{0xD8}).Return("", errors.New("odd length"))
	dispatcher.EXPECT().SendTerminalResponse(mock.Anything, mock.MatchedBy(func(tr domain.TerminalResponse) bool {
		return tr.Result.General() == domain.ResultCommandDataNotUnderstood
	})).Return(nil)

	service := NewProactiveService(ProactiveServiceDeps{
		Codec:      textCodec,
		Dispatcher: dispatcher,
		Queue:      queue,
	})

	n, err := service.HandleCommand(context.Background(), domain.DisplayText{
		CommandHeader: header(domain.KindDisplayText),
		Text:          domain.TextString{Alphabet: domain.AlphabetUCS2, Data: []byte{0xD8}},
	})

	require.NoError(t, err)
	assert.Nil(t, n)
	assert.Equal(t, 0, queue.Len())
}

func TestHandleCommand_EmitFailure(t *testing.T) {
	dispatcher := portsmocks.NewMockResponseDispatcher(t)
	emitter := portsmocks.NewMockNotificationEmitter(t)
	queue := memory.NewCommandQueue(0)

	emitter.EXPECT().Emit(mock.Anything, mock.Anything).Return(errors.New("no subscriber"))
	dispatcher.EXPECT().SendTerminalResponse(mock.Anything, mock.MatchedBy(func(tr domain.TerminalResponse) bool {
		return tr.Result.General() == domain.ResultMEUnableToProcess &&
			tr.Result.Problem() == domain.MENoSpecificCause
	})).Return(nil)

	service := NewProactiveService(ProactiveServiceDeps{
		Codec:      codec.NewGSMCodec(),
		Dispatcher: dispatcher,
		Emitter:    emitter,
		Queue:      queue,
	})

	n, err := service.HandleCommand(context.Background(), domain.PlayTone{CommandHeader: header(domain.KindPlayTone)})

	require.Error(t, err)
	assert.Nil(t, n)
	assert.Equal(t, 0, queue.Len())
}

func TestEndSession_ClearsOutstandingCommands(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	before := h.service.SessionID()

	var ids []int
	for _, cmd := range validCommands()[:3] {
		n, err := h.service.HandleCommand(ctx, cmd)
		require.NoError(t, err)
		ids = append(ids, n.ID())
	}

	h.service.EndSession(ctx)

	for _, id := range ids {
		_, err := h.queue.Peek(id)
		assert.ErrorIs(t, err, domain.ErrCommandNotFound)

		_, err = h.service.HandleExecutionResult(ctx, id, domain.ExecutionResult{General: domain.ResultSuccess})
		assert.ErrorIs(t, err, domain.ErrCommandNotFound)
	}
	assert.Empty(t, h.responses)
	assert.NotEqual(t, before, h.service.SessionID())
}
