package prompt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"satd/internal/domain"
)

type fakeAsker struct {
	choice  string
	confirm bool
	err     error
	input   string

	choices []Choice
	opts    InputOptions
	timeout time.Duration
}

func (f *fakeAsker) Choose(_ context.Context, _ string, choices []Choice, timeout time.Duration) (string, error) {
	f.choices = choices
	f.timeout = timeout
	return f.choice, f.err
}

func (f *fakeAsker) Confirm(_ context.Context, _ string, timeout time.Duration) (bool, error) {
	f.timeout = timeout
	return f.confirm, f.err
}

func (f *fakeAsker) Input(_ context.Context, _ string, opts InputOptions, timeout time.Duration) (string, error) {
	f.opts = opts
	f.timeout = timeout
	return f.input, f.err
}

func values(choices []Choice) []string {
	out := make([]string, 0, len(choices))
	for _, c := range choices {
		out = append(out, c.Value)
	}
	return out
}

func TestPresenter_DisplayText(t *testing.T) {
	asker := &fakeAsker{choice: choiceAccept}
	p := NewPresenter(asker)

	got, err := p.Respond(context.Background(), domain.DisplayTextNotification{
		Duration:             15000,
		Text:                 "Hello",
		UserResponseRequired: true,
	}, domain.Confirmation{Kind: domain.ConfirmTimeout})

	require.NoError(t, err)
	assert.Equal(t, domain.ConfirmAccept, got.Kind)
	assert.Equal(t, 15*time.Second, asker.timeout)
	assert.Equal(t, []string{choiceAccept, choiceBack, choiceEndSession}, values(asker.choices))
}

func TestPresenter_DisplayTextWithoutUserResponse(t *testing.T) {
	p := NewPresenter(&fakeAsker{err: errors.New("must not be asked")})
	scripted := domain.Confirmation{Kind: domain.ConfirmTimeout}

	got, err := p.Respond(context.Background(), domain.DisplayTextNotification{Text: "Hi"}, scripted)

	require.NoError(t, err)
	assert.Equal(t, scripted, got)
}

func TestPresenter_GetInkeyYesNo(t *testing.T) {
	asker := &fakeAsker{choice: choiceYes}
	p := NewPresenter(asker)

	got, err := p.Respond(context.Background(), domain.GetInkeyNotification{
		HelpAvailable: true,
		Response:      domain.InkeyYesNo,
	}, domain.Confirmation{})

	require.NoError(t, err)
	assert.Equal(t, domain.Confirmation{Kind: domain.ConfirmAccept, Affirmative: true}, got)
	assert.Equal(t, []string{choiceYes, choiceNo, choiceHelp, choiceBack, choiceEndSession}, values(asker.choices))
}

func TestPresenter_GetInput(t *testing.T) {
	asker := &fakeAsker{input: "1234"}
	p := NewPresenter(asker)

	got, err := p.Respond(context.Background(), domain.GetInputNotification{
		DefaultText: "00",
		HideInput:   true,
		MaxLength:   8,
		MinLength:   4,
	}, domain.Confirmation{})

	require.NoError(t, err)
	assert.Equal(t, domain.Confirmation{Kind: domain.ConfirmAccept, Text: "1234"}, got)
	assert.Equal(t, InputOptions{Default: "00", Hide: true, MaxLength: 8, MinLength: 4}, asker.opts)
}

func TestPresenter_SelectItem(t *testing.T) {
	asker := &fakeAsker{choice: "item:7"}
	p := NewPresenter(asker)

	got, err := p.Respond(context.Background(), domain.SelectItemNotification{
		Items: []domain.MenuItem{{ID: 3, Text: "News"}, {ID: 7, Text: "Weather"}},
	}, domain.Confirmation{})

	require.NoError(t, err)
	assert.Equal(t, domain.Confirmation{Kind: domain.ConfirmAccept, ItemID: 7}, got)
	assert.Equal(t, []string{"item:3", "item:7", choiceBack, choiceEndSession}, values(asker.choices))
}

func TestPresenter_Confirmations(t *testing.T) {
	tests := []struct {
		name    string
		n       domain.Notification
		confirm bool
		want    domain.ConfirmationKind
	}{
		{"setup call accepted", domain.SetupCallNotification{Address: "+44"}, true, domain.ConfirmAccept},
		{"browser declined", domain.LaunchBrowserNotification{URL: "http://x"}, false, domain.ConfirmDecline},
		{"channel accepted", domain.OpenChannelNotification{}, true, domain.ConfirmAccept},
		{"dtmf declined", domain.SendDTMFNotification{DTMF: "12"}, false, domain.ConfirmDecline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPresenter(&fakeAsker{confirm: tt.confirm})

			got, err := p.Respond(context.Background(), tt.n, domain.Confirmation{})

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Kind)
		})
	}
}

func TestPresenter_AbortAndTimeout(t *testing.T) {
	n := domain.SelectItemNotification{Items: []domain.MenuItem{{ID: 1, Text: "A"}}}

	got, err := NewPresenter(&fakeAsker{err: ErrAborted}).Respond(context.Background(), n, domain.Confirmation{})
	require.NoError(t, err)
	assert.Equal(t, domain.ConfirmEndSession, got.Kind)

	got, err = NewPresenter(&fakeAsker{err: ErrTimedOut}).Respond(context.Background(), n, domain.Confirmation{})
	require.NoError(t, err)
	assert.Equal(t, domain.ConfirmTimeout, got.Kind)

	_, err = NewPresenter(&fakeAsker{err: errors.New("tty gone")}).Respond(context.Background(), n, domain.Confirmation{})
	assert.Error(t, err)
}

func TestPresenter_NonInteractiveKeepsScript(t *testing.T) {
	p := NewPresenter(&fakeAsker{err: errors.New("must not be asked")})
	scripted := domain.Confirmation{Kind: domain.ConfirmAccept}

	got, err := p.Respond(context.Background(), domain.PlayToneNotification{}, scripted)

	require.NoError(t, err)
	assert.Equal(t, scripted, got)
}

func TestValidateLength(t *testing.T) {
	validate := validateLength(InputOptions{MinLength: 2, MaxLength: 3})

	assert.Error(t, validate("a"))
	assert.NoError(t, validate("ab"))
	assert.NoError(t, validate("äöü"))
	assert.Error(t, validate("abcd"))
}
