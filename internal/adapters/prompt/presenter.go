package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"satd/internal/domain"
	"satd/internal/logging"
)

// Choice is one selectable answer
type Choice struct {
	Label string
	Value string
}

// InputOptions constrain a free text answer
type InputOptions struct {
	Default   string
	Hide      bool
	MaxLength int
	MinLength int
}

// Asker asks the user one question at a time
type Asker interface {
	Choose(ctx context.Context, title string, choices []Choice, timeout time.Duration) (string, error)
	Confirm(ctx context.Context, title string, timeout time.Duration) (bool, error)
	Input(ctx context.Context, title string, opts InputOptions, timeout time.Duration) (string, error)
}

var (
	// ErrAborted is returned by an Asker when the user quits the prompt
	ErrAborted = errors.New("prompt aborted")
	// ErrTimedOut is returned by an Asker when the prompt timed out
	ErrTimedOut = errors.New("prompt timed out")
)

const (
	choiceAccept     = "accept"
	choiceBack       = "back"
	choiceEndSession = "end_session"
	choiceHelp       = "help"
	choiceNo         = "no"
	choiceYes        = "yes"
	itemPrefix       = "item:"
)

// Presenter answers interactive notifications by asking the user.
// Notifications that need no user input keep their scripted confirmation.
type Presenter struct {
	asker Asker
}

// NewPresenter creates a presenter over an asker
func NewPresenter(asker Asker) *Presenter {
	return &Presenter{asker: asker}
}

// Respond asks the user how to answer n
func (p *Presenter) Respond(ctx context.Context, n domain.Notification, scripted domain.Confirmation) (domain.Confirmation, error) {
	c, err := p.ask(ctx, n, scripted)
	switch {
	case errors.Is(err, ErrAborted):
		return domain.Confirmation{Kind: domain.ConfirmEndSession}, nil
	case errors.Is(err, ErrTimedOut):
		return domain.Confirmation{Kind: domain.ConfirmTimeout}, nil
	case err != nil:
		return domain.Confirmation{}, err
	}

	logging.Logger.Debug("User answered prompt", "command_id", n.ID(), "kind", n.Kind(), "confirmation", c.Kind)
	return c, nil
}

func (p *Presenter) ask(ctx context.Context, n domain.Notification, scripted domain.Confirmation) (domain.Confirmation, error) {
	switch v := n.(type) {
	case domain.DisplayTextNotification:
		if !v.UserResponseRequired {
			return scripted, nil
		}
		choice, err := p.asker.Choose(ctx, v.Text, navigation(false, choiceAccept, "OK"), timeout(v.Duration))
		if err != nil {
			return domain.Confirmation{}, err
		}
		return fromChoice(choice)

	case domain.GetInkeyNotification:
		if v.Response == domain.InkeyYesNo {
			choices := append([]Choice{{Label: "Yes", Value: choiceYes}, {Label: "No", Value: choiceNo}},
				navigation(v.HelpAvailable, "", "")...)
			choice, err := p.asker.Choose(ctx, v.Text, choices, timeout(v.Duration))
			if err != nil {
				return domain.Confirmation{}, err
			}
			return fromChoice(choice)
		}
		text, err := p.asker.Input(ctx, v.Text, InputOptions{MaxLength: 1, MinLength: 1}, timeout(v.Duration))
		if err != nil {
			return domain.Confirmation{}, err
		}
		return domain.Confirmation{Kind: domain.ConfirmAccept, Text: text}, nil

	case domain.GetInputNotification:
		text, err := p.asker.Input(ctx, v.Text, InputOptions{
			Default:   v.DefaultText,
			Hide:      v.HideInput,
			MaxLength: v.MaxLength,
			MinLength: v.MinLength,
		}, 0)
		if err != nil {
			return domain.Confirmation{}, err
		}
		return domain.Confirmation{Kind: domain.ConfirmAccept, Text: text}, nil

	case domain.SelectItemNotification:
		choices := make([]Choice, 0, len(v.Items)+3)
		for _, item := range v.Items {
			choices = append(choices, Choice{Label: item.Text, Value: itemPrefix + strconv.Itoa(int(item.ID))})
		}
		choices = append(choices, navigation(v.HelpAvailable, "", "")...)
		choice, err := p.asker.Choose(ctx, v.Title, choices, 0)
		if err != nil {
			return domain.Confirmation{}, err
		}
		return fromChoice(choice)

	case domain.SetupCallNotification:
		return p.confirm(ctx, fmt.Sprintf("%s (call %s)", v.ConfirmText, v.Address))
	case domain.LaunchBrowserNotification:
		return p.confirm(ctx, fmt.Sprintf("%s (open %s)", v.Text, v.URL))
	case domain.OpenChannelNotification:
		return p.confirm(ctx, fmt.Sprintf("%s (open channel to %s)", v.Text, v.DestinationAddress))
	case domain.SendDTMFNotification:
		return p.confirm(ctx, fmt.Sprintf("%s (send DTMF %s)", v.Text, v.DTMF))

	default:
		return scripted, nil
	}
}

func (p *Presenter) confirm(ctx context.Context, title string) (domain.Confirmation, error) {
	ok, err := p.asker.Confirm(ctx, strings.TrimSpace(title), 0)
	if err != nil {
		return domain.Confirmation{}, err
	}
	if ok {
		return domain.Confirmation{Kind: domain.ConfirmAccept}, nil
	}
	return domain.Confirmation{Kind: domain.ConfirmDecline}, nil
}

// navigation returns the choices every menu-like prompt offers
func navigation(help bool, acceptValue, acceptLabel string) []Choice {
	var choices []Choice
	if acceptValue != "" {
		choices = append(choices, Choice{Label: acceptLabel, Value: acceptValue})
	}
	if help {
		choices = append(choices, Choice{Label: "Help", Value: choiceHelp})
	}
	return append(choices,
		Choice{Label: "Back", Value: choiceBack},
		Choice{Label: "End session", Value: choiceEndSession})
}

func fromChoice(choice string) (domain.Confirmation, error) {
	switch choice {
	case choiceAccept:
		return domain.Confirmation{Kind: domain.ConfirmAccept}, nil
	case choiceYes:
		return domain.Confirmation{Kind: domain.ConfirmAccept, Affirmative: true}, nil
	case choiceNo:
		return domain.Confirmation{Kind: domain.ConfirmAccept, Affirmative: false}, nil
	case choiceBack:
		return domain.Confirmation{Kind: domain.ConfirmDecline}, nil
	case choiceHelp:
		return domain.Confirmation{Kind: domain.ConfirmHelp}, nil
	case choiceEndSession:
		return domain.Confirmation{Kind: domain.ConfirmEndSession}, nil
	}

	if id, ok := strings.CutPrefix(choice, itemPrefix); ok {
		n, err := strconv.ParseUint(id, 10, 8)
		if err != nil {
			return domain.Confirmation{}, fmt.Errorf("invalid item choice %q: %w", choice, err)
		}
		return domain.Confirmation{Kind: domain.ConfirmAccept, ItemID: uint8(n)}, nil
	}

	return domain.Confirmation{}, fmt.Errorf("unknown choice %q", choice)
}

func timeout(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// validateLength checks an answer against the length bounds in characters
func validateLength(opts InputOptions) func(string) error {
	return func(s string) error {
		n := utf8.RuneCountInString(s)
		if opts.MinLength > 0 && n < opts.MinLength {
			return fmt.Errorf("at least %d characters required", opts.MinLength)
		}
		if opts.MaxLength > 0 && n > opts.MaxLength {
			return fmt.Errorf("at most %d characters allowed", opts.MaxLength)
		}
		return nil
	}
}
