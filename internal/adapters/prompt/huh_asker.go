package prompt

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/huh"
)

// HuhAsker asks questions with huh forms on the terminal
type HuhAsker struct{}

// NewHuhAsker creates a huh-backed asker
func NewHuhAsker() *HuhAsker {
	return &HuhAsker{}
}

// Choose shows a select list
func (a *HuhAsker) Choose(ctx context.Context, title string, choices []Choice, timeout time.Duration) (string, error) {
	var value string
	options := make([]huh.Option[string], 0, len(choices))
	for _, c := range choices {
		options = append(options, huh.NewOption(c.Label, c.Value))
	}

	err := a.run(ctx, timeout,
		huh.NewSelect[string]().
			Title(title).
			Options(options...).
			Value(&value),
	)
	return value, err
}

// Confirm shows a yes/no question
func (a *HuhAsker) Confirm(ctx context.Context, title string, timeout time.Duration) (bool, error) {
	var value bool
	err := a.run(ctx, timeout,
		huh.NewConfirm().
			Title(title).
			Value(&value).
			Affirmative("Accept").
			Negative("Decline"),
	)
	return value, err
}

// Input shows a text field
func (a *HuhAsker) Input(ctx context.Context, title string, opts InputOptions, timeout time.Duration) (string, error) {
	value := opts.Default
	input := huh.NewInput().
		Title(title).
		Value(&value).
		Validate(validateLength(opts))
	if opts.MaxLength > 0 {
		input = input.CharLimit(opts.MaxLength)
	}
	if opts.Hide {
		input = input.EchoMode(huh.EchoModePassword)
	}

	err := a.run(ctx, timeout, input)
	return value, err
}

func (a *HuhAsker) run(ctx context.Context, timeout time.Duration, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field))
	if timeout > 0 {
		form = form.WithTimeout(timeout)
	}

	err := form.RunWithContext(ctx)
	switch {
	case errors.Is(err, huh.ErrUserAborted):
		return ErrAborted
	case errors.Is(err, huh.ErrTimeout):
		return ErrTimedOut
	}
	return err
}
