package scenario

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"satd/internal/domain"
	"satd/internal/logging"
)

// Session is the proactive session a scenario drives
type Session interface {
	DownloadEvent(ctx context.Context, event domain.RuntimeEvent) (bool, error)
	EndSession(ctx context.Context)
	HandleCommand(ctx context.Context, cmd domain.ProactiveCommand) (domain.Notification, error)
	HandleConfirmation(ctx context.Context, id int, c domain.Confirmation) (*domain.TerminalResponse, error)
	HandleDisplayStatus(ctx context.Context, id int, displayed bool) (*domain.TerminalResponse, error)
	HandleExecutionResult(ctx context.Context, id int, result domain.ExecutionResult) (*domain.TerminalResponse, error)
	SelectMenu(ctx context.Context, itemID uint8, help bool) error
	SyncLanguage(ctx context.Context, id int) (*domain.TerminalResponse, error)
}

// Responder may replace a scripted confirmation, for example with a user prompt
type Responder interface {
	Respond(ctx context.Context, n domain.Notification, scripted domain.Confirmation) (domain.Confirmation, error)
}

// Summary counts what a run did
type Summary struct {
	Expectations  int
	Notifications int
	Steps         int
}

// Runner feeds scenario steps to a session from a producer goroutine.
// The session is only called from the consumer goroutine.
type Runner struct {
	responder Responder
	session   Session
}

// NewRunner creates a runner. responder may be nil.
func NewRunner(session Session, responder Responder) *Runner {
	return &Runner{responder: responder, session: session}
}

// Run executes every step in order. It stops at the first step whose
// outcome does not match its expectation.
func (r *Runner) Run(ctx context.Context, sc *Scenario) (Summary, error) {
	logging.Logger.Info("Running scenario", "name", sc.Name, "steps", len(sc.Steps))

	g, ctx := errgroup.WithContext(ctx)
	steps := make(chan Step)

	g.Go(func() error {
		defer close(steps)
		for _, step := range sc.Steps {
			select {
			case steps <- step:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	var summary Summary
	g.Go(func() error {
		run := &run{
			ids:           map[string]int{},
			notifications: map[string]domain.Notification{},
			runner:        r,
			summary:       &summary,
		}
		for step := range steps {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := run.execute(ctx, step); err != nil {
				return fmt.Errorf("step at line %d (%s): %w", step.Line, step.Kind, err)
			}
			summary.Steps++
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logging.Logger.Error("Scenario failed", "name", sc.Name, "error", err)
		return summary, err
	}

	logging.Logger.Info("Scenario completed", "name", sc.Name, "steps", summary.Steps)
	return summary, nil
}

type run struct {
	ids           map[string]int
	notifications map[string]domain.Notification
	runner        *Runner
	summary       *Summary
}

func (r *run) execute(ctx context.Context, step Step) error {
	session := r.runner.session

	var (
		tr   *domain.TerminalResponse
		sent *bool
		err  error
	)

	switch step.Kind {
	case StepCommand:
		var n domain.Notification
		n, err = session.HandleCommand(ctx, step.Command)
		if n != nil {
			r.summary.Notifications++
			if step.Label != "" {
				r.ids[step.Label] = n.ID()
				r.notifications[step.Label] = n
			}
		}
	case StepConfirm:
		confirmation := step.Confirmation
		if r.runner.responder != nil {
			if n, ok := r.notifications[step.Ref]; ok {
				confirmation, err = r.runner.responder.Respond(ctx, n, confirmation)
				if err != nil {
					return fmt.Errorf("failed to get confirmation: %w", err)
				}
			}
		}
		tr, err = session.HandleConfirmation(ctx, r.id(step.Ref), confirmation)
	case StepResult:
		tr, err = session.HandleExecutionResult(ctx, r.id(step.Ref), step.Result)
	case StepDisplay:
		tr, err = session.HandleDisplayStatus(ctx, r.id(step.Ref), step.Displayed)
	case StepLanguage:
		tr, err = session.SyncLanguage(ctx, r.id(step.Ref))
	case StepEvent:
		var ok bool
		ok, err = session.DownloadEvent(ctx, step.Event)
		sent = &ok
	case StepMenu:
		err = session.SelectMenu(ctx, step.MenuItem, step.Help)
	case StepEndSession:
		session.EndSession(ctx)
		clear(r.ids)
		clear(r.notifications)
	}

	return r.check(step, tr, sent, err)
}

// id resolves a label to the correlation id the session assigned.
// Labels whose command was rejected resolve to -1, which no entry uses.
func (r *run) id(label string) int {
	if id, ok := r.ids[label]; ok {
		return id
	}
	return -1
}

func (r *run) check(step Step, tr *domain.TerminalResponse, sent *bool, err error) error {
	want := step.Expect
	checked := false

	switch {
	case want.Error != nil:
		if !errors.Is(err, want.Error) {
			return fmt.Errorf("%w: want error %v, got %v", ErrExpectation, want.Error, err)
		}
		checked = true
	case err != nil:
		return err
	}

	if want.Result != nil {
		if tr == nil {
			return fmt.Errorf("%w: want result %s, no terminal response returned", ErrExpectation, *want.Result)
		}
		if tr.Result.General() != *want.Result {
			return fmt.Errorf("%w: want result %s, got %s", ErrExpectation, *want.Result, tr.Result.General())
		}
		checked = true
	}

	if want.Sent != nil {
		if sent == nil || *sent != *want.Sent {
			return fmt.Errorf("%w: want sent=%t", ErrExpectation, *want.Sent)
		}
		checked = true
	}

	if checked {
		r.summary.Expectations++
	}
	return nil
}
