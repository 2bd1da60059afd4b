package cmd

import (
	"context"
	"fmt"
	"os"

	"satd/internal/logging"
	"satd/internal/scenario"
	"satd/internal/theme"
)

// ReplayCmd runs a scenario with its scripted answers
type ReplayCmd struct {
	File string `arg:"" help:"Scenario yaml file" type:"existingfile"`
}

// Run executes the replay command
func (r *ReplayCmd) Run(cli *CLI) error {
	return runScenario(context.Background(), cli, r.File, nil)
}

func runScenario(ctx context.Context, cli *CLI, path string, responder scenario.Responder) error {
	doc, err := scenario.Load(path)
	if err != nil {
		return err
	}

	sc, err := scenario.Compile(doc, cli.Container.Codec)
	if err != nil {
		return err
	}

	title := sc.Name
	if title == "" {
		title = path
	}
	fmt.Println(theme.TitleStyle.Render(title))
	if doc.Description != "" {
		fmt.Println(theme.SubtitleStyle.Render(doc.Description))
	}

	logging.Logger.Info("Starting scenario",
		"file", path,
		"session_id", cli.Container.ProactiveService.SessionID(),
		"interactive", responder != nil)

	summary, err := scenario.NewRunner(cli.Container.ProactiveService, responder).Run(ctx, sc)
	if err != nil {
		fmt.Fprintln(os.Stderr, theme.ErrorStyle.Render(err.Error()))
		return fmt.Errorf("scenario %q failed after %d steps: %w", title, summary.Steps, err)
	}

	fmt.Println(theme.MutedStyle.Render(fmt.Sprintf(
		"\n%d steps, %d notifications, %d expectations met",
		summary.Steps, summary.Notifications, summary.Expectations)))
	return nil
}
