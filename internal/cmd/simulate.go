package cmd

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"satd/internal/adapters/prompt"
	"satd/internal/logging"
	"satd/internal/scenario"
	"satd/internal/theme"
)

// SimulateCmd runs a scenario and asks the user to answer prompts
type SimulateCmd struct {
	File string `arg:"" help:"Scenario yaml file" type:"existingfile"`
}

// Run executes the simulate command
func (s *SimulateCmd) Run(cli *CLI) error {
	var responder scenario.Responder
	if term.IsTerminal(int(os.Stdin.Fd())) {
		responder = prompt.NewPresenter(prompt.NewHuhAsker())
	} else {
		logging.Logger.Warn("Stdin is not a terminal, using scripted answers")
		fmt.Println(theme.MutedStyle.Render("stdin is not a terminal, replaying scripted answers"))
	}

	return runScenario(context.Background(), cli, s.File, responder)
}
