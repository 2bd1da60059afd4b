package cmd

import (
	"context"
	"errors"
	"fmt"

	"satd/internal/domain"
)

// LanguageCmd reads or changes the persisted language
type LanguageCmd struct {
	Get LanguageGetCmd `cmd:"get" help:"Print the persisted language locale" default:"1"`
	Set LanguageSetCmd `cmd:"set" help:"Persist a language locale"`
}

// LanguageGetCmd prints the persisted locale
type LanguageGetCmd struct{}

// Run executes the get command
func (l *LanguageGetCmd) Run(cli *CLI) error {
	locale, err := cli.Container.ProactiveService.CurrentLanguage(context.Background())
	if errors.Is(err, domain.ErrSettingNotFound) {
		if cli.settings != nil && cli.settings.DefaultLanguage != "" {
			fmt.Println(cli.settings.DefaultLanguage)
			return nil
		}
		fmt.Println("not set")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println(locale)
	return nil
}

// LanguageSetCmd persists a locale
type LanguageSetCmd struct {
	Locale string `arg:"" help:"Locale such as en_GB.UTF-8"`
}

// Run executes the set command
func (l *LanguageSetCmd) Run(cli *CLI) error {
	if err := cli.Container.ProactiveService.SetLanguage(context.Background(), l.Locale); err != nil {
		return fmt.Errorf("failed to set language: %w", err)
	}
	fmt.Printf("Language set to %s\n", l.Locale)
	return nil
}
