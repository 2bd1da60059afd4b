package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"satd/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
	Show SettingsShowCmd `cmd:"show" help:"Show the effective settings"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		fmt.Fprintf(w, "%s\t%v\n", key, example[key])
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Create or edit this file to configure satd.")
	fmt.Println("All settings are optional and have sensible defaults.")

	return nil
}

// SettingsShowCmd prints the settings in effect for this run
type SettingsShowCmd struct{}

// EffectiveSettings is the resolved configuration after flags, env and settings.json
type EffectiveSettings struct {
	DBPath          string `json:"db_path"`
	Debug           bool   `json:"debug"`
	DefaultLanguage string `json:"default_language,omitempty"`
	MaxLogFiles     int    `json:"max_log_files"`
	QueueCapacity   int    `json:"queue_capacity"`
	SatdHome        string `json:"satd_home"`
}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	data, err := json.MarshalIndent(cli.Effective(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// Effective returns the resolved settings
func (c *CLI) Effective() EffectiveSettings {
	eff := EffectiveSettings{
		DBPath:        c.DBPath,
		Debug:         c.Debug,
		MaxLogFiles:   c.MaxLogFiles,
		QueueCapacity: c.QueueCapacity,
		SatdHome:      config.GetSatdHome(),
	}
	if c.settings != nil {
		eff.DefaultLanguage = c.settings.DefaultLanguage
	}
	return eff
}
