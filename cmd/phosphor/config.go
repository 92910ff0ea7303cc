package main

import (
	"fmt"
	"os"

	"github.com/ShayCichocki/phosphor/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Display the configuration Phosphor would play with, after merging
defaults, the user config, any project config, and environment variables.

Configuration is stored at ~/.config/phosphor/config.yaml
Project-specific overrides can be placed in .phosphor.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		displayAllConfig(cfg)
	},
}

// displayAllConfig prints all configuration values.
func displayAllConfig(cfg *config.Config) {
	wordsDisplay := cfg.Words.File
	if wordsDisplay == "" {
		wordsDisplay = "(built-in)"
	}
	stagesDisplay := cfg.Stages.File
	if stagesDisplay == "" {
		stagesDisplay = "(built-in)"
	}

	fmt.Printf("display.width: %d\n", cfg.Display.Width)
	fmt.Printf("display.height: %d\n", cfg.Display.Height)
	fmt.Printf("display.scan_delay: %s\n", cfg.Display.ScanDelay)
	fmt.Printf("display.message_pause: %s\n", cfg.Display.MessagePause)
	fmt.Printf("display.error_pause: %s\n", cfg.Display.ErrorPause)
	fmt.Printf("display.boot_pause: %s\n", cfg.Display.BootPause)
	fmt.Printf("display.color: %t\n", cfg.Display.Color)
	fmt.Printf("words.file: %s\n", wordsDisplay)
	fmt.Printf("stages.file: %s\n", stagesDisplay)

	if project := config.GetProjectConfigPath(); project != "" {
		fmt.Printf("\nProject config: %s\n", project)
	}
	fmt.Printf("User config: %s\n", config.GetUserConfigPath())
}
