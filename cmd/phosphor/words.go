package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "List the active word corpus",
	Long: `Print the words a game would draw from, after applying the --words
flag, configuration, and environment overrides. Useful for checking a
custom word file before playing it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, corpus, _, err := loadRuntime()
		if err != nil {
			return err
		}

		heading := color.New(color.FgGreen, color.Bold)
		heading.Printf("Corpus (%d words):\n", len(corpus))
		for _, w := range corpus {
			fmt.Printf("  %s\n", w)
		}
		return nil
	},
}
