package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/phosphor/internal/config"
	"github.com/ShayCichocki/phosphor/internal/crt"
	"github.com/ShayCichocki/phosphor/internal/session"
	"github.com/ShayCichocki/phosphor/internal/words"
)

var (
	rootWordsFile  string
	rootStagesFile string
	rootNoColor    bool
	rootInstant    bool
	rootDebugLog   string
)

var rootCmd = &cobra.Command{
	Use:   "phosphor",
	Short: "CRT-styled terminal hangman",
	Long: `Phosphor is a single-player hangman game drawn inside a bordered
80x24 frame, revealed line by line like a cathode-ray scan sweep.

With no arguments, boots straight into a game using the built-in word
list. Custom word lists and gallows art can be supplied as YAML files
via flags, configuration, or environment variables.

Examples:
  phosphor                        # Play with the built-in words
  phosphor --words mywords.yaml   # Play with a custom word list
  phosphor --instant              # Skip every pacing delay
  phosphor --no-color             # Plain frames, no styling`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGame()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runGame assembles the game from configuration and plays it on the
// process's stdin/stdout.
func runGame() error {
	cfg, corpus, stages, err := loadRuntime()
	if err != nil {
		return err
	}

	selector, err := words.NewSelector(corpus)
	if err != nil {
		return fmt.Errorf("building word selector: %w", err)
	}

	composer, err := crt.NewComposer(cfg.Display.Width, cfg.Display.Height, stages)
	if err != nil {
		return fmt.Errorf("building frame composer: %w", err)
	}

	styles := crt.CRTStyles()
	if !cfg.Display.Color {
		styles = crt.PlainStyles()
	}
	renderer := crt.NewRenderer(os.Stdout, styles, cfg.Display.ScanDelay)

	logger, closeLog, err := newDebugLogger(rootDebugLog)
	if err != nil {
		return err
	}
	defer closeLog()

	loop, err := session.New(session.Options{
		Config:   cfg,
		Selector: selector,
		Composer: composer,
		Renderer: renderer,
		In:       os.Stdin,
		Out:      os.Stdout,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("building game loop: %w", err)
	}

	return loop.Run()
}

// loadRuntime resolves configuration, the word corpus, and the stage table
// from config files, environment, and flags (flags win).
func loadRuntime() (*config.Config, words.Corpus, *crt.StageTable, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if rootWordsFile != "" {
		cfg.Words.File = rootWordsFile
	}
	if rootStagesFile != "" {
		cfg.Stages.File = rootStagesFile
	}
	if rootNoColor {
		cfg.Display.Color = false
	}
	if rootInstant {
		cfg.ZeroDelays()
	}

	corpus := words.Default()
	if cfg.Words.File != "" {
		corpus, err = words.LoadFile(cfg.Words.File)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	stages := crt.DefaultStages()
	if cfg.Stages.File != "" {
		stages, err = crt.LoadStagesFile(cfg.Stages.File)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	return cfg, corpus, stages, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootWordsFile, "words", "", "YAML word-list file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&rootStagesFile, "stages", "", "YAML gallows stage file (overrides config)")
	rootCmd.Flags().BoolVar(&rootNoColor, "no-color", false, "Disable phosphor styling")
	rootCmd.Flags().BoolVar(&rootInstant, "instant", false, "Skip every pacing delay")
	rootCmd.Flags().StringVar(&rootDebugLog, "debug-log", "", "Write structured debug events to this file")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(wordsCmd)
}
