// Package session orchestrates game sessions: word selection, the
// guess/render cycle, end-of-game detection, and replay. Every state
// transition immediately drives a new render through the CRT pipeline.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ShayCichocki/phosphor/internal/config"
	"github.com/ShayCichocki/phosphor/internal/crt"
	"github.com/ShayCichocki/phosphor/internal/game"
	"github.com/ShayCichocki/phosphor/internal/words"
)

// Status-line messages shown inside the frame.
const (
	msgGuessPrompt = "Guess a letter."
	msgEnterGuess  = "Enter your guess..."
	msgWon         = "CONGRATULATIONS! You guessed the word!"

	msgInvalidLength = "Invalid input. Please enter exactly one character."
	msgNotALetter    = "Invalid input. Please enter a single letter (A-Z)."
)

// Out-of-frame messages.
const (
	bootBanner   = "Booting up CRT Hangman..."
	farewell     = "Thanks for playing CRT Hangman!"
	guessPrompt  = "Enter your guess: "
	replayPrompt = "\nPlay again? (yes/no): "
	replayToken  = "yes"
)

// Options configures a Loop. Config, Selector, Composer, and Renderer are
// required; the rest default sensibly.
type Options struct {
	// Config provides the pacing delays and display settings.
	Config *config.Config
	// Selector picks the target word for each session.
	Selector *words.Selector
	// Composer builds frames from game state.
	Composer *crt.Composer
	// Renderer writes frames to the display.
	Renderer *crt.Renderer
	// In is the input source; defaults to an empty source, in which case
	// every prompt ends the program normally.
	In io.Reader
	// Out is the destination for out-of-frame prompts and banners.
	Out io.Writer
	// Logger receives structured debug events; defaults to a no-op logger.
	Logger *zerolog.Logger
	// Sleep replaces time.Sleep, for tests.
	Sleep func(time.Duration)
}

// Loop owns the single game state instance and runs sessions until the
// player declines to replay. It is strictly single-threaded: input blocks,
// pacing sleeps block, and nothing renders in the background.
type Loop struct {
	cfg      *config.Config
	selector *words.Selector
	composer *crt.Composer
	renderer *crt.Renderer
	in       *bufio.Scanner
	out      io.Writer
	log      zerolog.Logger
	sleep    func(time.Duration)
	emphasis *color.Color
}

// New creates a Loop from options.
func New(opts Options) (*Loop, error) {
	if opts.Config == nil {
		return nil, errors.New("session: Config is required")
	}
	if opts.Selector == nil {
		return nil, errors.New("session: Selector is required")
	}
	if opts.Composer == nil {
		return nil, errors.New("session: Composer is required")
	}
	if opts.Renderer == nil {
		return nil, errors.New("session: Renderer is required")
	}

	in := opts.In
	if in == nil {
		in = strings.NewReader("")
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	sleep := opts.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	emphasis := color.New(color.FgGreen, color.Bold)
	if !opts.Config.Display.Color {
		emphasis = color.New()
	}

	return &Loop{
		cfg:      opts.Config,
		selector: opts.Selector,
		composer: opts.Composer,
		renderer: opts.Renderer,
		in:       bufio.NewScanner(in),
		out:      out,
		log:      log,
		sleep:    sleep,
		emphasis: emphasis,
	}, nil
}

// Run plays sessions until the player declines to replay or input runs
// out. Every path terminates normally.
func (l *Loop) Run() error {
	l.renderer.Clear()
	l.emphasis.Fprintln(l.out, bootBanner)
	l.sleep(l.cfg.Display.BootPause)

	for {
		if err := l.playSession(); err != nil {
			break
		}

		l.emphasis.Fprint(l.out, replayPrompt)
		answer, ok := l.readLine()
		if !ok || strings.ToLower(strings.TrimSpace(answer)) != replayToken {
			break
		}
	}

	l.renderer.Clear()
	l.emphasis.Fprintln(l.out, farewell)
	return nil
}

// playSession runs one session from word selection to a terminal status.
// It returns an error only when input is exhausted mid-session.
func (l *Loop) playSession() error {
	target := l.selector.Pick()
	st, err := game.NewState(target, l.composer.MaxIncorrect())
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}

	log := l.log.With().Str("session_id", uuid.NewString()).Logger()
	log.Info().Int("word_length", len(target)).Msg("session started")

	for {
		l.refresh(st, msgGuessPrompt, true)

		if status := st.Status(); status.Terminal() {
			l.finishSession(st, status, log)
			return nil
		}

		letter, ok := l.solicitGuess(st, log)
		if !ok {
			log.Info().Msg("input exhausted mid-session")
			return io.ErrUnexpectedEOF
		}

		hit := st.ApplyGuess(letter)
		message := fmt.Sprintf("'%s' is not in the word.", letter)
		if hit {
			message = fmt.Sprintf("Good guess! '%s' is in the word.", letter)
		}

		log.Info().
			Str("letter", letter.String()).
			Bool("hit", hit).
			Int("incorrect", st.IncorrectCount()).
			Str("status", string(st.Status())).
			Msg("guess applied")

		l.refresh(st, message, true)
		l.sleep(l.cfg.Display.MessagePause)
	}
}

// solicitGuess prompts until the player enters a valid new letter. Each
// rejection shows its message, pauses, and re-prompts. The second return
// is false when input is exhausted.
func (l *Loop) solicitGuess(st *game.State, log zerolog.Logger) (game.Letter, bool) {
	for {
		l.refresh(st, msgEnterGuess, true)
		l.emphasis.Fprint(l.out, guessPrompt)

		raw, ok := l.readLine()
		if !ok {
			return 0, false
		}

		letter, err := game.ValidateGuess(raw, st.Guessed())
		if err == nil {
			return letter, true
		}

		log.Debug().Str("input", raw).Str("reason", err.Error()).Msg("guess rejected")
		l.emphasis.Fprintln(l.out, rejectionMessage(err, raw))
		l.sleep(l.cfg.Display.ErrorPause)
	}
}

// finishSession renders the terminal frame without the scan effect and
// logs the outcome.
func (l *Loop) finishSession(st *game.State, status game.Status, log zerolog.Logger) {
	message := msgWon
	if status == game.StatusLost {
		message = fmt.Sprintf("GAME OVER! The word was '%s'.", st.Target())
	}
	l.refresh(st, message, false)

	log.Info().
		Str("status", string(status)).
		Str("word", st.Target()).
		Int("incorrect", st.IncorrectCount()).
		Msg("session finished")
}

// refresh composes and renders the current state with a status message.
// All framing goes through here so the border and padding invariants hold
// identically everywhere.
func (l *Loop) refresh(st *game.State, message string, progressive bool) {
	l.renderer.Render(l.composer.Compose(st, message), progressive)
}

// readLine reads one input line; the second return is false at EOF.
func (l *Loop) readLine() (string, bool) {
	if !l.in.Scan() {
		return "", false
	}
	return l.in.Text(), true
}

// rejectionMessage maps a validation error to its user-facing message.
func rejectionMessage(err error, raw string) string {
	switch {
	case errors.Is(err, game.ErrInvalidLength):
		return msgInvalidLength
	case errors.Is(err, game.ErrNotALetter):
		return msgNotALetter
	case errors.Is(err, game.ErrAlreadyGuessed):
		return fmt.Sprintf("You already guessed '%s'. Try again.", strings.ToUpper(raw))
	default:
		return msgNotALetter
	}
}
