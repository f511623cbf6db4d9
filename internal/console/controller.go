package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jerrypanguo/Deutsch-Learning/internal/analysis"
	"github.com/jerrypanguo/Deutsch-Learning/internal/correction"
	"github.com/jerrypanguo/Deutsch-Learning/internal/pronunciation"
	"github.com/jerrypanguo/Deutsch-Learning/internal/translation"
)

// Translator translates user input
type Translator interface {
	Translate(ctx context.Context, text string) string
	TranslateWithExplanation(ctx context.Context, text string) translation.Result
}

// Analyzer analyzes German sentences word by word
type Analyzer interface {
	Analyze(ctx context.Context, text string) []analysis.TokenAnalysis
}

// Pronouncer produces pronunciation guidance and plays audio
type Pronouncer interface {
	GetPronunciation(ctx context.Context, text string) pronunciation.Result
	Play(ctx context.Context, file string) bool
	PlaybackEnabled() bool
}

// Components are the features the menu dispatches to
type Components struct {
	Translator Translator
	Analyzer   Analyzer
	Corrector  correction.Corrector
	Pronouncer Pronouncer
}

// maxLineBytes bounds a single line of user input
const maxLineBytes = 1 << 20

// Controller runs the interactive menu loop
type Controller struct {
	components Components
	in         *bufio.Reader
	maxLine    int
	inErr      error
	render     *Renderer
	state      State
	log        zerolog.Logger

	farewellOnce sync.Once
}

// NewController creates a controller reading from in and rendering with r
func NewController(components Components, in io.Reader, r *Renderer, logger zerolog.Logger) *Controller {
	return &Controller{
		components: components,
		in:         bufio.NewReader(in),
		maxLine:    maxLineBytes,
		render:     r,
		state:      MainMenu,
		log:        logger.With().Str("component", "console").Logger(),
	}
}

// State returns the current state
func (c *Controller) State() State {
	return c.state
}

// Step returns the state a main menu choice leads to without changing the
// controller
func (c *Controller) Step(choice string) State {
	return Step(choice)
}

// Farewell prints the goodbye message. It prints at most once, so the
// signal handler and the loop cannot both print it.
func (c *Controller) Farewell() {
	c.farewellOnce.Do(c.render.Farewell)
}

// Run shows the menu and dispatches to the feature modes until the user
// exits or stdin is closed
func (c *Controller) Run(ctx context.Context) error {
	c.render.Welcome()

	for {
		if ctx.Err() != nil {
			c.state = Exit
		}

		switch c.state {
		case MainMenu:
			c.render.Menu()
			choice, ok := c.readLine("\n" + menuPrompt)
			if !ok {
				c.state = Exit
				continue
			}
			next := c.Step(choice)
			if next == MainMenu {
				c.render.Error(invalidChoiceMessage)
			}
			c.log.Debug().Str("choice", choice).Stringer("state", next).Msg("menu choice")
			c.state = next

		case Translate:
			c.state = c.runMode(ctx, Translate, c.translate)

		case Analyze:
			c.state = c.runMode(ctx, Analyze, c.analyze)

		case Correct:
			c.state = c.runMode(ctx, Correct, c.correct)

		case Pronounce:
			c.state = c.runMode(ctx, Pronounce, c.pronounce)

		case Exit:
			c.Farewell()
			return c.inErr
		}
	}
}

// runMode reads inputs for one feature until the user quits. It returns
// the next state: MainMenu after "q", Exit when input ends.
func (c *Controller) runMode(ctx context.Context, state State, handle func(context.Context, string)) State {
	m := modes[state]
	c.render.ModeHeader(m)

	if state == Correct && c.components.Corrector.Limited() {
		c.render.Warning(limitedWarning)
		c.render.Warning(limitedWarningMore)
	}

	for {
		text, ok := c.readLine(m.prompt)
		if !ok {
			return Exit
		}
		if isQuit(text) {
			return MainMenu
		}
		if strings.TrimSpace(text) == "" {
			c.render.Warning(emptyInputMessage)
			continue
		}

		handle(ctx, strings.TrimSpace(text))

		if ctx.Err() != nil {
			return Exit
		}
	}
}

// readLine prompts until a line of acceptable length arrives. It returns
// false once input ends.
func (c *Controller) readLine(prompt string) (string, bool) {
	for {
		c.render.Prompt(prompt)
		line, tooLong, err := c.nextLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				c.inErr = err
			}
			return "", false
		}
		if tooLong {
			c.log.Warn().Int("limit", c.maxLine).Msg("input line too long")
			c.render.Warning(inputTooLongMessage)
			continue
		}
		return line, true
	}
}

// nextLine reads one line. A line over maxLine bytes is drained and
// reported as too long instead of being returned.
func (c *Controller) nextLine() (string, bool, error) {
	var (
		buf     []byte
		tooLong bool
	)
	for {
		chunk, isPrefix, err := c.in.ReadLine()
		if err != nil {
			return "", false, err
		}
		if !tooLong {
			if len(buf)+len(chunk) > c.maxLine {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return "", true, nil
	}
	return string(buf), false, nil
}

func (c *Controller) translate(ctx context.Context, text string) {
	c.render.Translation(c.components.Translator.TranslateWithExplanation(ctx, text))
}

func (c *Controller) analyze(ctx context.Context, text string) {
	results := c.components.Analyzer.Analyze(ctx, text)
	sentence := c.components.Translator.Translate(ctx, text)
	c.render.Analysis(sentence, results)
}

func (c *Controller) correct(ctx context.Context, text string) {
	c.render.Correction(c.components.Corrector.Correct(ctx, text))
}

func (c *Controller) pronounce(ctx context.Context, text string) {
	p := c.components.Pronouncer
	res := p.GetPronunciation(ctx, text)
	c.render.Pronunciation(res)

	switch {
	case !res.HasAudio():
		c.render.Warning(noAudioMessage)
	case !p.PlaybackEnabled():
		c.render.println(playbackDisabledNote + res.AudioFile)
	default:
		c.render.println(playingMessage)
		if !p.Play(ctx, res.AudioFile) {
			c.render.Warning(playbackFailed)
		}
	}
}
