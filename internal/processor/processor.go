package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/jerrypanguo/Deutsch-Learning/internal/analysis"
	"github.com/jerrypanguo/Deutsch-Learning/internal/audio"
	"github.com/jerrypanguo/Deutsch-Learning/internal/cli"
	"github.com/jerrypanguo/Deutsch-Learning/internal/console"
	"github.com/jerrypanguo/Deutsch-Learning/internal/correction"
	"github.com/jerrypanguo/Deutsch-Learning/internal/dictionary"
	"github.com/jerrypanguo/Deutsch-Learning/internal/logging"
	"github.com/jerrypanguo/Deutsch-Learning/internal/phonetic"
	"github.com/jerrypanguo/Deutsch-Learning/internal/player"
	"github.com/jerrypanguo/Deutsch-Learning/internal/pronunciation"
	"github.com/jerrypanguo/Deutsch-Learning/internal/translation"
)

// Processor wires the components together once at startup
type Processor struct {
	root       zerolog.Logger // handed to components
	log        zerolog.Logger
	httpClient *http.Client
	closers    []io.Closer
}

// NewProcessor creates a new processor
func NewProcessor(logger zerolog.Logger) *Processor {
	return &Processor{
		root:       logger,
		log:        logging.Component(logger, "processor"),
		httpClient: &http.Client{Timeout: viper.GetDuration("http.timeout")},
	}
}

// Close releases resources opened while building components
func (p *Processor) Close() error {
	var errs []error
	for _, c := range p.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	p.closers = nil
	return errors.Join(errs...)
}

// Translator builds the translator with the configured service and, unless
// disabled, the dictionary glosser
func (p *Processor) Translator() (*translation.Translator, error) {
	cfg := translation.DefaultServiceConfig()
	cfg.Provider = viper.GetString("translation.provider")
	cfg.HTTPClient = p.httpClient
	cfg.MyMemoryKey = cli.GetMyMemoryKey()
	cfg.OpenAIKey = cli.GetOpenAIKey()
	cfg.OpenAIModel = viper.GetString("translation.openai_model")
	cfg.GeminiKey = cli.GetGeminiKey()
	if model := viper.GetString("translation.gemini_model"); model != "" {
		cfg.GeminiModel = model
	}

	service := translation.NewService(cfg, p.root)
	p.log.Info().Str("service", service.Name()).Msg("translation service")

	glosser, err := p.glosser()
	if err != nil {
		return nil, err
	}
	return translation.NewTranslator(service, glosser, p.root), nil
}

func (p *Processor) glosser() (translation.Glosser, error) {
	if !viper.GetBool("dictionary.enabled") {
		return nil, nil
	}

	client := dictionary.NewClient(p.httpClient, p.root)

	path := viper.GetString("dictionary.cache_db")
	if path == "" {
		return client, nil
	}

	cache, err := dictionary.OpenSQLiteCache(path)
	if err != nil {
		return nil, err
	}
	p.closers = append(p.closers, cache)
	return dictionary.NewCached(client, cache, p.root), nil
}

// Analyzer builds the analyzer on the UDPipe tagger
func (p *Processor) Analyzer() *analysis.Analyzer {
	tagger := analysis.NewUDPipeTagger(p.httpClient, viper.GetString("analysis.udpipe_model"), p.root)
	return analysis.NewAnalyzer(tagger, p.root)
}

// Corrector probes LanguageTool once and returns the full corrector, or the
// limited one when the server is unreachable or disabled
func (p *Processor) Corrector(ctx context.Context) correction.Corrector {
	if viper.GetBool("correction.disabled") {
		return correction.Probe(ctx, nil, p.root)
	}
	checker := correction.NewLanguageTool(p.httpClient, viper.GetString("correction.languagetool_url"), p.root)
	return correction.Probe(ctx, checker, p.root)
}

// Pronunciation builds the pronunciation guide: TTS provider behind the
// audio cache, the player unless playback is disabled, and the optional
// IPA fetcher
func (p *Processor) Pronunciation() (*pronunciation.Guide, error) {
	provider, err := audio.NewProvider(p.audioConfig(), p.root)
	if err != nil {
		return nil, fmt.Errorf("audio provider: %w", err)
	}
	if err := provider.IsAvailable(); err != nil {
		p.log.Warn().Err(err).Str("provider", provider.Name()).Msg("audio provider unavailable, pronunciation audio will fail")
	}

	dir := viper.GetString("audio.cache_dir")
	if dir == "" {
		dir = audio.DefaultDir()
	}
	cache, err := audio.NewCache(dir, provider, p.root)
	if err != nil {
		return nil, err
	}

	var pl pronunciation.Player
	if !viper.GetBool("audio.no_playback") {
		pl = player.NewDefault(p.root)
	}

	var opts []pronunciation.Option
	if viper.GetBool("pronunciation.ipa") {
		if key := cli.GetOpenAIKey(); key != "" {
			opts = append(opts, pronunciation.WithIPA(phonetic.NewFetcher(key, viper.GetString("translation.openai_model"))))
		} else {
			p.log.Warn().Msg("IPA breakdown needs an OpenAI API key, disabled")
		}
	}

	p.log.Info().
		Str("provider", provider.Name()).
		Str("cache", cache.Dir()).
		Bool("playback", pl != nil).
		Msg("pronunciation guide")

	return pronunciation.NewGuide(cache, pl, p.root, opts...), nil
}

func (p *Processor) audioConfig() *audio.Config {
	cfg := audio.DefaultProviderConfig()
	cfg.Provider = viper.GetString("audio.provider")
	cfg.FallbackProvider = viper.GetString("audio.fallback_provider")
	cfg.HTTPClient = p.httpClient
	cfg.OpenAIKey = cli.GetOpenAIKey()

	if v := viper.GetString("audio.language"); v != "" {
		cfg.Language = v
	}
	if v := viper.GetString("audio.openai_model"); v != "" {
		cfg.OpenAIModel = v
	}
	if v := viper.GetString("audio.openai_voice"); v != "" {
		cfg.OpenAIVoice = v
	}
	if v := viper.GetFloat64("audio.openai_speed"); v > 0 {
		cfg.OpenAISpeed = v
	}
	if v := viper.GetString("audio.openai_instruction"); v != "" {
		cfg.OpenAIInstruction = v
	}
	if v := viper.GetString("audio.espeak_voice"); v != "" {
		cfg.ESpeakVoice = v
	}
	if v := viper.GetInt("audio.espeak_speed"); v > 0 {
		cfg.ESpeakSpeed = v
	}
	return cfg
}

// Components builds every feature the menu needs
func (p *Processor) Components(ctx context.Context) (console.Components, error) {
	translator, err := p.Translator()
	if err != nil {
		return console.Components{}, err
	}

	guide, err := p.Pronunciation()
	if err != nil {
		return console.Components{}, err
	}

	return console.Components{
		Translator: translator,
		Analyzer:   p.Analyzer(),
		Corrector:  p.Corrector(ctx),
		Pronouncer: guide,
	}, nil
}

// RunInteractive builds the components and runs the menu until the user
// exits. An interrupt prints the farewell and ends the process.
func (p *Processor) RunInteractive(ctx context.Context, in io.Reader, out io.Writer) error {
	defer p.Close()

	components, err := p.Components(ctx)
	if err != nil {
		return err
	}

	renderer := console.NewRenderer(out, viper.GetBool("ui.plain"))
	ctrl := console.NewController(components, in, renderer, p.root)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case sig := <-sigs:
			p.log.Info().Str("signal", sig.String()).Msg("interrupted")
			ctrl.Farewell()
			p.Close()
			os.Exit(0)
		case <-done:
		}
	}()

	p.log.Info().Msg("session started")
	if err := ctrl.Run(ctx); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	p.log.Info().Msg("session ended")
	return nil
}
