package cli

import "github.com/jerrypanguo/Deutsch-Learning/internal/logging"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	LogFile    string
	LogLevel   string
	ListModels bool
	Plain      bool

	// Feature flags
	TranslationProvider string
	TTSProvider         string
	CacheDir            string
	LanguageToolURL     string
	NoLanguageTool      bool
	NoAudio             bool
	IPA                 bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	logCfg := logging.DefaultConfig()
	return &Flags{
		LogFile:             logCfg.File,
		LogLevel:            logCfg.Level,
		TranslationProvider: "google",
		TTSProvider:         "google",
		LanguageToolURL:     "https://api.languagetool.org",
	}
}
