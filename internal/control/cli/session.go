package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/flycreate/internal/bind"
	"github.com/ja-he/flycreate/internal/config"
	"github.com/ja-he/flycreate/internal/control"
	"github.com/ja-he/flycreate/internal/input"
	"github.com/ja-he/flycreate/internal/potatolog"
	"github.com/ja-he/flycreate/internal/storage/providers"
	"github.com/ja-he/flycreate/internal/theme"
)

// session is everything a command needs: the engine over the configured
// library directory and the console collaborators it drives.
type session struct {
	env    control.EnvData
	config config.Config

	engine     *control.Engine
	dispatcher *input.Dispatcher
	workspace  *consoleWorkspace
	notifier   *consoleNotifier
	menu       *consoleMenu
}

// setupLogging directs the global logger to stderr (warnings only, unless
// verbose), the in-memory log and, optionally, a log file.
func setupLogging(opts *CommandLineOpts) error {
	level := zerolog.WarnLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}
	writers := []io.Writer{
		&minLevelWriter{w: zerolog.ConsoleWriter{Out: stderr}, min: level},
		&potatolog.GlobalMemoryLogReaderWriter,
	}

	if opts.LogOutputFile != "" {
		file, err := os.OpenFile(opts.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("could not open file '%s' for logging (%w)", opts.LogOutputFile, err)
		}
		if opts.LogPretty {
			writers = append(writers, zerolog.ConsoleWriter{Out: file, NoColor: true})
		} else {
			writers = append(writers, file)
		}
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	return nil
}

// minLevelWriter drops entries below a level, so that the stderr output can
// be quieter than the in-memory log.
type minLevelWriter struct {
	w   io.Writer
	min zerolog.Level
}

func (w *minLevelWriter) WriteLevel(l zerolog.Level, p []byte) (int, error) {
	if l < w.min {
		return len(p), nil
	}
	return w.w.Write(p)
}

func (w *minLevelWriter) Write(p []byte) (int, error) {
	return w.w.Write(p)
}

// loadConfig reads the config file, falling back to the defaults if there is
// none.
func loadConfig(env control.EnvData, opts *CommandLineOpts) (config.Config, error) {
	var scheme config.ColorschemeType
	switch opts.Theme {
	case "dark":
		scheme = config.Dark
	default:
		scheme = config.Light
	}

	yamlData, err := os.ReadFile(env.ConfigPath())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return config.Config{}, fmt.Errorf("could not read config file '%s' (%w)", env.ConfigPath(), err)
		}
		log.Debug().Str("file", env.ConfigPath()).Msg("no config file, using defaults")
		yamlData = make([]byte, 0)
	}
	configData, err := config.ParseConfigAugmentDefaults(scheme, yamlData)
	if err != nil {
		return config.Config{}, fmt.Errorf("could not parse config file '%s' (%w)", env.ConfigPath(), err)
	}
	if opts.LibrariesDir != "" {
		configData.LibrariesDir = opts.LibrariesDir
	}
	return configData, nil
}

// newSession sets up logging and configuration, loads the libraries and
// applies the configured default theme.
func newSession(opts *CommandLineOpts) (*session, error) {
	if err := setupLogging(opts); err != nil {
		return nil, err
	}

	env := control.EnvDataFromEnvironment()
	cfg, err := loadConfig(env, opts)
	if err != nil {
		return nil, err
	}

	store, err := providers.NewFilesLibraryProvider(env.Resolve(cfg.LibrariesDir), cfg.Extension, log.Logger.With().Str("component", "store").Logger())
	if err != nil {
		return nil, err
	}

	themes := theme.NewRegistry(log.Logger.With().Str("component", "themes").Logger(), cfg.PreferredVariants)
	s := &session{
		env:        env,
		config:     cfg,
		dispatcher: input.NewDispatcher(),
		workspace:  newConsoleWorkspace(stdout, themes.Active(), log.Logger.With().Str("component", "workspace").Logger()),
		notifier:   &consoleNotifier{out: stdout, errOut: stderr},
		menu:       &consoleMenu{},
	}
	binds := bind.NewRegistry(log.Logger.With().Str("component", "binds").Logger(), s.dispatcher, s.workspace)

	s.engine = control.NewEngine(
		store,
		themes,
		binds,
		s.workspace,
		s.notifier,
		s.menu,
		control.Options{Extension: store.Extension},
		log.Logger.With().Str("component", "engine").Logger(),
	)
	if err := s.engine.Reload(); err != nil {
		return nil, err
	}

	if err := s.engine.ApplyTheme(cfg.DefaultTheme); err != nil {
		log.Warn().Str("theme", cfg.DefaultTheme).Err(err).Msg("could not apply default theme")
	}

	return s, nil
}
