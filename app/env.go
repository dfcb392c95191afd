package app

import (
	"errors"
	"io"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/bookmark/internal/config"
	"github.com/ayoisaiah/bookmark/internal/library"
	"github.com/ayoisaiah/bookmark/internal/logger"
	"github.com/ayoisaiah/bookmark/internal/pathutil"
	"github.com/ayoisaiah/bookmark/internal/ui"
	"github.com/ayoisaiah/bookmark/store"
)

// env holds what every command needs: the loaded config, the store and the
// library.
type env struct {
	cfg     *config.Config
	db      *store.Client
	lib     *library.Library
	logger  *slog.Logger
	closers []io.Closer
}

// newEnv loads the config, starts logging and opens the store. The caller
// must call close when done.
func newEnv(ctx *cli.Context) (*env, error) {
	cfg, err := config.New(
		config.WithPromptConfig(pathutil.ConfigFilePath(), pathutil.LibraryDir()),
		config.WithViperConfig(pathutil.ConfigFilePath(), pathutil.LibraryDir()),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	l, logFile := logger.NewFile(pathutil.LogFilePath(), cfg.Settings.LogLevel)
	slog.SetDefault(l)

	e := &env{
		cfg:     cfg,
		logger:  l,
		lib:     library.New(cfg.Library.Dir, l),
		closers: []io.Closer{logFile},
	}

	l.DebugContext(ctx.Context, "config loaded", slog.String("config", cfg.String()))

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		_ = e.close()
		return nil, err
	}

	e.db = db
	e.closers = append([]io.Closer{db}, e.closers...)

	if cfg.Library.Sample {
		err = e.lib.EnsureSample(ctx.Context)
		if err != nil {
			l.WarnContext(
				ctx.Context,
				"unable to add the sample book",
				slog.Any("error", err),
			)
		}
	}

	return e, nil
}

func (e *env) close() error {
	var errs []error

	for _, c := range e.closers {
		errs = append(errs, c.Close())
	}

	return errors.Join(errs...)
}
