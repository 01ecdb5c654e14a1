package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/spaserver/core/config"
	"github.com/dmitrymomot/spaserver/core/logger"
	"github.com/dmitrymomot/spaserver/core/response"
	"github.com/dmitrymomot/spaserver/core/router"
	"github.com/dmitrymomot/spaserver/core/server"
	"github.com/dmitrymomot/spaserver/core/static"
	"github.com/dmitrymomot/spaserver/middleware"
)

var (
	errUnknownLogFormat = errors.New("unknown log format")
	errUnknownLogLevel  = errors.New("unknown log level")
)

func newCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:            "spaserver",
		Usage:           "serve a single-page application, falling back to its index document",
		ArgsUsage:       "[port]",
		HideHelpCommand: true,
		Writer:          stdout,
		ErrWriter:       stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "root", Aliases: []string{"d"}, Usage: "directory to serve (default: STATIC_ROOT or .)"},
			&cli.StringFlag{Name: "index", Usage: "fallback document relative to root (default: STATIC_INDEX or index.html)"},
			&cli.StringFlag{Name: "host", Aliases: []string{"b"}, Usage: "address to bind (default: SERVER_HOST or 0.0.0.0)"},
			&cli.StringSliceFlag{Name: "exclude", Usage: "path prefix that answers 404 instead of falling back (repeatable)"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error (default: LOG_LEVEL or info)"},
			&cli.StringFlag{Name: "log-format", Usage: "text or json (default: LOG_FORMAT or text)"},
			&cli.StringFlag{Name: "env-file", Usage: "dotenv file loaded before reading the environment"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return serve(ctx, cmd, stdout, stderr)
		},
	}
}

func loadConfig(cmd *cli.Command) (Config, error) {
	var cfg Config

	if path := cmd.String("env-file"); path != "" {
		if err := config.LoadEnvFiles(path); err != nil {
			return cfg, err
		}
	}
	if err := config.Load(&cfg); err != nil {
		return cfg, err
	}

	if cmd.IsSet("root") {
		cfg.Static.Root = cmd.String("root")
	}
	if cmd.IsSet("index") {
		cfg.Static.Index = cmd.String("index")
	}
	if cmd.IsSet("host") {
		cfg.Server.Host = cmd.String("host")
	}
	if cmd.IsSet("exclude") {
		cfg.Static.ExcludePaths = cmd.StringSlice("exclude")
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		cfg.LogFormat = cmd.String("log-format")
	}

	return cfg, nil
}

func newLogger(cfg Config, out io.Writer) (*slog.Logger, error) {
	level, ok := logger.ParseLevel(cfg.LogLevel)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errUnknownLogLevel, cfg.LogLevel)
	}

	opts := []logger.Option{
		logger.WithLevel(level),
		logger.WithOutput(out),
		logger.WithAttr(slog.String("service", cfg.AppName)),
		logger.WithContextExtractors(middleware.RequestIDExtractor),
	}

	switch strings.ToLower(cfg.LogFormat) {
	case "json":
		opts = append(opts, logger.WithJSONFormatter())
	case "text", "":
		opts = append(opts, logger.WithTextFormatter())
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownLogFormat, cfg.LogFormat)
	}

	return logger.New(opts...), nil
}

func serve(ctx context.Context, cmd *cli.Command, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintln(stderr, "spaserver:", err)
		return err
	}

	log, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "spaserver:", err)
		return err
	}

	port, err := parsePort(cmd.Args().First(), cfg.Server.Port)
	if err != nil {
		log.Warn("ignoring port argument, using configured port",
			logger.Component("cli"),
			logger.Error(err),
			slog.Int("port", port),
		)
	}
	if cmd.Args().Len() > 1 {
		log.Warn("ignoring extra arguments", logger.Component("cli"), slog.Any("args", cmd.Args().Tail()))
	}
	cfg.Server.Port = port

	root, err := static.OpenRoot(cfg.Static.Root)
	if err != nil {
		log.Error("failed to open serving root", logger.Component("static"), logger.Root(cfg.Static.Root), logger.Error(err))
		return err
	}
	defer root.Close()

	spa := static.SPA[*router.Context](root.FS(), append(cfg.Static.Options(), static.WithLogger(log))...)

	r := router.New[*router.Context](
		router.WithLogger[*router.Context](log),
		router.WithErrorHandler(response.ErrorHandler[*router.Context]),
		router.WithMiddleware(
			middleware.RequestID[*router.Context](),
			middleware.LoggingWithLogger[*router.Context](log),
		),
	)
	r.Get(spa)
	r.Head(spa)

	srv, err := server.NewFromConfig(cfg.Server,
		server.WithLogger(log),
		server.WithOnListen(func(addr net.Addr) {
			printBanner(stdout, addr)
			logStarted(ctx, log, addr, root.Name(), cfg.Static.Index, indexSize(root, cfg.Static.Index))
		}),
	)
	if err != nil {
		log.Error("failed to create server", logger.Component("server"), logger.Error(err))
		return err
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(srv.Run(ctx, r))

	if err := eg.Wait(); err != nil {
		log.Error("failed to run server", logger.Component("server"), logger.Error(err))
		return err
	}

	log.Info("server stopped", logger.Component("server"))
	return nil
}
