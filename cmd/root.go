package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/oxplot/lambdafy-greeter/config"
	"github.com/oxplot/lambdafy-greeter/internal/shell"
	"github.com/oxplot/lambdafy-greeter/util/conf"
	"github.com/oxplot/lambdafy-greeter/util/logging"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var (
	appName  = "greeter"
	appUsage = `A sample application for lambdafy. It greets every HTTP
request and logs the SQS messages lambdafy forwards to it.`
	rootApp = &cli.App{
		Name:            appName,
		Usage:           appUsage,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "set the log level. Options: debug, info, warn, error, panic, fatal.",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "set the log format. Options: production, development.",
				EnvVars: []string{"LOG_FORMAT"},
			},
			&cli.PathFlag{
				Name:    "config-file",
				Usage:   "load configuration from a json or .env file.",
				Aliases: []string{"f"},
				EnvVars: []string{"CONFIG_FILE"},
			},
		},
		Before: func(ctx *cli.Context) error {
			// parse config using env, file and flags
			cfg, err := conf.Parse[config.Config](conf.ParseOptions{
				Cli:      ctx,
				Defaults: config.DefaultConfig,
				EnvMap:   config.EnvMap,
				FileName: ctx.Path("config-file"),
			})
			if err != nil {
				return err
			}

			// create the logger
			log, err := createLogger(cfg)
			if err != nil {
				return err
			}

			// inject logger and config into cli context
			ctx.Context = logging.ContextWithLogger(ctx.Context, log)
			ctx.Context = conf.ContextWithConfig(ctx.Context, cfg)

			return nil
		},
		After: func(ctx *cli.Context) error {
			log, err := logging.LoggerFromContext(ctx.Context)
			if err != nil {
				return err
			}

			_ = log.Sync()

			return nil
		},
	}
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Usage:              "print the version",
		DisableDefaultText: true,
	}
}

type ExecuteParams struct {
	Version  string
	Compiled time.Time
}

func Execute(params ExecuteParams) int {
	rootApp.Version = params.Version
	rootApp.Compiled = params.Compiled

	return run(context.Background(), os.Args)
}

func run(ctx context.Context, args []string) int {
	err := rootApp.RunContext(ctx, args)
	if err == nil {
		return 0
	}

	if !shell.IsExitError(err) {
		fmt.Fprintf(os.Stderr, "exit error: %s\n", err.Error())
	}

	return shell.ExitCode(err)
}

// parseCommandConfig loads a command's config the same
// way the root config is loaded.
func parseCommandConfig[C any](ctx *cli.Context, defaults conf.DefaultConfig, envMap map[string]string) (C, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		var c C
		return c, err
	}

	return conf.Parse[C](conf.ParseOptions{
		Cli:      ctx,
		Defaults: defaults,
		EnvMap:   envMap,
		FileName: ctx.Path("config-file"),
		Log:      log,
	})
}

func createLogger(cfg config.Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.LogFormat == "development" {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	zapConfig.InitialFields = map[string]any{
		"app": appName,
	}

	zapConfig.Level = parseLogLevel(cfg.LogLevel)

	return zapConfig.Build()
}

func parseLogLevel(lvl string) zap.AtomicLevel {
	if atom, err := zap.ParseAtomicLevel(lvl); err == nil {
		return atom
	}

	return zap.NewAtomicLevelAt(zap.InfoLevel)
}
