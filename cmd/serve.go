package cmd

import (
	"github.com/oxplot/lambdafy-greeter/app"
	"github.com/oxplot/lambdafy-greeter/app/standalone"
	"github.com/oxplot/lambdafy-greeter/internal/server"
	"github.com/oxplot/lambdafy-greeter/util/logging"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var (
	serveCmdDescription = `The serve command starts a http server on all interfaces
and blocks until the process is signalled. Requests to
/_lambdafy/sqs have their body logged; every other request
is answered with a greeting.`
	serveCmd = &cli.Command{
		Name:        "serve",
		Usage:       "Start a http server and greet incoming requests.",
		Description: serveCmdDescription,
		Action:      serveAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "host",
				Aliases:  []string{"H"},
				Usage:    "The host to listen on. Defaults to all interfaces.",
				Category: "http",
				EnvVars:  []string{"HTTP_HOST"},
			},
			&cli.IntFlag{
				Name:     "port",
				Aliases:  []string{"P"},
				Usage:    "The port to listen on.",
				Value:    8080,
				Category: "http",
				EnvVars:  []string{"PORT"},
			},
			&cli.BoolFlag{
				Name:     "h2c",
				Usage:    "Enable HTTP/2 cleartext upgrade.",
				Value:    false,
				Category: "http",
				EnvVars:  []string{"HTTP_H2C"},
			},
		},
	}
)

func serveAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg, err := parseCommandConfig[standalone.Config](ctx, server.DefaultConfig, server.EnvMap)
	if err != nil {
		return err
	}

	log.Info("starting http server", zap.Int("port", cfg.HttpConfig.Port))

	return app.Run(ctx.Context, standalone.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, serveCmd)
}
