package app

import (
	"github.com/oxplot/lambdafy-greeter/config"
	"github.com/oxplot/lambdafy-greeter/internal/shell"
	"github.com/oxplot/lambdafy-greeter/util/conf"
	"github.com/oxplot/lambdafy-greeter/util/logging"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
)

func New(ctx *cli.Context) (*shell.Shell, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	config, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return nil, err
	}

	sharedModule := fx.Module(
		"shared",
		// provide global config
		fx.Supply(config),
	)

	return shell.New(
		log,
		sharedModule,
		fx.StartTimeout(config.StartTimeout),
		fx.StopTimeout(config.StopTimeout),
	), nil
}
