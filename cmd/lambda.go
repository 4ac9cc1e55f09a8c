package cmd

import (
	"github.com/oxplot/lambdafy-greeter/app"
	"github.com/oxplot/lambdafy-greeter/app/lambda"
	"github.com/oxplot/lambdafy-greeter/util/logging"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var (
	lambdaCmdDescription = `The lambda command starts the greeter as an AWS Lambda
runtime interface client. HTTP events are served by the same
routes as the serve command. SQS events are forwarded to the
/_lambdafy/sqs route one record at a time; records that are
not acknowledged are reported back to SQS for redelivery.

The command blocks indefinitely, processing incoming AWS
Lambda events.`
	lambdaCmd = &cli.Command{
		Name:        "lambda",
		Usage:       "Run the AWS Lambda handler",
		Description: lambdaCmdDescription,
		Action:      lambdaAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "lambda-proxy-source",
				Usage:    "the source of the AWS Lambda http events. Options: API_GW_V1, API_GW_V2, ALB.",
				Value:    "API_GW_V2",
				EnvVars:  []string{"LAMBDA_PROXY_SOURCE"},
				Category: "lambda",
			},
		},
	}
)

func lambdaAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg, err := parseCommandConfig[lambda.Config](ctx, lambda.DefaultConfig, lambda.EnvMap)
	if err != nil {
		return err
	}

	log.Info("starting AWS Lambda handler", zap.Stringer("proxy_source", cfg.ProxySource))

	return app.Run(ctx.Context, lambda.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, lambdaCmd)
}
