package handler

import (
	"go.uber.org/fx"

	"github.com/oxplot/lambdafy-greeter/util/logging"
)

func Module() fx.Option {
	return fx.Module("handler",
		// rename logger for module
		logging.DecorateLogger("handler"),
		// provide handlers
		fx.Provide(NewGreetingHandler),
		fx.Provide(NewSQSHandler),
		// provide routes
		fx.Provide(NewGreetingRoute),
		fx.Provide(NewSQSRoute),
	)
}
