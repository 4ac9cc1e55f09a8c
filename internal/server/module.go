package server

import (
	"go.uber.org/fx"

	"github.com/oxplot/lambdafy-greeter/util/logging"
)

// Module serves the routes of the handlers group over http.
func Module(config HttpConfig) fx.Option {
	return fx.Module("server",
		// rename logger for module
		logging.DecorateLogger("http"),
		// provide config
		fx.Supply(config),
		// provide server
		fx.Provide(NewLifecycleServer),
		// invoke server
		fx.Invoke(func(*HttpServer) {}),
	)
}
