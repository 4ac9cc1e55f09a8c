package standalone

import (
	"go.uber.org/fx"

	"github.com/oxplot/lambdafy-greeter/handler"
	"github.com/oxplot/lambdafy-greeter/internal/server"
	"github.com/oxplot/lambdafy-greeter/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Module(
		"serve",
		// rename logger for module
		logging.DecorateLogger("serve"),
		// provide handlers
		handler.Module(),
		// provide server
		server.Module(config.HttpConfig),
	)
}
