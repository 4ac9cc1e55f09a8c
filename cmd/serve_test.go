package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/oxplot/lambdafy-greeter/app/standalone"
	"github.com/oxplot/lambdafy-greeter/internal/server"
	"github.com/oxplot/lambdafy-greeter/util/conf"
)

// parseServeFlags runs the serve flags through a cli app and
// returns the config the serve command would start with.
func parseServeFlags(t *testing.T, args ...string) standalone.Config {
	var cfg standalone.Config

	app := &cli.App{
		Name:  appName,
		Flags: serveCmd.Flags,
		Action: func(ctx *cli.Context) error {
			var err error
			cfg, err = conf.Parse[standalone.Config](conf.ParseOptions{
				Cli:      ctx,
				Defaults: server.DefaultConfig,
				EnvMap:   server.EnvMap,
			})
			return err
		},
	}

	require.NoError(t, app.Run(append([]string{appName}, args...)))

	return cfg
}

func TestServeFlags_DefaultPort(t *testing.T) {
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")

	cfg := parseServeFlags(t)

	assert.Equal(t, 8080, cfg.HttpConfig.Port)
}

func TestServeFlags_PortFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg := parseServeFlags(t)

	assert.Equal(t, 9090, cfg.HttpConfig.Port)
}

func TestServeFlags_PortFlagOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg := parseServeFlags(t, "--port", "7070", "-H", "127.0.0.1")

	assert.Equal(t, 7070, cfg.HttpConfig.Port)
	assert.Equal(t, "127.0.0.1", cfg.HttpConfig.Host)
}
