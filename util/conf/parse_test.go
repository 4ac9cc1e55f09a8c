package conf_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/oxplot/lambdafy-greeter/util/conf"
)

type testConfig struct {
	Host    string        `conf:"host"`
	Port    int           `conf:"port"`
	Timeout time.Duration `conf:"timeout"`
}

var testDefaults = conf.DefaultConfig{
	"host":    "",
	"port":    8080,
	"timeout": 5 * time.Second,
}

var testEnvMap = map[string]string{
	"PORT":      "port",
	"HTTP_HOST": "host",
}

func TestParse_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")

	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults: testDefaults,
		EnvMap:   testEnvMap,
	})
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestParse_EnvMap(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("HTTP_HOST", "127.0.0.1")
	// not in the env map
	t.Setenv("TIMEOUT", "1m")

	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults: testDefaults,
		EnvMap:   testEnvMap,
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestParse_EnvPrefix(t *testing.T) {
	t.Setenv("GREETER_PORT", "7070")
	t.Setenv("GREETER_TIMEOUT", "30s")

	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults:  testDefaults,
		EnvPrefix: "GREETER_",
	})
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestParse_JSONFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(name, []byte(`{"port": 3000, "timeout": "2s"}`), 0o600))

	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults: testDefaults,
		EnvMap:   map[string]string{},
		FileName: name,
	})
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
}

func TestParse_DotEnvFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "greeter.env")
	require.NoError(t, os.WriteFile(name, []byte("PORT=4000\nHTTP_HOST=0.0.0.0\n"), 0o600))

	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults: testDefaults,
		EnvMap:   map[string]string{},
		FileName: name,
	})
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, "", cfg.Host)
}

func TestParse_MissingFile(t *testing.T) {
	_, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults: testDefaults,
		EnvMap:   map[string]string{},
		FileName: filepath.Join(t.TempDir(), "missing.json"),
	})
	assert.Error(t, err)
}

func TestParse_CliFlagsOverrideEnv(t *testing.T) {
	t.Setenv("PORT", "9090")

	var cfg testConfig

	app := &cli.App{
		Name: "test",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "port"},
			&cli.StringFlag{Name: "host"},
		},
		Action: func(ctx *cli.Context) error {
			var err error
			cfg, err = conf.Parse[testConfig](conf.ParseOptions{
				Cli:      ctx,
				Defaults: testDefaults,
				EnvMap:   testEnvMap,
			})
			return err
		},
	}

	require.NoError(t, app.Run([]string{"test", "--port", "9999"}))

	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, "", cfg.Host)
}
