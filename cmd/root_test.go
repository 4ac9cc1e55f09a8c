package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/oxplot/lambdafy-greeter/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug": zap.DebugLevel,
		"warn":  zap.WarnLevel,
		"error": zap.ErrorLevel,
		"":      zap.InfoLevel,
		"loud":  zap.InfoLevel,
	}

	for lvl, expected := range tests {
		t.Run(lvl, func(t *testing.T) {
			assert.Equal(t, expected, parseLogLevel(lvl).Level())
		})
	}
}

func TestCreateLogger(t *testing.T) {
	for _, format := range []string{"production", "development", ""} {
		t.Run(format, func(t *testing.T) {
			log, err := createLogger(config.Config{LogLevel: "warn", LogFormat: format})
			require.NoError(t, err)

			assert.False(t, log.Core().Enabled(zap.InfoLevel))
			assert.True(t, log.Core().Enabled(zap.WarnLevel))
		})
	}
}

func TestIsAWSLambda(t *testing.T) {
	t.Setenv("AWS_LAMBDA_RUNTIME_API", "")
	assert.False(t, isAWSLambda())

	t.Setenv("AWS_LAMBDA_RUNTIME_API", "127.0.0.1:9001")
	assert.True(t, isAWSLambda())
}

func TestRun_MissingConfigFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")

	code := run(context.Background(), []string{appName, "--config-file", missing, "serve"})

	assert.Equal(t, 1, code)
}

func TestRun_InvalidProxySource(t *testing.T) {
	t.Setenv("START_TIMEOUT", "1s")

	code := run(context.Background(), []string{appName, "lambda", "--lambda-proxy-source", "SMTP"})

	assert.Equal(t, 1, code)
}
