package conf

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/oxplot/lambdafy-greeter/util/cliflags"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// DefaultConfig holds default values, keyed by config key.
type DefaultConfig map[string]any

type ParseOptions struct {
	// Cli is the cli.Context from urfave/cli
	Cli *cli.Context

	// Defaults is a map of default values
	Defaults DefaultConfig

	// EnvMap maps env var names to config keys. If set, env vars
	// not in the map are ignored and EnvPrefix is not used.
	EnvMap map[string]string

	// EnvPrefix is the prefix for env vars
	EnvPrefix string

	// FileName is the name of the configuration file to load.
	// Files ending in .env are parsed as dotenv, all others as json.
	FileName string

	// Log is the logger to use
	Log *zap.Logger
}

func Parse[C any](opt ParseOptions) (C, error) {

	var log *zap.Logger
	if opt.Log != nil {
		log = opt.Log
	} else {
		log = zap.NewNop()
	}

	var config C

	k := koanf.New(".")

	if opt.Defaults != nil {
		if err := k.Load(confmap.Provider(opt.Defaults, "."), nil); err != nil {
			log.Error("error loading defaults", zap.Error(err))
			return config, err
		}
	}

	if opt.FileName != "" {
		if err := k.Load(file.Provider(opt.FileName), fileParser(opt)); err != nil {
			log.Error("error parsing file",
				zap.Error(err),
				zap.String("file", opt.FileName),
			)
			return config, fmt.Errorf("failed to load config file %s: %w", opt.FileName, err)
		}
	}

	if err := k.Load(env.Provider(opt.EnvPrefix, ".", envTransformer(opt)), nil); err != nil {
		log.Error("error parsing env vars", zap.Error(err))
		return config, err
	}

	if opt.Cli != nil {
		// flag names map to keys by replacing - with _
		transformFlag := func(s string) string {
			return strings.ReplaceAll(strings.ToLower(s), "-", "_")
		}

		if err := k.Load(cliflags.Provider(opt.Cli, ".", transformFlag), nil); err != nil {
			log.Error("error parsing cli flags", zap.Error(err))
			return config, err
		}
	}

	if err := k.UnmarshalWithConf("", &config, koanf.UnmarshalConf{Tag: "conf"}); err != nil {
		log.Error("error unmarshalling config", zap.Error(err))
		return config, err
	}

	return config, nil
}

func fileParser(opt ParseOptions) koanf.Parser {
	if filepath.Ext(opt.FileName) == ".env" {
		return dotenv.ParserEnv("", ".", func(s string) string {
			if name, ok := opt.EnvMap[s]; ok {
				return name
			}
			return transformEnv(s, "")
		})
	}

	return json.Parser()
}

func envTransformer(opt ParseOptions) func(string) string {
	if opt.EnvMap != nil {
		// koanf skips keys mapped to the empty string
		return func(s string) string {
			return opt.EnvMap[s]
		}
	}

	return func(s string) string {
		return transformEnv(s, opt.EnvPrefix)
	}
}

func transformEnv(s, prefix string) string {
	// strip the prefix, e.g. GREETER_LOG_LEVEL -> LOG_LEVEL
	s = strings.TrimPrefix(s, prefix)
	// allow specifying nested env vars w/ __
	return strings.ReplaceAll(strings.ToLower(s), "__", ".")
}
