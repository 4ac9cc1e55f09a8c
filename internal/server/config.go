package server

import "github.com/oxplot/lambdafy-greeter/util/conf"

type HttpConfig struct {
	// Host is the interface to bind, empty for all interfaces.
	Host string `conf:"host"`
	Port int    `conf:"port"`
	H2c  bool   `conf:"h2c"`
}

var DefaultConfig = conf.DefaultConfig{
	"host": "",
	"port": 8080,
	"h2c":  false,
}

var EnvMap = map[string]string{
	"PORT":      "port",
	"HTTP_HOST": "host",
	"HTTP_H2C":  "h2c",
}
