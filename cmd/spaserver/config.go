package main

import (
	"github.com/dmitrymomot/spaserver/core/server"
	"github.com/dmitrymomot/spaserver/core/static"
)

// Config is the process configuration loaded from the environment and .env.
type Config struct {
	AppName   string `env:"APP_NAME" envDefault:"spaserver"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	Static static.Config
	Server server.Config
}
