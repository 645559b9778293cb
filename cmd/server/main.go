package main

import (
	"flag"

	"listkeeper/global"
	"listkeeper/initialize"
	"listkeeper/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("build app")
	}

	app.Cfg.Watch(func(level string) {
		initialize.ApplyLogLevel(level)
		global.Logger.Info().Str("level", level).Msg("log level reloaded")
	})

	if err := server.Start(app.Cfg.Server.Host, app.Cfg.Server.Port, app.Router); err != nil {
		global.Logger.Fatal().Err(err).Msg("http server")
	}
}
