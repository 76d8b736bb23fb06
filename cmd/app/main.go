package main

import (
	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	server := di.InitializeService()
	server.Serve()
}
