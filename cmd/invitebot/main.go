package main

import (
	"log"

	appbot "github.com/digitalcpa/invitebot/app/bot"
	appconfig "github.com/digitalcpa/invitebot/app/config"
	corecmd "github.com/digitalcpa/invitebot/core/cmd"
)

func main() {
	err := corecmd.Run(corecmd.Options{
		ConfigEnvVar:      "CONFIG_PATH",
		DefaultConfigPath: "config/config.yaml",
		LoadConfig: func(path string) (corecmd.ConfigCarrier, error) {
			return appconfig.Load(path)
		},
		Bootstrap: func(cfg corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
			return appbot.Bootstrap(cfg)
		},
	})
	if err != nil {
		log.Fatalf("invitebot: %v", err)
	}
}
