package config

import (
	"flag"
	"fmt"
)

const HelpMessage = `
Taxi Analytics Backend

Usage:
  analytics [flags]

Flags:
  -config-path string   Path to the config yaml file (default "config.yaml")
  -help                 Show this message

Configuration is read from the YAML file and the environment, environment
variables win. See config.yaml for the full list of settings.
`

func PrintHelp() {
	if HelpMessage != "" {
		fmt.Printf("%s", HelpMessage)
	} else {
		flag.Usage()
	}
}

// PrintConfig prints the effective configuration, secrets excluded.
func PrintConfig(cfg *Config) {
	fmt.Printf("server port:        %s\n", cfg.Server.Port)
	fmt.Printf("database:           %s:%s/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.Database)
	fmt.Printf("cors origins:       %s\n", cfg.CORS.AllowedOrigins)
	fmt.Printf("ingest trips:       %d\n", cfg.Ingest.DefaultTrips)
	fmt.Printf("broadcast interval: %s\n", cfg.Dashboard.BroadcastInterval)
	fmt.Printf("log level:          %s\n", cfg.LogLevel)
}
