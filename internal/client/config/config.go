// Package config handles configuration for the authctl client.
package config

import (
	"flag"
	"os"

	"github.com/cctv-platform/authd/internal/flagx"
)

type Config struct {
	ServerAddr string
}

func (c *Config) LoadDefaults() {
	c.ServerAddr = "http://localhost:8080"
}

// LoadConfig builds a Config from defaults overridden by command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)
	return cfg
}

// parseFlags reads the -e flag (server base URL), ignoring flags owned by
// other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&config.ServerAddr, "e", config.ServerAddr, "server base URL")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
