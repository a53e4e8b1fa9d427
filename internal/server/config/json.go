package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/cctv-platform/authd/internal/flagx"
	"github.com/cctv-platform/authd/internal/timex"
)

// JsonConfig is the file-format counterpart of Config. Duration fields use
// timex.Duration so the file can carry either "720h" or integer nanoseconds.
type JsonConfig struct {
	EndpointAddr                 string         `json:"endpoint_addr"`
	DatabaseDSN                  string         `json:"database_dsn"`
	RefreshSecret                string         `json:"refresh_secret"`
	AccessSecret                 string         `json:"access_secret"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	CookieDomain                 string         `json:"cookie_domain"`
	BcryptCost                   int            `json:"bcrypt_cost"`
}

// parseJson overlays configuration values from a JSON file, if one was named
// via the -c/-config flags. A missing flag means no file is loaded; an
// unreadable or invalid file panics, since the process cannot start half
// configured.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddr = c.EndpointAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.RefreshSecret = c.RefreshSecret
	config.AccessSecret = c.AccessSecret
	config.RefreshTokenValidityDuration = time.Duration(c.RefreshTokenValidityDuration.Duration)
	config.AccessTokenValidityDuration = time.Duration(c.AccessTokenValidityDuration.Duration)
	config.CookieDomain = c.CookieDomain
	config.BcryptCost = c.BcryptCost
}
