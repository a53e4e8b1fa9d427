package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"authd",
		"-a", ":9090",
		"-d", "postgres://u:p@db:5432/auth",
		"-r", "refresh-k",
		"-s", "access-k",
		"-x", "100",
		"-t", "2",
		"-m", "example.com",
		"-b", "10",
	}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, ":9090", c.EndpointAddr)
	assert.Equal(t, "postgres://u:p@db:5432/auth", c.DatabaseDSN)
	assert.Equal(t, "refresh-k", c.RefreshSecret)
	assert.Equal(t, "access-k", c.AccessSecret)
	assert.Equal(t, 100*time.Hour, c.RefreshTokenValidityDuration)
	assert.Equal(t, 2*time.Hour, c.AccessTokenValidityDuration)
	assert.Equal(t, "example.com", c.CookieDomain)
	assert.Equal(t, 10, c.BcryptCost)
}

func TestParseFlags_KeepsDefaultsWithoutFlags(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"authd"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, ":8080", c.EndpointAddr)
	assert.Equal(t, 720*time.Hour, c.RefreshTokenValidityDuration)
}
