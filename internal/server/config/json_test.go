package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_OverlaysValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	body := `{
		"endpoint_addr": ":7070",
		"database_dsn": "postgres://u:p@db:5432/auth",
		"refresh_secret": "rk",
		"access_secret": "ak",
		"refresh_token_validity_duration": "720h",
		"access_token_validity_duration": "15h",
		"cookie_domain": "cams.example.com",
		"bcrypt_cost": 8
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"authd", "-c", path}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, ":7070", c.EndpointAddr)
	assert.Equal(t, "rk", c.RefreshSecret)
	assert.Equal(t, "ak", c.AccessSecret)
	assert.Equal(t, 720*time.Hour, c.RefreshTokenValidityDuration)
	assert.Equal(t, 15*time.Hour, c.AccessTokenValidityDuration)
	assert.Equal(t, "cams.example.com", c.CookieDomain)
}

func TestParseJson_NoFileFlagIsNoop(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"authd"}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, ":8080", c.EndpointAddr)
}
