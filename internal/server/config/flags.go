package config

import (
	"flag"
	"os"
	"time"

	"github.com/cctv-platform/authd/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-r string   refresh-token signing secret
//	-s string   access-token signing secret
//	-x int      refresh token validity, hours
//	-t int      access token validity, hours
//	-m string   cookie domain for the refresh response
//	-b int      bcrypt cost for new password hashes
//
// os.Args is first filtered to only the flags handled here, so these flags
// never collide with flags owned by other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-r", "-s", "-x", "-t", "-m", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.RefreshSecret, "r", config.RefreshSecret, "refresh token secret")
	fs.StringVar(&config.AccessSecret, "s", config.AccessSecret, "access token secret")

	refreshTokenValidityDuration := fs.Int("x", int(config.RefreshTokenValidityDuration.Hours()), "refresh_token_validity_duration (in hours)")
	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Hours()), "access_token_validity_duration (in hours)")

	fs.StringVar(&config.CookieDomain, "m", config.CookieDomain, "cookie domain")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RefreshTokenValidityDuration = time.Duration(*refreshTokenValidityDuration) * time.Hour
	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Hour
}
