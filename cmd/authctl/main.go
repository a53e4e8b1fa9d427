package main

import (
	"context"

	"github.com/cctv-platform/authd/internal/client/cli"
	"github.com/cctv-platform/authd/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app := cli.NewApp(cfg)
	app.Run(ctx)
}
