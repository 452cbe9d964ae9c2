package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/eministar/nebidash/internal/client/cli"
	"github.com/eministar/nebidash/internal/client/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(app)
	if err := root.ExecuteContext(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
