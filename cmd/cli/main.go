package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gophclip/internal/client/cli"
	"github.com/dmitrijs2005/gophclip/internal/client/config"
	"github.com/dmitrijs2005/gophclip/internal/flagx"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	rc := app.Run(ctx, flagx.RestArgs(os.Args[1:], config.Flags))
	stop()
	os.Exit(rc)
}
