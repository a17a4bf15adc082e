package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/recmarket/internal/buildinfo"
	"github.com/dmitrijs2005/recmarket/internal/client/cli"
	"github.com/dmitrijs2005/recmarket/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig(os.Args[1:])
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
