package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/adatasks/internal/app"
	"github.com/dmitrijs2005/adatasks/internal/buildinfo"
	"github.com/dmitrijs2005/adatasks/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	a, err := app.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	a.Run(ctx)

}
