package main

import (
	"context"
	"log"
	"os"

	"github.com/udalba/campusmarket/internal/app"
	"github.com/udalba/campusmarket/internal/buildinfo"
	"github.com/udalba/campusmarket/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	a, err := app.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	a.Run(ctx)

}
