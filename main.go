package main

import (
	"context"

	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/bootstrap"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/logger"
)

func main() {
	ctx := context.Background()

	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		panic(err)
	}

	if err := app.Run(); err != nil {
		logger.ErrorErr(ctx, err, "Server stopped")
	}
}
