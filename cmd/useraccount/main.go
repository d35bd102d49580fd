package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"user-account-api/internal"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Printf("useraccount stopped with error: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	app, err := internal.NewApp(ctx)
	if err != nil {
		return fmt.Errorf("init app failed: %w", err)
	}
	defer app.Close()

	if err = app.InitControllers(); err != nil {
		return fmt.Errorf("init controllers failed: %w", err)
	}

	if err = app.Run(ctx); err != nil {
		app.Logger().Error("useraccount stopped", zap.Error(err))
		return err
	}

	return nil
}
