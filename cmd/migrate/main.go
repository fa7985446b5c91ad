// migrate aplica o revierte las migraciones goose embebidas en el binario.
//
// Uso: go run ./cmd/migrate [up|down|status|version] [--database-url postgres://...]
// Sin --database-url usa DATABASE_URL o DB_HOST/DB_PORT/... igual que la API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
