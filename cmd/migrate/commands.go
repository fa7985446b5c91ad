package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"

	"github.com/jhoicas/drone-inventory/internal/infrastructure/postgres"
	"github.com/jhoicas/drone-inventory/pkg/config"
	"github.com/jhoicas/drone-inventory/pkg/logger"
)

type options struct {
	databaseURL string
	logLevel    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Migraciones del esquema de inventario",
		Long:          "Aplica, revierte e inspecciona las migraciones goose del esquema PostgreSQL",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.databaseURL, "database-url", "", "connection string; por defecto la de la configuración")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "trace, debug, info, warn, error")

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Aplica las migraciones pendientes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return opts.run(cmd.Context(), "up", func(ctx context.Context, m *postgres.Migrator) error {
					return m.Up(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Revierte la última migración aplicada",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return opts.run(cmd.Context(), "down", func(ctx context.Context, m *postgres.Migrator) error {
					return m.Down(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Muestra las migraciones aplicadas y pendientes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return opts.run(cmd.Context(), "status", func(ctx context.Context, m *postgres.Migrator) error {
					return m.Status(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Imprime la versión actual del esquema",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return opts.run(cmd.Context(), "version", func(ctx context.Context, m *postgres.Migrator) error {
					v, err := m.Version(ctx)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), v)
					return nil
				})
			},
		},
	)
	return root
}

// run abre el pool, ejecuta fn sobre el migrador y registra el resultado.
func (o *options) run(ctx context.Context, name string, fn func(context.Context, *postgres.Migrator) error) error {
	log := logger.New(logger.Config{Env: "development", Level: o.logLevel, Service: "migrate"})

	dbCfg := config.LoadDB()
	if o.databaseURL != "" {
		dbCfg.DatabaseURL = o.databaseURL
	}

	pool, err := postgres.NewPool(ctx, dbCfg)
	if err != nil {
		log.Error().Err(err).Msg("conexión a PostgreSQL")
		return err
	}
	defer pool.Close()

	if err := fn(ctx, migratorFor(pool)); err != nil {
		log.Error().Err(err).Str("command", name).Msg("migración fallida")
		return err
	}
	log.Info().Str("command", name).Msg("migración completada")
	return nil
}

func migratorFor(pool *pgxpool.Pool) *postgres.Migrator {
	return postgres.NewMigrator(stdlib.OpenDBFromPool(pool))
}
