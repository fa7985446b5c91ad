package postgres

import (
	"context"
	"database/sql"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/jhoicas/drone-inventory/migrations"
)

// Migrator aplica las migraciones goose embebidas sobre db.
type Migrator struct {
	db  *sql.DB
	fs  fs.FS
	dir string
}

// NewMigrator usa las migraciones embebidas del paquete migrations.
func NewMigrator(db *sql.DB) *Migrator {
	return &Migrator{db: db, fs: migrations.FS, dir: "."}
}

func (m *Migrator) prepare() error {
	goose.SetBaseFS(m.fs)
	return goose.SetDialect("postgres")
}

// Up aplica todas las migraciones pendientes.
func (m *Migrator) Up(ctx context.Context) error {
	if err := m.prepare(); err != nil {
		return err
	}
	return goose.UpContext(ctx, m.db, m.dir)
}

// Down revierte la última migración aplicada.
func (m *Migrator) Down(ctx context.Context) error {
	if err := m.prepare(); err != nil {
		return err
	}
	return goose.DownContext(ctx, m.db, m.dir)
}

// Status imprime el estado de cada migración vía el logger de goose.
func (m *Migrator) Status(ctx context.Context) error {
	if err := m.prepare(); err != nil {
		return err
	}
	return goose.StatusContext(ctx, m.db, m.dir)
}

// Version devuelve la versión actual del esquema.
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	if err := m.prepare(); err != nil {
		return 0, err
	}
	return goose.GetDBVersionContext(ctx, m.db)
}

// Close cierra la conexión database/sql.
func (m *Migrator) Close() error {
	return m.db.Close()
}
