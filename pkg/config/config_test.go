package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/drone-inventory/pkg/config"
)

// chdir cambia el directorio de trabajo durante el test y lo restaura al terminar.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_ValoresPorDefecto(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JWT_SECRET", "s3cr3t")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, config.StoreDriverPostgres, cfg.Store.Driver)
	assert.False(t, cfg.Store.AutoMigrate)
	assert.Empty(t, cfg.Store.SeedCenters)
	assert.Empty(t, cfg.PDF.FontFile)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 25, cfg.DB.MaxConns)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("ADMIN_BOOTSTRAP_ID", "root")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STORE_SEED_CENTERS", "./data/centros.csv")
	t.Setenv("PDF_FONT_FILE", "/fonts/NotoSansJP-Regular.ttf")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.StoreDriverMemory, cfg.Store.Driver)
	assert.True(t, cfg.Store.AutoMigrate)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "root", cfg.Admin.ID)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "./data/centros.csv", cfg.Store.SeedCenters)
	assert.Equal(t, "/fonts/NotoSansJP-Regular.ttf", cfg.PDF.FontFile)
}

func TestLoad_Rechazos(t *testing.T) {
	chdir(t, t.TempDir())

	t.Run("sin secreto JWT", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("driver desconocido", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cr3t")
		t.Setenv("STORE_DRIVER", "sqlite")
		_, err := config.Load()
		assert.ErrorContains(t, err, "STORE_DRIVER")
	})
}

func TestDBConfig_ConnectionString(t *testing.T) {
	db := config.DBConfig{Host: "db", Port: 5432, User: "inv", Password: "p@ss:word", DBName: "drones", SSLMode: "disable"}
	assert.Equal(t, "postgres://inv:p%40ss%3Aword@db:5432/drones?sslmode=disable", db.ConnectionString())

	db.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", db.ConnectionString())
}

func TestLoadDB_NoExigeSecretoJWT(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DATABASE_URL", "postgres://migrador@db/drones")

	db := config.LoadDB()
	assert.Equal(t, "postgres://migrador@db/drones", db.ConnectionString())
}
