// seed_centers genera la migración goose que puebla storage_centers a partir del
// CSV de centros exportado por el sistema de almacenes (codificación Shift_JIS).
// El mismo CSV sirve para STORE_SEED_CENTERS con el almacén en memoria.
//
// Uso: go run ./cmd/seed_centers [ruta/centros.csv] [salida.sql]
// Por defecto lee centros.csv del directorio actual.
// Escribe: migrations/00002_seed_centers.sql
//
// Columnas esperadas (con cabecera): nombre, región, capacidad, estado (0 operativo, 1 inactivo).
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/drone-inventory/internal/domain/entity"
	"github.com/jhoicas/drone-inventory/internal/infrastructure/centercsv"
)

func main() {
	csvPath := "centros.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	outPath := filepath.Join(findModuleRoot(), "migrations", "00002_seed_centers.sql")
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	rows, err := centercsv.Load(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeMigration(out, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d centros\n", outPath, len(rows))
}

func writeMigration(w io.Writer, rows []entity.StorageCenter) error {
	var b strings.Builder
	b.WriteString("-- Centros de almacenamiento\n")
	b.WriteString("-- Generado por cmd/seed_centers\n\n")
	b.WriteString("-- +goose Up\n")
	if len(rows) > 0 {
		b.WriteString("INSERT INTO storage_centers (name, region, current_capacity, operational_status) VALUES\n")
		for i, r := range rows {
			fmt.Fprintf(&b, "  ('%s', '%s', %d, %d)", escapeSQL(r.Name), escapeSQL(r.Region), r.CurrentCapacity, r.OperationalStatus)
			if i < len(rows)-1 {
				b.WriteString(",\n")
			} else {
				b.WriteString(";\n")
			}
		}
	}
	b.WriteString("\n-- +goose Down\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "DELETE FROM storage_centers WHERE name = '%s' AND region = '%s';\n", escapeSQL(r.Name), escapeSQL(r.Region))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
