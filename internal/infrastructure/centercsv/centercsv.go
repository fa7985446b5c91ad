// Package centercsv lee el CSV de centros exportado por el sistema de almacenes.
//
// El archivo viene en Shift_JIS, con cabecera y cuatro columnas:
// nombre, región, capacidad, estado (0 operativo, 1 inactivo).
package centercsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/jhoicas/drone-inventory/internal/domain/entity"
	"github.com/jhoicas/drone-inventory/internal/domain/rules"
)

// Load abre path y lo interpreta con Parse.
func Load(path string) ([]entity.StorageCenter, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("centros: abrir CSV: %w", err)
	}
	defer f.Close()

	centers, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("centros: leer %s: %w", path, err)
	}
	return centers, nil
}

// Parse decodifica Shift_JIS y valida cada fila con las mismas reglas que la API.
// Los centros salen sin ID; los errores de todas las filas se devuelven juntos.
func Parse(r io.Reader) ([]entity.StorageCenter, error) {
	reader := csv.NewReader(transform.NewReader(r, japanese.ShiftJIS.NewDecoder()))
	reader.FieldsPerRecord = 4
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("cabecera: %w", err)
	}

	var (
		centers []entity.StorageCenter
		errs    []error
	)
	for line := 2; ; line++ {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		c, err := parseRow(line, rec)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		centers = append(centers, c)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return centers, nil
}

func parseRow(line int, rec []string) (entity.StorageCenter, error) {
	c := entity.StorageCenter{
		Name:   strings.TrimSpace(rec[0]),
		Region: strings.TrimSpace(rec[1]),
	}
	switch {
	case c.Name == "":
		return c, fmt.Errorf("línea %d: nombre vacío", line)
	case rules.HasForbiddenCharacter(c.Name):
		return c, fmt.Errorf("línea %d: nombre %q con caracteres no permitidos", line, c.Name)
	case rules.ExceedsLength(c.Name, rules.MaxCenterNameLength):
		return c, fmt.Errorf("línea %d: nombre %q supera %d caracteres", line, c.Name, rules.MaxCenterNameLength)
	case !rules.IsKnownRegion(c.Region):
		return c, fmt.Errorf("línea %d: región desconocida %q", line, c.Region)
	}

	capacity, err := strconv.Atoi(strings.TrimSpace(rec[2]))
	if err != nil || capacity < 0 {
		return c, fmt.Errorf("línea %d: capacidad inválida %q", line, rec[2])
	}
	c.CurrentCapacity = capacity

	switch strings.TrimSpace(rec[3]) {
	case "0":
		c.OperationalStatus = entity.OperationalStatusActive
	case "1":
		c.OperationalStatus = entity.OperationalStatusInactive
	default:
		return c, fmt.Errorf("línea %d: estado inválido %q", line, rec[3])
	}
	return c, nil
}
