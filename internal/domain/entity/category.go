package entity

import "time"

// DeleteFlag marca de borrado lógico compartida por categorías y artículos de stock.
type DeleteFlag int

const (
	DeleteFlagActive  DeleteFlag = 0
	DeleteFlagDeleted DeleteFlag = 1
)

// FlagFor traduce el indicador booleano de los formularios a DeleteFlag.
func FlagFor(deleted bool) DeleteFlag {
	if deleted {
		return DeleteFlagDeleted
	}
	return DeleteFlagActive
}

// IsDeleted indica si la fila está borrada lógicamente.
func (f DeleteFlag) IsDeleted() bool { return f == DeleteFlagDeleted }

// Category representa una categoría de repuestos de drones.
// El nombre es único entre todas las filas, incluidas las borradas.
type Category struct {
	ID         int64
	Name       string
	DeleteFlag DeleteFlag
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
