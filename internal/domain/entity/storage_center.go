package entity

import "time"

// OperationalStatus estado operativo de un centro de almacenamiento.
type OperationalStatus int

const (
	OperationalStatusActive   OperationalStatus = 0
	OperationalStatusInactive OperationalStatus = 1
)

// StorageCenter centro físico donde se guardan los repuestos.
// Es de solo lectura para este servicio; las filas se cargan con seed o migraciones.
type StorageCenter struct {
	ID                int64
	Name              string
	Region            string
	CurrentCapacity   int
	OperationalStatus OperationalStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
