package dto

import "time"

// CenterSearchForm filtros de la búsqueda de centros. Las cotas de capacidad son opcionales.
type CenterSearchForm struct {
	Name         string `json:"name"`
	Region       string `json:"region"`
	CapacityFrom *int   `json:"capacity_from,omitempty"`
	CapacityTo   *int   `json:"capacity_to,omitempty"`
}

// IsEmpty verdadero si no se informó ningún filtro.
func (f CenterSearchForm) IsEmpty() bool {
	return f.Name == "" && f.Region == "" && f.CapacityFrom == nil && f.CapacityTo == nil
}

// CenterResponse salida de un centro de almacenamiento.
type CenterResponse struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Region            string    `json:"region"`
	CurrentCapacity   int       `json:"current_capacity"`
	OperationalStatus int       `json:"operational_status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CenterListResponse lista de centros.
type CenterListResponse struct {
	Items   []CenterResponse `json:"items"`
	Message string           `json:"message,omitempty"`
}
