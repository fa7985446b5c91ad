package dto

import "time"

// CategorySearchForm filtros de la búsqueda de categorías.
type CategorySearchForm struct {
	Name string `query:"name" json:"name"`
}

// CategoryForm alta, edición o borrado lógico de una categoría.
// ID debe venir vacío en el alta.
type CategoryForm struct {
	ID         *int64 `json:"id,omitempty"`
	Name       string `json:"name"`
	DeleteFlag bool   `json:"delete_flag"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	DeleteFlag int       `json:"delete_flag"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CategoryListResponse lista de categorías.
type CategoryListResponse struct {
	Items   []CategoryResponse `json:"items"`
	Message string             `json:"message,omitempty"`
}
