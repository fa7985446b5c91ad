package dto

import "time"

// Valores aceptados en StockSearchForm.AmountCondition.
const (
	AmountConditionGreater = "greater"
	AmountConditionLess    = "less"
)

// StockSearchForm filtros de la búsqueda de stock.
type StockSearchForm struct {
	CategoryID      *int64 `json:"category_id,omitempty"`
	Name            string `json:"name"`
	Amount          *int   `json:"amount,omitempty"`
	AmountCondition string `json:"amount_condition"` // greater | less
	Description     string `json:"description"`
}

// StockForm alta, edición o borrado lógico de un artículo de stock.
type StockForm struct {
	ID          *int64 `json:"id,omitempty"`
	CategoryID  *int64 `json:"category_id,omitempty"`
	CenterID    *int64 `json:"center_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Amount      *int   `json:"amount,omitempty"`
	DeleteFlag  bool   `json:"delete_flag"`
}

// StockResponse salida de un artículo con los nombres de categoría y centro resueltos.
type StockResponse struct {
	ID           int64     `json:"id"`
	CategoryID   int64     `json:"category_id"`
	CategoryName string    `json:"category_name"`
	CenterID     int64     `json:"center_id"`
	CenterName   string    `json:"center_name"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Amount       int       `json:"amount"`
	DeleteFlag   int       `json:"delete_flag"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StockListResponse lista de artículos.
type StockListResponse struct {
	Items   []StockResponse `json:"items"`
	Message string          `json:"message,omitempty"`
}

// StockOptionsResponse opciones de las pantallas de alta y edición.
type StockOptionsResponse struct {
	Categories []OptionItem `json:"categories"`
	Centers    []OptionItem `json:"centers"`
}
