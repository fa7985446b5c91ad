package entity

import "time"

// StockItem artículo de inventario: pertenece a una categoría y a un centro.
type StockItem struct {
	ID          int64
	CategoryID  int64
	CenterID    int64
	Name        string
	Description string // opcional
	Amount      int    // 0..10000
	DeleteFlag  DeleteFlag
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
