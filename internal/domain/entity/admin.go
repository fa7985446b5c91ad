package entity

import "time"

// Admin operador con acceso a las pantallas de administración.
type Admin struct {
	AdminID      string
	Name         string
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
