package dto

import "time"

// LoginRequest credenciales del administrador.
type LoginRequest struct {
	AdminID  string `json:"admin_id"`
	Password string `json:"password"`
}

// AdminResponse salida de un administrador (sin hash).
type AdminResponse struct {
	AdminID   string    `json:"admin_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse token JWT más los datos del administrador.
type LoginResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}
