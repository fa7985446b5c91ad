package dto

// ErrorResponse cuerpo de error HTTP. Field se informa cuando el fallo es de un campo concreto.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// CreatedResponse salida de una alta: el ID asignado por el almacén.
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// OptionItem par id/nombre para listas desplegables.
type OptionItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NoResultsMessage mensaje informativo cuando una búsqueda no encuentra filas.
const NoResultsMessage = "no se encontraron resultados"
