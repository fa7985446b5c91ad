// Package filter modela predicados de búsqueda como una conjunción de condiciones
// independientes del almacén. Un adaptador los traduce a SQL y el almacén en
// memoria los evalúa fila a fila; ambos producen el mismo conjunto de resultados.
package filter

import "strings"

// Op operador de comparación de una condición.
type Op string

const (
	OpEq       Op = "eq"
	OpContains Op = "contains" // subcadena, sensible a mayúsculas
	OpGte      Op = "gte"
	OpLte      Op = "lte"
)

// Condition restricción sobre una columna. Field es el nombre de columna del almacén.
type Condition[T any] struct {
	Field string
	Op    Op
	Value any

	match func(*T) bool
}

// Matches evalúa la condición contra una fila en memoria.
func (c Condition[T]) Matches(row *T) bool {
	if c.match == nil {
		return true
	}
	return c.match(row)
}

// Eq igualdad exacta.
func Eq[T any, V comparable](field string, value V, get func(*T) V) Condition[T] {
	return Condition[T]{
		Field: field,
		Op:    OpEq,
		Value: value,
		match: func(row *T) bool { return get(row) == value },
	}
}

// Contains coincidencia por subcadena.
func Contains[T any](field, value string, get func(*T) string) Condition[T] {
	return Condition[T]{
		Field: field,
		Op:    OpContains,
		Value: value,
		match: func(row *T) bool { return strings.Contains(get(row), value) },
	}
}

// AtLeast columna >= value.
func AtLeast[T any](field string, value int64, get func(*T) int64) Condition[T] {
	return Condition[T]{
		Field: field,
		Op:    OpGte,
		Value: value,
		match: func(row *T) bool { return get(row) >= value },
	}
}

// AtMost columna <= value.
func AtMost[T any](field string, value int64, get func(*T) int64) Condition[T] {
	return Condition[T]{
		Field: field,
		Op:    OpLte,
		Value: value,
		match: func(row *T) bool { return get(row) <= value },
	}
}
