// Package rules reúne los chequeos atómicos y sin estado que comparten los validadores
// de formularios: caracteres prohibidos, longitudes, rangos y regiones conocidas.
package rules

import (
	"strings"
	"unicode/utf8"
)

// Límites de los campos editables.
const (
	MaxCategoryNameLength     = 20
	MaxCenterNameLength       = 20
	MaxStockNameLength        = 255
	MaxStockDescriptionLength = 255
	MinStockAmount            = 0
	MaxStockAmount            = 10000
)

// ForbiddenCharacters caracteres que no se aceptan en textos libres.
const ForbiddenCharacters = "{}()'*;$&="

// HasForbiddenCharacter indica si text contiene algún carácter de ForbiddenCharacters.
// El texto vacío nunca es prohibido.
func HasForbiddenCharacter(text string) bool {
	return strings.ContainsAny(text, ForbiddenCharacters)
}

// ExceedsLength cuenta caracteres visibles (runas), no bytes.
func ExceedsLength(text string, max int) bool {
	return utf8.RuneCountInString(text) > max
}

// OutOfRange indica si value cae fuera de [min, max] (ambos inclusivos).
func OutOfRange(value, min, max int) bool {
	return value < min || value > max
}

// IsKnownRegion es verdadero si name no está vacío y aparece como subcadena
// de alguna región de la lista fija.
func IsKnownRegion(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range regions {
		if strings.Contains(r, name) {
			return true
		}
	}
	return false
}

// Regions devuelve una copia de la lista de regiones.
func Regions() []string {
	out := make([]string, len(regions))
	copy(out, regions)
	return out
}
