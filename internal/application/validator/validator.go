// Package validator contiene los validadores compuestos de cada formulario.
// Cada validador evalúa sus reglas en orden y devuelve el primer fallo; nunca
// modifica el formulario ni consulta el almacén.
package validator

import (
	"fmt"

	"github.com/jhoicas/drone-inventory/internal/domain"
	"github.com/jhoicas/drone-inventory/internal/domain/rules"
)

// Mensajes de validación.
var (
	MsgAllFieldsEmpty      = "ingrese al menos un criterio de búsqueda"
	MsgForbiddenCharacter  = fmt.Sprintf("el valor contiene caracteres no permitidos (%s)", rules.ForbiddenCharacters)
	MsgInvalidRegion       = "la región indicada no existe"
	MsgCategoryNameBlank   = "el nombre de la categoría es obligatorio"
	MsgCategoryNameLength  = fmt.Sprintf("el nombre de la categoría admite como máximo %d caracteres", rules.MaxCategoryNameLength)
	MsgCenterNameLength    = fmt.Sprintf("el nombre del centro admite como máximo %d caracteres", rules.MaxCenterNameLength)
	MsgStockNameRequired   = "el nombre del artículo es obligatorio"
	MsgStockNameLength     = fmt.Sprintf("el nombre del artículo admite como máximo %d caracteres", rules.MaxStockNameLength)
	MsgStockDescLength     = fmt.Sprintf("la descripción admite como máximo %d caracteres", rules.MaxStockDescriptionLength)
	MsgStockAmountRequired = "la cantidad es obligatoria"
	MsgStockAmountRange    = fmt.Sprintf("la cantidad debe estar entre %d y %d", rules.MinStockAmount, rules.MaxStockAmount)
	MsgCategoryRequired    = "la categoría es obligatoria"
	MsgCenterRequired      = "el centro es obligatorio"
)

// Rule una regla sobre el formulario F; nil significa que la regla pasa.
type Rule[F any] func(F) *domain.ValidationError

// Run evalúa las reglas de arriba hacia abajo y corta en el primer fallo.
func Run[F any](form F, rs ...Rule[F]) error {
	for _, r := range rs {
		if v := r(form); v != nil {
			return v
		}
	}
	return nil
}

func forbidden[F any](field string, get func(F) string) Rule[F] {
	return func(f F) *domain.ValidationError {
		if rules.HasForbiddenCharacter(get(f)) {
			return domain.NewValidationError(field, MsgForbiddenCharacter)
		}
		return nil
	}
}

func maxLength[F any](field string, max int, msg string, get func(F) string) Rule[F] {
	return func(f F) *domain.ValidationError {
		if rules.ExceedsLength(get(f), max) {
			return domain.NewValidationError(field, msg)
		}
		return nil
	}
}

func required[F any](field, msg string, present func(F) bool) Rule[F] {
	return func(f F) *domain.ValidationError {
		if !present(f) {
			return domain.NewValidationError(field, msg)
		}
		return nil
	}
}

// unless omite la regla cuando skip es verdadero.
func unless[F any](skip func(F) bool, r Rule[F]) Rule[F] {
	return func(f F) *domain.ValidationError {
		if skip(f) {
			return nil
		}
		return r(f)
	}
}
