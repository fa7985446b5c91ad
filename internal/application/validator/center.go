package validator

import (
	"github.com/jhoicas/drone-inventory/internal/application/dto"
	"github.com/jhoicas/drone-inventory/internal/domain"
	"github.com/jhoicas/drone-inventory/internal/domain/rules"
)

// ValidateCenterSearch rechaza el formulario vacío antes que cualquier fallo por campo.
func ValidateCenterSearch(form dto.CenterSearchForm) error {
	name := func(f dto.CenterSearchForm) string { return f.Name }
	return Run(form,
		allFieldsEmpty,
		forbidden("name", name),
		maxLength("name", rules.MaxCenterNameLength, MsgCenterNameLength, name),
		knownRegion,
	)
}

func allFieldsEmpty(f dto.CenterSearchForm) *domain.ValidationError {
	if f.IsEmpty() {
		return domain.NewValidationError("", MsgAllFieldsEmpty)
	}
	return nil
}

func knownRegion(f dto.CenterSearchForm) *domain.ValidationError {
	if f.Region != "" && !rules.IsKnownRegion(f.Region) {
		return domain.NewValidationError("region", MsgInvalidRegion)
	}
	return nil
}
