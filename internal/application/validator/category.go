package validator

import (
	"strings"

	"github.com/jhoicas/drone-inventory/internal/application/dto"
	"github.com/jhoicas/drone-inventory/internal/domain/rules"
)

// ValidateCategorySearch solo rechaza caracteres prohibidos; un nombre vacío lista todo.
func ValidateCategorySearch(form dto.CategorySearchForm) error {
	return Run(form,
		forbidden("name", func(f dto.CategorySearchForm) string { return f.Name }),
	)
}

// ValidateCategoryForm valida alta y edición. En el borrado lógico el nombre no es obligatorio.
func ValidateCategoryForm(form dto.CategoryForm) error {
	name := func(f dto.CategoryForm) string { return f.Name }
	deleting := func(f dto.CategoryForm) bool { return f.DeleteFlag }
	return Run(form,
		unless(deleting, required("name", MsgCategoryNameBlank, func(f dto.CategoryForm) bool {
			return strings.TrimSpace(f.Name) != ""
		})),
		unless(deleting, maxLength("name", rules.MaxCategoryNameLength, MsgCategoryNameLength, name)),
		forbidden("name", name),
	)
}
