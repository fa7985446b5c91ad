package validator

import (
	"strings"

	"github.com/jhoicas/drone-inventory/internal/application/dto"
	"github.com/jhoicas/drone-inventory/internal/domain"
	"github.com/jhoicas/drone-inventory/internal/domain/rules"
)

// ValidateStockSearch valida nombre, cantidad y descripción en ese orden.
func ValidateStockSearch(form dto.StockSearchForm) error {
	return Run(form,
		forbidden("name", func(f dto.StockSearchForm) string { return f.Name }),
		amountInRange(func(f dto.StockSearchForm) *int { return f.Amount }),
		forbidden("description", func(f dto.StockSearchForm) string { return f.Description }),
	)
}

// ValidateStockForm valida alta y edición. Los obligatorios no aplican al borrado lógico.
func ValidateStockForm(form dto.StockForm) error {
	deleting := func(f dto.StockForm) bool { return f.DeleteFlag }
	name := func(f dto.StockForm) string { return f.Name }
	desc := func(f dto.StockForm) string { return f.Description }
	return Run(form,
		unless(deleting, required("name", MsgStockNameRequired, func(f dto.StockForm) bool {
			return strings.TrimSpace(f.Name) != ""
		})),
		unless(deleting, required("amount", MsgStockAmountRequired, func(f dto.StockForm) bool {
			return f.Amount != nil
		})),
		unless(deleting, required("category_id", MsgCategoryRequired, func(f dto.StockForm) bool {
			return f.CategoryID != nil
		})),
		unless(deleting, required("center_id", MsgCenterRequired, func(f dto.StockForm) bool {
			return f.CenterID != nil
		})),
		maxLength("name", rules.MaxStockNameLength, MsgStockNameLength, name),
		maxLength("description", rules.MaxStockDescriptionLength, MsgStockDescLength, desc),
		forbidden("name", name),
		amountInRange(func(f dto.StockForm) *int { return f.Amount }),
		forbidden("description", desc),
	)
}

func amountInRange[F any](get func(F) *int) Rule[F] {
	return func(f F) *domain.ValidationError {
		if a := get(f); a != nil && rules.OutOfRange(*a, rules.MinStockAmount, rules.MaxStockAmount) {
			return domain.NewValidationError("amount", MsgStockAmountRange)
		}
		return nil
	}
}
