// Package search traduce los formularios de búsqueda validados a predicados de filtro.
// Cada campo ausente deja el resultado sin restringir; cada campo presente agrega
// exactamente una condición.
package search

import (
	"github.com/jhoicas/drone-inventory/internal/application/dto"
	"github.com/jhoicas/drone-inventory/internal/domain/entity"
	"github.com/jhoicas/drone-inventory/internal/domain/filter"
)

// Columnas del almacén.
const (
	ColID                = "id"
	ColName              = "name"
	ColDescription       = "description"
	ColCategoryID        = "category_id"
	ColAmount            = "amount"
	ColDeleteFlag        = "delete_flag"
	ColRegion            = "region"
	ColCurrentCapacity   = "current_capacity"
	ColOperationalStatus = "operational_status"
)

// ── Categorías ────────────────────────────────────────────────────────────────

func categoryName(c *entity.Category) string { return c.Name }
func categoryFlag(c *entity.Category) int64  { return int64(c.DeleteFlag) }

// ActiveCategories categorías no borradas ordenadas por ID.
func ActiveCategories() *filter.Predicate[entity.Category] {
	return filter.New(ColID, filter.Eq(ColDeleteFlag, int64(entity.DeleteFlagActive), categoryFlag))
}

// CategoryPredicate categorías activas cuyo nombre contiene form.Name.
func CategoryPredicate(form dto.CategorySearchForm) *filter.Predicate[entity.Category] {
	return ActiveCategories().
		Refine(form.Name != "", func() filter.Condition[entity.Category] {
			return filter.Contains(ColName, form.Name, categoryName)
		})
}

// ── Centros ───────────────────────────────────────────────────────────────────

func centerName(c *entity.StorageCenter) string    { return c.Name }
func centerRegion(c *entity.StorageCenter) string  { return c.Region }
func centerCapacity(c *entity.StorageCenter) int64 { return int64(c.CurrentCapacity) }
func centerStatus(c *entity.StorageCenter) int64   { return int64(c.OperationalStatus) }

// AllCenters todos los centros, operativos o no, ordenados por ID.
func AllCenters() *filter.Predicate[entity.StorageCenter] {
	return filter.New[entity.StorageCenter](ColID)
}

// ActiveCenters centros operativos ordenados por ID.
func ActiveCenters() *filter.Predicate[entity.StorageCenter] {
	return filter.New(ColID, filter.Eq(ColOperationalStatus, int64(entity.OperationalStatusActive), centerStatus))
}

// CenterPredicate aplica nombre, región y cotas de capacidad solo cuando vienen informadas.
func CenterPredicate(form dto.CenterSearchForm) *filter.Predicate[entity.StorageCenter] {
	return ActiveCenters().
		Refine(form.Name != "", func() filter.Condition[entity.StorageCenter] {
			return filter.Contains(ColName, form.Name, centerName)
		}).
		Refine(form.Region != "", func() filter.Condition[entity.StorageCenter] {
			return filter.Contains(ColRegion, form.Region, centerRegion)
		}).
		Refine(form.CapacityFrom != nil, func() filter.Condition[entity.StorageCenter] {
			return filter.AtLeast(ColCurrentCapacity, int64(*form.CapacityFrom), centerCapacity)
		}).
		Refine(form.CapacityTo != nil, func() filter.Condition[entity.StorageCenter] {
			return filter.AtMost(ColCurrentCapacity, int64(*form.CapacityTo), centerCapacity)
		})
}

// ── Stock ─────────────────────────────────────────────────────────────────────

func stockName(s *entity.StockItem) string    { return s.Name }
func stockCategory(s *entity.StockItem) int64 { return s.CategoryID }
func stockAmount(s *entity.StockItem) int64   { return int64(s.Amount) }
func stockFlag(s *entity.StockItem) int64     { return int64(s.DeleteFlag) }

// ActiveStocks artículos no borrados ordenados por ID.
func ActiveStocks() *filter.Predicate[entity.StockItem] {
	return filter.New(ColID, filter.Eq(ColDeleteFlag, int64(entity.DeleteFlagActive), stockFlag))
}

// StockPredicate combina categoría, nombre y cantidad.
// La cantidad solo restringe con amountCondition "greater" (>=) o "less" (<=);
// cualquier otro valor la ignora. La descripción no filtra.
func StockPredicate(form dto.StockSearchForm) *filter.Predicate[entity.StockItem] {
	amountCond := amountCondition(form)
	return ActiveStocks().
		Refine(form.CategoryID != nil, func() filter.Condition[entity.StockItem] {
			return filter.Eq(ColCategoryID, *form.CategoryID, stockCategory)
		}).
		Refine(form.Name != "", func() filter.Condition[entity.StockItem] {
			return filter.Contains(ColName, form.Name, stockName)
		}).
		Refine(amountCond != nil, func() filter.Condition[entity.StockItem] {
			return *amountCond
		})
}

func amountCondition(form dto.StockSearchForm) *filter.Condition[entity.StockItem] {
	if form.Amount == nil {
		return nil
	}
	var c filter.Condition[entity.StockItem]
	switch form.AmountCondition {
	case dto.AmountConditionGreater:
		c = filter.AtLeast(ColAmount, int64(*form.Amount), stockAmount)
	case dto.AmountConditionLess:
		c = filter.AtMost(ColAmount, int64(*form.Amount), stockAmount)
	default:
		return nil
	}
	return &c
}
