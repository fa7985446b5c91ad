package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/drone-inventory/internal/domain"
	"github.com/jhoicas/drone-inventory/internal/domain/entity"
	"github.com/jhoicas/drone-inventory/internal/domain/filter"
	"github.com/jhoicas/drone-inventory/internal/domain/repository"
)

var (
	_ repository.CategoryRepository      = (*CategoryRepo)(nil)
	_ repository.StorageCenterRepository = (*StorageCenterRepo)(nil)
	_ repository.StockItemRepository     = (*StockItemRepo)(nil)
	_ repository.AdminRepository         = (*AdminRepo)(nil)
)

// find evalúa pred sobre rows y ordena por ID ascendente.
func find[T any](rows map[int64]T, pred *filter.Predicate[T]) []*T {
	ids := make([]int64, 0, len(rows))
	for id := range rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := []*T{}
	for _, id := range ids {
		row := rows[id]
		if pred.Matches(&row) {
			out = append(out, &row)
		}
	}
	return out
}

// ── Categorías ────────────────────────────────────────────────────────────────

// CategoryRepo implementación en memoria de CategoryRepository.
type CategoryRepo struct {
	db access
}

// Create inserta y asigna el ID. El nombre es único entre todas las filas.
func (r *CategoryRepo) Create(_ context.Context, category *entity.Category) error {
	return r.db.write(func(st *state) error {
		if nameTaken(st, category.Name, 0) {
			return fmt.Errorf("%w: categoría %q", domain.ErrDuplicate, category.Name)
		}
		st.lastCategoryID++
		category.ID = st.lastCategoryID
		st.categories[category.ID] = *category
		return nil
	})
}

func (r *CategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	var out *entity.Category
	err := r.db.read(func(st *state) error {
		if c, ok := st.categories[id]; ok {
			out = &c
		}
		return nil
	})
	return out, err
}

func (r *CategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	var out *entity.Category
	err := r.db.read(func(st *state) error {
		for _, c := range st.categories {
			if c.Name == name {
				out = &c
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *CategoryRepo) Update(_ context.Context, category *entity.Category) error {
	return r.db.write(func(st *state) error {
		if _, ok := st.categories[category.ID]; !ok {
			return fmt.Errorf("%w: categoría %d", domain.ErrNotFound, category.ID)
		}
		if nameTaken(st, category.Name, category.ID) {
			return fmt.Errorf("%w: categoría %q", domain.ErrDuplicate, category.Name)
		}
		st.categories[category.ID] = *category
		return nil
	})
}

func (r *CategoryRepo) Find(_ context.Context, pred *filter.Predicate[entity.Category]) ([]*entity.Category, error) {
	var out []*entity.Category
	err := r.db.read(func(st *state) error {
		out = find(st.categories, pred)
		return nil
	})
	return out, err
}

func nameTaken(st *state, name string, exceptID int64) bool {
	for id, c := range st.categories {
		if id != exceptID && c.Name == name {
			return true
		}
	}
	return false
}

// ── Centros ───────────────────────────────────────────────────────────────────

// StorageCenterRepo implementación en memoria de StorageCenterRepository.
type StorageCenterRepo struct {
	db access
}

func (r *StorageCenterRepo) GetByID(_ context.Context, id int64) (*entity.StorageCenter, error) {
	var out *entity.StorageCenter
	err := r.db.read(func(st *state) error {
		if c, ok := st.centers[id]; ok {
			out = &c
		}
		return nil
	})
	return out, err
}

func (r *StorageCenterRepo) Find(_ context.Context, pred *filter.Predicate[entity.StorageCenter]) ([]*entity.StorageCenter, error) {
	var out []*entity.StorageCenter
	err := r.db.read(func(st *state) error {
		out = find(st.centers, pred)
		return nil
	})
	return out, err
}

// ── Stock ─────────────────────────────────────────────────────────────────────

// StockItemRepo implementación en memoria de StockItemRepository.
// Verifica las referencias igual que las claves foráneas de PostgreSQL.
type StockItemRepo struct {
	db access
}

func (r *StockItemRepo) Create(_ context.Context, item *entity.StockItem) error {
	return r.db.write(func(st *state) error {
		if err := checkReferences(st, item); err != nil {
			return err
		}
		st.lastStockID++
		item.ID = st.lastStockID
		st.stocks[item.ID] = *item
		return nil
	})
}

func (r *StockItemRepo) GetByID(_ context.Context, id int64) (*entity.StockItem, error) {
	var out *entity.StockItem
	err := r.db.read(func(st *state) error {
		if s, ok := st.stocks[id]; ok {
			out = &s
		}
		return nil
	})
	return out, err
}

func (r *StockItemRepo) Update(_ context.Context, item *entity.StockItem) error {
	return r.db.write(func(st *state) error {
		if _, ok := st.stocks[item.ID]; !ok {
			return fmt.Errorf("%w: artículo %d", domain.ErrNotFound, item.ID)
		}
		if err := checkReferences(st, item); err != nil {
			return err
		}
		st.stocks[item.ID] = *item
		return nil
	})
}

func (r *StockItemRepo) Find(_ context.Context, pred *filter.Predicate[entity.StockItem]) ([]*entity.StockItem, error) {
	var out []*entity.StockItem
	err := r.db.read(func(st *state) error {
		out = find(st.stocks, pred)
		return nil
	})
	return out, err
}

func checkReferences(st *state, item *entity.StockItem) error {
	if _, ok := st.categories[item.CategoryID]; !ok {
		return fmt.Errorf("%w: categoría %d", domain.ErrNotFound, item.CategoryID)
	}
	if _, ok := st.centers[item.CenterID]; !ok {
		return fmt.Errorf("%w: centro %d", domain.ErrNotFound, item.CenterID)
	}
	return nil
}

// ── Administradores ───────────────────────────────────────────────────────────

// AdminRepo implementación en memoria de AdminRepository.
type AdminRepo struct {
	db access
}

func (r *AdminRepo) Create(_ context.Context, admin *entity.Admin) error {
	return r.db.write(func(st *state) error {
		if _, ok := st.admins[admin.AdminID]; ok {
			return fmt.Errorf("%w: administrador %q", domain.ErrDuplicate, admin.AdminID)
		}
		st.admins[admin.AdminID] = *admin
		return nil
	})
}

func (r *AdminRepo) GetByAdminID(_ context.Context, adminID string) (*entity.Admin, error) {
	var out *entity.Admin
	err := r.db.read(func(st *state) error {
		if a, ok := st.admins[adminID]; ok {
			out = &a
		}
		return nil
	})
	return out, err
}
