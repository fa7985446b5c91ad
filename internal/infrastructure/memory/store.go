// Package memory implementa los puertos de persistencia sobre un estado en memoria con
// transacciones por copia: Run trabaja sobre un clon y solo lo publica si fn termina sin error.
// Se usa en pruebas y con STORE_DRIVER=memory.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/drone-inventory/internal/application/usecase"
	"github.com/jhoicas/drone-inventory/internal/domain/entity"
)

var _ usecase.TxRunner = (*Store)(nil)

type state struct {
	categories map[int64]entity.Category
	centers    map[int64]entity.StorageCenter
	stocks     map[int64]entity.StockItem
	admins     map[string]entity.Admin

	lastCategoryID int64
	lastCenterID   int64
	lastStockID    int64
}

func newState() state {
	return state{
		categories: map[int64]entity.Category{},
		centers:    map[int64]entity.StorageCenter{},
		stocks:     map[int64]entity.StockItem{},
		admins:     map[string]entity.Admin{},
	}
}

func (s state) clone() state {
	out := s
	out.categories = make(map[int64]entity.Category, len(s.categories))
	for k, v := range s.categories {
		out.categories[k] = v
	}
	out.centers = make(map[int64]entity.StorageCenter, len(s.centers))
	for k, v := range s.centers {
		out.centers[k] = v
	}
	out.stocks = make(map[int64]entity.StockItem, len(s.stocks))
	for k, v := range s.stocks {
		out.stocks[k] = v
	}
	out.admins = make(map[string]entity.Admin, len(s.admins))
	for k, v := range s.admins {
		out.admins[k] = v
	}
	return out
}

// access abstrae si las operaciones corren contra el estado publicado (con lock)
// o contra el clon de una transacción en curso.
type access interface {
	read(fn func(*state) error) error
	write(fn func(*state) error) error
}

// Store almacén en memoria seguro para uso concurrente.
type Store struct {
	mu    sync.RWMutex
	state state
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{state: newState()}
}

func (s *Store) read(fn func(*state) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&s.state)
}

func (s *Store) write(fn func(*state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state.clone()
	if err := fn(&next); err != nil {
		return err
	}
	s.state = next
	return nil
}

// Repositories repositorios fuera de transacción.
func (s *Store) Repositories() usecase.Repositories {
	return repositoriesFor(s)
}

// Admins repositorio de administradores.
func (s *Store) Admins() *AdminRepo {
	return &AdminRepo{db: s}
}

// Run ejecuta fn con repositorios atados a un clon del estado; publica el clon solo si fn no falla.
// Las transacciones se serializan.
func (s *Store) Run(ctx context.Context, fn func(repos usecase.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	tx := &txState{state: s.state.clone()}
	if err := fn(repositoriesFor(tx)); err != nil {
		return err
	}
	s.state = tx.state
	return nil
}

// SeedCenters inserta centros de almacenamiento; los que vienen sin ID reciben el siguiente.
func (s *Store) SeedCenters(centers ...entity.StorageCenter) {
	_ = s.write(func(st *state) error {
		for _, c := range centers {
			if c.ID == 0 {
				st.lastCenterID++
				c.ID = st.lastCenterID
			} else if c.ID > st.lastCenterID {
				st.lastCenterID = c.ID
			}
			st.centers[c.ID] = c
		}
		return nil
	})
}

type txState struct {
	state state
}

func (t *txState) read(fn func(*state) error) error  { return fn(&t.state) }
func (t *txState) write(fn func(*state) error) error { return fn(&t.state) }

func repositoriesFor(db access) usecase.Repositories {
	return usecase.Repositories{
		Categories: &CategoryRepo{db: db},
		Centers:    &StorageCenterRepo{db: db},
		Stocks:     &StockItemRepo{db: db},
	}
}
