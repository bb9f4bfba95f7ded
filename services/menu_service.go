package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/SineMag/Eatery/entity"
	"github.com/SineMag/Eatery/repository"
)

const menuKey = "eatery:menu"

// MenuService owns the canonical list of purchasable items. The collection
// lives in memory; every mutation is written through to the store and
// broadcast to listeners (cart reconciliation, the ws feed).
type MenuService struct {
	mu         sync.Mutex
	store      repository.KVStore
	items      []entity.MenuItem
	categories []entity.Category
	listeners  []func([]entity.MenuItem)
	log        *slog.Logger
}

func NewMenuService(store repository.KVStore, seed []entity.MenuItem, categories []entity.Category, log *slog.Logger) *MenuService {
	s := &MenuService{store: store, categories: categories, log: log}

	b, err := store.Get(context.Background(), menuKey)
	switch {
	case err == repository.ErrKeyNotFound:
		s.items = cloneItems(seed)
		s.persistLocked()
	case err != nil:
		// state continues in-memory even when the store is unreachable
		log.Error("load menu failed", "error", err)
		s.items = cloneItems(seed)
	default:
		if err := json.Unmarshal(b, &s.items); err != nil {
			log.Error("decode menu failed", "error", err)
			s.items = cloneItems(seed)
		}
	}
	return s
}

// OnChange registers a listener invoked with a catalog snapshot after every
// mutation. Listeners run while the catalog lock is held, so deliveries arrive
// in mutation order; a listener must not call back into MenuService. Register
// before serving traffic; not safe to call concurrently with mutations.
func (s *MenuService) OnChange(fn func([]entity.MenuItem)) {
	s.listeners = append(s.listeners, fn)
}

func (s *MenuService) Items() []entity.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneItems(s.items)
}

func (s *MenuService) ItemByID(id string) (entity.MenuItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == id {
			return it.Clone(), true
		}
	}
	return entity.MenuItem{}, false
}

func (s *MenuService) ItemsByCategory(categoryID string) []entity.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.MenuItem
	for _, it := range s.items {
		if it.CategoryID == categoryID {
			out = append(out, it.Clone())
		}
	}
	return out
}

func (s *MenuService) Categories() []entity.Category {
	return append([]entity.Category(nil), s.categories...)
}

func (s *MenuService) AddItem(data entity.MenuItem) entity.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	data.ID = uuid.NewString()
	s.items = append(s.items, data.Clone())
	s.persistLocked()
	s.notifyLocked()
	return data
}

// UpdateItem merges the partial update into the named item. An unknown id is
// a silent no-op; past orders are untouched either way since they hold deep
// copies.
func (s *MenuService) UpdateItem(id string, upd entity.MenuItemUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := false
	for i := range s.items {
		if s.items[i].ID == id {
			upd.Apply(&s.items[i])
			changed = true
			break
		}
	}
	if !changed {
		return
	}
	s.persistLocked()
	s.notifyLocked()
}

// DeleteItem removes the item from the catalog. Cart lines holding the item
// keep their stale snapshot (see CartService.Reconcile). An unknown id is a
// no-op: nothing is persisted and listeners stay quiet.
func (s *MenuService) DeleteItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(s.items) {
		return
	}
	s.items = kept
	s.persistLocked()
	s.notifyLocked()
}

// notifyLocked delivers a catalog snapshot to every listener. Running under
// the lock keeps deliveries in mutation order. Callers hold mu.
func (s *MenuService) notifyLocked() {
	snapshot := cloneItems(s.items)
	for _, fn := range s.listeners {
		fn(snapshot)
	}
}

func (s *MenuService) persistLocked() {
	b, err := json.Marshal(s.items)
	if err != nil {
		s.log.Error("encode menu failed", "error", err)
		return
	}
	if err := s.store.Set(context.Background(), menuKey, b); err != nil {
		s.log.Warn("persist menu failed", "error", err)
	}
}

func cloneItems(items []entity.MenuItem) []entity.MenuItem {
	out := make([]entity.MenuItem, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}
