package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SineMag/Eatery/entity"
	"github.com/SineMag/Eatery/repository"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

func cartKey(userID uint) string { return fmt.Sprintf("eatery:cart:%d", userID) }

// LineTotal is the pricing function: base price plus non-included drinks plus
// extras, times quantity. Sides are always bundled and ingredient edits are
// fulfillment instructions, so neither affects price.
func LineTotal(item entity.MenuItem, quantity int, c entity.Customization) decimal.Decimal {
	unit := item.Price
	for _, d := range c.SelectedDrinks {
		if !d.Included {
			unit = unit.Add(d.Price)
		}
	}
	for _, e := range c.SelectedExtras {
		unit = unit.Add(e.Price)
	}
	return unit.Mul(decimal.NewFromInt(int64(quantity)))
}

// CartService keeps each user's working set of lines. Carts are loaded from
// the store on first touch and written through after every mutation, so they
// survive restarts. All mutations share one lock; carts are small and every
// operation is an in-memory transformation.
type CartService struct {
	mu    sync.Mutex
	store repository.KVStore
	carts map[uint][]entity.CartLine
	// latest catalog snapshot, keyed by item id. Carts deserialized after a
	// restart are refreshed against it so cold carts cannot miss a menu change.
	catalog map[string]entity.MenuItem
	log     *slog.Logger
}

func NewCartService(store repository.KVStore, log *slog.Logger) *CartService {
	return &CartService{store: store, carts: make(map[uint][]entity.CartLine), log: log}
}

// AddLine appends a new line with a fresh id. Identical item+customization
// pairs are never merged; every add is its own line. Quantities below one are
// the caller's bug, not something to clamp.
func (s *CartService) AddLine(userID uint, item entity.MenuItem, quantity int, c entity.Customization) (entity.CartLine, error) {
	if quantity < 1 {
		return entity.CartLine{}, ErrInvalidQuantity
	}

	line := entity.CartLine{
		ID:            uuid.NewString(),
		MenuItem:      item.Clone(),
		Quantity:      quantity,
		Customization: c.Clone(),
		TotalPrice:    LineTotal(item, quantity, c),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.linesLocked(userID)
	s.carts[userID] = append(lines, line)
	s.persistLocked(userID)
	return line.Clone(), nil
}

// RemoveLine is idempotent; removing an unknown line is a no-op.
func (s *CartService) RemoveLine(userID uint, lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.linesLocked(userID)
	kept := lines[:0]
	for _, l := range lines {
		if l.ID != lineID {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(lines) {
		return
	}
	s.carts[userID] = kept
	s.persistLocked(userID)
}

// UpdateQuantity recomputes the line total for the new quantity. Zero or
// negative is coerced to a removal; a non-positive quantity is never stored.
func (s *CartService) UpdateQuantity(userID uint, lineID string, quantity int) {
	if quantity <= 0 {
		s.RemoveLine(userID, lineID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.linesLocked(userID)
	for i := range lines {
		if lines[i].ID == lineID {
			lines[i].Quantity = quantity
			lines[i].TotalPrice = LineTotal(lines[i].MenuItem, quantity, lines[i].Customization)
			s.persistLocked(userID)
			return
		}
	}
}

// UpdateCustomization replaces the line's customization and reprices it. The
// selections are not validated against the item's available options; the
// caller assembles them from the same snapshot it displays.
func (s *CartService) UpdateCustomization(userID uint, lineID string, c entity.Customization) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.linesLocked(userID)
	for i := range lines {
		if lines[i].ID == lineID {
			lines[i].Customization = c.Clone()
			lines[i].TotalPrice = LineTotal(lines[i].MenuItem, lines[i].Quantity, c)
			s.persistLocked(userID)
			return
		}
	}
}

func (s *CartService) Clear(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[userID] = []entity.CartLine{}
	s.persistLocked(userID)
}

func (s *CartService) Lines(userID uint) []entity.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return entity.CloneLines(s.linesLocked(userID))
}

func (s *CartService) Total(userID uint) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, l := range s.linesLocked(userID) {
		total = total.Add(l.TotalPrice)
	}
	return total
}

// Snapshot returns the lines and their summed total under a single lock
// acquisition, so callers pricing an order see a consistent pair.
func (s *CartService) Snapshot(userID uint) ([]entity.CartLine, decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.linesLocked(userID)
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.TotalPrice)
	}
	return entity.CloneLines(lines), total
}

// ItemCount sums quantities across lines, for the cart badge.
func (s *CartService) ItemCount(userID uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, l := range s.linesLocked(userID) {
		count += l.Quantity
	}
	return count
}

// Reconcile refreshes embedded menu snapshots after a catalog change and
// reprices affected lines. Lines whose item was deleted keep their stale
// snapshot: an admin edit elsewhere must not destroy a user's in-progress
// cart.
func (s *CartService) Reconcile(catalog []entity.MenuItem) {
	byID := make(map[string]entity.MenuItem, len(catalog))
	for _, it := range catalog {
		byID[it.ID] = it
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = byID
	for userID, lines := range s.carts {
		if s.reconcileLocked(lines) {
			s.persistLocked(userID)
		}
	}
}

// reconcileLocked refreshes snapshots in place against the held catalog and
// reports whether anything was touched. Callers hold mu.
func (s *CartService) reconcileLocked(lines []entity.CartLine) bool {
	changed := false
	for i := range lines {
		latest, ok := s.catalog[lines[i].MenuItem.ID]
		if !ok {
			continue
		}
		lines[i].MenuItem = latest.Clone()
		lines[i].TotalPrice = LineTotal(latest, lines[i].Quantity, lines[i].Customization)
		changed = true
	}
	return changed
}

// linesLocked lazily loads the user's cart from the store. A cart read cold
// may predate catalog changes made while nobody touched it, so it is
// reconciled the moment it is deserialized. Callers hold mu.
func (s *CartService) linesLocked(userID uint) []entity.CartLine {
	if lines, ok := s.carts[userID]; ok {
		return lines
	}

	lines := []entity.CartLine{}
	b, err := s.store.Get(context.Background(), cartKey(userID))
	switch {
	case err == repository.ErrKeyNotFound:
	case err != nil:
		s.log.Error("load cart failed", "user", userID, "error", err)
	default:
		if err := json.Unmarshal(b, &lines); err != nil {
			s.log.Error("decode cart failed", "user", userID, "error", err)
			lines = []entity.CartLine{}
		}
	}
	s.carts[userID] = lines
	if s.catalog != nil && s.reconcileLocked(lines) {
		s.persistLocked(userID)
	}
	return lines
}

func (s *CartService) persistLocked(userID uint) {
	b, err := json.Marshal(s.carts[userID])
	if err != nil {
		s.log.Error("encode cart failed", "user", userID, "error", err)
		return
	}
	if err := s.store.Set(context.Background(), cartKey(userID), b); err != nil {
		s.log.Warn("persist cart failed", "user", userID, "error", err)
	}
}
