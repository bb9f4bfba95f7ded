package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SineMag/Eatery/entity"
	"github.com/SineMag/Eatery/repository"
)

const ordersKey = "eatery:orders"

var ErrOrderNotFound = errors.New("order not found")

// OrderService is the durable ledger of placed orders, most recent first.
// Orders are immutable snapshots: nothing that happens to the cart or the
// menu after placement can change one. Records are never removed, only
// soft-deleted.
type OrderService struct {
	mu     sync.Mutex
	store  repository.KVStore
	orders []entity.Order

	// whether ListForUser exposes soft-deleted orders to their owner
	showDeleted bool

	notify func(entity.Order)
	log    *slog.Logger
}

func NewOrderService(store repository.KVStore, showDeleted bool, log *slog.Logger) *OrderService {
	s := &OrderService{store: store, showDeleted: showDeleted, log: log}

	b, err := store.Get(context.Background(), ordersKey)
	switch {
	case err == repository.ErrKeyNotFound:
	case err != nil:
		log.Error("load orders failed", "error", err)
	default:
		if err := json.Unmarshal(b, &s.orders); err != nil {
			log.Error("decode orders failed", "error", err)
			s.orders = nil
		}
	}
	return s
}

// SetNotify installs a hook called after every ledger change. The hook runs
// while the ledger lock is held, so events arrive in ledger order; it must not
// block and must not call back into OrderService. Install before serving
// traffic.
func (s *OrderService) SetNotify(fn func(entity.Order)) {
	s.notify = fn
}

// Add materializes a priced cart into a new pending order. Items are deep
// copies so later cart mutation cannot retroactively alter the order; the
// total is computed by the caller and stored as given, never recomputed here.
func (s *OrderService) Add(userID uint, items []entity.CartLine, total decimal.Decimal, deliveryAddress, paymentMethod, userName, userContact string) entity.Order {
	order := entity.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Items:           entity.CloneLines(items),
		Total:           total,
		Status:          entity.StatusPending,
		DeliveryAddress: deliveryAddress,
		PaymentMethod:   paymentMethod,
		CreatedAt:       time.Now().UTC(),
		UserName:        userName,
		UserContact:     userContact,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]entity.Order{order}, s.orders...)
	s.persistLocked()
	s.emitLocked(order)
	return order.Clone()
}

func (s *OrderService) ListForUser(userID uint) []entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Order
	for _, o := range s.orders {
		if o.UserID != userID {
			continue
		}
		if o.Status == entity.StatusDeleted && !s.showDeleted {
			continue
		}
		out = append(out, o.Clone())
	}
	return out
}

func (s *OrderService) GetForUser(userID uint, orderID string) (entity.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == orderID && o.UserID == userID {
			return o.Clone(), true
		}
	}
	return entity.Order{}, false
}

// ListAll is the admin view; soft-deleted orders stay visible there.
func (s *OrderService) ListAll() []entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = o.Clone()
	}
	return out
}

// UpdateStatus moves an order along the fulfillment chain. Transitions are
// validated: terminal orders cannot be reopened and steps cannot be skipped.
func (s *OrderService) UpdateStatus(orderID string, next entity.OrderStatus) (entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		if !entity.CanTransition(s.orders[i].Status, next) {
			return entity.Order{}, fmt.Errorf("%w: %s -> %s", entity.ErrInvalidTransition, s.orders[i].Status, next)
		}
		s.orders[i].Status = next
		updated := s.orders[i].Clone()
		s.persistLocked()
		s.emitLocked(updated)
		return updated, nil
	}
	return entity.Order{}, ErrOrderNotFound
}

// Delete soft-deletes: the record stays in the ledger with status "deleted".
// Unknown ids and already-deleted orders are no-ops.
func (s *OrderService) Delete(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID != orderID || s.orders[i].Status == entity.StatusDeleted {
			continue
		}
		s.orders[i].Status = entity.StatusDeleted
		s.persistLocked()
		s.emitLocked(s.orders[i].Clone())
		return
	}
}

// emitLocked hands the changed order to the notify hook. Callers hold mu.
func (s *OrderService) emitLocked(o entity.Order) {
	if s.notify != nil {
		s.notify(o)
	}
}

func (s *OrderService) persistLocked() {
	b, err := json.Marshal(s.orders)
	if err != nil {
		s.log.Error("encode orders failed", "error", err)
		return
	}
	if err := s.store.Set(context.Background(), ordersKey, b); err != nil {
		s.log.Warn("persist orders failed", "error", err)
	}
}
