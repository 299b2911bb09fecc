package memory

import (
	"context"
	"sync"

	domorder "example.com/grubhouse/internal/domain/order"
	"example.com/grubhouse/internal/infra/idgen"
)

// OrderRepository keeps orders in an append-ordered slice guarded by a
// RWMutex, cloning on every read. Deletes splice the slice in place.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []*domorder.Order
	ids    idgen.Generator
}

func NewOrderRepository(ids idgen.Generator) *OrderRepository {
	return &OrderRepository{ids: ids}
}

func cloneOrder(o *domorder.Order) *domorder.Order {
	cloned := *o
	cloned.Dishes = make([]domorder.LineItem, len(o.Dishes))
	copy(cloned.Dishes, o.Dishes)
	return &cloned
}

func (r *OrderRepository) List(ctx context.Context) ([]*domorder.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domorder.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, cloneOrder(o))
	}
	return out, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domorder.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			return cloneOrder(o), nil
		}
	}
	return nil, &domorder.NotFoundError{ID: id}
}

func (r *OrderRepository) Create(ctx context.Context, o *domorder.Order) (*domorder.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneOrder(o)
	stored.ID = r.ids.NextID()
	r.orders = append(r.orders, stored)

	return cloneOrder(stored), nil
}

func (r *OrderRepository) Update(ctx context.Context, o *domorder.Order) (*domorder.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.orders {
		if existing.ID == o.ID {
			stored := cloneOrder(o)
			r.orders[i] = stored
			return cloneOrder(stored), nil
		}
	}
	return nil, &domorder.NotFoundError{ID: o.ID}
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.orders {
		if existing.ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return &domorder.NotFoundError{ID: id}
}

// Load seeds the store with pre-existing records, assigning ids where the
// seed data omits them. Intended for startup seeding only.
func (r *OrderRepository) Load(orders []*domorder.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range orders {
		stored := cloneOrder(o)
		if stored.ID == "" {
			stored.ID = r.ids.NextID()
		}
		r.orders = append(r.orders, stored)
	}
}
