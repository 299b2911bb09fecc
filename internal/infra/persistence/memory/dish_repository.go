package memory

import (
	"context"
	"sync"

	domdish "example.com/grubhouse/internal/domain/dish"
	"example.com/grubhouse/internal/infra/idgen"
)

// DishRepository keeps dishes in an append-ordered slice guarded by a
// RWMutex. All reads return clones so callers never alias store-owned
// records.
type DishRepository struct {
	mu     sync.RWMutex
	dishes []*domdish.Dish
	ids    idgen.Generator
}

func NewDishRepository(ids idgen.Generator) *DishRepository {
	return &DishRepository{ids: ids}
}

func (r *DishRepository) List(ctx context.Context) ([]*domdish.Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domdish.Dish, 0, len(r.dishes))
	for _, d := range r.dishes {
		cloned := *d
		out = append(out, &cloned)
	}
	return out, nil
}

func (r *DishRepository) GetByID(ctx context.Context, id string) (*domdish.Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.dishes {
		if d.ID == id {
			cloned := *d
			return &cloned, nil
		}
	}
	return nil, &domdish.NotFoundError{ID: id}
}

func (r *DishRepository) Create(ctx context.Context, d *domdish.Dish) (*domdish.Dish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *d
	stored.ID = r.ids.NextID()
	r.dishes = append(r.dishes, &stored)

	cloned := stored
	return &cloned, nil
}

func (r *DishRepository) Update(ctx context.Context, d *domdish.Dish) (*domdish.Dish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.dishes {
		if existing.ID == d.ID {
			stored := *d
			r.dishes[i] = &stored
			cloned := stored
			return &cloned, nil
		}
	}
	return nil, &domdish.NotFoundError{ID: d.ID}
}

// Load seeds the store with pre-existing records, assigning ids where the
// seed data omits them. Intended for startup seeding only.
func (r *DishRepository) Load(dishes []*domdish.Dish) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range dishes {
		stored := *d
		if stored.ID == "" {
			stored.ID = r.ids.NextID()
		}
		r.dishes = append(r.dishes, &stored)
	}
}
