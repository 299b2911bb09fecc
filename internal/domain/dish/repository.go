package dish

import "context"

type Repository interface {
	List(ctx context.Context) ([]*Dish, error)
	GetByID(ctx context.Context, id string) (*Dish, error)
	Create(ctx context.Context, d *Dish) (*Dish, error)
	Update(ctx context.Context, d *Dish) (*Dish, error)
}
