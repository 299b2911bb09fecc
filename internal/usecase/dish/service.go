package dish

import (
	"context"

	domdish "example.com/grubhouse/internal/domain/dish"
)

type Service struct {
	repo domdish.Repository
}

func NewService(repo domdish.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*domdish.Dish, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*domdish.Dish, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, d *domdish.Dish) (*domdish.Dish, error) {
	return s.repo.Create(ctx, d)
}

// Update overwrites the dish found under routeID with the supplied fields.
// A payload id, when present, must match the found record's id.
func (s *Service) Update(ctx context.Context, routeID string, d *domdish.Dish) (*domdish.Dish, error) {
	found, err := s.repo.GetByID(ctx, routeID)
	if err != nil {
		return nil, err
	}

	if d.ID != "" && d.ID != found.ID {
		return nil, &domdish.IDMismatchError{Found: found.ID, Supplied: d.ID}
	}

	d.ID = found.ID
	return s.repo.Update(ctx, d)
}
