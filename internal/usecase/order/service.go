package order

import (
	"context"

	domorder "example.com/grubhouse/internal/domain/order"
)

type Service struct {
	repo domorder.Repository
}

func NewService(repo domorder.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*domorder.Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*domorder.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores the caller-supplied status verbatim; the status enum is
// only enforced on update.
func (s *Service) Create(ctx context.Context, o *domorder.Order) (*domorder.Order, error) {
	return s.repo.Create(ctx, o)
}

// Update overwrites the order found under routeID. Checks run in pipeline
// order: status must be a known enum value, a delivered order is terminal,
// and a payload id, when present, must match the found record's id.
func (s *Service) Update(ctx context.Context, routeID string, o *domorder.Order) (*domorder.Order, error) {
	found, err := s.repo.GetByID(ctx, routeID)
	if err != nil {
		return nil, err
	}

	if !o.Status.IsValid() {
		return nil, domorder.ErrInvalidStatus
	}
	if found.Status == domorder.StatusDelivered {
		return nil, domorder.ErrDeliveredLocked
	}
	if o.ID != "" && o.ID != found.ID {
		return nil, &domorder.IDMismatchError{Found: found.ID, Supplied: o.ID}
	}

	o.ID = found.ID
	return s.repo.Update(ctx, o)
}

// Delete removes an order, allowed only while it is still pending.
func (s *Service) Delete(ctx context.Context, id string) error {
	found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if found.Status != domorder.StatusPending {
		return domorder.ErrDeleteNotPending
	}
	return s.repo.Delete(ctx, id)
}
