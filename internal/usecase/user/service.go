package user

import (
	"context"

	domorder "example.com/food-ordering/app/internal/domain/order"
	domuser "example.com/food-ordering/app/internal/domain/user"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*domuser.User, error)
}

// Service exposes the profile operations the presentation layer needs:
// reading and changing the delivery address and listing order history.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Address(ctx context.Context, userID int64) (string, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return u.Profile.Address(), nil
}

// UpdateAddress changes the delivery address in place; any live checkout
// flow over the same profile sees the new address immediately.
func (s *Service) UpdateAddress(ctx context.Context, userID int64, address string) error {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	return u.Profile.SetAddress(address)
}

func (s *Service) OrderHistory(ctx context.Context, userID int64) ([]domorder.Record, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.Profile.OrderHistory(), nil
}
