package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/imalriyad/bistro-boss-server/entity"
)

// ErrDuplicateItem signals that the (id, email) pair is already in the cart.
var ErrDuplicateItem = errors.New("item already added to the cart")

type CartStore interface {
	FindByIDAndEmail(ctx context.Context, id primitive.ObjectID, email string) (*entity.CartItem, error)
	Insert(ctx context.Context, item *entity.CartItem) (string, error)
	List(ctx context.Context, email string) ([]entity.CartItem, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}

type CartService struct{ Cart CartStore }

func NewCartService(cart CartStore) *CartService { return &CartService{Cart: cart} }

// Add inserts the item unless the same (id, email) pair is already stored.
// Like the user create, the guard is a read before the insert.
func (s *CartService) Add(ctx context.Context, item *entity.CartItem) (string, error) {
	exist, err := s.Cart.FindByIDAndEmail(ctx, item.ID, item.Email)
	if err != nil {
		return "", err
	}
	if exist != nil {
		return "", ErrDuplicateItem
	}
	return s.Cart.Insert(ctx, item)
}

func (s *CartService) List(ctx context.Context, email string) ([]entity.CartItem, error) {
	return s.Cart.List(ctx, email)
}

func (s *CartService) Remove(ctx context.Context, id string) (int64, error) {
	return s.Cart.DeleteByID(ctx, id)
}
