package services

import (
	"context"

	"github.com/imalriyad/bistro-boss-server/entity"
)

type PaymentStore interface {
	Insert(ctx context.Context, p *entity.Payment) (string, error)
}

// CartCleaner removes cart entries by their item ids after a payment is
// recorded.
type CartCleaner interface {
	DeleteByItemIDs(ctx context.Context, ids []string) (int64, error)
}

// IntentCreator is the payment-gateway adapter: one opaque call that turns
// an amount into a client secret.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error)
}

type PaymentService struct {
	Payments PaymentStore
	Cart     CartCleaner
	Intents  IntentCreator
}

func NewPaymentService(payments PaymentStore, cart CartCleaner, intents IntentCreator) *PaymentService {
	return &PaymentService{Payments: payments, Cart: cart, Intents: intents}
}

// CreateIntent converts the price to integer cents and asks the gateway for
// a payment intent in USD.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(price * 100)
	return s.Intents.CreateIntent(ctx, amount, "usd")
}

// Save records the payment, then clears the cart entries it covers. The two
// writes are not transactional: if the cleanup fails the payment is already
// stored and the stale entries remain.
func (s *PaymentService) Save(ctx context.Context, p *entity.Payment) (string, error) {
	id, err := s.Payments.Insert(ctx, p)
	if err != nil {
		return "", err
	}
	if _, err := s.Cart.DeleteByItemIDs(ctx, p.ItemID); err != nil {
		return id, err
	}
	return id, nil
}
