package gateway

import (
	"context"

	"github.com/google/uuid"

	dompayment "example.com/food-ordering/app/internal/domain/payment"
)

// DeclinedCard is the card number the fake gateway always declines.
const DeclinedCard = "1111222233334444"

// FakeGateway simulates a payment authority: the one well-known card
// number is declined, every other credit card and all paypal charges
// succeed, and anything else is an unsupported method.
type FakeGateway struct{}

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{}
}

func (g *FakeGateway) Process(ctx context.Context, method dompayment.Method, details dompayment.CardDetails, amount float64) (dompayment.GatewayResult, error) {
	switch method {
	case dompayment.MethodCreditCard:
		if details.CardNumber == DeclinedCard {
			return dompayment.GatewayResult{
				Status:  dompayment.StatusFailure,
				Message: "Card declined",
			}, nil
		}
		return dompayment.GatewayResult{
			Status:        dompayment.StatusSuccess,
			TransactionID: "txn_" + uuid.NewString(),
		}, nil
	case dompayment.MethodPayPal:
		return dompayment.GatewayResult{
			Status:        dompayment.StatusSuccess,
			TransactionID: "txn_" + uuid.NewString(),
		}, nil
	default:
		return dompayment.GatewayResult{
			Status:  dompayment.StatusFailure,
			Message: "Unsupported payment method",
		}, nil
	}
}
