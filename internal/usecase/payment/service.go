package payment

import (
	"context"

	dompayment "example.com/food-ordering/app/internal/domain/payment"
)

// Service validates payment methods and delegates charging to the
// injected gateway.
type Service struct {
	gateway dompayment.Gateway
}

func NewService(gateway dompayment.Gateway) *Service {
	return &Service{gateway: gateway}
}

// ValidatePaymentMethod checks that the method is one of the supported
// kinds and, for credit cards, that the card details pass
// ValidateCreditCard.
func (s *Service) ValidatePaymentMethod(method dompayment.Method, details dompayment.CardDetails) error {
	if !method.IsValid() {
		return dompayment.ErrInvalidMethod
	}
	if method == dompayment.MethodCreditCard && !ValidateCreditCard(details) {
		return dompayment.ErrInvalidCard
	}
	return nil
}

// ValidateCreditCard requires all three card fields and checks lengths
// only: a 16-character number and a 3-character CVV. No Luhn or other
// checksum is attempted; the gateway is the authority on real card
// validity.
func ValidateCreditCard(details dompayment.CardDetails) bool {
	if details.CardNumber == "" || details.ExpiryDate == "" || details.CVV == "" {
		return false
	}
	return len(details.CardNumber) == 16 && len(details.CVV) == 3
}

// ProcessPayment charges amount through the gateway. Unsupported methods
// are rejected before the gateway is contacted. A gateway decline comes
// back as a *dompayment.DeclineError carrying the gateway's reason.
func (s *Service) ProcessPayment(ctx context.Context, amount float64, method dompayment.Method, details dompayment.CardDetails) (dompayment.Receipt, error) {
	if !method.IsValid() {
		return dompayment.Receipt{}, dompayment.ErrInvalidMethod
	}

	result, err := s.gateway.Process(ctx, method, details, amount)
	if err != nil {
		return dompayment.Receipt{}, err
	}
	if result.Status != dompayment.StatusSuccess {
		return dompayment.Receipt{}, &dompayment.DeclineError{Reason: result.Message}
	}

	return dompayment.Receipt{
		TransactionID: result.TransactionID,
		Message:       "Payment successful, Order confirmed",
	}, nil
}
