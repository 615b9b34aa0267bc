package payment

import "context"

// Method identifies how the customer pays.
type Method string

const (
	MethodCreditCard Method = "credit_card"
	MethodPayPal     Method = "paypal"
)

func (m Method) IsValid() bool {
	switch m {
	case MethodCreditCard, MethodPayPal:
		return true
	default:
		return false
	}
}

// CardDetails carries the card fields collected at checkout. PayPal
// payments leave it empty.
type CardDetails struct {
	CardNumber string
	ExpiryDate string
	CVV        string
}

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// GatewayResult is the outcome shape every gateway reports: a status, a
// failure message when declined, and a transaction ID when charged.
type GatewayResult struct {
	Status        Status
	Message       string
	TransactionID string
}

// Gateway is the single capability a payment authority must expose. A
// real gateway substitutes for the fake without touching validation
// logic.
type Gateway interface {
	Process(ctx context.Context, method Method, details CardDetails, amount float64) (GatewayResult, error)
}

// Receipt reports a successful charge.
type Receipt struct {
	TransactionID string
	Message       string
}
