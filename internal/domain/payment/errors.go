package payment

import "errors"

var (
	ErrInvalidMethod = errors.New("invalid payment method")
	ErrInvalidCard   = errors.New("invalid credit card details")
)

// DeclineError reports a gateway rejection. It carries the gateway's
// reason so callers can tell a decline from a malformed request and decide
// whether to retry with corrected input or a different instrument.
type DeclineError struct {
	Reason string
}

func (e *DeclineError) Error() string {
	return "payment failed: " + e.Reason
}
