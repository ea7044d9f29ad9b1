package payments

import "errors"

var (
	// ErrGatewayRejected means the gateway answered but declined to queue
	// the push (bad phone, gateway-side configuration). Terminal; nothing
	// is written.
	ErrGatewayRejected = errors.New("payment gateway rejected the request")

	// ErrGatewayUnreachable covers network failures, non-2xx responses and
	// malformed bodies from the gateway. Terminal; nothing is written.
	ErrGatewayUnreachable = errors.New("payment gateway unreachable")

	// ErrStorageWriteFailed means the gateway accepted the push but the
	// pending record could not be persisted. The payer may still be
	// charged, so this class is surfaced loudly and raises an operator
	// alert instead of being folded into a generic failure.
	ErrStorageWriteFailed = errors.New("failed to persist payment record")

	// ErrDuplicateReference means a poll loop was already started for the
	// reference. References are generated fresh per checkout attempt, so
	// hitting this is a caller bug.
	ErrDuplicateReference = errors.New("a payment is already in flight for this reference")
)
