package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

type Outcome string

const (
	OutcomeConfirmed Outcome = "CONFIRMED"
	OutcomeFailed    Outcome = "FAILED"
	OutcomeTimedOut  Outcome = "TIMED_OUT"
)

// Result is the terminal state of one checkout attempt.
type Result struct {
	Outcome         Outcome `json:"outcome"`
	TransactionCode string  `json:"transaction_code,omitempty"`
	Message         string  `json:"message"`
	Err             error   `json:"-"`
}

// RecordStore persists the business record behind one checkout attempt: a
// pending insert when the gateway accepts, and a single terminal update
// when the payment settles.
type RecordStore interface {
	CreatePending(ctx context.Context) error
	MarkPaid(ctx context.Context, transactionCode string) error
}

// Request carries everything the poller needs for one attempt. PhoneNumber
// must already be normalized to international format.
type Request struct {
	PhoneNumber string
	Amount      int
	Reference   string
	Record      RecordStore
}

type Config struct {
	// Delay before the first status check; shorter than the steady
	// interval so a fast payer is confirmed quickly.
	InitialDelay time.Duration
	PollInterval time.Duration
	MaxAttempts  int
}

// Poller drives a checkout attempt from initiation to a terminal outcome:
//
//	initiate -> persist pending -> poll until settled, timed out or failed
//
// Sleep is injectable so the loop is testable without real timers; nil
// means time.Sleep. Alert, when set, is invoked for storage failures that
// leave money potentially in flight with no local record.
type Poller struct {
	Gateway Gateway
	Status  StatusSource
	Config  Config
	Sleep   func(time.Duration)
	Alert   func(reference, phoneNumber string, amount int, detail string)
}

func (p *Poller) sleep(d time.Duration) {
	if p.Sleep != nil {
		p.Sleep(d)
		return
	}
	time.Sleep(d)
}

// Confirm runs the payment-confirmation protocol for one checkout attempt.
// Every transition is reported through progress so a UI can render the
// wait; the returned Result is the terminal transition. A failed attempt is
// never resumed — retrying means a fresh checkout with a fresh reference.
func (p *Poller) Confirm(ctx context.Context, req Request, progress func(message string)) Result {
	report := func(message string) {
		if progress != nil {
			progress(message)
		}
	}

	report("Initiating payment request...")
	if err := p.Gateway.Initiate(ctx, req.PhoneNumber, req.Amount, req.Reference); err != nil {
		// Nothing was written; the user can simply retry.
		return Result{
			Outcome: OutcomeFailed,
			Message: err.Error(),
			Err:     err,
		}
	}

	report("Please wait for an M-Pesa prompt.")

	// The record is created only after the gateway accepts, so a rejected
	// checkout never leaves a row behind.
	if err := req.Record.CreatePending(ctx); err != nil {
		detail := err.Error()
		log.Printf("RECONCILE: pending record write failed after gateway acceptance, reference=%s phone=%s amount=%d: %v",
			req.Reference, req.PhoneNumber, req.Amount, err)
		if p.Alert != nil {
			p.Alert(req.Reference, req.PhoneNumber, req.Amount, detail)
		}
		return Result{
			Outcome: OutcomeFailed,
			Message: "We could not record your payment. Please contact support quoting reference " + req.Reference + ".",
			Err:     fmt.Errorf("%w: %v", ErrStorageWriteFailed, err),
		}
	}

	p.sleep(p.Config.InitialDelay)

	for attempt := 1; attempt <= p.Config.MaxAttempts; attempt++ {
		status, err := p.Status.Check(ctx, req.Reference)
		if err != nil {
			// A flaky read is not a failed payment; it just consumes an
			// attempt like any other not-yet-confirmed check.
			log.Printf("payment status check failed for %s (attempt %d/%d): %v",
				req.Reference, attempt, p.Config.MaxAttempts, err)
		}

		if status.Confirmed {
			if err := req.Record.MarkPaid(ctx, status.TransactionCode); err != nil {
				log.Printf("RECONCILE: confirmed payment could not be recorded, reference=%s code=%s: %v",
					req.Reference, status.TransactionCode, err)
				if p.Alert != nil {
					p.Alert(req.Reference, req.PhoneNumber, req.Amount, err.Error())
				}
				return Result{
					Outcome:         OutcomeFailed,
					TransactionCode: status.TransactionCode,
					Message:         "Your payment went through but we could not update your booking. Please contact support quoting reference " + req.Reference + ".",
					Err:             fmt.Errorf("%w: %v", ErrStorageWriteFailed, err),
				}
			}
			return Result{
				Outcome:         OutcomeConfirmed,
				TransactionCode: status.TransactionCode,
				Message:         "Your payment has been processed successfully.",
			}
		}

		if attempt < p.Config.MaxAttempts {
			report(fmt.Sprintf("Awaiting payment confirmation (attempt %d of %d)...", attempt, p.Config.MaxAttempts))
			p.sleep(p.Config.PollInterval)
		}
	}

	// The record stays pending; a later reconciliation sweep can still
	// settle it if the payment eventually lands.
	return Result{
		Outcome: OutcomeTimedOut,
		Message: "Payment verification timed out. Please check your M-Pesa balance or try again.",
		Err:     errors.New("payment confirmation timed out"),
	}
}
