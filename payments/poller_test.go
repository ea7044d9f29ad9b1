package payments

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

type fakeGateway struct {
	err   error
	calls int
}

func (g *fakeGateway) Initiate(ctx context.Context, phoneNumber string, amount int, reference string) error {
	g.calls++
	return g.err
}

// scriptedStatus returns one scripted result per check, then repeats the
// last entry.
type scriptedStatus struct {
	script []func() (Status, error)
	checks int
}

func notYet() (Status, error) { return Status{}, nil }

func confirmed(code string) func() (Status, error) {
	return func() (Status, error) { return Status{Confirmed: true, TransactionCode: code}, nil }
}

func checkFails() (Status, error) { return Status{}, errors.New("connection reset") }

func (s *scriptedStatus) Check(ctx context.Context, reference string) (Status, error) {
	idx := s.checks
	if idx >= len(s.script) {
		idx = len(s.script) - 1
	}
	s.checks++
	return s.script[idx]()
}

type fakeStore struct {
	createErr   error
	markErr     error
	createCalls int
	markCalls   int
	markedCode  string
}

func (s *fakeStore) CreatePending(ctx context.Context) error {
	s.createCalls++
	return s.createErr
}

func (s *fakeStore) MarkPaid(ctx context.Context, transactionCode string) error {
	s.markCalls++
	s.markedCode = transactionCode
	return s.markErr
}

func newTestPoller(gateway *fakeGateway, status StatusSource, maxAttempts int) (*Poller, *[]time.Duration) {
	sleeps := &[]time.Duration{}
	p := &Poller{
		Gateway: gateway,
		Status:  status,
		Config: Config{
			InitialDelay: 5 * time.Second,
			PollInterval: 10 * time.Second,
			MaxAttempts:  maxAttempts,
		},
		Sleep: func(d time.Duration) { *sleeps = append(*sleeps, d) },
	}
	return p, sleeps
}

func TestConfirm_GatewayRejected(t *testing.T) {
	gateway := &fakeGateway{err: fmt.Errorf("%w: invalid phone", ErrGatewayRejected)}
	status := &scriptedStatus{script: []func() (Status, error){notYet}}
	store := &fakeStore{}
	p, _ := newTestPoller(gateway, status, 15)

	result := p.Confirm(context.Background(), Request{
		PhoneNumber: "+254722123456",
		Amount:      1000,
		Reference:   "INV-1",
		Record:      store,
	}, nil)

	if result.Outcome != OutcomeFailed {
		t.Fatalf("expected FAILED, got %s", result.Outcome)
	}
	if !errors.Is(result.Err, ErrGatewayRejected) {
		t.Errorf("expected ErrGatewayRejected, got %v", result.Err)
	}
	if store.createCalls != 0 {
		t.Errorf("no record should be written when the gateway rejects, got %d writes", store.createCalls)
	}
	if status.checks != 0 {
		t.Errorf("no poll attempts should be made, got %d", status.checks)
	}
}

func TestConfirm_SuccessOnThirdAttempt(t *testing.T) {
	gateway := &fakeGateway{}
	status := &scriptedStatus{script: []func() (Status, error){notYet, notYet, confirmed("QJ7X9")}}
	store := &fakeStore{}
	p, _ := newTestPoller(gateway, status, 15)

	result := p.Confirm(context.Background(), Request{
		PhoneNumber: "+254722123456",
		Amount:      2000,
		Reference:   "INV-1000",
		Record:      store,
	}, nil)

	if result.Outcome != OutcomeConfirmed {
		t.Fatalf("expected CONFIRMED, got %s (%s)", result.Outcome, result.Message)
	}
	if result.TransactionCode != "QJ7X9" {
		t.Errorf("expected transaction code QJ7X9, got %q", result.TransactionCode)
	}
	if status.checks != 3 {
		t.Errorf("polling should stop at the confirming attempt, got %d checks", status.checks)
	}
	if store.createCalls != 1 {
		t.Errorf("expected exactly one pending insert, got %d", store.createCalls)
	}
	if store.markCalls != 1 || store.markedCode != "QJ7X9" {
		t.Errorf("expected exactly one terminal update with QJ7X9, got %d calls with %q", store.markCalls, store.markedCode)
	}
}

func TestConfirm_TimesOutAfterBudget(t *testing.T) {
	gateway := &fakeGateway{}
	status := &scriptedStatus{script: []func() (Status, error){notYet}}
	store := &fakeStore{}
	p, sleeps := newTestPoller(gateway, status, 15)

	result := p.Confirm(context.Background(), Request{
		PhoneNumber: "+254722123456",
		Amount:      500,
		Reference:   "INV-2",
		Record:      store,
	}, nil)

	if result.Outcome != OutcomeTimedOut {
		t.Fatalf("expected TIMED_OUT, got %s", result.Outcome)
	}
	if status.checks != 15 {
		t.Errorf("expected exactly 15 poll reads, got %d", status.checks)
	}
	if store.markCalls != 0 {
		t.Errorf("record must stay pending on timeout, got %d updates", store.markCalls)
	}

	// One initial delay plus an interval between each pair of attempts.
	if len(*sleeps) != 15 {
		t.Fatalf("expected 15 waits, got %d", len(*sleeps))
	}
	if (*sleeps)[0] != 5*time.Second {
		t.Errorf("first wait should be the initial delay, got %v", (*sleeps)[0])
	}
	for i, d := range (*sleeps)[1:] {
		if d != 10*time.Second {
			t.Errorf("wait %d should be the poll interval, got %v", i+1, d)
		}
	}
}

func TestConfirm_StorageWriteFailed(t *testing.T) {
	gateway := &fakeGateway{}
	status := &scriptedStatus{script: []func() (Status, error){confirmed("X")}}
	store := &fakeStore{createErr: errors.New("table is read only")}

	var alerted string
	p, _ := newTestPoller(gateway, status, 15)
	p.Alert = func(reference, phoneNumber string, amount int, detail string) {
		alerted = reference
	}

	result := p.Confirm(context.Background(), Request{
		PhoneNumber: "+254722123456",
		Amount:      1000,
		Reference:   "INV-3",
		Record:      store,
	}, nil)

	if result.Outcome != OutcomeFailed {
		t.Fatalf("expected FAILED, got %s", result.Outcome)
	}
	if !errors.Is(result.Err, ErrStorageWriteFailed) {
		t.Errorf("expected ErrStorageWriteFailed, got %v", result.Err)
	}
	if alerted != "INV-3" {
		t.Errorf("expected an operator alert for INV-3, got %q", alerted)
	}
	if status.checks != 0 {
		t.Errorf("no polling should happen after a failed pending write, got %d checks", status.checks)
	}
}

func TestConfirm_TransportErrorsConsumeAttempts(t *testing.T) {
	gateway := &fakeGateway{}
	status := &scriptedStatus{script: []func() (Status, error){checkFails, checkFails, confirmed("AB12C")}}
	store := &fakeStore{}
	p, _ := newTestPoller(gateway, status, 15)

	result := p.Confirm(context.Background(), Request{
		PhoneNumber: "+254722123456",
		Amount:      1000,
		Reference:   "INV-4",
		Record:      store,
	}, nil)

	if result.Outcome != OutcomeConfirmed {
		t.Fatalf("flaky reads should retry like pending results, got %s", result.Outcome)
	}
	if status.checks != 3 {
		t.Errorf("expected 3 checks, got %d", status.checks)
	}
}

func TestConfirm_ProgressMessages(t *testing.T) {
	gateway := &fakeGateway{}
	status := &scriptedStatus{script: []func() (Status, error){notYet, confirmed("OK1")}}
	store := &fakeStore{}
	p, _ := newTestPoller(gateway, status, 15)

	var messages []string
	result := p.Confirm(context.Background(), Request{
		PhoneNumber: "+254722123456",
		Amount:      1000,
		Reference:   "INV-5",
		Record:      store,
	}, func(message string) { messages = append(messages, message) })

	if result.Outcome != OutcomeConfirmed {
		t.Fatalf("expected CONFIRMED, got %s", result.Outcome)
	}
	if len(messages) < 2 {
		t.Fatalf("expected progress updates for each transition, got %v", messages)
	}
	if messages[1] != "Please wait for an M-Pesa prompt." {
		t.Errorf("unexpected acceptance message: %q", messages[1])
	}
}
