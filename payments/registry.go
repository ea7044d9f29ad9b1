package payments

import (
	"context"
	"sync"
	"time"
)

// Update is one caller-visible progress message from a poll loop.
type Update struct {
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Snapshot is the externally visible state of one checkout attempt.
type Snapshot struct {
	Reference string   `json:"reference"`
	Done      bool     `json:"done"`
	Updates   []Update `json:"updates"`
	Result    *Result  `json:"result,omitempty"`
}

type flight struct {
	mu      sync.Mutex
	updates []Update
	result  *Result
	done    bool
}

// Terminal snapshots stay visible for a grace period so late status polls
// still see the result. After that the entry is evicted and the stored
// record answers for the reference.
const terminalRetention = 5 * time.Minute

// Registry owns the poll loops. It guarantees at most one loop per
// reference and keeps progress snapshots for the status endpoint to serve.
// Loops run to a terminal state regardless of whether anyone is watching;
// abandoning the page abandons only the view.
type Registry struct {
	mu      sync.Mutex
	flights map[string]*flight
	poller  *Poller
	retain  time.Duration
}

func NewRegistry(p *Poller) *Registry {
	return &Registry{
		flights: make(map[string]*flight),
		poller:  p,
		retain:  terminalRetention,
	}
}

// Start launches the confirmation loop for a checkout attempt. A reference
// may only ever be started once; retrying a failed checkout means a new
// reference, not resuming the old one.
func (r *Registry) Start(req Request) error {
	r.mu.Lock()
	if _, exists := r.flights[req.Reference]; exists {
		r.mu.Unlock()
		return ErrDuplicateReference
	}
	f := &flight{}
	r.flights[req.Reference] = f
	r.mu.Unlock()

	go func() {
		result := r.poller.Confirm(context.Background(), req, func(message string) {
			f.mu.Lock()
			f.updates = append(f.updates, Update{Message: message, At: time.Now()})
			f.mu.Unlock()
		})

		f.mu.Lock()
		f.updates = append(f.updates, Update{Message: result.Message, At: time.Now()})
		f.result = &result
		f.done = true
		f.mu.Unlock()

		time.AfterFunc(r.retain, func() {
			r.mu.Lock()
			delete(r.flights, req.Reference)
			r.mu.Unlock()
		})
	}()

	return nil
}

// Snapshot returns the current state of a checkout attempt.
func (r *Registry) Snapshot(reference string) (Snapshot, bool) {
	r.mu.Lock()
	f, ok := r.flights[reference]
	r.mu.Unlock()
	if !ok {
		return Snapshot{}, false
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	snap := Snapshot{
		Reference: reference,
		Done:      f.done,
		Updates:   append([]Update(nil), f.updates...),
	}
	if f.result != nil {
		result := *f.result
		snap.Result = &result
	}
	return snap, true
}
