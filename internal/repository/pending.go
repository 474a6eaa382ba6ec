package repository

import "sync"

// PendingTracker correlates a participant with the lot they are quoting against.
// Each participant has at most one slot; the last intent wins.
type PendingTracker struct {
	mu      sync.Mutex
	pending map[string]string // key: participantID -> value: lotID
}

// NewPendingTracker creates an empty tracker
func NewPendingTracker() *PendingTracker {
	return &PendingTracker{pending: make(map[string]string)}
}

// Open sets the participant's pending lot, overwriting any earlier one.
// It returns the slot's previous lot, if there was one.
func (p *PendingTracker) Open(participantID, lotID string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	prev, ok := p.pending[participantID]
	p.pending[participantID] = lotID
	return prev, ok
}

// Revert undoes an Open of lotID, putting prev back (or clearing the slot when
// there was none). A slot that has since been consumed or reopened is left alone.
func (p *PendingTracker) Revert(participantID, lotID, prev string, hadPrev bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if current, ok := p.pending[participantID]; !ok || current != lotID {
		return
	}
	if hadPrev {
		p.pending[participantID] = prev
		return
	}
	delete(p.pending, participantID)
}

// Consume reads and deletes the participant's pending lot in one step
func (p *PendingTracker) Consume(participantID string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	lotID, ok := p.pending[participantID]
	if ok {
		delete(p.pending, participantID)
	}
	return lotID, ok
}

// Entries returns a copy of the table
func (p *PendingTracker) Entries() map[string]string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return copyTable(p.pending)
}

// Replace swaps the whole table
func (p *PendingTracker) Replace(entries map[string]string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending = copyTable(entries)
}

func copyTable(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
