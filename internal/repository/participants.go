package repository

import "sync"

// Registry maps registered participants to their verified contact
type Registry struct {
	mu       sync.RWMutex
	contacts map[string]string // key: participantID -> value: contact reference
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{contacts: make(map[string]string)}
}

// Register records or updates the participant's contact and returns the
// contact it replaced, if any.
func (r *Registry) Register(participantID, contact string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.contacts[participantID]
	r.contacts[participantID] = contact
	return prev, ok
}

// Revert undoes a Register of contact. It is a no-op once the entry has changed again.
func (r *Registry) Revert(participantID, contact, prev string, hadPrev bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.contacts[participantID]; !ok || current != contact {
		return
	}
	if hadPrev {
		r.contacts[participantID] = prev
		return
	}
	delete(r.contacts, participantID)
}

// IsRegistered reports whether the participant has a contact on file
func (r *Registry) IsRegistered(participantID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.contacts[participantID]
	return ok
}

// Entries returns a copy of the table
func (r *Registry) Entries() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyTable(r.contacts)
}

// Replace swaps the whole table
func (r *Registry) Replace(entries map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contacts = copyTable(entries)
}
