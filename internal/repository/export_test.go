package repository

import model "lot-auction/internal/models"

// AddLot appends a lot to the catalog, replacing any lot with the same id in place.
func (r *MemoryRepo) AddLot(lot model.Lot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.lots[lot.ID]; !exists {
		r.order = append(r.order, lot.ID)
	}
	r.lots[lot.ID] = lot
}
