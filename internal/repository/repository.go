package repository

import (
	"fmt"
	"sort"
	"sync"

	"lot-auction/internal/biddingerrors"
	model "lot-auction/internal/models"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// LotStore defines the lot catalog storage interface for the auction system
type LotStore interface {
	Get(lotID string) (model.Lot, error)
	List() []model.Lot
	CompareAndSetBid(lotID string, expected, amount decimal.Decimal, bidderID string) error
	RestoreBid(lot model.Lot) error
	Replace(lots map[string]model.Lot)
}

// MemoryRepo is a concurrency-safe in-memory implementation of LotStore
type MemoryRepo struct {
	mu    sync.RWMutex
	lots  map[string]model.Lot // key: lotID -> value: lot
	order []string             // catalog order of lotIDs
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		lots: make(map[string]model.Lot),
	}
}

// Get returns a copy of the lot
func (r *MemoryRepo) Get(lotID string) (model.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lot, ok := r.lots[lotID]
	if !ok {
		return model.Lot{}, fmt.Errorf("get lot %s: %w", lotID, biddingerrors.ErrLotNotFound)
	}
	return lot, nil
}

// List returns all lots in catalog order
func (r *MemoryRepo) List() []model.Lot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lots := make([]model.Lot, 0, len(r.order))
	for _, id := range r.order {
		lots = append(lots, r.lots[id])
	}
	return lots
}

// CompareAndSetBid records amount/bidderID as the lot's current bid only if the
// stored current bid still equals expected. A stale expectation returns
// ErrConflict and leaves the lot untouched.
func (r *MemoryRepo) CompareAndSetBid(lotID string, expected, amount decimal.Decimal, bidderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lot, ok := r.lots[lotID]
	if !ok {
		return fmt.Errorf("set bid for lot %s: %w", lotID, biddingerrors.ErrLotNotFound)
	}
	if !lot.CurrentBid.Equal(expected) {
		return fmt.Errorf("set bid for lot %s: expected %s, found %s: %w",
			lotID, expected, lot.CurrentBid, biddingerrors.ErrConflict)
	}
	if bidderID == "" || !amount.IsPositive() || amount.LessThan(lot.CurrentBid) {
		return fmt.Errorf("set bid for lot %s: %w - amount %s by %q", lotID, biddingerrors.ErrInvalidBid, amount, bidderID)
	}

	lot.CurrentBid = amount
	lot.CurrentBidderID = bidderID
	r.lots[lotID] = lot
	return nil
}

// RestoreBid puts back the bid pair of a previously read lot. It exists to
// undo an in-memory commit that could not be saved.
func (r *MemoryRepo) RestoreBid(prev model.Lot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lot, ok := r.lots[prev.ID]
	if !ok {
		return fmt.Errorf("restore bid for lot %s: %w", prev.ID, biddingerrors.ErrLotNotFound)
	}
	lot.CurrentBid = prev.CurrentBid
	lot.CurrentBidderID = prev.CurrentBidderID
	if !lot.HasBid() {
		lot.CurrentBidderID = ""
	}
	r.lots[prev.ID] = lot
	return nil
}

// Replace swaps the whole catalog. Catalog order becomes creation time, then id.
func (r *MemoryRepo) Replace(lots map[string]model.Lot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lots = make(map[string]model.Lot, len(lots))
	r.order = make([]string, 0, len(lots))
	for id, lot := range lots {
		lot.ID = id
		r.lots[id] = lot
		r.order = append(r.order, id)
	}
	sort.Slice(r.order, func(i, j int) bool {
		a, b := r.lots[r.order[i]], r.lots[r.order[j]]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		if len(a.ID) != len(b.ID) {
			return len(a.ID) < len(b.ID)
		}
		return a.ID < b.ID
	})
}
