package bidding

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"lot-auction/internal/biddingerrors"
	"lot-auction/internal/models"
	"lot-auction/internal/notify"
	"lot-auction/internal/persistence"
	"lot-auction/internal/repository"
	"lot-auction/internal/validator"
	"lot-auction/utils"

	"github.com/shopspring/decimal"
)

// maxCommitAttempts bounds the validate-then-commit loop: one try plus one retry after a conflict.
const maxCommitAttempts = 2

// PendingStore tracks which lot each participant is quoting against
type PendingStore interface {
	Open(participantID, lotID string) (string, bool)
	Revert(participantID, lotID, prev string, hadPrev bool)
	Consume(participantID string) (string, bool)
	Entries() map[string]string
	Replace(entries map[string]string)
}

// ParticipantStore holds the registered participants
type ParticipantStore interface {
	Register(participantID, contact string) (string, bool)
	Revert(participantID, contact, prev string, hadPrev bool)
	IsRegistered(participantID string) bool
	Entries() map[string]string
	Replace(entries map[string]string)
}

// BiddingService is the only writer of lot, pending-request and participant state.
// Every mutation is followed by a full snapshot save.
type BiddingService struct {
	lots         repository.LotStore
	pending      PendingStore
	participants ParticipantStore
	store        persistence.Store
	notifier     notify.Notifier

	// persistMu orders snapshot saves; commits hold it across CAS and save
	persistMu sync.Mutex
	now       func() time.Time
}

// NewBiddingService creates a new BiddingService instance. A nil notifier logs committed bids.
func NewBiddingService(
	lots repository.LotStore,
	pending PendingStore,
	participants ParticipantStore,
	store persistence.Store,
	notifier notify.Notifier,
) *BiddingService {
	if notifier == nil {
		notifier = notify.LogNotifier{}
	}
	return &BiddingService{
		lots:         lots,
		pending:      pending,
		participants: participants,
		store:        store,
		notifier:     notifier,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Bootstrap loads the saved snapshot. When none exists the catalog is seeded and saved.
func (s *BiddingService) Bootstrap(ctx context.Context, catalog []models.Lot) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	snap, err := s.store.Load(ctx)
	switch {
	case err == nil:
		s.apply(snap)
		return nil
	case !errors.Is(err, biddingerrors.ErrSnapshotNotFound):
		return fmt.Errorf("service: bootstrap: %w", err)
	}

	seed := models.NewSnapshot()
	for _, lot := range catalog {
		lot.CurrentBid = decimal.Zero
		lot.CurrentBidderID = ""
		seed.Lots[lot.ID] = lot
	}
	s.apply(seed)

	utils.Info("seeding lot catalog", map[string]any{"lots": len(catalog)})
	return s.saveLocked(ctx)
}

// Reload replaces the in-memory state with the saved snapshot
func (s *BiddingService) Reload(ctx context.Context) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	snap, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("service: reload: %w", err)
	}
	s.apply(snap)
	return nil
}

// RegisterParticipant records a participant's verified contact on behalf of the registration flow
func (s *BiddingService) RegisterParticipant(ctx context.Context, participantID, contact string) error {
	if participantID == "" || contact == "" {
		return fmt.Errorf("service: %w - missing participantID or contact", biddingerrors.ErrInvalidBid)
	}

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	prev, hadPrev := s.participants.Register(participantID, contact)
	if err := s.saveLocked(ctx); err != nil {
		s.participants.Revert(participantID, contact, prev, hadPrev)
		return fmt.Errorf("service: register participant %s: %w", participantID, err)
	}
	return nil
}

// IsRegistered reports whether the participant may bid
func (s *BiddingService) IsRegistered(participantID string) bool {
	return s.participants.IsRegistered(participantID)
}

// ListLots returns the catalog with each lot's current minimum
func (s *BiddingService) ListLots() []models.LotView {
	lots := s.lots.List()
	views := make([]models.LotView, 0, len(lots))
	for _, lot := range lots {
		views = append(views, view(lot))
	}
	return views
}

// GetLot returns a single lot with its current minimum
func (s *BiddingService) GetLot(lotID string) (models.LotView, error) {
	lot, err := s.lots.Get(lotID)
	if err != nil {
		return models.LotView{}, fmt.Errorf("service: %w", err)
	}
	return view(lot), nil
}

// OpenBidIntent starts (or restarts) a bid on lotID for the participant and
// returns the minimum amount to show them.
func (s *BiddingService) OpenBidIntent(ctx context.Context, participantID, lotID string) (decimal.Decimal, error) {
	if !s.participants.IsRegistered(participantID) {
		return decimal.Zero, fmt.Errorf("service: participant %s: %w", participantID, biddingerrors.ErrNotRegistered)
	}

	lot, err := s.lots.Get(lotID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("service: open bid intent: %w", err)
	}

	if err := s.openLocked(ctx, participantID, lotID); err != nil {
		return decimal.Zero, fmt.Errorf("service: open bid intent on lot %s: %w", lotID, err)
	}

	return validator.MinimumRequired(lot), nil
}

// openLocked opens the pending request and saves it; an unsaved request is withdrawn
func (s *BiddingService) openLocked(ctx context.Context, participantID, lotID string) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	prev, hadPrev := s.pending.Open(participantID, lotID)
	if err := s.saveLocked(ctx); err != nil {
		s.pending.Revert(participantID, lotID, prev, hadPrev)
		return err
	}
	return nil
}

// SubmitAmount resolves the participant's pending request and tries to commit rawText as a bid.
// The pending request is consumed whatever the outcome.
func (s *BiddingService) SubmitAmount(ctx context.Context, participantID, rawText string) (models.BidCommitted, error) {
	lotID, ok := s.pending.Consume(participantID)
	if !ok {
		return models.BidCommitted{}, fmt.Errorf("service: participant %s: %w", participantID, biddingerrors.ErrStaleRequest)
	}

	event, err := s.placeBid(ctx, participantID, lotID, rawText)
	if err == nil {
		return event, nil
	}

	// the request is gone from memory; make that durable before reporting the failure
	if !errors.Is(err, biddingerrors.ErrPersistence) {
		if perr := s.persist(ctx); perr != nil {
			err = errors.Join(err, perr)
		}
	}
	return models.BidCommitted{}, err
}

func (s *BiddingService) placeBid(ctx context.Context, participantID, lotID, rawText string) (models.BidCommitted, error) {
	lot, err := s.lots.Get(lotID)
	if err != nil {
		return models.BidCommitted{}, fmt.Errorf("service: place bid: %w", err)
	}

	amount, err := validator.ParseAmount(rawText)
	if err != nil {
		return models.BidCommitted{}, fmt.Errorf("service: place bid on lot %s: %w", lotID, err)
	}

	for attempt := 1; attempt <= maxCommitAttempts; attempt++ {
		if err := validator.Judge(lot, amount); err != nil {
			return models.BidCommitted{}, fmt.Errorf("service: place bid on lot %s: %w", lotID, err)
		}

		err := s.commit(ctx, lot, amount, participantID)
		if err == nil {
			event := models.BidCommitted{
				EventID:     utils.GenerateID(),
				LotID:       lot.ID,
				LotTitle:    lot.Title,
				Amount:      amount,
				BidderID:    participantID,
				CommittedAt: s.now(),
			}
			s.announce(ctx, event)
			return event, nil
		}
		if !errors.Is(err, biddingerrors.ErrConflict) {
			return models.BidCommitted{}, fmt.Errorf("service: place bid on lot %s: %w", lotID, err)
		}
		if attempt == maxCommitAttempts {
			break
		}

		utils.Debug("bid lost compare-and-set, re-reading lot", map[string]any{
			"lot_id":  lotID,
			"bidder":  participantID,
			"attempt": attempt,
		})
		if lot, err = s.lots.Get(lotID); err != nil {
			return models.BidCommitted{}, fmt.Errorf("service: place bid: %w", err)
		}
	}

	return models.BidCommitted{}, fmt.Errorf("service: place bid on lot %s: %w", lotID, biddingerrors.ErrContended)
}

// commit swaps the lot's bid if it still matches what prev observed and saves
// the snapshot. A failed save puts prev's bid back.
func (s *BiddingService) commit(ctx context.Context, prev models.Lot, amount decimal.Decimal, bidderID string) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	if err := s.lots.CompareAndSetBid(prev.ID, prev.CurrentBid, amount, bidderID); err != nil {
		return err
	}

	if err := s.saveLocked(ctx); err != nil {
		if rerr := s.lots.RestoreBid(prev); rerr != nil {
			utils.Error("failed to roll back unsaved bid", map[string]any{
				"lot_id": prev.ID,
				"error":  rerr.Error(),
			})
		}
		return err
	}
	return nil
}

func (s *BiddingService) announce(ctx context.Context, event models.BidCommitted) {
	if err := s.notifier.Notify(ctx, event); err != nil {
		utils.Warn("failed to deliver bid notification", map[string]any{
			"event_id": event.EventID,
			"lot_id":   event.LotID,
			"error":    err.Error(),
		})
	}
}

func (s *BiddingService) persist(ctx context.Context) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()
	return s.saveLocked(ctx)
}

// saveLocked must be called with persistMu held
func (s *BiddingService) saveLocked(ctx context.Context) error {
	if err := s.store.Save(ctx, s.snapshot()); err != nil {
		utils.Error("failed to save snapshot", map[string]any{"error": err.Error()})
		if !errors.Is(err, biddingerrors.ErrPersistence) {
			err = fmt.Errorf("%w: %w", biddingerrors.ErrPersistence, err)
		}
		return err
	}
	return nil
}

func (s *BiddingService) snapshot() *models.Snapshot {
	snap := models.NewSnapshot()
	for _, lot := range s.lots.List() {
		snap.Lots[lot.ID] = lot
	}
	snap.PendingBids = s.pending.Entries()
	snap.RegisteredUsers = s.participants.Entries()
	return snap
}

func (s *BiddingService) apply(snap *models.Snapshot) {
	s.lots.Replace(snap.Lots)
	s.pending.Replace(snap.PendingBids)
	s.participants.Replace(snap.RegisteredUsers)
}

func view(lot models.Lot) models.LotView {
	return models.LotView{Lot: lot, MinimumRequired: validator.MinimumRequired(lot)}
}
