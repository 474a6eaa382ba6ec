// Package persistence keeps the durable snapshot of the auction state:
// lots, pending bid requests and registered participants.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"lot-auction/internal/biddingerrors"
	"lot-auction/internal/models"
)

// Store loads and saves the whole snapshot at once
type Store interface {
	// Load returns biddingerrors.ErrSnapshotNotFound when nothing has been saved yet.
	Load(ctx context.Context) (*models.Snapshot, error)
	Save(ctx context.Context, snap *models.Snapshot) error
}

func encodeSnapshot(snap *models.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

func decodeSnapshot(data []byte) (*models.Snapshot, error) {
	snap := models.NewSnapshot()
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if snap.Lots == nil {
		snap.Lots = make(map[string]models.Lot)
	}
	if snap.PendingBids == nil {
		snap.PendingBids = make(map[string]string)
	}
	if snap.RegisteredUsers == nil {
		snap.RegisteredUsers = make(map[string]string)
	}

	for id, lot := range snap.Lots {
		if lot.ID == "" {
			lot.ID = id
		}
		if lot.ID != id {
			return nil, fmt.Errorf("lot keyed %q carries id %q", id, lot.ID)
		}
		if lot.CurrentBid.IsNegative() {
			return nil, fmt.Errorf("lot %s has negative current bid %s", id, lot.CurrentBid)
		}
		if lot.HasBid() != (lot.CurrentBidderID != "") {
			return nil, fmt.Errorf("lot %s: bidder %q does not match current bid %s", id, lot.CurrentBidderID, lot.CurrentBid)
		}
		snap.Lots[id] = lot
	}
	return snap, nil
}

func persistenceError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, biddingerrors.ErrPersistence, err)
}
