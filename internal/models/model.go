package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lot represents an auctioned item with a single current bid
type Lot struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	PhotoRef        string          `json:"photo_url"`
	CurrentBid      decimal.Decimal `json:"current_bid"`
	CurrentBidderID string          `json:"current_bidder_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// HasBid reports whether a bid has been placed on the lot
func (l Lot) HasBid() bool {
	return l.CurrentBid.IsPositive()
}

// Snapshot is the durable form of the whole auction state
type Snapshot struct {
	Lots            map[string]Lot    `json:"lots"`
	PendingBids     map[string]string `json:"pending_bids"`     // key: participantID -> value: lotID
	RegisteredUsers map[string]string `json:"registered_users"` // key: participantID -> value: contact
}

// NewSnapshot returns a snapshot with all tables initialized
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Lots:            make(map[string]Lot),
		PendingBids:     make(map[string]string),
		RegisteredUsers: make(map[string]string),
	}
}

// BidCommitted is emitted after a bid has been recorded and saved
type BidCommitted struct {
	EventID     string          `json:"event_id"`
	LotID       string          `json:"lot_id"`
	LotTitle    string          `json:"lot_title"`
	Amount      decimal.Decimal `json:"amount"`
	BidderID    string          `json:"bidder_id"`
	CommittedAt time.Time       `json:"committed_at"`
}

// LotView is a lot together with the smallest amount it currently accepts
type LotView struct {
	Lot
	MinimumRequired decimal.Decimal `json:"minimum_required"`
}
