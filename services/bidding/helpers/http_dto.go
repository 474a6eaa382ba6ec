package helpers

import (
	"time"

	model "lot-auction/internal/models"
)

// Request/Response DTOs
type RegisterParticipantRequest struct {
	ParticipantID string `json:"participant_id" binding:"required"`
	Contact       string `json:"contact" binding:"required"`
}

type OpenBidIntentRequest struct {
	ParticipantID string `json:"participant_id" binding:"required"`
}

// SubmitAmountRequest carries the participant's raw text; parsing is the engine's job
type SubmitAmountRequest struct {
	Text string `json:"text"`
}

type ParticipantResponse struct {
	ParticipantID string `json:"participant_id"`
	Registered    bool   `json:"registered"`
}

type LotResponse struct {
	LotID           string `json:"lot_id"`
	Title           string `json:"title"`
	PhotoURL        string `json:"photo_url"`
	CurrentBid      string `json:"current_bid"`
	CurrentBidderID string `json:"current_bidder_id,omitempty"`
	MinimumRequired string `json:"minimum_required"`
	CreatedAt       string `json:"created_at"`
}

type BidIntentResponse struct {
	LotID           string `json:"lot_id"`
	ParticipantID   string `json:"participant_id"`
	MinimumRequired string `json:"minimum_required"`
}

type BidResponse struct {
	EventID     string `json:"event_id"`
	LotID       string `json:"lot_id"`
	LotTitle    string `json:"lot_title"`
	Amount      string `json:"amount"`
	BidderID    string `json:"bidder_id"`
	CommittedAt string `json:"committed_at"`
}

// NewLotResponse converts a lot view to its wire form
func NewLotResponse(lot model.LotView) LotResponse {
	return LotResponse{
		LotID:           lot.ID,
		Title:           lot.Title,
		PhotoURL:        lot.PhotoRef,
		CurrentBid:      lot.CurrentBid.StringFixed(2),
		CurrentBidderID: lot.CurrentBidderID,
		MinimumRequired: lot.MinimumRequired.StringFixed(2),
		CreatedAt:       lot.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewBidResponse converts a committed bid to its wire form
func NewBidResponse(event model.BidCommitted) BidResponse {
	return BidResponse{
		EventID:     event.EventID,
		LotID:       event.LotID,
		LotTitle:    event.LotTitle,
		Amount:      event.Amount.StringFixed(2),
		BidderID:    event.BidderID,
		CommittedAt: event.CommittedAt.UTC().Format(time.RFC3339),
	}
}
