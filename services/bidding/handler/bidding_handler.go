package handler

import (
	"context"
	"fmt"
	"net/http"

	"lot-auction/internal/biddingerrors"
	model "lot-auction/internal/models"
	"lot-auction/services/bidding/helpers"
	"lot-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=bidding_handler.go -destination=mock_bidding_handler.go -package=handler

type BiddingServiceInterface interface {
	RegisterParticipant(ctx context.Context, participantID, contact string) error
	IsRegistered(participantID string) bool
	ListLots() []model.LotView
	GetLot(lotID string) (model.LotView, error)
	OpenBidIntent(ctx context.Context, participantID, lotID string) (decimal.Decimal, error)
	SubmitAmount(ctx context.Context, participantID, rawText string) (model.BidCommitted, error)
	Reload(ctx context.Context) error
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// RegisterParticipantHandler handles POST /participants
func (h *BiddingHandler) RegisterParticipantHandler(c *gin.Context) {
	var req helpers.RegisterParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterParticipantHandler", err)
		return
	}

	if err := h.service.RegisterParticipant(c.Request.Context(), req.ParticipantID, req.Contact); err != nil {
		helpers.HandleServiceError(c, "RegisterParticipantHandler", err, map[string]any{
			"participant_id": req.ParticipantID,
		})
		return
	}

	resp := helpers.ParticipantResponse{ParticipantID: req.ParticipantID, Registered: true}
	utils.JSONResponse(c, http.StatusCreated, resp, "participant registered successfully")
	helpers.LogSuccess("RegisterParticipantHandler", "participant registered successfully", map[string]any{
		"participant_id": req.ParticipantID,
	})
}

// GetParticipantHandler handles GET /participants/:participant_id
func (h *BiddingHandler) GetParticipantHandler(c *gin.Context) {
	participantID := c.Param("participant_id")
	resp := helpers.ParticipantResponse{
		ParticipantID: participantID,
		Registered:    h.service.IsRegistered(participantID),
	}
	utils.JSONResponse(c, http.StatusOK, resp, "participant retrieved successfully")
}

// ListLotsHandler handles GET /lots. With ?participant_id= the listing is
// limited to registered participants.
func (h *BiddingHandler) ListLotsHandler(c *gin.Context) {
	if participantID, ok := c.GetQuery("participant_id"); ok && !h.service.IsRegistered(participantID) {
		err := fmt.Errorf("participant %q: %w", participantID, biddingerrors.ErrNotRegistered)
		helpers.HandleServiceError(c, "ListLotsHandler", err, map[string]any{"participant_id": participantID})
		return
	}

	lots := h.service.ListLots()
	resp := make([]helpers.LotResponse, 0, len(lots))
	for _, lot := range lots {
		resp = append(resp, helpers.NewLotResponse(lot))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "lots retrieved successfully")
	helpers.LogSuccess("ListLotsHandler", "lots retrieved successfully", map[string]any{"count": len(resp)})
}

// GetLotHandler handles GET /lots/:lot_id
func (h *BiddingHandler) GetLotHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	lot, err := h.service.GetLot(lotID)
	if err != nil {
		helpers.HandleServiceError(c, "GetLotHandler", err, map[string]any{"lot_id": lotID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewLotResponse(lot), "lot retrieved successfully")
}

// OpenBidIntentHandler handles POST /lots/:lot_id/intents
func (h *BiddingHandler) OpenBidIntentHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	var req helpers.OpenBidIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "OpenBidIntentHandler", err)
		return
	}

	minimum, err := h.service.OpenBidIntent(c.Request.Context(), req.ParticipantID, lotID)
	if err != nil {
		helpers.HandleServiceError(c, "OpenBidIntentHandler", err, map[string]any{
			"lot_id":         lotID,
			"participant_id": req.ParticipantID,
		})
		return
	}

	resp := helpers.BidIntentResponse{
		LotID:           lotID,
		ParticipantID:   req.ParticipantID,
		MinimumRequired: minimum.StringFixed(2),
	}
	utils.JSONResponse(c, http.StatusOK, resp, "bid intent opened, submit an amount")
	helpers.LogSuccess("OpenBidIntentHandler", "bid intent opened", map[string]any{
		"lot_id":           lotID,
		"participant_id":   req.ParticipantID,
		"minimum_required": resp.MinimumRequired,
	})
}

// SubmitAmountHandler handles POST /participants/:participant_id/amount
func (h *BiddingHandler) SubmitAmountHandler(c *gin.Context) {
	participantID := c.Param("participant_id")
	var req helpers.SubmitAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitAmountHandler", err)
		return
	}

	event, err := h.service.SubmitAmount(c.Request.Context(), participantID, req.Text)
	if err != nil {
		helpers.HandleServiceError(c, "SubmitAmountHandler", err, map[string]any{
			"participant_id": participantID,
			"text":           req.Text,
		})
		return
	}

	resp := helpers.NewBidResponse(event)
	utils.JSONResponse(c, http.StatusCreated, resp, "bid recorded successfully")
	helpers.LogSuccess("SubmitAmountHandler", "bid recorded successfully", map[string]any{
		"event_id":  resp.EventID,
		"lot_id":    resp.LotID,
		"bidder_id": resp.BidderID,
		"amount":    resp.Amount,
	})
}

// ReloadHandler handles POST /admin/reload
func (h *BiddingHandler) ReloadHandler(c *gin.Context) {
	if err := h.service.Reload(c.Request.Context()); err != nil {
		helpers.HandleServiceError(c, "ReloadHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "snapshot reloaded successfully")
	helpers.LogSuccess("ReloadHandler", "snapshot reloaded successfully", nil)
}
