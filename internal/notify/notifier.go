// Package notify delivers BidCommitted events to the administrative channel
// and any downstream consumers.
package notify

import (
	"context"
	"errors"

	"lot-auction/internal/models"
	"lot-auction/utils"
)

// Notifier receives every committed bid
type Notifier interface {
	Notify(ctx context.Context, event models.BidCommitted) error
}

// LogNotifier writes committed bids to the structured log, standing in for
// the administrative chat channel.
type LogNotifier struct{}

// Notify logs the event
func (LogNotifier) Notify(_ context.Context, event models.BidCommitted) error {
	utils.Info("new bid", map[string]any{
		"event_id":  event.EventID,
		"lot_id":    event.LotID,
		"lot_title": event.LotTitle,
		"amount":    event.Amount.StringFixed(2),
		"bidder_id": event.BidderID,
	})
	return nil
}

// Fanout delivers each event to every notifier, collecting all failures
type Fanout []Notifier

// Notify calls every notifier even when earlier ones fail
func (f Fanout) Notify(ctx context.Context, event models.BidCommitted) error {
	var errs []error
	for _, n := range f {
		if err := n.Notify(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Recorder keeps every event it receives. Useful as a test double.
type Recorder struct {
	events chan models.BidCommitted
}

// NewRecorder buffers up to size events
func NewRecorder(size int) *Recorder {
	return &Recorder{events: make(chan models.BidCommitted, size)}
}

// Notify records the event, dropping it if the buffer is full
func (r *Recorder) Notify(_ context.Context, event models.BidCommitted) error {
	select {
	case r.events <- event:
		return nil
	default:
		return errors.New("recorder buffer full")
	}
}

// Events drains and returns what has been recorded so far
func (r *Recorder) Events() []models.BidCommitted {
	var out []models.BidCommitted
	for {
		select {
		case ev := <-r.events:
			out = append(out, ev)
		default:
			return out
		}
	}
}
