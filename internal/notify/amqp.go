package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"lot-auction/internal/models"
	"lot-auction/utils"

	amqp "github.com/rabbitmq/amqp091-go"
)

// bidCommittedMessage is the queue payload; amounts travel as fixed-point strings
type bidCommittedMessage struct {
	EventID     string `json:"event_id"`
	LotID       string `json:"lot_id"`
	LotTitle    string `json:"lot_title"`
	Amount      string `json:"amount"`
	BidderID    string `json:"bidder_id"`
	CommittedAt string `json:"committed_at"`
}

const (
	dialTimeout    = 2 * time.Second
	publishTimeout = 2 * time.Second
	redialBackoff  = 5 * time.Second
)

// ErrBrokerUnavailable is returned while the notifier waits out a failed dial
var ErrBrokerUnavailable = errors.New("amqp: broker unavailable")

// AMQPNotifier publishes committed bids to a durable RabbitMQ queue over one
// long-lived connection. A broken connection is redialed on the next event.
type AMQPNotifier struct {
	url   string
	queue string

	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	nextDial time.Time // no dial is attempted before this
}

// NewAMQPNotifier publishes to queue on the broker at url. Nothing is dialed until the first event.
func NewAMQPNotifier(url, queue string) *AMQPNotifier {
	return &AMQPNotifier{url: url, queue: queue}
}

// Notify publishes the event as a persistent JSON message
func (n *AMQPNotifier) Notify(ctx context.Context, event models.BidCommitted) error {
	body, err := json.Marshal(bidCommittedMessage{
		EventID:     event.EventID,
		LotID:       event.LotID,
		LotTitle:    event.LotTitle,
		Amount:      event.Amount.StringFixed(2),
		BidderID:    event.BidderID,
		CommittedAt: event.CommittedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("amqp: marshal event %s: %w", event.EventID, err)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	ch, err := n.channelLocked()
	if err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := ch.PublishWithContext(pubCtx, "", n.queue, false, false, pub); err != nil {
		n.resetLocked()
		return fmt.Errorf("amqp: publish to %s: %w", n.queue, err)
	}

	utils.Debug("bid published", map[string]any{"queue": n.queue, "event_id": event.EventID})
	return nil
}

// Close shuts the broker connection, if one is open
func (n *AMQPNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.conn == nil {
		return nil
	}
	err := n.conn.Close()
	n.conn, n.ch = nil, nil
	if errors.Is(err, amqp.ErrClosed) {
		return nil
	}
	return err
}

// channelLocked returns the cached channel, dialing and declaring the queue when needed
func (n *AMQPNotifier) channelLocked() (*amqp.Channel, error) {
	if n.ch != nil && !n.ch.IsClosed() && !n.conn.IsClosed() {
		return n.ch, nil
	}
	n.resetLocked()

	if now := time.Now(); now.Before(n.nextDial) {
		return nil, fmt.Errorf("%w: retry in %s", ErrBrokerUnavailable, n.nextDial.Sub(now).Round(time.Millisecond))
	}

	conn, err := amqp.DialConfig(n.url, amqp.Config{Dial: amqp.DefaultDial(dialTimeout)})
	if err != nil {
		n.nextDial = time.Now().Add(redialBackoff)
		return nil, fmt.Errorf("amqp: dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp: open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(
		n.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp: declare queue %s: %w", n.queue, err)
	}

	utils.Info("connected to broker", map[string]any{"queue": n.queue})
	n.conn, n.ch = conn, ch
	return ch, nil
}

// resetLocked drops the cached connection so the next event redials
func (n *AMQPNotifier) resetLocked() {
	if n.conn != nil {
		_ = n.conn.Close()
	}
	n.conn, n.ch = nil, nil
}
