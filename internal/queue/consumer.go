package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// EventHook runs after an event has been written to the activity log.
type EventHook func(ctx context.Context, ev ListingEvent)

// ListingConsumer reads listing events from ListingQueue and appends them to
// an activity log.
type ListingConsumer struct {
	URL      string
	Activity *logrus.Logger // sink for one entry per event
	Log      *logrus.Logger // operational errors
	OnEvent  EventHook      // optional
}

// Run connects to the broker and consumes until ctx is cancelled.  Lost
// connections are re-dialled with an exponential backoff capped at 30s.
// Malformed messages are rejected without requeue so they cannot loop.
func (c *ListingConsumer) Run(ctx context.Context) error {
	backoff := time.Second
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		conn, err := amqp.Dial(c.URL)
		if err != nil {
			c.Log.WithError(err).Warnf("listing-consumer: dial failed, retrying in %s", backoff)
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		err = c.consume(ctx, conn)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.Log.WithError(err).Warn("listing-consumer: consume loop ended, reconnecting")
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func (c *ListingConsumer) consume(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		c.Log.WithError(err).Warn("listing-consumer: set QoS failed")
	}
	if _, err := ch.QueueDeclare(ListingQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	msgs, err := ch.ConsumeWithContext(ctx, ListingQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := c.Handle(ctx, d.Body); err != nil {
			c.Log.WithError(err).Error("listing-consumer: handle message failed")
			_ = d.Nack(false, false)
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

// Handle decodes one message body, writes it to the activity log and runs
// the hook.
func (c *ListingConsumer) Handle(ctx context.Context, body []byte) error {
	var ev ListingEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if ev.Kind == "" || ev.Entity == "" {
		return errors.New("event without kind or entity")
	}
	c.Activity.WithFields(logrus.Fields{
		"event_id":    ev.ID,
		"kind":        ev.Kind,
		"entity":      ev.Entity,
		"entity_id":   ev.EntityID,
		"occurred_at": ev.OccurredAt,
	}).Infof("%s %q %s", ev.Entity, ev.Name, ev.Kind)
	if c.OnEvent != nil {
		c.OnEvent(ctx, ev)
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
