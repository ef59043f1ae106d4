package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/skillcoder/telemetry-autoscaler/internal/infra/events"
	"github.com/skillcoder/telemetry-autoscaler/internal/infra/metrics"
)

const (
	defaultTimeout     = 10 * time.Second
	defaultMaxAttempts = 3
	defaultBackoff     = time.Second
	defaultBuffer      = 256

	responseBodyLimit = 2048
)

// Subscriber is the event bus the notifier listens on.
type Subscriber interface {
	Subscribe(buffer int, types ...events.Type) (<-chan events.Event, func())
}

// Options configures delivery.
type Options struct {
	URL         string
	Timeout     time.Duration
	MaxAttempts int
	Backoff     time.Duration
	Buffer      int
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}

	if o.MaxAttempts <= 0 {
		o.MaxAttempts = defaultMaxAttempts
	}

	if o.Backoff <= 0 {
		o.Backoff = defaultBackoff
	}

	if o.Buffer <= 0 {
		o.Buffer = defaultBuffer
	}

	return o
}

// Envelope is the JSON body posted for every event.
type Envelope struct {
	Type       events.Type  `json:"type"`
	OccurredAt time.Time    `json:"occurredAt"`
	Data       events.Event `json:"data"`
}

// Notifier posts alert and scaling action events to a webhook.
type Notifier struct {
	logger     *slog.Logger
	bus        Subscriber
	http       *http.Client
	opts       Options
	ready      chan struct{}
	doneCh     chan struct{}
	inShutdown atomic.Bool
	started    atomic.Bool
}

// New creates a notifier. Start subscribes it to bus.
func New(logger *slog.Logger, bus Subscriber, opts Options) *Notifier {
	opts = opts.withDefaults()

	return &Notifier{
		logger: logger.With("component", "webhook-notifier"),
		bus:    bus,
		http:   &http.Client{Timeout: opts.Timeout},
		opts:   opts,
		ready:  make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// Name returns the name of the component
func (n *Notifier) Name() string {
	return "webhook-notifier"
}

func (n *Notifier) Start(ctx context.Context) error {
	if n.inShutdown.Load() {
		n.logger.InfoContext(ctx, "notifier is shutting down, skipping start")

		return nil
	}

	n.started.Store(true)

	ch, cancel := n.bus.Subscribe(
		n.opts.Buffer,
		events.TypeAlert,
		events.TypeScalingActionCompleted,
		events.TypeScalingActionFailed,
	)

	go n.run(ctx, ch, cancel)

	return nil
}

func (n *Notifier) Ready() <-chan struct{} {
	return n.ready
}

func (n *Notifier) Ping(ctx context.Context) error {
	select {
	case <-n.doneCh:
		return fmt.Errorf("notifier stopped")
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-n.ready:
		return nil
	default:
		return fmt.Errorf("notifier is not ready")
	}
}

// PingerCritical keeps a stopped notifier from failing the liveness probe.
func (n *Notifier) PingerCritical() bool {
	return false
}

func (n *Notifier) Shutdown(ctx context.Context) error {
	if !n.inShutdown.CompareAndSwap(false, true) {
		n.logger.ErrorContext(ctx, "notifier is already shutting down, skipping shutdown")

		return nil
	}

	if !n.started.Load() {
		return nil
	}

	n.logger.InfoContext(ctx, "shutting down notifier")

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before notifier loop exited: %w", ctx.Err())
	case <-n.doneCh:
		n.logger.InfoContext(ctx, "notifier loop exited")
	}

	return nil
}

func (n *Notifier) run(ctx context.Context, ch <-chan events.Event, cancel func()) {
	defer close(n.doneCh)
	defer cancel()

	close(n.ready)

	for {
		select {
		case <-ctx.Done():
			n.logger.InfoContext(ctx, "terminating notifier loop")

			return
		case e, ok := <-ch:
			if !ok {
				return
			}

			status := "sent"

			err := n.Send(ctx, e)
			if err != nil {
				status = "failed"

				n.logger.ErrorContext(ctx, "notification not delivered",
					"type", e.EventType(),
					"reason", err,
				)
			}

			metrics.RecordNotification(string(e.EventType()), status)
		}
	}
}

// Send posts e, retrying transport errors, 429 and 5xx replies with a linear backoff.
func (n *Notifier) Send(ctx context.Context, e events.Event) error {
	body, err := json.Marshal(Envelope{
		Type:       e.EventType(),
		OccurredAt: e.OccurredAt(),
		Data:       e,
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	var lastErr error

	for attempt := 1; attempt <= n.opts.MaxAttempts; attempt++ {
		lastErr = n.post(ctx, body)
		if lastErr == nil {
			return nil
		}

		if errors.Is(lastErr, ErrPermanentReply) || attempt == n.opts.MaxAttempts {
			break
		}

		n.logger.DebugContext(ctx, "retrying notification", "attempt", attempt, "reason", lastErr)

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrDelivery, ctx.Err())
		case <-time.After(n.opts.Backoff * time.Duration(attempt)):
		}
	}

	return fmt.Errorf("%w: %w", ErrDelivery, lastErr)
}

func (n *Notifier) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.opts.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPermanentReply, err)
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := n.http.Do(req)
	if err != nil {
		return fmt.Errorf("post notification: %w", err)
	}
	defer res.Body.Close()

	resp, _ := io.ReadAll(io.LimitReader(res.Body, responseBodyLimit))

	switch {
	case res.StatusCode < http.StatusMultipleChoices:
		return nil
	case res.StatusCode == http.StatusTooManyRequests || res.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("webhook status %d: %s", res.StatusCode, string(resp))
	default:
		return fmt.Errorf("%w: status %d: %s", ErrPermanentReply, res.StatusCode, string(resp))
	}
}
